package rule

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

var triadFields = []string{entity.KeyExternalID, entity.KeyExternalIDType, entity.KeyExternalIDProvider}

func (v *Validator) countBlank(req payload.Object, keys []string) (int, error) {
	n := 0
	for _, key := range keys {
		empty, err := v.blank(req, key)
		if err != nil {
			return 0, err
		}
		if empty {
			n++
		}
	}
	return n, nil
}

// triad requires externalId, externalIdType and externalIdProvider together or not at all.
func (v *Validator) triad(req payload.Object) error {
	blanks, err := v.countBlank(req, triadFields)
	if err != nil {
		return err
	}
	if blanks != 0 && blanks != len(triadFields) {
		return v.fail(entity.DependentParamsMissing, "externalId, externalIdType, externalIdProvider")
	}
	return nil
}

// duplicateExternalIDs fails on the first entry whose (provider, idType) pair,
// compared case-insensitively, was seen earlier in the list. The message
// quotes the earlier entry's values.
func (v *Validator) duplicateExternalIDs(entries []payload.Object) error {
	type pair struct{ idType, provider string }

	seen := make(map[pair]pair, len(entries))
	for _, entry := range entries {
		provider, _ := entry.Str(entity.KeyProvider)
		idType, _ := entry.Str(entity.KeyIDType)

		key := pair{idType: strings.ToLower(idType), provider: strings.ToLower(provider)}
		if first, ok := seen[key]; ok {
			return v.fail(entity.DuplicateExternalIDs, first.idType, first.provider)
		}
		seen[key] = pair{idType: idType, provider: provider}
	}
	return nil
}

// softDeletable runs check on entries not flagged isDeleted. Deleted entries only need an id.
func (v *Validator) softDeletable(check func(payload.Object) error) func(payload.Object) error {
	return func(entry payload.Object) error {
		if deleted, ok := entry.Bool(entity.KeyIsDeleted); ok && deleted {
			return v.requireText(entry, entity.KeyID, entity.IDRequired)
		}
		return check(entry)
	}
}

// itemKeys renders each item as JSON so items of any kind compare by value;
// "1" and 1 stay distinct.
func itemKeys(items []payload.Value) []string {
	return lo.FilterMap(items, func(item payload.Value, _ int) (string, bool) {
		b, err := item.MarshalJSON()
		return string(b), err == nil
	})
}

// disjoint fails when an item is listed as both private and public.
func (v *Validator) disjoint(private, public []payload.Value) error {
	if len(lo.Intersect(itemKeys(private), itemKeys(public))) > 0 {
		return v.fail(entity.VisibilityInvalid)
	}
	return nil
}
