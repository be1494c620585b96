package rule

import (
	"strings"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

func (v *Validator) address(addr payload.Object, context string) error {
	if err := v.requireText(addr, entity.KeyAddressLine1, entity.AddressError, context, entity.KeyAddressLine1); err != nil {
		return err
	}
	if err := v.requireText(addr, entity.KeyCity, entity.AddressError, context, entity.KeyCity); err != nil {
		return err
	}

	if !addr.Has(entity.KeyAddType) || context != entity.AddressContextAddress {
		return nil
	}

	addType, err := v.text(addr, entity.KeyAddType)
	if err != nil {
		return err
	}
	if isBlank(addType) {
		return v.fail(entity.AddressError, context, "type")
	}
	if !entity.IsAddressType(addType) {
		return v.fail(entity.AddressTypeError)
	}
	return nil
}

// nestedAddress validates the optional single address held by an education or job entry.
func (v *Validator) nestedAddress(entry payload.Object, context string) error {
	val := entry.Get(entity.KeyAddress)
	if val.IsNil() {
		return nil
	}
	addr, ok := val.AsObject()
	if !ok {
		return v.fail(entity.DataTypeError, entity.KeyAddress, entity.TypeMap)
	}
	return v.address(addr, context)
}

func (v *Validator) education(entry payload.Object) error {
	if err := v.requireText(entry, entity.KeyName, entity.EducationNameError); err != nil {
		return err
	}
	if err := v.requireText(entry, entity.KeyDegree, entity.EducationDegreeError); err != nil {
		return err
	}
	return v.nestedAddress(entry, entity.AddressContextEducation)
}

func (v *Validator) jobProfile(entry payload.Object) error {
	for _, key := range []string{entity.KeyJoiningDate, entity.KeyEndDate} {
		if entry.Get(key).IsNil() {
			continue
		}
		date, err := v.text(entry, key)
		if err != nil {
			return err
		}
		if !v.isValidDate(date) {
			return v.fail(entity.DateFormatError)
		}
	}

	if err := v.requireText(entry, entity.KeyJobName, entity.JobNameError); err != nil {
		return err
	}
	if err := v.requireText(entry, entity.KeyOrgName, entity.OrganisationNameError); err != nil {
		return err
	}
	return v.nestedAddress(entry, entity.AddressContextJobProfile)
}

func (v *Validator) addressEntry(entry payload.Object) error {
	return v.address(entry, entity.AddressContextAddress)
}

// eachEntry applies check to every map in the list under key, if present.
func (v *Validator) eachEntry(req payload.Object, key string, check func(payload.Object) error) error {
	items, present, err := v.listOrFail(req, key)
	if err != nil || !present {
		return err
	}
	objs, err := v.entries(key, items)
	if err != nil {
		return err
	}
	for _, obj := range objs {
		if err := check(obj); err != nil {
			return err
		}
	}
	return nil
}

var externalIDFields = []string{entity.KeyID, entity.KeyProvider, entity.KeyIDType}

func (v *Validator) externalID(entry payload.Object, mode entity.ExternalIDMode) error {
	const field = entity.KeyExternalIDs + "." + entity.KeyOperation

	op, err := v.text(entry, entity.KeyOperation)
	if err != nil {
		return err
	}
	if isNotBlank(op) {
		switch strings.ToLower(op) {
		case entity.ExternalIDOperationAdd, entity.ExternalIDOperationRemove, entity.ExternalIDOperationEdit:
		default:
			return v.fail(entity.InvalidValue, field, op, "add, remove, edit")
		}
		if mode == entity.ExternalIDModeCreate && !strings.EqualFold(op, entity.ExternalIDOperationAdd) {
			return v.fail(entity.InvalidValue, field, op, entity.ExternalIDOperationAdd)
		}
	}

	for _, key := range externalIDFields {
		if err := v.requireText(entry, key, entity.MandatoryParamsMissing, entity.KeyExternalIDs+"."+key); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) externalIDs(req payload.Object, mode entity.ExternalIDMode) error {
	items, present, err := v.listOrFail(req, entity.KeyExternalIDs)
	if err != nil || !present {
		return err
	}
	entries, err := v.entries(entity.KeyExternalIDs, items)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := v.externalID(entry, mode); err != nil {
			return err
		}
	}

	if mode == entity.ExternalIDModeUpdate {
		return nil
	}
	return v.duplicateExternalIDs(entries)
}
