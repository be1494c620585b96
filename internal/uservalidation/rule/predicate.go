package rule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

const dateLayout = "2006-01-02"

var reCountryCode = regexp.MustCompile(`^(?:[+] ?){0,1}(?:[0-9] ?){1,3}$`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isNotBlank(s string) bool {
	return !isBlank(s)
}

func (v *Validator) isValidDate(s string) bool {
	return v.checker.Var(s, "datetime="+dateLayout)
}

func (v *Validator) isValidEmail(s string) bool {
	return v.checker.Var(s, "email")
}

func isValidCountryCode(s string) bool {
	return reCountryCode.MatchString(s)
}

// isValidPhone checks phone in national format for the region owning countryCode.
func isValidPhone(phone, countryCode string) bool {
	digits := strings.NewReplacer("+", "", " ", "").Replace(countryCode)
	cc, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}

	region := phonenumbers.GetRegionCodeForCountryCode(cc)
	if region == "" || region == phonenumbers.UNKNOWN_REGION {
		return false
	}

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

func isListType(val payload.Value) bool {
	return val.Kind() == payload.KindList
}

// text reads key as a string. A present value of another kind is a data type violation.
func (v *Validator) text(o payload.Object, key string) (string, error) {
	s, ok := o.Str(key)
	if !ok {
		return "", v.fail(entity.DataTypeError, key, entity.TypeString)
	}
	return s, nil
}

// blank reports whether key is absent, null or whitespace only.
func (v *Validator) blank(o payload.Object, key string) (bool, error) {
	s, err := v.text(o, key)
	if err != nil {
		return false, err
	}
	return isBlank(s), nil
}

// requireText fails with rc when key is blank.
func (v *Validator) requireText(o payload.Object, key string, rc entity.ResponseCode, params ...string) error {
	empty, err := v.blank(o, key)
	if err != nil {
		return err
	}
	if empty {
		return v.fail(rc, params...)
	}
	return nil
}

// listOrFail returns the list under key when the value is present and non-null.
// present is false for absent and null values.
func (v *Validator) listOrFail(o payload.Object, key string) (items []payload.Value, present bool, err error) {
	val := o.Get(key)
	if val.IsNil() {
		return nil, false, nil
	}
	if !isListType(val) {
		return nil, true, v.fail(entity.DataTypeError, key, entity.TypeList)
	}
	items, _ = val.AsList()
	return items, true, nil
}

// entries converts list items into objects. Non-map items are a data type violation.
func (v *Validator) entries(key string, items []payload.Value) ([]payload.Object, error) {
	out := make([]payload.Object, 0, len(items))
	for _, item := range items {
		obj, ok := item.AsObject()
		if !ok {
			return nil, v.fail(entity.DataTypeError, key, entity.TypeMap)
		}
		out = append(out, obj)
	}
	return out, nil
}
