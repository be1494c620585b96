package rule

import (
	"strings"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

var (
	createForbiddenFields = []string{
		entity.KeyRegisteredOrgID,
		entity.KeyRootOrgID,
		entity.KeyProvider,
		entity.KeyExternalID,
		entity.KeyExternalIDProvider,
		entity.KeyExternalIDType,
		entity.KeyIDType,
	}

	updateForbiddenFields = []string{
		entity.KeyRegisteredOrgID,
		entity.KeyRootOrgID,
		entity.KeyChannel,
		entity.KeyUsername,
		entity.KeyProvider,
		entity.KeyIDType,
	}
)

// fieldsNotAllowed rejects any listed field carrying a non-null value, blank strings included.
func (v *Validator) fieldsNotAllowed(req payload.Object, fields []string) error {
	for _, field := range fields {
		if !req.Get(field).IsNil() {
			return v.fail(entity.InvalidRequestParameter, field)
		}
	}
	return nil
}

func (v *Validator) createUserBasic(req payload.Object) error {
	if err := v.requireText(req, entity.KeyFirstName, entity.FirstNameRequired); err != nil {
		return err
	}

	for _, key := range []string{entity.KeyRoles, entity.KeyLanguage} {
		if _, _, err := v.listOrFail(req, key); err != nil {
			return err
		}
	}

	if !req.Get(entity.KeyDOB).IsNil() {
		dob, err := v.text(req, entity.KeyDOB)
		if err != nil {
			return err
		}
		if !v.isValidDate(dob) {
			return v.fail(entity.DateFormatError)
		}
	}

	email, err := v.text(req, entity.KeyEmail)
	if err != nil {
		return err
	}
	phone, err := v.text(req, entity.KeyPhone)
	if err != nil {
		return err
	}
	if isBlank(email) && isBlank(phone) {
		return v.fail(entity.EmailOrPhoneRequired)
	}
	if isNotBlank(email) && !v.isValidEmail(email) {
		return v.fail(entity.EmailFormatError)
	}

	return nil
}

func (v *Validator) updateUserBasic(req payload.Object) error {
	if err := v.fieldsNotAllowed(req, updateForbiddenFields); err != nil {
		return err
	}

	noUserID, err := v.blank(req, entity.KeyUserID)
	if err != nil {
		return err
	}
	noID, err := v.blank(req, entity.KeyID)
	if err != nil {
		return err
	}
	blanks, err := v.countBlank(req, triadFields)
	if err != nil {
		return err
	}
	if noUserID && noID && blanks > 0 {
		return v.fail(entity.MandatoryParamsMissing, "userId or externalId, externalIdType and externalIdProvider")
	}

	if req.Has(entity.KeyFirstName) {
		if err := v.requireText(req, entity.KeyFirstName, entity.FirstNameRequired); err != nil {
			return err
		}
	}

	if !req.Get(entity.KeyEmail).IsNil() {
		email, err := v.text(req, entity.KeyEmail)
		if err != nil {
			return err
		}
		if !v.isValidEmail(email) {
			return v.fail(entity.EmailFormatError)
		}
	}

	if err := v.nonEmptyList(req, entity.KeyRoles, entity.RolesRequired); err != nil {
		return err
	}
	return v.nonEmptyList(req, entity.KeyLanguage, entity.LanguageRequired)
}

// nonEmptyList checks a present, non-null key holds a non-empty list.
func (v *Validator) nonEmptyList(req payload.Object, key string, rc entity.ResponseCode) error {
	items, present, err := v.listOrFail(req, key)
	if err != nil {
		return err
	}
	if present && len(items) == 0 {
		return v.fail(rc)
	}
	return nil
}

func (v *Validator) phone(req payload.Object) error {
	countryCode, err := v.text(req, entity.KeyCountryCode)
	if err != nil {
		return err
	}
	if isNotBlank(countryCode) && !isValidCountryCode(countryCode) {
		return v.fail(entity.InvalidCountryCode)
	}

	phone, err := v.text(req, entity.KeyPhone)
	if err != nil {
		return err
	}
	if isBlank(phone) {
		return nil
	}

	if strings.Contains(phone, "+") {
		return v.fail(entity.InvalidPhoneNumber)
	}
	if isBlank(countryCode) {
		countryCode = v.defaultCountryCode
	}
	if !isValidPhone(phone, countryCode) {
		return v.fail(entity.PhoneNoFormatError)
	}

	if verified, ok := req.Bool(entity.KeyPhoneVerified); !ok || !verified {
		return v.fail(entity.PhoneVerifiedError)
	}
	return nil
}

func (v *Validator) webPages(req payload.Object) error {
	if !req.Has(entity.KeyWebPages) {
		return nil
	}

	val := req.Get(entity.KeyWebPages)
	if val.IsNil() {
		return v.fail(entity.InvalidWebPageData)
	}
	items, ok := val.AsList()
	if !ok {
		return v.fail(entity.DataTypeError, entity.KeyWebPages, entity.TypeList)
	}
	if len(items) == 0 {
		return v.fail(entity.InvalidWebPageData)
	}
	return nil
}
