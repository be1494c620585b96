package rule

import (
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

type step func() error

func run(steps ...step) error {
	for _, s := range steps {
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser validates a new user request.
func (v *Validator) CreateUser(req payload.Object) error {
	return run(
		func() error { return v.externalIDs(req, entity.ExternalIDModeCreate) },
		func() error { return v.fieldsNotAllowed(req, createForbiddenFields) },
		func() error { return v.requireText(req, entity.KeyUsername, entity.UserNameRequired) },
		func() error { return v.createUserBasic(req) },
		func() error { return v.phone(req) },
		func() error { return v.eachEntry(req, entity.KeyAddress, v.addressEntry) },
		func() error { return v.eachEntry(req, entity.KeyEducation, v.education) },
		func() error { return v.eachEntry(req, entity.KeyJobProfile, v.jobProfile) },
		func() error { return v.webPages(req) },
	)
}

// UpdateUser validates a partial update. Entries flagged isDeleted only need an id.
func (v *Validator) UpdateUser(req payload.Object) error {
	return run(
		func() error { return v.externalIDs(req, entity.ExternalIDModeUpdate) },
		func() error { return v.phone(req) },
		func() error { return v.updateUserBasic(req) },
		func() error { return v.nonEmptyList(req, entity.KeyAddress, entity.AddressRequired) },
		func() error { return v.nonEmptyList(req, entity.KeyEducation, entity.EducationRequired) },
		func() error { return v.nonEmptyList(req, entity.KeyJobProfile, entity.JobDetailsRequired) },
		func() error { return v.eachEntry(req, entity.KeyAddress, v.softDeletable(v.addressEntry)) },
		func() error { return v.eachEntry(req, entity.KeyJobProfile, v.softDeletable(v.jobProfile)) },
		func() error { return v.eachEntry(req, entity.KeyEducation, v.softDeletable(v.education)) },
		func() error {
			if !req.Has(entity.KeyRootOrgID) {
				return nil
			}
			return v.requireText(req, entity.KeyRootOrgID, entity.InvalidRootOrgID)
		},
		func() error { return v.triad(req) },
	)
}

// BulkUserUpload validates one row of a bulk upload.
func (v *Validator) BulkUserUpload(req payload.Object) error {
	return run(
		func() error { return v.externalIDs(req, entity.ExternalIDModeBulk) },
		func() error { return v.createUserBasic(req) },
		func() error { return v.phone(req) },
		func() error { return v.webPages(req) },
		func() error { return v.triad(req) },
		func() error {
			noUsername, err := v.blank(req, entity.KeyUsername)
			if err != nil {
				return err
			}
			blanks, err := v.countBlank(req, triadFields)
			if err != nil {
				return err
			}
			if noUsername && blanks > 0 {
				return v.fail(entity.MandatoryParamsMissing, "username or externalId, externalIdType and externalIdProvider")
			}
			return nil
		},
	)
}

// ChangePassword validates a password change.
func (v *Validator) ChangePassword(req payload.Object) error {
	if err := v.requireText(req, entity.KeyPassword, entity.PasswordRequired); err != nil {
		return err
	}
	if req.Get(entity.KeyNewPassword).IsNil() {
		return v.fail(entity.NewPasswordRequired)
	}
	return v.requireText(req, entity.KeyNewPassword, entity.NewPasswordEmpty)
}

// VerifyUser validates a login id lookup.
func (v *Validator) VerifyUser(req payload.Object) error {
	return v.requireText(req, entity.KeyLoginID, entity.LoginIDRequired)
}

// AssignRole validates a role assignment.
func (v *Validator) AssignRole(req payload.Object) error {
	if err := v.requireText(req, entity.KeyUserID, entity.UserIDRequired); err != nil {
		return err
	}
	if !isListType(req.Get(entity.KeyRoles)) {
		return v.fail(entity.DataTypeError, entity.KeyRoles, entity.TypeList)
	}

	noOrg, err := v.blank(req, entity.KeyOrganisationID)
	if err != nil {
		return err
	}
	blanks, err := v.countBlank(req, []string{entity.KeyExternalID, entity.KeyProvider})
	if err != nil {
		return err
	}
	if noOrg && blanks > 0 {
		return v.fail(entity.MandatoryParamsMissing, "organisationId or externalId and provider")
	}
	return nil
}

// ForgotPassword validates a password reset request.
func (v *Validator) ForgotPassword(req payload.Object) error {
	return v.requireText(req, entity.KeyUsername, entity.UserNameRequired)
}

// ProfileVisibility validates a private/public field split.
func (v *Validator) ProfileVisibility(req payload.Object) error {
	private, public := req.Get(entity.KeyPrivate), req.Get(entity.KeyPublic)
	if private.IsNil() && public.IsNil() {
		return v.fail(entity.InvalidData)
	}
	if req.Has(entity.KeyPrivate) && !isListType(private) {
		return v.fail(entity.DataTypeError, entity.KeyPrivate, entity.TypeList)
	}
	if req.Has(entity.KeyPublic) && !isListType(public) {
		return v.fail(entity.DataTypeError, entity.KeyPublic, entity.TypeList)
	}
	if err := v.requireText(req, entity.KeyUserID, entity.UsernameOrUserIDError); err != nil {
		return err
	}

	privateItems, _ := private.AsList()
	publicItems, _ := public.AsList()
	return v.disjoint(privateItems, publicItems)
}
