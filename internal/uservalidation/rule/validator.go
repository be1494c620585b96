// Package rule holds the user request validation engine. Every pipeline runs
// an ordered list of checks over a decoded payload and stops at the first
// violation. A Validator holds no per call state and is safe for concurrent use.
package rule

import (
	"errors"
	"strings"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/pkg/validator"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

// DefaultCountryCode is used for phone checks when the request has none.
const DefaultCountryCode = "+91"

// ErrUnknownOperation is returned by Validate for an unsupported operation name.
var ErrUnknownOperation = errors.New("rule: unknown operation")

// Checker runs a single-value validation tag such as "email".
type Checker interface {
	Var(field any, tag string) bool
}

// Config configures a Validator.
type Config struct {
	// DefaultCountryCode replaces a blank countryCode during phone checks.
	DefaultCountryCode string
	// Checker overrides the go-playground backed checker.
	Checker Checker
}

// Validator runs the user request pipelines.
type Validator struct {
	checker            Checker
	catalog            *validator.Catalog
	defaultCountryCode string
}

// New builds a Validator with the full response code catalog registered.
func New(cfg Config) (*Validator, error) {
	catalog, err := validator.NewCatalog()
	if err != nil {
		return nil, err
	}
	for _, rc := range entity.ResponseCodes {
		if err := catalog.Register(rc.Name, rc.Template); err != nil {
			return nil, err
		}
	}

	checker := cfg.Checker
	if checker == nil {
		v10, err := validator.NewV10Validator()
		if err != nil {
			return nil, err
		}
		checker = v10
	}

	cc := strings.TrimSpace(cfg.DefaultCountryCode)
	if cc == "" {
		cc = DefaultCountryCode
	}

	return &Validator{
		checker:            checker,
		catalog:            catalog,
		defaultCountryCode: cc,
	}, nil
}

// Validate dispatches req to the pipeline named by op.
func (v *Validator) Validate(op entity.Operation, req payload.Object) error {
	switch op {
	case entity.OperationCreateUser:
		return v.CreateUser(req)
	case entity.OperationUpdateUser:
		return v.UpdateUser(req)
	case entity.OperationBulkUserUpload:
		return v.BulkUserUpload(req)
	case entity.OperationChangePassword:
		return v.ChangePassword(req)
	case entity.OperationVerifyUser:
		return v.VerifyUser(req)
	case entity.OperationAssignRole:
		return v.AssignRole(req)
	case entity.OperationForgotPassword:
		return v.ForgotPassword(req)
	case entity.OperationProfileVisibility:
		return v.ProfileVisibility(req)
	default:
		return goerror.NewInvalidFormat(ErrUnknownOperation.Error() + " " + op.String())
	}
}

// Message renders the template of rc with params.
func (v *Validator) Message(rc entity.ResponseCode, params ...string) string {
	return v.catalog.Render(rc.Name, params...)
}

func (v *Validator) fail(rc entity.ResponseCode, params ...string) error {
	return entity.NewViolation(rc, v.Message(rc, params...)).GoError()
}
