package validator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var ErrTranslatorNotFound = errors.New("validator: english translator not registered")

// V10Validator validates tagged structs and reports failures in English,
// keyed by json field name.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError maps json field names to translated messages.
type V10ValidationError map[string]string

func (vs V10ValidationError) Error() string {
	b, err := json.Marshal(map[string]string(vs))
	if err != nil || len(vs) == 0 {
		return "validation error"
	}
	return "validation error: " + string(b)
}

// Values feeds the "error" object of an HTTP error response.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator registers the English translations and the notblank rule.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// jsonFieldName names a field after its json tag, falling back to the Go name.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// Validate checks data against its struct tags. Tag failures come back as a
// V10ValidationError; anything else (a non-struct argument) is returned as is.
func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(V10ValidationError, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fe.Translate(v.translator)
	}
	return out
}

// Var reports whether a single value satisfies the given tag.
func (v *V10Validator) Var(field any, tag string) bool {
	return v.validate.Var(field, tag) == nil
}

// customRules maps extra tags to their rule and English message.
var customRules = map[string]struct {
	fn  validator.Func
	msg string
}{
	"notblank": {fn: validators.NotBlank, msg: "{0} must not be blank"},
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	for tag, rule := range customRules {
		if err := validate.RegisterValidation(tag, rule.fn); err != nil {
			return err
		}
		if err := validate.RegisterTranslation(tag, enTrans, registerMessage(tag, rule.msg), translate); err != nil {
			return err
		}
	}
	return nil
}

func registerMessage(tag, msg string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, msg, false)
	}
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		slog.Warn("missing validation translation", "tag", fe.Tag(), "error", err)
		return fe.Error()
	}
	return msg
}
