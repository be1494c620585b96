package validator

// Validator validates structs annotated with `validate` tags.
type Validator interface {
	Validate(data any) error
}
