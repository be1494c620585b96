package payload

import (
	"errors"
	"strings"
)

// ErrNotObject is returned when a document does not decode into a JSON object.
var ErrNotObject = errors.New("payload: document is not an object")

// Object is a decoded request body keyed by field name.
type Object map[string]Value

// FromMap converts a plain decoded map into an Object.
func FromMap(m map[string]any) Object {
	o := make(Object, len(m))
	for k, v := range m {
		o[k] = FromAny(v)
	}
	return o
}

// Decode parses a JSON document into an Object. Numbers keep their literal form.
func Decode(data []byte) (Object, error) {
	raw, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return FromMap(m), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := Decode(data)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// Get returns the value stored under key, or an absent Value.
func (o Object) Get(key string) Value {
	if o == nil {
		return Value{}
	}
	return o[key]
}

// Has reports whether key is present, including an explicit null.
func (o Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o[key]
	return ok
}

// Str returns the string under key. ok is false when the value is present,
// non-null and not a string.
func (o Object) Str(key string) (s string, ok bool) {
	v := o.Get(key)
	if v.IsNil() {
		return "", true
	}
	return v.AsString()
}

// IsBlank reports whether key is absent, null, or a whitespace-only string.
// Non-string values are never blank.
func (o Object) IsBlank(key string) bool {
	v := o.Get(key)
	if v.IsNil() {
		return true
	}
	s, ok := v.AsString()
	return ok && strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func (o Object) IsNotBlank(key string) bool { return !o.IsBlank(key) }

// List returns the list under key and whether the value is a list.
func (o Object) List(key string) ([]Value, bool) {
	return o.Get(key).AsList()
}

// IsList reports whether key holds a list.
func (o Object) IsList(key string) bool {
	_, ok := o.List(key)
	return ok
}

// Bool returns the boolean under key and whether the value is a boolean.
func (o Object) Bool(key string) (bool, bool) {
	return o.Get(key).AsBool()
}

// Set stores v under key and returns o for chaining.
func (o Object) Set(key string, v any) Object {
	o[key] = FromAny(v)
	return o
}

// Any converts o into a plain map.
func (o Object) Any() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		if v.IsAbsent() {
			continue
		}
		out[k] = v.Any()
	}
	return out
}
