package payload

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent marks a key that is not in the payload at all.
	KindAbsent Kind = iota
	// KindNull marks an explicit JSON null.
	KindNull
	KindBool
	KindString
	KindNumber
	KindList
	KindObject
)

// String returns the type name used in data type error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Boolean"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindList:
		return "List"
	case KindObject:
		return "Map"
	default:
		return "Absent"
	}
}

// Value is a tagged variant over the shapes a decoded request field can take.
// The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	s    string
	list []Value
	obj  Object
}

// Null returns an explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps a numeric literal as written on the wire.
func Number(n string) Value { return Value{kind: KindNumber, s: n} }

// List wraps an ordered list of values.
func List(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindList, list: vs}
}

// Map wraps a nested object.
func Map(o Object) Value {
	if o == nil {
		o = Object{}
	}
	return Value{kind: KindObject, obj: o}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the key was missing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNil reports whether the value is absent or an explicit null.
func (v Value) IsNil() bool { return v.kind == KindAbsent || v.kind == KindNull }

// AsString returns the string and whether v holds one.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsBool returns the boolean and whether v holds one.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsList returns the elements and whether v holds a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsObject returns the nested object and whether v holds one.
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Any converts v back into plain Go values (nil, bool, string, float64/json.Number, []any, map[string]any).
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		return json.Number(v.s)
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Any()
		}
		return out
	case KindObject:
		return v.obj.Any()
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	raw, err := decodeAny(data)
	if err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// FromAny converts a decoded Go value into a Value. Unknown types become null.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case Object:
		return Map(x)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case json.Number:
		return Number(x.String())
	case float64:
		return Number(strconv.FormatFloat(x, 'f', -1, 64))
	case int:
		return Number(strconv.Itoa(x))
	case int64:
		return Number(strconv.FormatInt(x, 10))
	case []any:
		vs := make([]Value, len(x))
		for i, item := range x {
			vs[i] = FromAny(item)
		}
		return List(vs...)
	case []string:
		vs := make([]Value, len(x))
		for i, item := range x {
			vs[i] = String(item)
		}
		return List(vs...)
	case []map[string]any:
		vs := make([]Value, len(x))
		for i, item := range x {
			vs[i] = Map(FromMap(item))
		}
		return List(vs...)
	case map[string]any:
		return Map(FromMap(x))
	default:
		return Null()
	}
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
