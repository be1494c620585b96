package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	obj, err := Decode([]byte(`{
		"firstName": "Amit",
		"phone": 9999999999,
		"phoneVerified": true,
		"roles": ["PUBLIC"],
		"address": [{"city": "Pune"}],
		"dob": null
	}`))
	require.NoError(t, err)

	assert.Equal(t, KindString, obj.Get("firstName").Kind())
	assert.Equal(t, KindNumber, obj.Get("phone").Kind())
	assert.Equal(t, KindBool, obj.Get("phoneVerified").Kind())
	assert.Equal(t, KindList, obj.Get("roles").Kind())
	assert.Equal(t, KindNull, obj.Get("dob").Kind())
	assert.Equal(t, KindAbsent, obj.Get("missing").Kind())

	list, ok := obj.Get("address").AsList()
	require.True(t, ok)
	require.Len(t, list, 1)
	addr, ok := list[0].AsObject()
	require.True(t, ok)
	assert.Equal(t, "Pune", addr.Get("city").Any())

	assert.Equal(t, json.Number("9999999999"), obj.Get("phone").Any())
}

func TestDecode_NotObject(t *testing.T) {
	_, err := Decode([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = Decode([]byte(`{`))
	assert.Error(t, err)
}

func TestObject_Blankness(t *testing.T) {
	obj := Object{}.
		Set("empty", "").
		Set("spaces", "   ").
		Set("null", nil).
		Set("name", "x").
		Set("num", 0)

	assert.True(t, obj.IsBlank("empty"))
	assert.True(t, obj.IsBlank("spaces"))
	assert.True(t, obj.IsBlank("null"))
	assert.True(t, obj.IsBlank("absent"))
	assert.False(t, obj.IsBlank("name"))
	assert.False(t, obj.IsBlank("num"))

	assert.True(t, obj.Has("null"))
	assert.False(t, obj.Has("absent"))

	var nilObj Object
	assert.True(t, nilObj.IsBlank("x"))
	assert.False(t, nilObj.Has("x"))
}

func TestObject_Str(t *testing.T) {
	obj := Object{}.Set("a", "b").Set("n", 12).Set("z", nil)

	s, ok := obj.Str("a")
	assert.True(t, ok)
	assert.Equal(t, "b", s)

	_, ok = obj.Str("n")
	assert.False(t, ok)

	s, ok = obj.Str("z")
	assert.True(t, ok)
	assert.Empty(t, s)
}

func TestValue_JSONRoundTrip(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"a":[true,"x",1.5,null]}`), &v))
	assert.Equal(t, KindObject, v.Kind())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[true,"x",1.5,null]}`, string(out))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "List", KindList.String())
	assert.Equal(t, "Map", KindObject.String())
	assert.Equal(t, "String", KindString.String())
	assert.Equal(t, "Absent", KindAbsent.String())
}
