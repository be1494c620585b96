package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Render(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	require.NoError(t, c.Register("dataTypeError", "Data type of {0} should be {1}."))
	require.NoError(t, c.Register("plain", "No params here."))
	assert.Error(t, c.Register("plain", "again"))

	assert.Equal(t, "Data type of roles should be List.", c.Render("dataTypeError", "roles", "List"))
	assert.Equal(t, "Data type of roles should be .", c.Render("dataTypeError", "roles"))
	assert.Equal(t, "No params here.", c.Render("plain", "ignored"))
	assert.Equal(t, "unknown", c.Render("unknown"))
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type in struct {
		Email     string `json:"email" validate:"required,email"`
		ProcessID string `json:"processId" validate:"notblank"`
		Internal  string `json:"-" validate:"required"`
	}

	require.NoError(t, v.Validate(in{Email: "a@b.co", ProcessID: "101", Internal: "x"}))

	err = v.Validate(in{Email: "bad", ProcessID: "  ", Internal: "x"})
	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Values(), 2)
	assert.Contains(t, verr.Values(), "email")
	assert.Equal(t, "processId must not be blank", verr.Values()["processId"])
}

func TestV10Validator_Var(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	assert.True(t, v.Var("2020-02-29", "datetime=2006-01-02"))
	assert.False(t, v.Var("2021-02-29", "datetime=2006-01-02"))
	assert.True(t, v.Var("user@example.com", "email"))
	assert.False(t, v.Var("user@", "email"))
}
