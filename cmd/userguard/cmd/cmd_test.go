package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("ValidFromStdin", func(t *testing.T) {
		out, err := run(t, `{"loginId":"amit"}`, "validate", "--operation", "verifyUser")

		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("EnvelopeFromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id":"api.user.create","request":{"username":"amit","firstName":"Amit","email":"amit@example.com"}}`), 0o600))

		out, err := run(t, "", "validate", "-o", "createuser", "-f", path)

		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("Violation", func(t *testing.T) {
		out, err := run(t, `{"firstName":"Amit"}`, "validate", "--operation", "createUser")

		require.ErrorIs(t, err, ErrViolation)

		var got entity.Violation
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, entity.UserNameRequired.Code, got.Code)
		assert.Equal(t, entity.StatusClientError, got.Status)
		assert.Equal(t, 400, got.ResponseCode)
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		_, err := run(t, `{}`, "validate", "--operation", "deleteUser")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrViolation)
	})

	t.Run("OperationRequired", func(t *testing.T) {
		_, err := run(t, `{}`, "validate")

		assert.Error(t, err)
	})

	t.Run("CountryCodeFromConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("validation:\n  default_country_code: \"+65\"\n"), 0o600))
		req := `{"username":"amit","firstName":"Amit","phone":"81234567","phoneVerified":true}`

		out, err := run(t, req, "--config", path, "validate", "-o", "createUser")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)

		_, err = run(t, req, "validate", "-o", "createUser")
		require.ErrorIs(t, err, ErrViolation)

		_, err = run(t, req, "--config", path, "validate", "-o", "createUser", "--country-code", "+91")
		require.ErrorIs(t, err, ErrViolation)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := run(t, `[1,2]`, "validate", "--operation", "verifyUser")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON request")
	})
}

func TestOperationsCommand(t *testing.T) {
	out, err := run(t, "", "operations")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(entity.Operations))
	assert.Equal(t, entity.OperationCreateUser.String(), lines[0])
}

func TestTokenCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: "`+strings.Repeat("x", 64)+`"
  issuer: userguard
  ttl_minutes: 5
`), 0o600))

	t.Run("Mints", func(t *testing.T) {
		out, err := run(t, "", "--config", path, "token", "--subject", "ops", "--scope", "userguard.bulk")

		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
	})

	t.Run("SubjectRequired", func(t *testing.T) {
		_, err := run(t, "", "--config", path, "token")

		assert.EqualError(t, err, "--subject is required")
	})
}
