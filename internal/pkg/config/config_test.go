package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: userguard
  debug: true
validation:
  default_country_code: "+91"
  bulk:
    max_rows: 500
    max_bytes: 1048576
    lock_seconds: 30
    ttl_minutes: 5
    ratio: 0.5
instrument:
  log_mask_fields: "password, newPassword,,email"
modules:
  uservalidation:
    consumer_names:
      - a
      - " b "
jwt:
  secret: c2VjcmV0
  broken: "%%%"
`

func TestNewViperFromBytes(t *testing.T) {
	t.Run("TypeRequired", func(t *testing.T) {
		_, err := NewViperFromBytes(" ", []byte(sample))
		assert.ErrorIs(t, err, ErrConfigTypeRequired)
	})

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, "userguard", cfg.GetString("app.name"))
	assert.True(t, cfg.GetBool("app.debug"))
	assert.Equal(t, "+91", cfg.GetString("validation.default_country_code"))
	assert.Equal(t, 500, cfg.GetInt("validation.bulk.max_rows"))
	assert.Equal(t, int32(500), cfg.GetInt32("validation.bulk.max_rows"))
	assert.Equal(t, int64(1048576), cfg.GetInt64("validation.bulk.max_bytes"))
	assert.Equal(t, uint16(500), cfg.GetUint16("validation.bulk.max_rows"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("validation.bulk.ratio"), 0.0001)
	assert.Equal(t, 30*time.Second, cfg.GetSecond("validation.bulk.lock_seconds"))
	assert.Equal(t, 5*time.Minute, cfg.GetMinute("validation.bulk.ttl_minutes"))
	assert.Equal(t, []byte("secret"), cfg.GetBinary("jwt.secret"))
	assert.Nil(t, cfg.GetBinary("jwt.broken"))

	t.Run("ArrayFromString", func(t *testing.T) {
		assert.Equal(t, []string{"password", "newPassword", "email"}, cfg.GetArray("instrument.log_mask_fields"))
	})

	t.Run("ArrayFromList", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, cfg.GetArray("modules.uservalidation.consumer_names"))
	})

	t.Run("ArrayMissing", func(t *testing.T) {
		assert.Empty(t, cfg.GetArray("nope"))
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("USERGUARD_APP_NAME", "from-env")
		assert.Equal(t, "from-env", cfg.GetString("app.name"))
	})
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)
	assert.Equal(t, "userguard", cfg.GetString("app.name"))

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/etc/ug.yaml", resolvePath("/etc/ug.yaml", true))
	assert.Equal(t, localPath, resolvePath("", true))
	assert.Equal(t, defaultPath, resolvePath("", false))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	t.Setenv("LOCAL", "false")
	t.Setenv("CONFIG_PATH", file)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.GetInt("validation.bulk.max_rows"))
}
