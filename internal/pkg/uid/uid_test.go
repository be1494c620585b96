package uid

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_Generate(t *testing.T) {
	id := NewUUID().Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestSnowflake_Generate(t *testing.T) {
	sf, err := NewSnowflake()
	require.NoError(t, err)

	a := sf.Generate()
	b := sf.Generate()
	assert.Positive(t, a)
	assert.Greater(t, b, a)
}

func TestBlobKey_Generate(t *testing.T) {
	k, err := NewBlobKey()
	require.NoError(t, err)
	k.now = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

	a := k.Generate()
	b := k.Generate()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "2026/10/18/"), a)
	assert.Len(t, strings.TrimPrefix(a, "2026/10/18/"), 32)
	assert.Regexp(t, `^[0-9a-v]+$`, strings.TrimPrefix(b, "2026/10/18/"))
}
