package usecase

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulkCSV(t *testing.T) {
	t.Run("CellTypes", func(t *testing.T) {
		csv := "\ufeffusername, language ,phoneVerified,externalIds,webPages\n" +
			`amit,"English, Hindi",TRUE,"[{""id"":""1"",""provider"":""p"",""idType"":""t""}]",{broken` + "\n"

		rows, err := parseBulkCSV(strings.NewReader(csv), 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, payload.String("amit"), row.Get("username"))
		assert.Equal(t, payload.List(payload.String("English"), payload.String("Hindi")), row.Get("language"))
		assert.Equal(t, payload.Bool(true), row.Get("phoneVerified"))
		assert.True(t, row.IsList("externalIds"))
		assert.Equal(t, payload.String("{broken"), row.Get("webPages"))
	})

	t.Run("BlankCellsAreAbsent", func(t *testing.T) {
		rows, err := parseBulkCSV(strings.NewReader("username,email\n  ,a@b.co\n"), 10)
		require.NoError(t, err)
		assert.False(t, rows[0].Has("username"))
		assert.True(t, rows[0].Has("email"))
	})

	t.Run("ShortRecord", func(t *testing.T) {
		rows, err := parseBulkCSV(strings.NewReader("username,email\namit\n"), 10)
		require.NoError(t, err)
		assert.False(t, rows[0].Has("email"))
	})

	t.Run("UnparsablePhoneVerifiedStaysString", func(t *testing.T) {
		rows, err := parseBulkCSV(strings.NewReader("phoneVerified\nyes\n"), 10)
		require.NoError(t, err)
		assert.Equal(t, payload.String("yes"), rows[0].Get("phoneVerified"))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := parseBulkCSV(strings.NewReader(""), 10)
		assert.ErrorIs(t, err, errBulkEmpty)

		_, err = parseBulkCSV(strings.NewReader("username\n"), 10)
		assert.ErrorIs(t, err, errBulkNoRows)

		_, err = parseBulkCSV(strings.NewReader("username\na\nb\n"), 1)
		assert.ErrorIs(t, err, errBulkTooMany)

		_, err = parseBulkCSV(strings.NewReader("email,email\na,b\n"), 10)
		assert.ErrorIs(t, err, errBulkDupColumns)
	})
}
