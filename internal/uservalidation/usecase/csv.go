package usecase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

var (
	errBulkEmpty      = errors.New("bulk file has no header row")
	errBulkNoRows     = errors.New("bulk file has no data rows")
	errBulkTooMany    = errors.New("bulk file has too many rows")
	errBulkDupColumns = errors.New("bulk file has duplicate columns")
)

// bulkListColumns hold comma separated values that the rules expect as lists.
var bulkListColumns = map[string]struct{}{
	entity.KeyRoles:    {},
	entity.KeyLanguage: {},
}

// parseBulkCSV reads a header row followed by one user per row. Blank cells
// are left out of the row so they read as absent.
func parseBulkCSV(r io.Reader, maxRows int) ([]payload.Object, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errBulkEmpty
	}
	if err != nil {
		return nil, err
	}

	header = lo.Map(header, func(h string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	})
	if dup := lo.FindDuplicates(lo.Compact(header)); len(dup) > 0 {
		return nil, fmt.Errorf("%w: %s", errBulkDupColumns, strings.Join(dup, ", "))
	}

	var rows []payload.Object
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rows) == maxRows {
			return nil, fmt.Errorf("%w: max %d", errBulkTooMany, maxRows)
		}
		rows = append(rows, bulkRow(header, record))
	}

	if len(rows) == 0 {
		return nil, errBulkNoRows
	}
	return rows, nil
}

func bulkRow(header, record []string) payload.Object {
	row := make(payload.Object, len(header))
	for i, key := range header {
		if key == "" || i >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[i])
		if cell == "" {
			continue
		}
		row[key] = bulkCell(key, cell)
	}
	return row
}

func bulkCell(key, cell string) payload.Value {
	if _, ok := bulkListColumns[key]; ok {
		items := lo.FilterMap(strings.Split(cell, ","), func(s string, _ int) (payload.Value, bool) {
			s = strings.TrimSpace(s)
			return payload.String(s), s != ""
		})
		return payload.List(items...)
	}

	if key == entity.KeyPhoneVerified {
		if b, err := strconv.ParseBool(cell); err == nil {
			return payload.Bool(b)
		}
		return payload.String(cell)
	}

	// externalIds, webPages and similar columns may carry inline JSON.
	if strings.HasPrefix(cell, "[") || strings.HasPrefix(cell, "{") {
		var v payload.Value
		if err := v.UnmarshalJSON([]byte(cell)); err == nil {
			return v
		}
	}

	return payload.String(cell)
}
