package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
)

// ErrScanValueNotBytes indicates the database value is not JSON text.
var ErrScanValueNotBytes = errors.New("valueobject: jsonmap scan value is not []byte")

// JSONMap is a JSON object column.
// @swaggertype object
type JSONMap map[string]any

// JSONMapFromObject converts a request payload into its column form.
func JSONMapFromObject(o payload.Object) JSONMap {
	if o == nil {
		return JSONMap{}
	}
	return JSONMap(o.Any())
}

// Object converts the column back into a request payload.
func (j JSONMap) Object() payload.Object {
	return payload.FromMap(j)
}

// Value implements driver.Valuer.
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSONMap) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*j = JSONMap{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case map[string]any:
		*j = JSONMap(v)
		return nil
	default:
		return ErrScanValueNotBytes
	}

	out := JSONMap{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*j = out
	return nil
}
