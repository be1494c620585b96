// Package config reads runtime settings. Keys are dotted paths into the
// config file, for example "validation.bulk.max_rows".
package config

import (
	"io"
	"time"
)

// Config is the read side of the application configuration. Missing keys
// return the zero value of the requested type.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string

	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint16(key string) uint16
	GetFloat64(key string) float64

	// GetSecond and GetMinute read an integer and scale it to a duration.
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration

	// GetBinary decodes a base64 value. Invalid input yields nil.
	GetBinary(key string) []byte

	// GetArray accepts a YAML list or a comma separated string. Blank entries
	// are dropped.
	GetArray(key string) []string
}
