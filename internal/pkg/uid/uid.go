// Package uid generates identifiers: UUIDv7 strings for correlation and
// process IDs, snowflake integers for row keys, and date partitioned keys for stored bulk files.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates numeric identifiers.
type NumberID interface {
	Generate() int64
}
