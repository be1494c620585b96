// Package goerror carries the error taxonomy shared by the HTTP codec, the
// CLI and the bulk worker: every error that reaches a caller is either a
// *Error with a stable Code or is treated as an internal failure.
package goerror

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned by repositories when a row is absent.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned by repositories when a state transition is refused.
	ErrConflict = errors.New("resource conflict")
)

// Type is the broad origin of an error.
type Type int

const (
	TypeServer Type = iota
	TypeBusiness
	TypeValidation
)

func (t Type) String() string {
	switch t {
	case TypeServer:
		return "server"
	case TypeBusiness:
		return "business"
	case TypeValidation:
		return "validation"
	}
	return "unknown"
}

// Code identifies an error class independently of its message.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidFormat
	CodeInvalidInput
	CodeNotFound
	CodeConflict
	CodeTooManyRequest
	CodeUnauthorized
	CodeForbidden
	// CodeClient marks a user validation violation.
	CodeClient
)

var codeStatus = map[Code]int{
	CodeInternal:       http.StatusInternalServerError,
	CodeInvalidFormat:  http.StatusBadRequest,
	CodeInvalidInput:   http.StatusUnprocessableEntity,
	CodeNotFound:       http.StatusNotFound,
	CodeConflict:       http.StatusConflict,
	CodeTooManyRequest: http.StatusTooManyRequests,
	CodeUnauthorized:   http.StatusUnauthorized,
	CodeForbidden:      http.StatusForbidden,
	CodeClient:         http.StatusBadRequest,
}

// Error is a classified error with an optional user-facing message and
// response fields.
type Error struct {
	cause  error
	msg    string
	kind   Type
	code   Code
	fields map[string]string
}

func (e *Error) Error() string {
	switch {
	case e.cause != nil:
		return e.cause.Error()
	case e.msg != "":
		return e.msg
	}
	return e.kind.String() + " error"
}

// Msg is the message safe to show to a caller.
func (e *Error) Msg() string { return e.msg }

func (e *Error) Type() Type { return e.kind }

func (e *Error) Code() Code { return e.code }

// Fields are the key/value pairs rendered into the "error" object of a response.
func (e *Error) Fields() map[string]string { return e.fields }

func (e *Error) Unwrap() error { return e.cause }

// StatusCode is the HTTP status that represents the error.
func (e *Error) StatusCode() int {
	if s, ok := codeStatus[e.code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func pairs(kv []string) map[string]string {
	if len(kv) < 2 {
		return nil
	}
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

// NewServer hides err behind a generic message.
func NewServer(err error) error {
	return &Error{cause: err, msg: "Internal server error", kind: TypeServer, code: CodeInternal}
}

func NewBusiness(msg string, code Code) error {
	return &Error{msg: msg, kind: TypeBusiness, code: code}
}

// NewInvalidInput reports a field level problem. kv must hold key/value pairs;
// an odd count degrades to an invalid format error.
func NewInvalidInput(err error, kv ...string) error {
	if err != nil {
		return &Error{cause: err, msg: "Validation error", kind: TypeValidation, code: CodeInvalidInput}
	}
	if len(kv)%2 != 0 {
		return NewInvalidFormat()
	}
	return &Error{msg: "Validation error", kind: TypeValidation, code: CodeInvalidInput, fields: pairs(kv)}
}

// NewInvalidFormat reports an unreadable request. The first msg, if any,
// replaces the default message.
func NewInvalidFormat(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &Error{msg: msg, kind: TypeValidation, code: CodeInvalidFormat}
}

// NewClient wraps a user validation violation. err stays reachable through
// errors.As, msg is user facing, kv become the response fields.
func NewClient(err error, msg string, kv ...string) error {
	return &Error{cause: err, msg: msg, kind: TypeValidation, code: CodeClient, fields: pairs(kv)}
}
