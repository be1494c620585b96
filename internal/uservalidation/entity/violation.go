package entity

import (
	"net/http"
	"strconv"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
)

// StatusClientError is the response classification of every violation.
const StatusClientError = "CLIENT_ERROR"

// Violation is the structured failure returned by a validation pipeline.
type Violation struct {
	ResponseCode int    `json:"responseCode"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	Status       string `json:"status"`
}

// NewViolation builds a client violation for rc with an already rendered message.
func NewViolation(rc ResponseCode, msg string) *Violation {
	return &Violation{
		ResponseCode: http.StatusBadRequest,
		Code:         rc.Code,
		Message:      msg,
		Status:       StatusClientError,
	}
}

func (v *Violation) Error() string {
	return v.Code + ": " + v.Message
}

// GoError wraps v into the application error type.
func (v *Violation) GoError() error {
	return goerror.NewClient(v, v.Message,
		"code", v.Code,
		"status", v.Status,
		"responseCode", strconv.Itoa(v.ResponseCode),
	)
}
