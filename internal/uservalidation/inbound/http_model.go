package inbound

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/pkg/valueobject"
)

// ValidateRequest is the API envelope. Only request is validated, the other
// fields are accepted so existing clients can post their payloads unchanged.
type ValidateRequest struct {
	ID      string          `json:"id,omitempty" example:"api.user.create"`
	Ver     string          `json:"ver,omitempty" example:"v1"`
	Ts      string          `json:"ts,omitempty"`
	Params  json.RawMessage `json:"params,omitempty" swaggertype:"object"`
	Request payload.Object  `json:"request" swaggertype:"object"`
}

type BulkUploadResponse struct {
	ProcessID int64 `json:"processId,string" example:"1790000000000000000"`
	Rows      int   `json:"rows" example:"120"`
}

func (BulkUploadResponse) StatusCode() int {
	return http.StatusAccepted
}

func (BulkUploadResponse) Message() string {
	return "Bulk file accepted for validation"
}

type BulkRowResponse struct {
	RowNumber int32               `json:"rowNumber" example:"2"`
	Valid     bool                `json:"valid"`
	ErrorCode string              `json:"errorCode,omitempty" example:"MANDATORY_PARAMETER_MISSING"`
	ErrorMsg  string              `json:"errorMessage,omitempty"`
	Payload   valueobject.JSONMap `json:"payload"`
}

type BulkStatusResponse struct {
	ProcessID    int64             `json:"processId,string"`
	FileName     string            `json:"fileName" example:"users.csv"`
	Status       string            `json:"status" example:"completed"`
	Total        int32             `json:"total"`
	Valid        int32             `json:"valid"`
	Invalid      int32             `json:"invalid"`
	FailedReason string            `json:"failedReason,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Rows         []BulkRowResponse `json:"rows"`
}
