package entity

import (
	"time"

	"github.com/shandysiswandi/userguard/internal/pkg/valueobject"
)

type BulkStatus int16

const (
	BulkStatusUnknown    BulkStatus = 0
	BulkStatusQueued     BulkStatus = 1
	BulkStatusProcessing BulkStatus = 2
	BulkStatusCompleted  BulkStatus = 3
	BulkStatusFailed     BulkStatus = 4
)

func (s BulkStatus) String() string {
	switch s {
	case BulkStatusQueued:
		return "queued"
	case BulkStatusProcessing:
		return "processing"
	case BulkStatusCompleted:
		return "completed"
	case BulkStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsFinal reports whether the process will not change anymore.
func (s BulkStatus) IsFinal() bool {
	return s == BulkStatusCompleted || s == BulkStatusFailed
}

type CreateBulkProcess struct {
	ID        int64
	ObjectKey string
	FileName  string
	CreatedBy string
}

type BulkProcess struct {
	ID           int64
	ObjectKey    string
	FileName     string
	Status       BulkStatus
	Total        int32
	Valid        int32
	Invalid      int32
	FailedReason string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BulkProcessResult struct {
	ID           int64
	Status       BulkStatus
	Total        int32
	Valid        int32
	Invalid      int32
	FailedReason string
}

// BulkRow is the outcome of validating a single CSV row.
type BulkRow struct {
	ID        int64
	ProcessID int64
	RowNumber int32
	Payload   valueobject.JSONMap
	Valid     bool
	ErrorCode string
	ErrorMsg  string
}
