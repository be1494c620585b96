package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

type (
	BulkStatusInput struct {
		ProcessID   int64 `validate:"required,gt=0"`
		InvalidOnly bool
	}

	BulkStatusOutput struct {
		ProcessID    int64
		FileName     string
		Status       entity.BulkStatus
		Total        int32
		Valid        int32
		Invalid      int32
		FailedReason string
		CreatedAt    time.Time
		UpdatedAt    time.Time
		Rows         []entity.BulkRow
	}
)

func (s *Usecase) BulkStatus(ctx context.Context, in BulkStatusInput) (*BulkStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "BulkStatus")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	proc, err := s.repoDB.GetBulkProcess(ctx, in.ProcessID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Bulk process not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get bulk process", "process_id", in.ProcessID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &BulkStatusOutput{
		ProcessID:    proc.ID,
		FileName:     proc.FileName,
		Status:       proc.Status,
		Total:        proc.Total,
		Valid:        proc.Valid,
		Invalid:      proc.Invalid,
		FailedReason: proc.FailedReason,
		CreatedAt:    proc.CreatedAt,
		UpdatedAt:    proc.UpdatedAt,
	}

	if proc.Status != entity.BulkStatusCompleted {
		return out, nil
	}

	rows, err := s.repoDB.ListBulkRows(ctx, in.ProcessID, in.InvalidOnly)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list bulk rows", "process_id", in.ProcessID, "error", err)
		return nil, goerror.NewServer(err)
	}
	out.Rows = rows

	return out, nil
}
