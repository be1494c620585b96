package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/idempotency"
	"github.com/shandysiswandi/userguard/internal/pkg/storage"
	"github.com/shandysiswandi/userguard/internal/pkg/valueobject"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"go.uber.org/atomic"
)

type ProcessBulkInput struct {
	ProcessID int64  `validate:"required,gt=0"`
	ObjectKey string `validate:"required"`
}

// ProcessBulk validates every row of a queued bulk file. Redelivered jobs for a
// process that is running or finished are dropped; a job that returned an
// error runs again on redelivery.
func (s *Usecase) ProcessBulk(ctx context.Context, in ProcessBulkInput) error {
	ctx, span := s.startSpan(ctx, "ProcessBulk")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	key := fmt.Sprintf("%s%d", bulkIdempotencyScope, in.ProcessID)
	err := s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		return s.processBulk(ctx, in)
	},
		idempotency.WithLockDuration(s.cfg.GetSecond("validation.bulk.lock_seconds")),
		idempotency.WithStateTTL(s.cfg.GetSecond("validation.bulk.state_ttl_seconds")),
		// a returned error is transient (db, lock); the broker redelivers and
		// StartBulkProcess accepts processing so the retry resumes
		idempotency.WithReleaseOnError(),
	)

	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted),
		errors.Is(err, idempotency.ErrAlreadyFailed):
		slog.WarnContext(ctx, "bulk process already handled", "process_id", in.ProcessID, "reason", err)
		return nil
	case err != nil:
		return err
	default:
		return nil
	}
}

func (s *Usecase) processBulk(ctx context.Context, in ProcessBulkInput) error {
	started := s.clock.Now()

	proc, err := s.repoDB.GetBulkProcess(ctx, in.ProcessID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "bulk process not found", "process_id", in.ProcessID)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get bulk process", "process_id", in.ProcessID, "error", err)
		return err
	}
	if proc.Status.IsFinal() {
		slog.InfoContext(ctx, "bulk process already final", "process_id", in.ProcessID, "status", proc.Status.String())
		return nil
	}

	if err := s.repoDB.StartBulkProcess(ctx, in.ProcessID); err != nil {
		slog.ErrorContext(ctx, "failed to repo start bulk process", "process_id", in.ProcessID, "error", err)
		return err
	}

	res, rows, err := s.validateBulkFile(ctx, in)
	if err != nil {
		reason := bulkFailureReason(err)
		slog.ErrorContext(ctx, "bulk process failed", "process_id", in.ProcessID, "error", err)
		if failErr := s.repoDB.FailBulkProcess(ctx, in.ProcessID, reason); failErr != nil {
			slog.ErrorContext(ctx, "failed to repo fail bulk process", "process_id", in.ProcessID, "error", failErr)
			return failErr
		}
		s.publishBulkCompleted(ctx, BulkCompletedEvent{
			ProcessID:    in.ProcessID,
			Status:       entity.BulkStatusFailed,
			FailedReason: reason,
		})
		return nil
	}

	if err := s.repoDB.SaveBulkResult(ctx, res, rows); err != nil {
		slog.ErrorContext(ctx, "failed to repo save bulk result", "process_id", in.ProcessID, "error", err)
		return err
	}

	s.publishBulkCompleted(ctx, BulkCompletedEvent{
		ProcessID: res.ID,
		Status:    res.Status,
		Total:     res.Total,
		Valid:     res.Valid,
		Invalid:   res.Invalid,
	})

	slog.InfoContext(ctx, "bulk process completed",
		"process_id", res.ID, "total", res.Total, "valid", res.Valid, "invalid", res.Invalid,
		"elapsed", s.clock.Now().Sub(started).String())
	return nil
}

func (s *Usecase) validateBulkFile(ctx context.Context, in ProcessBulkInput) (entity.BulkProcessResult, []entity.BulkRow, error) {
	rc, err := s.storage.Get(ctx, in.ObjectKey)
	if err != nil {
		return entity.BulkProcessResult{}, nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close bulk file", "object_key", in.ObjectKey, "error", err)
		}
	}()

	objs, err := parseBulkCSV(rc, s.bulkMaxRows())
	if err != nil {
		return entity.BulkProcessResult{}, nil, err
	}

	rows := make([]entity.BulkRow, len(objs))
	valid, invalid := atomic.NewInt32(0), atomic.NewInt32(0)

	tasks := make([]pond.Task, 0, len(objs))
	for i, obj := range objs {
		tasks = append(tasks, s.pool.Submit(func() {
			row := entity.BulkRow{
				ID:        s.uid.Generate(),
				ProcessID: in.ProcessID,
				RowNumber: int32(i + 1),
				Payload:   valueobject.JSONMapFromObject(obj),
				Valid:     true,
			}

			if err := s.rule.Validate(entity.OperationBulkUserUpload, obj); err != nil {
				row.Valid = false
				row.ErrorCode, row.ErrorMsg = violationOf(err)
				invalid.Inc()
			} else {
				valid.Inc()
			}

			rows[i] = row
		}))
	}

	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			return entity.BulkProcessResult{}, nil, err
		}
	}

	return entity.BulkProcessResult{
		ID:      in.ProcessID,
		Status:  entity.BulkStatusCompleted,
		Total:   int32(len(rows)),
		Valid:   valid.Load(),
		Invalid: invalid.Load(),
	}, rows, nil
}

// publishBulkCompleted retries with a capped fibonacci backoff. The result is
// already stored, so a lost event is only logged.
func (s *Usecase) publishBulkCompleted(ctx context.Context, msg BulkCompletedEvent) {
	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)
	b = retry.WithMaxRetries(5, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.repoMessaging.PublishBulkCompleted(ctx, msg); err != nil {
			slog.WarnContext(ctx, "retrying publish bulk completed", "process_id", msg.ProcessID, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish bulk completed", "process_id", msg.ProcessID, "error", err)
	}
}

func violationOf(err error) (code, msg string) {
	var violation *entity.Violation
	if errors.As(err, &violation) {
		return violation.Code, violation.Message
	}
	return "INTERNAL_ERROR", err.Error()
}

func bulkFailureReason(err error) string {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return "bulk file not found"
	case errors.Is(err, errBulkTooMany):
		return "bulk file has too many rows"
	case errors.Is(err, errBulkEmpty), errors.Is(err, errBulkNoRows):
		return "bulk file has no rows"
	case errors.Is(err, errBulkDupColumns):
		return "bulk file has duplicate columns"
	default:
		return "bulk file could not be processed"
	}
}
