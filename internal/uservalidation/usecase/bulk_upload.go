package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/jwt"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

type (
	BulkUploadInput struct {
		FileName string    `validate:"required,max=255"`
		File     io.Reader `validate:"required"`
	}

	BulkUploadOutput struct {
		ProcessID int64
		Rows      int
	}
)

// BulkUpload stores a CSV file of users and queues it for validation.
func (s *Usecase) BulkUpload(ctx context.Context, in BulkUploadInput) (*BulkUploadOutput, error) {
	ctx, span := s.startSpan(ctx, "BulkUpload")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if ext := strings.ToLower(path.Ext(in.FileName)); ext != ".csv" {
		return nil, goerror.NewInvalidFormat("Bulk file must be a .csv file")
	}

	maxBytes := s.bulkMaxBytes()
	data, err := io.ReadAll(io.LimitReader(in.File, maxBytes+1))
	if err != nil {
		slog.ErrorContext(ctx, "failed to read bulk file", "file_name", in.FileName, "error", err)
		return nil, goerror.NewInvalidFormat("Invalid bulk file")
	}
	if int64(len(data)) > maxBytes {
		return nil, goerror.NewInvalidFormat("Bulk file is too large")
	}

	rows, err := parseBulkCSV(bytes.NewReader(data), s.bulkMaxRows())
	if err != nil {
		slog.WarnContext(ctx, "bulk file rejected", "file_name", in.FileName, "error", err)
		return nil, bulkParseError(err)
	}

	processID := s.uid.Generate()
	objectKey := bulkObjectKeyPrefix + s.oid.Generate() + ".csv"

	if err := s.storage.Put(ctx, objectKey, bytes.NewReader(data), int64(len(data)), "text/csv"); err != nil {
		slog.ErrorContext(ctx, "failed to store bulk file", "object_key", objectKey, "error", err)
		return nil, goerror.NewServer(err)
	}

	createdBy := "anonymous"
	if clm := jwt.GetAuth(ctx); clm != nil {
		createdBy = clm.Subject
	}

	if err := s.repoDB.CreateBulkProcess(ctx, entity.CreateBulkProcess{
		ID:        processID,
		ObjectKey: objectKey,
		FileName:  path.Base(in.FileName),
		CreatedBy: createdBy,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create bulk process", "process_id", processID, "error", err)
		if delErr := s.storage.Delete(ctx, objectKey); delErr != nil {
			slog.WarnContext(ctx, "failed to remove orphan bulk file", "object_key", objectKey, "error", delErr)
		}
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishBulkRequested(ctx, BulkRequestedEvent{
		ProcessID: processID,
		ObjectKey: objectKey,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish bulk requested", "process_id", processID, "error", err)
		if failErr := s.repoDB.FailBulkProcess(ctx, processID, "job could not be queued"); failErr != nil {
			slog.ErrorContext(ctx, "failed to repo fail bulk process", "process_id", processID, "error", failErr)
		}
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "bulk file queued", "process_id", processID, "rows", len(rows))

	return &BulkUploadOutput{ProcessID: processID, Rows: len(rows)}, nil
}

func bulkParseError(err error) error {
	switch {
	case errors.Is(err, errBulkTooMany):
		return goerror.NewInvalidFormat("Bulk file has too many rows")
	case errors.Is(err, errBulkEmpty), errors.Is(err, errBulkNoRows):
		return goerror.NewInvalidFormat("Bulk file has no rows")
	case errors.Is(err, errBulkDupColumns):
		return goerror.NewInvalidFormat("Bulk file has duplicate columns")
	default:
		return goerror.NewInvalidFormat("Invalid bulk file")
	}
}
