package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

type ValidateInput struct {
	Operation string `validate:"required"`
	Request   payload.Object
}

// Validate runs the pipeline for in.Operation. A rule violation is returned
// as is so callers can surface its code.
func (s *Usecase) Validate(ctx context.Context, in ValidateInput) error {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	op, ok := entity.OperationFromString(in.Operation)
	if !ok {
		return goerror.NewInvalidFormat("Unknown operation " + in.Operation)
	}

	err := s.rule.Validate(op, in.Request)
	if err == nil {
		return nil
	}

	var violation *entity.Violation
	if errors.As(err, &violation) {
		slog.InfoContext(ctx, "request rejected", "operation", op.String(), "code", violation.Code)
		return err
	}

	slog.ErrorContext(ctx, "failed to run validation pipeline", "operation", op.String(), "error", err)
	return err
}
