package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/shared/event"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishBulkRequested(ctx context.Context, msg usecase.BulkRequestedEvent) error {
	return m.publish(ctx, "PublishBulkRequested", event.UserValidationBulkRequestedDestination, msg.ProcessID,
		event.UserValidationBulkRequestedMessage{
			ProcessID: msg.ProcessID,
			ObjectKey: msg.ObjectKey,
		})
}

func (m *Messaging) PublishBulkCompleted(ctx context.Context, msg usecase.BulkCompletedEvent) error {
	return m.publish(ctx, "PublishBulkCompleted", event.UserValidationBulkCompletedDestination, msg.ProcessID,
		event.UserValidationBulkCompletedMessage{
			ProcessID:    msg.ProcessID,
			Status:       msg.Status.String(),
			Total:        msg.Total,
			Valid:        msg.Valid,
			Invalid:      msg.Invalid,
			FailedReason: msg.FailedReason,
		})
}

// publish keys every message by process id so one process stays on one partition.
func (m *Messaging) publish(ctx context.Context, name, topic string, processID int64, payload any) error {
	ctx, span := m.ins.Tracer("uservalidation.outbound.mq").Start(ctx, name)
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, topic, messaging.Message{
		Key:     []byte(strconv.FormatInt(processID, 10)),
		Body:    body,
		Headers: map[string]string{keyOfCorrelationID: instrument.GetCorrelationID(ctx)},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
