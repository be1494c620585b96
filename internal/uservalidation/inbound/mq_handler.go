package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/shandysiswandi/userguard/internal/shared/event"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, d messaging.Delivery) context.Context {
	if cid := d.Header(keyOfCorrelationID); cid != "" {
		return instrument.SetCorrelationID(ctx, cid)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// BulkRequested validates an uploaded bulk file. Malformed messages are
// dropped. Errors from processing are returned so the broker redelivers.
func (h *MQHandler) BulkRequested(ctx context.Context, d messaging.Delivery) error {
	ctx = h.ensureCorrelationID(ctx, d)

	ctx, span := h.ins.Tracer("uservalidation.inbound.mq").Start(ctx, "BulkRequested")
	defer span.End()

	slog.InfoContext(ctx, "consume: user validation bulk requested", "msg_id", d.ID, "msg_body", string(d.Body))

	var msg event.UserValidationBulkRequestedMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of bulk requested", "msg_body", string(d.Body), "error", err)
		return nil
	}

	if err := h.uc.ProcessBulk(ctx, usecase.ProcessBulkInput{
		ProcessID: msg.ProcessID,
		ObjectKey: msg.ObjectKey,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to process bulk", "process_id", msg.ProcessID, "error", err)
		return err
	}

	return nil
}
