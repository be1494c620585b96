package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/shandysiswandi/userguard/internal/shared/event"
)

const defaultConsumerConcurrency = 4

// RegisterMQConsumer starts the consumers listed in
// modules.uservalidation.consumer_names. It returns the names it started.
func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) []string {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.uservalidation.consumer_names")
	concurrency := cfg.GetInt("modules.uservalidation.consumer_concurrency")
	if concurrency <= 0 {
		concurrency = defaultConsumerConcurrency
	}

	consumers := []struct {
		name    string
		topic   string
		handler messaging.Handler
	}{
		{
			name:    event.UserValidationBulkRequestedConsumerProcessor,
			topic:   event.UserValidationBulkRequestedDestination,
			handler: mqHandler.BulkRequested,
		},
	}

	var started []string
	for _, consumer := range consumers {
		if !slices.Contains(enableConsumerNames, consumer.name) {
			continue
		}

		err := routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
			return messenger.Consume(pCtx,
				consumer.topic,
				consumer.handler,
				messaging.WithGroup(consumer.name),
				messaging.WithConcurrency(concurrency),
				messaging.WithMaxInFlight(concurrency*2),
			)
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to start consumer", "consumer", consumer.name, "error", err)
			continue
		}
		started = append(started, consumer.name)
	}

	return started
}
