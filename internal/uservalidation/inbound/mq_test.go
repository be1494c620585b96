package inbound

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/shared/event"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsumer struct {
	mu     sync.Mutex
	topics []string
	done   chan struct{}
}

func (f *fakeConsumer) Consume(ctx context.Context, topic string, _ messaging.Handler, _ ...messaging.ConsumeOption) error {
	f.mu.Lock()
	f.topics = append(f.topics, topic)
	f.mu.Unlock()
	close(f.done)

	<-ctx.Done()
	return ctx.Err()
}

func TestRegisterMQConsumer(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		cfg, err := config.NewViperFromBytes("yaml", []byte(
			"modules:\n  uservalidation:\n    consumer_names: "+event.UserValidationBulkRequestedConsumerProcessor+"\n"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		routine := goroutine.NewManager(2)
		consumer := &fakeConsumer{done: make(chan struct{})}

		started := RegisterMQConsumer(ctx, cfg, routine, consumer, staticID("cid"), &fakeUC{}, instrument.NewNoop())
		assert.Equal(t, []string{event.UserValidationBulkRequestedConsumerProcessor}, started)

		<-consumer.done
		cancel()
		require.NoError(t, routine.Wait())
		assert.Equal(t, []string{event.UserValidationBulkRequestedDestination}, consumer.topics)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg, err := config.NewViperFromBytes("yaml", []byte("modules: {}"))
		require.NoError(t, err)

		routine := goroutine.NewManager(2)
		consumer := &fakeConsumer{done: make(chan struct{})}

		started := RegisterMQConsumer(context.Background(), cfg, routine, consumer, staticID("cid"), &fakeUC{}, instrument.NewNoop())
		assert.Empty(t, started)
		require.NoError(t, routine.Wait())
		assert.Empty(t, consumer.topics)
	})
}

func TestMQHandler_BulkRequested(t *testing.T) {
	newHandler := func(uc *fakeUC) *MQHandler {
		return &MQHandler{uc: uc, uuid: staticID("generated"), ins: instrument.NewNoop()}
	}

	t.Run("Processes", func(t *testing.T) {
		uc := &fakeUC{}

		err := newHandler(uc).BulkRequested(context.Background(), messaging.Delivery{
			ID:      "m-1",
			Body:    []byte(`{"process_id":"101","object_key":"uservalidation/bulk/a.csv"}`),
			Headers: map[string]string{"cID": "from-api"},
		})

		require.NoError(t, err)
		assert.Equal(t, []usecase.ProcessBulkInput{{ProcessID: 101, ObjectKey: "uservalidation/bulk/a.csv"}}, uc.processIn)
	})

	t.Run("MalformedIsDropped", func(t *testing.T) {
		uc := &fakeUC{}

		err := newHandler(uc).BulkRequested(context.Background(), messaging.Delivery{Body: []byte(`{broken`)})

		require.NoError(t, err)
		assert.Empty(t, uc.processIn)
	})

	t.Run("ErrorIsReturned", func(t *testing.T) {
		uc := &fakeUC{processErr: errors.New("storage down")}

		err := newHandler(uc).BulkRequested(context.Background(), messaging.Delivery{
			Body: []byte(`{"process_id":"5","object_key":"k"}`),
		})

		assert.EqualError(t, err, "storage down")
	})
}

func TestMQHandler_EnsureCorrelationID(t *testing.T) {
	h := &MQHandler{uuid: staticID("generated")}

	ctx := h.ensureCorrelationID(context.Background(), messaging.Delivery{Headers: map[string]string{"cID": "abc"}})
	assert.Equal(t, "abc", instrument.GetCorrelationID(ctx))

	ctx = h.ensureCorrelationID(context.Background(), messaging.Delivery{})
	assert.Equal(t, "generated", instrument.GetCorrelationID(ctx))
}
