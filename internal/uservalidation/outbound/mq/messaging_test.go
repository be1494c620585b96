package mq

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/shared/event"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	msg   messaging.Message
}

type fakePublisher struct {
	sent []published
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, msg messaging.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{topic: topic, msg: msg})
	return nil
}

func TestMessaging_PublishBulkRequested(t *testing.T) {
	pub := &fakePublisher{}
	m := NewMessaging(pub, instrument.NewNoop())
	ctx := instrument.SetCorrelationID(context.Background(), "corr-1")

	err := m.PublishBulkRequested(ctx, usecase.BulkRequestedEvent{ProcessID: 42, ObjectKey: "uservalidation/bulk/x.csv"})
	require.NoError(t, err)

	require.Len(t, pub.sent, 1)
	got := pub.sent[0]
	assert.Equal(t, event.UserValidationBulkRequestedDestination, got.topic)
	assert.Equal(t, []byte("42"), got.msg.Key)
	assert.Equal(t, "corr-1", got.msg.Headers[keyOfCorrelationID])
	assert.JSONEq(t, `{"process_id":"42","object_key":"uservalidation/bulk/x.csv"}`, string(got.msg.Body))
}

func TestMessaging_PublishBulkCompleted(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		pub := &fakePublisher{}
		m := NewMessaging(pub, instrument.NewNoop())

		err := m.PublishBulkCompleted(context.Background(), usecase.BulkCompletedEvent{
			ProcessID: 7,
			Status:    entity.BulkStatusCompleted,
			Total:     3,
			Valid:     2,
			Invalid:   1,
		})
		require.NoError(t, err)

		require.Len(t, pub.sent, 1)
		assert.Equal(t, event.UserValidationBulkCompletedDestination, pub.sent[0].topic)
		assert.JSONEq(t, `{"process_id":"7","status":"completed","total":3,"valid":2,"invalid":1}`, string(pub.sent[0].msg.Body))
	})

	t.Run("PublishError", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker down")}
		m := NewMessaging(pub, instrument.NewNoop())

		err := m.PublishBulkCompleted(context.Background(), usecase.BulkCompletedEvent{ProcessID: 7, Status: entity.BulkStatusFailed})
		assert.EqualError(t, err, "broker down")
	})
}
