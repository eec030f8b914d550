package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failOn   map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failOn[string(m.Key)]; ok {
			return err
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPending(t *testing.T) {
	ctx := context.Background()
	lease := 30 * time.Second

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ClaimPending(ctx, 50, lease).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "rid-1", AggregateType: "payroll", AggregateID: "p-1", EventType: "payroll.status_changed", Topic: "t1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop(), lease)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.messages, 1)
		assert.Equal(t, "t1", writer.messages[0].Topic)
		assert.Equal(t, "p-1", string(writer.messages[0].Key))
		assert.Equal(t, "rid-1", header(writer.messages[0], "request_id"))
		assert.Equal(t, "payroll.status_changed", header(writer.messages[0], "event_type"))
	})

	t.Run("failed publish is rescheduled and others continue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: map[string]error{"a-1": errors.New("leader not available")}}

		repo.EXPECT().ClaimPending(ctx, 50, lease).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "a-1", Topic: "t1", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "a-2", Topic: "t1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop(), lease)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ClaimPending(ctx, 50, lease).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPending(ctx, repo, &fakeWriter{}, zap.NewNop(), lease)
		assert.EqualError(t, err, "db down")
	})
}

func TestPurgeSent(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().PurgeSent(ctx, cutoff).Return(int64(3), nil)
	producer.PurgeSent(ctx, repo, zap.NewNop(), cutoff)

	repo.EXPECT().PurgeSent(ctx, cutoff).Return(int64(0), errors.New("db down"))
	producer.PurgeSent(ctx, repo, zap.NewNop(), cutoff)
}
