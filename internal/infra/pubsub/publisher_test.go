package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jewelshop/config"
	"jewelshop/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	gocloudpubsub "gocloud.dev/pubsub"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-1",
		Type:        service.EventOrderCreated,
		OrderID:     "0b5e1e0c-9f55-4a8e-9d0c-6a3f6b2d7c11",
		OrderNumber: "ORD-20250314-A1B2C3",
		Status:      "pending",
		TotalCents:  250000,
		Items:       []service.OrderEventItem{{ProductID: "p-1", Quantity: 2}},
		OccurredAt:  time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventOrderCreated, received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderNumber, decoded.OrderNumber)
	assert.Equal(t, event.Items, decoded.Items)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishOrderEvent(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestGoCloudPublisher_SendsToMemTopic(t *testing.T) {
	ctx := context.Background()
	publisher, err := NewGoCloudPublisher(ctx, "mem://order-events-test", newDiscardLogger())
	require.NoError(t, err)

	sub, err := gocloudpubsub.OpenSubscription(ctx, "mem://order-events-test")
	require.NoError(t, err)
	defer sub.Shutdown(ctx)

	event := newTestEvent()
	require.NoError(t, publisher.PublishOrderEvent(ctx, event))

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(receiveCtx)
	require.NoError(t, err)
	msg.Ack()

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, "ORD-20250314-A1B2C3", msg.Metadata["order_number"])

	require.NoError(t, publisher.Close())
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysMessagesByOrder(t *testing.T) {
	writer := &recordingWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: newDiscardLogger()}
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))
	require.NoError(t, publisher.Close())

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, event.OrderID, string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)
	assert.Contains(t, msg.Headers, kafka.Header{Key: "type", Value: []byte(service.EventOrderCreated)})
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &recordingWriter{err: io.ErrClosedPipe}
	publisher := &kafkaPublisher{writer: writer, logger: newDiscardLogger()}

	err := publisher.PublishOrderEvent(context.Background(), newTestEvent())

	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, splitBrokers(""))
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "gocloud", cfg: &config.PubSubConfig{Provider: "gocloud", TopicURL: "mem://provider-test"}},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: "kafka", Brokers: "localhost:9092", TopicID: "orders"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "gocloud without url", cfg: &config.PubSubConfig{Provider: "gocloud"}, wantErr: "topic URL is required"},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", TopicID: "orders"}, wantErr: "brokers are required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
