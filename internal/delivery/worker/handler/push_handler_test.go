package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "jewelshop/internal/delivery/context"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"
	"jewelshop/internal/infra/pubsub"
	mockUC "jewelshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockStockAlertUsecase) {
	t.Helper()

	stockAlertUC := mockUC.NewMockStockAlertUsecase(t)

	return &PushHandler{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		stockAlertUC: stockAlertUC,
	}, stockAlertUC
}

func newPushRequest(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-from-api",
		Type:        service.EventOrderCreated,
		OrderID:     uuid.NewString(),
		OrderNumber: "ORD-20261016-1A2B3C4D",
		Status:      string(entity.OrderStatusPending),
		TotalCents:  250000,
		Items:       []service.OrderEventItem{{ProductID: uuid.NewString(), Quantity: 2}},
		OccurredAt:  time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
}

func encodePushMessage(t *testing.T, event *service.OrderEvent) []byte {
	t.Helper()

	pushMsg, err := pubsub.NewPushMessage(event, "projects/test/subscriptions/order-events-sub")
	require.NoError(t, err)

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush_ProcessesOrderEvent(t *testing.T) {
	handler, stockAlertUC := newTestPushHandler(t)
	event := newTestOrderEvent()

	stockAlertUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
			return got.OrderID == event.OrderID && got.Type == event.Type && len(got.Items) == 1
		})).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) ([]*entity.Product, error) {
			// The request id travels from the publishing request into the worker context.
			assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))

			return []*entity.Product{{ID: uuid.New(), StockQuantity: 1}}, nil
		})

	c, rec := newPushRequest(t, encodePushMessage(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	handler, stockAlertUC := newTestPushHandler(t)
	event := newTestOrderEvent()

	stockAlertUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	c, rec := newPushRequest(t, encodePushMessage(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_IncompleteEventIsAcknowledged(t *testing.T) {
	handler, _ := newTestPushHandler(t)
	event := newTestOrderEvent()
	event.OrderID = ""

	c, rec := newPushRequest(t, encodePushMessage(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%","messageId":"1"}}`},
		{name: "data not an event", body: `{"message":{"data":"bm90IGpzb24=","messageId":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestPushHandler(t)
			c, rec := newPushRequest(t, []byte(tt.body))

			require.NoError(t, handler.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_RequiresTokenWhenVerifying(t *testing.T) {
	handler, _ := newTestPushHandler(t)
	handler.verifyPushAuth = true

	c, rec := newPushRequest(t, encodePushMessage(t, newTestOrderEvent()))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	t.Run("attribute wins", func(t *testing.T) {
		var msg PubSubMessage
		msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

		got := handler.extractRequestID(context.Background(), &msg, &service.OrderEvent{RequestID: "from-event"})
		assert.Equal(t, "from-attr", got)
	})

	t.Run("event field", func(t *testing.T) {
		got := handler.extractRequestID(context.Background(), &PubSubMessage{}, &service.OrderEvent{RequestID: "from-event"})
		assert.Equal(t, "from-event", got)
	})

	t.Run("context", func(t *testing.T) {
		ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

		got := handler.extractRequestID(ctx, &PubSubMessage{}, &service.OrderEvent{})
		assert.Equal(t, "from-ctx", got)
	})

	t.Run("generated", func(t *testing.T) {
		got := handler.extractRequestID(context.Background(), &PubSubMessage{}, &service.OrderEvent{})
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}
