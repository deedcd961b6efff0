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

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCheckoutEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	event := &service.CheckoutEvent{
		RequestID: "req-1",
		Type:      constants.EventOrderConfirmed,
		SessionID: "sess-1",
		OrderID:   "ORD123",
		Amount:    1180,
		Currency:  "INR",
	}
	require.NoError(t, publisher.PublishCheckoutEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventOrderConfirmed, received.Message.Attributes["type"])
	assert.Equal(t, "ORD123", received.Message.Attributes["order_id"])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "sess-1", received.Message.OrderingKey)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CheckoutEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(1180), decoded.Amount)
	assert.Equal(t, "sess-1", decoded.SessionID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishCheckoutEvent(context.Background(), &service.CheckoutEvent{Type: constants.EventPaymentFailed})
	assert.ErrorContains(t, err, "500")
}

func TestNewPublisher(t *testing.T) {
	t.Run("defaults to noop", func(t *testing.T) {
		publisher, err := newPublisher(context.Background(), nil, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishCheckoutEvent(context.Background(), &service.CheckoutEvent{Type: constants.EventIntentCreated}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, discardLogger())
		assert.ErrorContains(t, err, "localEndpoint")
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "shop"}, discardLogger())
		assert.ErrorContains(t, err, "topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newPublisher(context.Background(), &config.PubSubConfig{Provider: "kafka"}, discardLogger())
		assert.ErrorContains(t, err, "kafka")
	})
}

func TestEventAttributes_OmitsEmptyIDs(t *testing.T) {
	attributes := eventAttributes(&service.CheckoutEvent{Type: constants.EventIntentCreated, SessionID: "s"})

	assert.Equal(t, map[string]string{"type": constants.EventIntentCreated, "session_id": "s"}, attributes)
}
