// Package pubsub publishes checkout events to a message topic.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// encodedEvent is a checkout event ready for the wire.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps one session's checkout steps in publish order.
	orderingKey string
}

func encodeEvent(event *service.CheckoutEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode checkout event")
	}

	return &encodedEvent{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.SessionID,
	}, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.CheckoutEvent) map[string]string {
	attributes := map[string]string{
		"type":       event.Type,
		"session_id": event.SessionID,
	}
	if event.OrderID != "" {
		attributes["order_id"] = event.OrderID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// noopPublisher drops events.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCheckoutEvent(_ context.Context, event *service.CheckoutEvent) error {
	p.logger.Debug("Checkout event dropped, publishing disabled", slog.String("type", event.Type))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
