// Package events defines the storefront's domain events, the publisher
// abstraction services emit them through, and the admin notification consumer.
package events

import "go.uber.org/zap"

// Event types.
const (
	OrderPlaced          = "order.placed"
	ContactReceived      = "contact.received"
	NewsletterSubscribed = "newsletter.subscribed"
	BulkOrderReceived    = "bulk_order.received"
	UserRegistered       = "user.registered"
)

// Publisher delivers an event to the broker.
type Publisher interface {
	Publish(eventType string, payload any) error
}

// Emit publishes through p. Events are best effort: a nil publisher is a
// no-op and failures are only logged.
func Emit(p Publisher, logger *zap.Logger, eventType string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(eventType, payload); err != nil {
		logger.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
