package events

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// notifyTypes are the events the shop owner is told about.
var notifyTypes = map[string]string{
	OrderPlaced:       "Checkout",
	ContactReceived:   "Contact",
	BulkOrderReceived: "Bulk-order",
}

// Notifier turns queued events into admin notifications.
type Notifier struct {
	logger *zap.Logger
}

// NewNotifier creates a Notifier that writes notifications to logger.
func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger.Named("notifier")}
}

// Handle processes one delivery. It is shaped for rabbitmq.Client.ConsumeEvents.
func (n *Notifier) Handle(msg amqp.Delivery) error {
	label, ok := notifyTypes[msg.Type]
	if !ok {
		n.logger.Debug("event ignored", zap.String("type", msg.Type))
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(msg.Body, &fields); err != nil {
		return fmt.Errorf("decode %s event: %w", msg.Type, err)
	}

	subject, body := Format(label, fields)
	n.logger.Info("admin notification",
		zap.String("type", msg.Type),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

// Format renders a notification subject and a "Key: value" body with keys in
// sorted order.
func Format(label string, fields map[string]any) (string, string) {
	subject := "New Submission: " + label

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "You have a new form submission.\n\nType: %s\n\n", strings.ToLower(label))
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", capitalize(k), fields[k])
	}
	return subject, b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
