// Package pubsub publishes capture events to a Google Cloud Pub/Sub topic.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"presell/pkg/notify"

	"cloud.google.com/go/pubsub"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Notifier publishes JSON encoded events with the trace context carried in
// the message attributes.
type Notifier struct {
	topic *pubsub.Topic
}

var _ notify.Notifier = (*Notifier)(nil)

// New creates a Notifier publishing to topic.
func New(topic *pubsub.Topic) *Notifier {
	return &Notifier{topic: topic}
}

// CaptureCompleted publishes event and waits for the server to acknowledge it.
func (n *Notifier) CaptureCompleted(ctx context.Context, event notify.Event) error {
	if n.topic == nil {
		return errors.New("pubsub topic is not configured")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"type":      notify.EventCaptureCompleted,
			"presellId": event.PresellID.String(),
			"state":     string(event.State),
		},
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(msg.Attributes))

	if _, err := n.topic.Publish(ctx, msg).Get(ctx); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

// Stop flushes pending messages and stops the topic's publishing goroutines.
func (n *Notifier) Stop() {
	if n.topic != nil {
		n.topic.Stop()
	}
}
