package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Topic[T] pairs a topic name with its JSON payload type.
type Topic[T any] struct {
	Name string
}

// NewTopic declares a typed topic.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{Name: name}
}

// Publish encodes payload and publishes it on the topic.
func (t Topic[T]) Publish(ctx context.Context, pub Publisher, sessionID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", t.Name, err)
	}
	return pub.Publish(ctx, Message{Topic: t.Name, SessionID: sessionID, Payload: data})
}

// Decode extracts the typed payload from a message on this topic.
func (t Topic[T]) Decode(msg Message) (T, error) {
	var v T
	if msg.Topic != t.Name {
		return v, fmt.Errorf("message topic %q does not match %q", msg.Topic, t.Name)
	}
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s payload: %w", t.Name, err)
	}
	return v, nil
}
