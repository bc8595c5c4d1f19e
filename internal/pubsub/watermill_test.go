package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/demosite/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	Count int `json:"count"`
}

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{
		Topic:     "test.topic",
		SessionID: "session-1",
		Payload:   []byte("hello"),
		Metadata:  map[string]string{"cause": "toggle"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "session-1", msg.SessionID)
		assert.Equal(t, "hello", string(msg.Payload))
		assert.Equal(t, "toggle", msg.Metadata["cause"])
		assert.NotContains(t, msg.Metadata, "topic")
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestTopic_PublishDecode(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := pubsub.NewTopic[ping]("test.ping")
	received := make(chan ping, 1)
	require.NoError(t, bridge.Subscribe(ctx, topic.Name, func(ctx context.Context, msg pubsub.Message) error {
		p, err := topic.Decode(msg)
		if err != nil {
			return err
		}
		received <- p
		return nil
	}))

	require.NoError(t, topic.Publish(ctx, bridge, "s", ping{Count: 3}))

	select {
	case p := <-received:
		assert.Equal(t, 3, p.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}

	_, err := topic.Decode(pubsub.Message{Topic: "other"})
	assert.Error(t, err)
}
