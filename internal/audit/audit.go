// Package audit publishes navigation transitions on the event bus and logs
// them from a subscriber, keeping the controller free of I/O.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/pubsub"
)

// TransitionEvent is the payload published for each state change.
type TransitionEvent struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Cause      string    `json:"cause"`
	Generation uint64    `json:"generation"`
	At         time.Time `json:"at"`
}

// Transitions is the topic transitions are published on.
var Transitions = pubsub.NewTopic[TransitionEvent]("nav.transitions")

// Observer returns a nav.Observer publishing transitions for sessionID.
// Publish failures are logged and otherwise ignored.
func Observer(pub pubsub.Publisher, sessionID string) nav.Observer {
	return func(t nav.Transition) {
		ev := TransitionEvent{
			From:       t.From.String(),
			To:         t.To.String(),
			Cause:      string(t.Cause),
			Generation: t.Generation,
			At:         time.Now().UTC(),
		}
		if err := Transitions.Publish(context.Background(), pub, sessionID, ev); err != nil {
			slog.Warn("Failed to publish navigation transition", "session_id", sessionID, "error", err)
		}
	}
}

// Subscribe logs every published transition until ctx is cancelled.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return sub.Subscribe(ctx, Transitions.Name, func(ctx context.Context, msg pubsub.Message) error {
		ev, err := Transitions.Decode(msg)
		if err != nil {
			return err
		}
		logger.Debug("Navigation transition",
			"session_id", msg.SessionID,
			"from", ev.From,
			"to", ev.To,
			"cause", ev.Cause,
			"generation", ev.Generation,
		)
		return nil
	})
}

// SearchEvent is published for every navbar search submission.
type SearchEvent struct {
	Query string    `json:"query"`
	At    time.Time `json:"at"`
}

// Searches is the topic search submissions are published on.
var Searches = pubsub.NewTopic[SearchEvent]("nav.searches")

// SearchPublisher returns a search callback that publishes each query.
func SearchPublisher(pub pubsub.Publisher) func(ctx context.Context, query string) {
	return func(ctx context.Context, query string) {
		ev := SearchEvent{Query: query, At: time.Now().UTC()}
		if err := Searches.Publish(ctx, pub, "", ev); err != nil {
			slog.Warn("Failed to publish search", "error", err)
		}
	}
}

// SubscribeSearches logs every published search until ctx is cancelled.
func SubscribeSearches(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return sub.Subscribe(ctx, Searches.Name, func(ctx context.Context, msg pubsub.Message) error {
		ev, err := Searches.Decode(msg)
		if err != nil {
			return err
		}
		logger.Info("Search received", "query", ev.Query)
		return nil
	})
}
