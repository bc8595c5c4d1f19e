// Package navsession keeps one navigation controller per visitor.
package navsession

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/demosite/internal/domain"
	"github.com/nfrund/demosite/internal/nav"
)

// Factory builds the controller for a new session.
type Factory func(id string, width int) *nav.Controller

// Session is a visitor's mounted navigation.
type Session struct {
	ID         string
	Controller *nav.Controller

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store maps session ids to sessions and evicts idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
	onChange func(n int)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSizeHook is called with the session count after it changes.
func WithSizeHook(fn func(n int)) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore returns an empty store.
func NewStore(factory Factory, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the session for id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// GetOrCreate returns the session for id, mounting a new controller when id is
// empty or unknown. width seeds the viewport classification.
func (s *Store) GetOrCreate(id string, width int) *Session {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess
		}
	}

	s.mu.Lock()
	if id == "" {
		id = uuid.NewString()
	}
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id, Controller: s.factory(id, width), lastSeen: s.now()}
		s.sessions[id] = sess
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		slog.Debug("Navigation session created", "session_id", id)
		s.notify(n)
	}
	return sess
}

// Mount replaces the session for id with a freshly mounted controller, as
// happens on every full page load. An empty id gets a new one. A width of
// zero keeps the previous controller's viewport width.
func (s *Store) Mount(id string, width int) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	old, existed := s.sessions[id]
	if existed && width <= 0 {
		width = old.Controller.Snapshot().Viewport.Width
	}
	fresh := &Session{ID: id, Controller: s.factory(id, width), lastSeen: s.now()}
	s.sessions[id] = fresh
	n := len(s.sessions)
	s.mu.Unlock()

	if existed {
		old.Controller.Close()
	} else {
		s.notify(n)
	}
	return fresh
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Remove unmounts and forgets a session.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()
	if ok {
		sess.Controller.Close()
		s.notify(n)
	}
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	now := s.now()
	var expired []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Controller.Close()
	}
	if len(expired) > 0 {
		slog.Debug("Evicted idle navigation sessions", "count", len(expired))
		s.notify(n)
	}
	return len(expired)
}

// Run sweeps periodically until ctx is cancelled.
func (s *Store) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close unmounts every session.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Controller.Close()
	}
	s.notify(0)
}

func (s *Store) notify(n int) {
	if s.onChange != nil {
		s.onChange(n)
	}
}
