package websocket

import (
	"errors"
	"log/slog"
	"slices"
	"sync"
)

var (
	// ErrTypeAlreadyExists is returned when trying to add a duplicate message type.
	ErrTypeAlreadyExists = errors.New("message type already exists in whitelist")
	// ErrInvalidType is returned when an empty message type is provided.
	ErrInvalidType = errors.New("message type cannot be empty")
)

// typeWhitelist holds the message types clients may send.
type typeWhitelist struct {
	mu      sync.RWMutex
	allowed []string
}

// NewTypeWhitelist creates a whitelist with the given message types.
func NewTypeWhitelist(types ...string) *typeWhitelist {
	valid := make([]string, 0, len(types))
	for _, t := range types {
		if t != "" {
			valid = append(valid, t)
		}
	}
	return &typeWhitelist{allowed: valid}
}

// IsAllowed reports whether clients may send msgType.
func (w *typeWhitelist) IsAllowed(msgType string) bool {
	if msgType == "" {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.allowed, msgType)
}

// Add allows another message type.
func (w *typeWhitelist) Add(msgType string) error {
	if msgType == "" {
		return ErrInvalidType
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if slices.Contains(w.allowed, msgType) {
		return ErrTypeAlreadyExists
	}
	w.allowed = append(w.allowed, msgType)
	slog.Debug("Added message type to whitelist", "type", msgType)
	return nil
}

// DefaultTypeWhitelist allows the navigation protocol's inbound types.
func DefaultTypeWhitelist() *typeWhitelist {
	return NewTypeWhitelist(TypeEvent, TypeRendered)
}
