package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyShutdown returns a context cancelled on an interrupt or terminate
// signal.
func notifyShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
