package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	sendBuffer   = 64
	writeTimeout = 10 * time.Second
)

// Client is one connected browser tab.
type Client struct {
	SessionID string
	conn      *websocket.Conn
	send      chan Message
	mu        sync.RWMutex
}

func newClient(sessionID string, conn *websocket.Conn) *Client {
	return &Client{SessionID: sessionID, conn: conn, send: make(chan Message, sendBuffer)}
}

// SendMessage queues msg for the write pump. Messages are dropped when the
// client is gone or not keeping up.
func (c *Client) SendMessage(msg Message) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.send == nil {
		return
	}
	select {
	case c.send <- msg:
	default:
		slog.Warn("Client send channel full, dropping message", "session_id", c.SessionID, "type", msg.Type)
	}
}

// Close stops the write pump.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

// writePump writes queued messages until Close.
func (c *Client) writePump(ctx context.Context) {
	c.mu.RLock()
	send := c.send
	c.mu.RUnlock()

	for msg := range send {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := wsjson.Write(wctx, c.conn, msg)
		cancel()
		if err != nil {
			slog.Error("WebSocket write error", "session_id", c.SessionID, "error", err)
			return
		}
	}
}
