// Package websocket carries navigation events and rendered navbar fragments
// over a WebSocket, as an alternative to htmx requests.
package websocket

import (
	"context"
	"errors"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/view"
	"github.com/nfrund/demosite/internal/view/components"
)

// Handler serves GET /nav/ws. Each frame is applied to the visitor's
// controller in arrival order; the browser acknowledges every html frame
// with a rendered frame, which is when deferred focus moves run.
type Handler struct {
	store    *navsession.Store
	navbar   view.NavbarConfig
	renderer rendering.Renderer
	metrics  *metrics.Metrics
	validate *validator.Validate
	allowed  *typeWhitelist
}

// NewHandler creates a new Handler.
func NewHandler(store *navsession.Store, navbar view.NavbarConfig, renderer rendering.Renderer, m *metrics.Metrics) *Handler {
	return &Handler{
		store:    store,
		navbar:   navbar,
		renderer: renderer,
		metrics:  m,
		validate: validator.New(),
		allowed:  DefaultTypeWhitelist(),
	}
}

// Serve upgrades the request and runs the connection until it closes.
func (h *Handler) Serve(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	sess := h.store.GetOrCreate(navsession.IDFromRequest(c), 0)
	if err := navsession.SaveID(c, sess.ID); err != nil {
		logger.Warn("Failed to save navigation session", "error", err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Failed to upgrade connection to WebSocket", "error", err)
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "unexpected close")

	ctx := c.Request().Context()
	client := newClient(sess.ID, conn)
	done := make(chan struct{})
	go func() {
		defer close(done)
		client.writePump(ctx)
	}()
	defer func() {
		client.Close()
		<-done
	}()

	logger.Info("Navigation socket connected", "session_id", sess.ID)
	path := "/"
	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				logger.Info("Navigation socket closed", "session_id", sess.ID)
				return nil
			}
			logger.Warn("WebSocket read error", "session_id", sess.ID, "error", err)
			return nil
		}
		if msg.Path != "" {
			path = msg.Path
		}
		h.handle(ctx, logger, client, msg, path)
	}
}

func (h *Handler) handle(ctx context.Context, logger *slog.Logger, client *Client, msg ClientMessage, path string) {
	if !h.allowed.IsAllowed(msg.Type) {
		client.SendMessage(newErrorMessage("unsupported message type: " + msg.Type))
		return
	}

	// A page load may have remounted the navigation since the socket opened.
	sess := h.store.GetOrCreate(client.SessionID, msg.Event.Width)

	switch msg.Type {
	case TypeRendered:
		if focus := sess.Controller.RenderComplete(); len(focus) > 0 {
			client.SendMessage(newFocusMessage(focus))
		}

	case TypeEvent:
		if err := h.validate.Struct(&msg.Event); err != nil {
			client.SendMessage(newErrorMessage(err.Error()))
			return
		}
		res := sess.Controller.Dispatch(msg.Event)
		h.metrics.Event(msg.Event.Kind, metrics.TransportWS, res)

		// Replacing the navbar drops the element that has focus, so only
		// redraw when the markup would actually differ.
		if res.Redraw {
			fragment, err := h.renderer.Fragment(ctx, components.Navbar(h.navbar.Props(sess.Controller.Snapshot(), path)))
			if err != nil {
				logger.Error("Failed to render navbar", "session_id", sess.ID, "error", err)
				client.SendMessage(newErrorMessage("render failed"))
				return
			}
			client.SendMessage(newHTMLMessage(fragment, components.NavbarID))
		}
		client.SendMessage(Message{Type: TypeResult, Payload: res})
		if len(res.Focus) > 0 {
			client.SendMessage(newFocusMessage(res.Focus))
		}
	}
}
