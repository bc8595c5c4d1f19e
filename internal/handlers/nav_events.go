package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/domain"
	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/view"
	"github.com/nfrund/demosite/internal/view/components"
)

// NavHandler applies navigation events posted by htmx and answers with the
// re-rendered navbar.
type NavHandler struct {
	store    *navsession.Store
	navbar   view.NavbarConfig
	renderer rendering.Renderer
	metrics  *metrics.Metrics
}

// NewNavHandler creates a new NavHandler.
func NewNavHandler(store *navsession.Store, navbar view.NavbarConfig, renderer rendering.Renderer, m *metrics.Metrics) *NavHandler {
	return &NavHandler{store: store, navbar: navbar, renderer: renderer, metrics: m}
}

// EventsPost handles POST /nav/events.
func (h *NavHandler) EventsPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var ev nav.Event
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: err.Error()})
	}
	if err := c.Validate(&ev); err != nil {
		logger.Debug("Rejected navigation event", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    "invalid_event",
			Message: errors.Join(domain.ErrInvalidEvent, err).Error(),
		})
	}

	sess := h.store.GetOrCreate(navsession.IDFromRequest(c), ev.Width)
	if err := navsession.SaveID(c, sess.ID); err != nil {
		logger.Warn("Failed to save navigation session", "error", err)
	}

	res := sess.Controller.Dispatch(ev)
	h.metrics.Event(ev.Kind, metrics.TransportHTTP, res)
	logger.Debug("Navigation event applied",
		"session_id", sess.ID,
		"kind", ev.Kind,
		"key", ev.Key,
		"handled", res.Handled,
		"state", sess.Controller.Snapshot().State.String(),
	)

	if !res.Redraw {
		// Nothing on screen changes. Skipping the swap keeps a stale response
		// from overwriting a newer one and leaves the focused element alone.
		setFocusTrigger(c, headerTrigger, res.Focus)
		c.Response().Header().Set(headerReswap, "none")
		return c.NoContent(http.StatusNoContent)
	}

	snap := sess.Controller.Snapshot()
	fragment, err := h.renderer.Fragment(c.Request().Context(),
		components.Navbar(h.navbar.Props(snap, view.PathOf(c.Request().Header.Get(headerCurrentURL)))))
	if err != nil {
		return err
	}

	// The fragment is swapped in before the settle trigger fires, so deferred
	// focus moves can run now.
	focus := append(res.Focus, sess.Controller.RenderComplete()...)
	setFocusTrigger(c, headerTriggerAfterSettle, focus)
	return c.HTMLBlob(http.StatusOK, fragment)
}
