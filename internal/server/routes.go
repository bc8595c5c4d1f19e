package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/web"
)

const (
	// EventsPath receives htmx navigation events.
	EventsPath = "/nav/events"
	// SocketPath is the WebSocket navigation channel.
	SocketPath = "/nav/ws"
	// SearchPath receives the navbar search form.
	SearchPath = "/search"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.deps.Pages.HomeGet)
	s.E.GET("/about", s.deps.Pages.AboutGet)
	s.E.GET("/contact", s.deps.Pages.ContactGet)

	s.E.POST(EventsPath, s.deps.Nav.EventsPost)
	s.E.GET(SocketPath, s.deps.Socket.Serve)
	s.E.POST(SearchPath, s.deps.Search.SearchPost, rateLimiter)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/metrics", echo.WrapHandler(s.deps.Metrics.Handler()))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
