package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/demosite/internal/config"
	"github.com/nfrund/demosite/internal/handlers"
	"github.com/nfrund/demosite/internal/metrics"
	appmiddleware "github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/websocket"
)

// Dependencies are the services the HTTP layer is built from.
type Dependencies struct {
	Renderer *rendering.HTMLRenderer
	Pages    *handlers.PageHandler
	Nav      *handlers.NavHandler
	Search   *handlers.SearchHandler
	Socket   *websocket.Handler
	Metrics  *metrics.Metrics
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E    *echo.Echo
	Cfg  config.Provider
	deps Dependencies
}

// New creates a new Server instance with its middleware stack installed.
func New(cfg config.Provider, deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.GetSessionTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.GetAppEnv() == "production",
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	return &Server{E: e, Cfg: cfg, deps: deps}
}
