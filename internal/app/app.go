// Package app wires the demo site together with a samber/do injector and
// runs its background workers alongside the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/demosite/internal/audit"
	"github.com/nfrund/demosite/internal/config"
	"github.com/nfrund/demosite/internal/handlers"
	"github.com/nfrund/demosite/internal/links"
	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/pubsub"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/server"
	"github.com/nfrund/demosite/internal/view"
	"github.com/nfrund/demosite/internal/websocket"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

const sweepInterval = time.Minute

// App owns the dependency container.
type App struct {
	injector *do.RootScope
}

// New registers every service provider. Nothing is built until first use.
func New(cfg config.Provider, fs afero.Fs) *App {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.Provide(i, newLinksSource)
	do.Provide(i, newBridge)
	do.Provide(i, newMetrics)
	do.Provide(i, newSessionStore)
	do.Provide(i, newRenderer)
	do.Provide(i, newServer)
	return &App{injector: i}
}

// Server builds the HTTP server with its routes registered.
func (a *App) Server() (*server.Server, error) {
	return do.Invoke[*server.Server](a.injector)
}

// Run starts the background workers and serves HTTP until ctx is done or a
// shutdown signal arrives.
func (a *App) Run(ctx context.Context) error {
	srv, err := a.Server()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	cfg := do.MustInvoke[config.Provider](a.injector)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](a.injector)
	store := do.MustInvoke[*navsession.Store](a.injector)
	source := do.MustInvoke[*links.Source](a.injector)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := slog.Default()
	if err := audit.Subscribe(ctx, bridge, logger); err != nil {
		return fmt.Errorf("failed to subscribe to transitions: %w", err)
	}
	if err := audit.SubscribeSearches(ctx, bridge, logger); err != nil {
		return fmt.Errorf("failed to subscribe to searches: %w", err)
	}
	go store.Run(ctx, sweepInterval)
	if cfg.GetHotReload() && source.Path() != "" {
		go func() {
			if err := source.Watch(ctx); err != nil {
				slog.Error("Links watcher stopped", "error", err)
			}
		}()
	}

	err = srv.Start(ctx)

	cancel()
	store.Close()
	if cerr := bridge.Close(); cerr != nil {
		slog.Warn("Failed to close event bus", "error", cerr)
	}
	a.injector.Shutdown()
	return err
}

func newLinksSource(i do.Injector) (*links.Source, error) {
	cfg := do.MustInvoke[config.Provider](i)
	source := links.NewSource(do.MustInvoke[afero.Fs](i), cfg.GetLinksFile())
	if err := source.Reload(); err != nil {
		// The source already fell back to the default links.
		slog.Warn("Using default navigation links", "path", source.Path(), "error", err)
	}
	return source, nil
}

func newBridge(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}

func newSessionStore(i do.Injector) (*navsession.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	source := do.MustInvoke[*links.Source](i)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	factory := func(id string, width int) *nav.Controller {
		return nav.NewController(nav.Options{
			Links:     source.Links(),
			Width:     width,
			Observers: []nav.Observer{m.Observer(), audit.Observer(bridge, id)},
		})
	}
	return navsession.NewStore(factory, cfg.GetSessionTTL(), navsession.WithSizeHook(m.SetSessions)), nil
}

func newRenderer(i do.Injector) (*rendering.HTMLRenderer, error) {
	return rendering.NewHTMLRenderer(), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[config.Provider](i)
	store := do.MustInvoke[*navsession.Store](i)
	renderer := do.MustInvoke[*rendering.HTMLRenderer](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)

	navbar := NavbarConfig(cfg)
	srv := server.New(cfg, server.Dependencies{
		Renderer: renderer,
		Pages:    handlers.NewPageHandler(cfg.GetAppName(), store, navbar, renderer),
		Nav:      handlers.NewNavHandler(store, navbar, renderer, m),
		Search:   handlers.NewSearchHandler(audit.SearchPublisher(bridge)),
		Socket:   websocket.NewHandler(store, navbar, renderer, m),
		Metrics:  m,
	})
	srv.RegisterRoutes()
	return srv, nil
}

// NavbarConfig derives the navbar presentation settings from cfg.
func NavbarConfig(cfg config.Provider) view.NavbarConfig {
	navbar := view.NavbarConfig{
		Sticky:            cfg.GetSticky(),
		SearchPlaceholder: cfg.GetSearchPlaceholder(),
		SearchAction:      server.SearchPath,
		EventsPath:        server.EventsPath,
	}
	if cfg.GetNavTransport() == "ws" {
		navbar.SocketPath = server.SocketPath
	}
	return navbar
}
