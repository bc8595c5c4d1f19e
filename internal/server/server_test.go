package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/config"
	"github.com/nfrund/demosite/internal/handlers"
	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/view"
	"github.com/nfrund/demosite/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenPages fails every full page render.
type brokenPages struct {
	*rendering.HTMLRenderer
}

func (brokenPages) Page(echo.Context, int, any) error {
	return errors.New("layout template exploded")
}

type testServer struct {
	srv      *Server
	searches atomic.Int32
	logs     *bytes.Buffer
}

func newTestServer(t *testing.T, pageRenderer rendering.Renderer) *testServer {
	t.Helper()

	ts := &testServer{logs: &bytes.Buffer{}}
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(ts.logs, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })

	cfg := &config.Config{
		AppName:       "Demo",
		AppEnv:        "test",
		SessionSecret: "a-very-secret-key-for-testing-!",
		SessionTTL:    time.Minute,
	}
	store := navsession.NewStore(func(id string, width int) *nav.Controller {
		return nav.NewController(nav.Options{Width: width})
	}, time.Minute)
	t.Cleanup(store.Close)

	renderer := rendering.NewHTMLRenderer()
	if pageRenderer == nil {
		pageRenderer = renderer
	}
	navbar := view.NavbarConfig{EventsPath: EventsPath, SearchAction: SearchPath}
	m := metrics.New()

	ts.srv = New(cfg, Dependencies{
		Renderer: renderer,
		Pages:    handlers.NewPageHandler(cfg.AppName, store, navbar, pageRenderer),
		Nav:      handlers.NewNavHandler(store, navbar, renderer, m),
		Search: handlers.NewSearchHandler(func(context.Context, string) {
			ts.searches.Add(1)
		}),
		Socket:  websocket.NewHandler(store, navbar, renderer, m),
		Metrics: m,
	})
	ts.srv.RegisterRoutes()
	return ts
}

func (ts *testServer) search(remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, SearchPath, strings.NewReader(url.Values{"q": {"docs"}}.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	ts.srv.E.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_SearchIsRateLimitedPerClient(t *testing.T) {
	ts := newTestServer(t, nil)

	for i := 0; i < middleware.SearchRatePerMinute; i++ {
		rec := ts.search("198.51.100.7:4000")
		require.Equal(t, http.StatusNoContent, rec.Code, "search %d is within the burst", i+1)
	}
	assert.EqualValues(t, middleware.SearchRatePerMinute, ts.searches.Load())

	rec := ts.search("198.51.100.7:4001")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "the limit is keyed on the IP, not the port")
	assert.EqualValues(t, middleware.SearchRatePerMinute, ts.searches.Load(), "a denied search never reaches the callback")

	rec = ts.search("198.51.100.8:4000")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorHandling_InvalidEventIsNotAServerError(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, EventsPath, strings.NewReader("kind=explode"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ts.srv.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"invalid_event"`)
	assert.Contains(t, rec.Body.String(), "invalid navigation event")
	assert.NotContains(t, ts.logs.String(), "Server error")
	assert.NotContains(t, ts.logs.String(), "stack_trace")
}

func TestErrorHandling_FailedPageRenderLogsStackTrace(t *testing.T) {
	ts := newTestServer(t, brokenPages{rendering.NewHTMLRenderer()})

	rec := httptest.NewRecorder()
	ts.srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "layout template exploded", "internal errors stay out of the response")

	logs := ts.logs.String()
	assert.Contains(t, logs, "Internal Server Error (Unhandled)")
	assert.Contains(t, logs, `error="layout template exploded"`)
	assert.Contains(t, logs, "path=/about")
	assert.Contains(t, logs, "request_id=")
	assert.Contains(t, logs, "stack_trace=")
	assert.Contains(t, logs, "internal/server/errors.go")
}

func TestRoutes_DefaultLinksResolve(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, link := range nav.DefaultLinks() {
		t.Run(link.Label, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ts.srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, link.Href, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "<title>"+link.Label+" - Demo</title>")
			assert.Contains(t, rec.Body.String(), `aria-current="page"`)
		})
	}
}
