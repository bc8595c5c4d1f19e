package navsession_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/domain"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func factory(id string, width int) *nav.Controller {
	return nav.NewController(nav.Options{MenuID: "menu-" + id, Width: width})
}

func TestStore_GetOrCreate(t *testing.T) {
	var sizes []int
	s := navsession.NewStore(factory, time.Minute, navsession.WithSizeHook(func(n int) { sizes = append(sizes, n) }))

	a := s.GetOrCreate("", 480)
	require.NotEmpty(t, a.ID)
	assert.True(t, a.Controller.Snapshot().Viewport.Compact(), "width seeds the viewport")

	again := s.GetOrCreate(a.ID, 1200)
	assert.Same(t, a, again)

	b := s.GetOrCreate("client-chosen", 0)
	assert.Equal(t, "client-chosen", b.ID)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, sizes)

	_, err := s.Get("unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_MountReplacesController(t *testing.T) {
	var sizes []int
	s := navsession.NewStore(factory, time.Minute, navsession.WithSizeHook(func(n int) { sizes = append(sizes, n) }))

	first := s.Mount("", 480)
	first.Controller.Dispatch(nav.Event{Kind: nav.EventToggle})
	require.True(t, first.Controller.Snapshot().State.MobileOpen)

	second := s.Mount(first.ID, 0)
	assert.Equal(t, first.ID, second.ID)
	assert.NotSame(t, first.Controller, second.Controller)
	assert.Equal(t, nav.ClosedState, second.Controller.Snapshot().State)
	assert.Equal(t, 480, second.Controller.Snapshot().Viewport.Width, "width carries over")

	res := first.Controller.Dispatch(nav.Event{Kind: nav.EventToggle})
	assert.False(t, res.Handled, "the replaced controller is unmounted")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{1}, sizes)
}

func TestStore_SweepEvictsIdleSessions(t *testing.T) {
	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	s := navsession.NewStore(factory, time.Minute, navsession.WithClock(clk.Now))

	idle := s.GetOrCreate("idle", 0)
	active := s.GetOrCreate("active", 0)
	idle.Controller.Dispatch(nav.Event{Kind: nav.EventKey, Target: nav.ItemID(0), Key: nav.KeyArrowRight})

	clk.Advance(45 * time.Second)
	_, err := s.Get(active.ID)
	require.NoError(t, err)
	clk.Advance(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, err = s.Get("idle")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	res := idle.Controller.Dispatch(nav.Event{Kind: nav.EventToggle})
	assert.False(t, res.Changed, "evicted controllers are unmounted")
}

func TestStore_RemoveAndClose(t *testing.T) {
	s := navsession.NewStore(factory, time.Minute)
	a := s.GetOrCreate("a", 0)
	s.GetOrCreate("b", 0)

	s.Remove("a")
	assert.Equal(t, 1, s.Len())
	assert.False(t, a.Controller.Dispatch(nav.Event{Kind: nav.EventToggle}).Changed)

	s.Close()
	assert.Zero(t, s.Len())
}

func TestCookieID(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))

	e.Use(session.Middleware(store))

	const saved = "nav-123"
	e.GET("/set", func(c echo.Context) error {
		if err := navsession.SaveID(c, saved); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/get", func(c echo.Context) error {
		return c.String(http.StatusOK, navsession.IDFromRequest(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, saved, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get", nil))
	assert.Empty(t, rec.Body.String(), "no cookie, no id")
}
