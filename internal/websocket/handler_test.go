package websocket_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/view"
	ws "github.com/nfrund/demosite/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Type    string          `json:"type"`
	Target  string          `json:"target"`
	Payload json.RawMessage `json:"payload"`
}

func dial(t *testing.T) (context.Context, *websocket.Conn) {
	t.Helper()
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))

	store := navsession.NewStore(func(id string, width int) *nav.Controller {
		return nav.NewController(nav.Options{
			Width: width,
			Links: []nav.Link{
				{Label: "Home", Href: "/"},
				{Label: "Products", Href: "/products", Children: []nav.Link{
					{Label: "Alpha", Href: "/products/a"},
					{Label: "Beta", Href: "/products/b"},
				}},
			},
		})
	}, time.Minute)
	t.Cleanup(store.Close)

	h := ws.NewHandler(store, view.NavbarConfig{}, rendering.NewHTMLRenderer(), metrics.New())
	e.GET("/nav/ws", h.Serve)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/nav/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return ctx, conn
}

func read(t *testing.T, ctx context.Context, conn *websocket.Conn) frame {
	t.Helper()
	var f frame
	require.NoError(t, wsjson.Read(ctx, conn, &f))
	return f
}

func TestHandler_DeferredFocusWaitsForRenderedAck(t *testing.T) {
	ctx, conn := dial(t)

	require.NoError(t, wsjson.Write(ctx, conn, ws.ClientMessage{
		Type: ws.TypeEvent,
		Path: "/products/b",
		Event: nav.Event{
			Kind:   nav.EventKey,
			Key:    nav.KeyArrowDown,
			Target: nav.ItemID(1),
			Width:  500,
		},
	}))

	html := read(t, ctx, conn)
	require.Equal(t, ws.TypeHTML, html.Type)
	assert.Equal(t, "site-nav", html.Target)
	var markup string
	require.NoError(t, json.Unmarshal(html.Payload, &markup))
	assert.Contains(t, markup, `id="nav-item-1-menu"`)
	assert.Contains(t, markup, `aria-current="page"`)

	result := read(t, ctx, conn)
	require.Equal(t, ws.TypeResult, result.Type)
	var res nav.Result
	require.NoError(t, json.Unmarshal(result.Payload, &res))
	assert.True(t, res.Handled)
	assert.Empty(t, res.Focus, "focus into the submenu waits for the render")

	require.NoError(t, wsjson.Write(ctx, conn, ws.ClientMessage{Type: ws.TypeRendered}))
	focus := read(t, ctx, conn)
	require.Equal(t, ws.TypeFocus, focus.Type)
	var payload ws.FocusPayload
	require.NoError(t, json.Unmarshal(focus.Payload, &payload))
	assert.Equal(t, []string{nav.ChildID(1, 0)}, payload.IDs)
}

func TestHandler_FocusReportsDoNotRedraw(t *testing.T) {
	ctx, conn := dial(t)

	send := func(ev nav.Event) {
		require.NoError(t, wsjson.Write(ctx, conn, ws.ClientMessage{Type: ws.TypeEvent, Path: "/", Event: ev}))
	}

	send(nav.Event{Kind: nav.EventFocus, Target: nav.ItemID(1)})
	assert.Equal(t, ws.TypeResult, read(t, ctx, conn).Type, "a focus report sends no html frame")

	send(nav.Event{Kind: nav.EventKey, Key: nav.KeyTab, Target: nav.ItemID(1)})
	assert.Equal(t, ws.TypeResult, read(t, ctx, conn).Type, "an unhandled Tab sends no html frame")

	send(nav.Event{Kind: nav.EventKey, Key: nav.KeyArrowLeft, Target: nav.ItemID(1)})
	assert.Equal(t, ws.TypeResult, read(t, ctx, conn).Type)
	f := read(t, ctx, conn)
	require.Equal(t, ws.TypeFocus, f.Type)
	var payload ws.FocusPayload
	require.NoError(t, json.Unmarshal(f.Payload, &payload))
	assert.Equal(t, []string{nav.ItemID(0)}, payload.IDs)

	send(nav.Event{Kind: nav.EventToggle})
	assert.Equal(t, ws.TypeHTML, read(t, ctx, conn).Type)
	assert.Equal(t, ws.TypeResult, read(t, ctx, conn).Type)
}

func TestHandler_RejectsUnknownAndInvalidFrames(t *testing.T) {
	ctx, conn := dial(t)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "subscribe"}))
	f := read(t, ctx, conn)
	assert.Equal(t, ws.TypeError, f.Type)
	assert.Contains(t, string(f.Payload), "unsupported message type")

	require.NoError(t, wsjson.Write(ctx, conn, ws.ClientMessage{Type: ws.TypeEvent, Event: nav.Event{Kind: "explode"}}))
	f = read(t, ctx, conn)
	assert.Equal(t, ws.TypeError, f.Type)
}

func TestMessage_MarshalsBytesAsString(t *testing.T) {
	out, err := json.Marshal(ws.Message{Type: ws.TypeHTML, Target: "x", Payload: []byte("<p>")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"html","target":"x","payload":"<p>"}`, string(out))
}
