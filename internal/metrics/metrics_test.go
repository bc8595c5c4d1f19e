package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/demosite/internal/metrics"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	c := nav.NewController(nav.Options{Observers: []nav.Observer{m.Observer()}})

	c.Dispatch(nav.Event{Kind: nav.EventToggle})
	c.Dispatch(nav.Event{Kind: nav.EventToggle})
	m.Event(nav.EventKey, "http", nav.Result{Contained: true})
	m.SetSessions(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `demosite_nav_transitions_total{cause="toggle",to="open"} 1`)
	assert.Contains(t, out, `demosite_nav_transitions_total{cause="toggle",to="closed"} 1`)
	assert.Contains(t, out, `demosite_nav_events_total{kind="key",transport="http"} 1`)
	assert.Contains(t, out, "demosite_nav_focus_wraps_total 1")
	assert.Contains(t, out, "demosite_nav_sessions 2")
}
