package metrics

import (
	"net/http"

	"github.com/nfrund/demosite/internal/nav"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "demosite"

// Transport labels for Event.
const (
	TransportHTTP = "http"
	TransportWS   = "ws"
)

// Metrics holds the navigation collectors.
type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	events      *prometheus.CounterVec
	contained   prometheus.Counter
	sessions    prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nav",
			Name:      "transitions_total",
			Help:      "Menu state transitions by cause and resulting state.",
		}, []string{"cause", "to"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nav",
			Name:      "events_total",
			Help:      "Navigation events received by kind and transport.",
		}, []string{"kind", "transport"}),
		contained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nav",
			Name:      "focus_wraps_total",
			Help:      "Tab presses wrapped by the focus containment guard.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "nav",
			Name:      "sessions",
			Help:      "Live navigation sessions.",
		}),
	}
	reg.MustRegister(m.transitions, m.events, m.contained, m.sessions)
	return m
}

// Observer counts transitions.
func (m *Metrics) Observer() nav.Observer {
	return func(t nav.Transition) {
		to := "open"
		switch {
		case !t.To.MobileOpen:
			to = "closed"
		case t.To.SubmenuOpen():
			to = "submenu"
		}
		m.transitions.WithLabelValues(string(t.Cause), to).Inc()
	}
}

// Event records a dispatched event and its result.
func (m *Metrics) Event(kind nav.EventKind, transport string, res nav.Result) {
	m.events.WithLabelValues(string(kind), transport).Inc()
	if res.Contained {
		m.contained.Inc()
	}
}

// SetSessions reports the number of live sessions.
func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
