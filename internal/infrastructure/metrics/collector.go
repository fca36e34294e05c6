// Package metrics exports checkout overlay lifecycle counters to Prometheus.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

const namespace = "paysurface"

// Collector implements port.Metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	SessionsOpened  *prometheus.CounterVec
	SessionsClosed  *prometheus.CounterVec
	SessionsActive  prometheus.Gauge
	SessionDuration prometheus.Histogram
	Relayouts       prometheus.Counter
	MonitorFaults   prometheus.Counter
	TransientFaults prometheus.Counter

	mu       sync.Mutex
	openedAt time.Time
	now      func() time.Time
}

var _ port.Metrics = (*Collector)(nil)

// NewCollector creates a collector with a fresh registry that also carries
// the Go runtime and process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		now:      time.Now,

		SessionsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_opened_total",
				Help:      "Checkout sessions opened, by surface backend.",
			},
			[]string{"backend"},
		),
		SessionsClosed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_closed_total",
				Help:      "Checkout sessions closed, by reason.",
			},
			[]string{"reason"},
		),
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Whether a checkout session is live.",
		}),
		SessionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Time from open to teardown of a checkout session.",
			Buckets:   []float64{.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}),
		Relayouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relayouts_total",
			Help:      "Geometry recomputations applied to a live overlay.",
		}),
		MonitorFaults: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monitor_faults_total",
			Help:      "Viewport monitor ticks that failed and stopped the monitor.",
		}),
		TransientFaults: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transient_faults_total",
			Help:      "Host UI updates that failed while the overlay stayed alive.",
		}),
	}
}

func (c *Collector) SessionOpened(backend string) {
	c.SessionsOpened.WithLabelValues(backend).Inc()
	c.SessionsActive.Set(1)

	c.mu.Lock()
	c.openedAt = c.now()
	c.mu.Unlock()
}

func (c *Collector) SessionClosed(reason entity.CloseReason) {
	c.SessionsClosed.WithLabelValues(string(reason)).Inc()
	c.SessionsActive.Set(0)

	c.mu.Lock()
	openedAt := c.openedAt
	c.openedAt = time.Time{}
	c.mu.Unlock()

	// sessions that failed before a surface existed were never opened
	if !openedAt.IsZero() {
		c.SessionDuration.Observe(c.now().Sub(openedAt).Seconds())
	}
}

func (c *Collector) Relayout()       { c.Relayouts.Inc() }
func (c *Collector) MonitorFault()   { c.MonitorFaults.Inc() }
func (c *Collector) TransientFault() { c.TransientFaults.Inc() }

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
