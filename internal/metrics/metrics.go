// Package metrics holds the Prometheus collectors of the blog backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login failure reasons.
const (
	ReasonUnknownUser   = "unknown_user"
	ReasonWrongPassword = "wrong_password"
	ReasonError         = "error"
)

// Metrics owns a private registry so several instances (e.g. in tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	loginSuccess    prometheus.Counter
	loginFailure    *prometheus.CounterVec
	registerSuccess prometheus.Counter
	postsCreated    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "login_success_total",
			Help: "Total successful login attempts",
		}),
		loginFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_failure_total",
			Help: "Total failed login attempts",
		}, []string{"reason"}),
		registerSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "register_success_total",
			Help: "Total successful register attempts",
		}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total posts successfully created",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.loginSuccess,
		m.loginFailure,
		m.registerSuccess,
		m.postsCreated,
	)

	return m
}

// ObserveRequest records one served request. route should be the route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) LoginSucceeded() {
	m.loginSuccess.Inc()
}

func (m *Metrics) LoginFailed(reason string) {
	m.loginFailure.WithLabelValues(reason).Inc()
}

func (m *Metrics) Registered() {
	m.registerSuccess.Inc()
}

func (m *Metrics) PostCreated() {
	m.postsCreated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
