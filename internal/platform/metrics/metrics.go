package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nutrisnap"

// Metrics agrupa los collectors del servicio. Los métodos son nil-safe.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	plansComputed   *prometheus.CounterVec
	onboardingTotal *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// New registra los collectors en reg. Si reg es nil usa un registry propio
// (evita panics por doble registro en tests).
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests handled, by route pattern, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route pattern.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		plansComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "nutrition",
				Name:      "plans_computed_total",
				Help:      "Calorie/macro plans computed, by goal.",
			},
			[]string{"goal"},
		),
		onboardingTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "onboarding",
				Name:      "completions_total",
				Help:      "Onboarding completion attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Latency of requests to the hosted backend.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.plansComputed, m.onboardingTotal, m.upstreamLatency)
	return m
}

func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) IncPlan(goal string) {
	if m == nil {
		return
	}
	m.plansComputed.WithLabelValues(goal).Inc()
}

// Outcomes de onboarding.
const (
	OutcomePersisted = "persisted"
	OutcomeGuest     = "guest"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)

func (m *Metrics) IncOnboarding(outcome string) {
	if m == nil {
		return
	}
	m.onboardingTotal.WithLabelValues(outcome).Inc()
}

// InstrumentTransport mide la latencia de los requests salientes al backend.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if m == nil {
		return next
	}
	return promhttp.InstrumentRoundTripperDuration(m.upstreamLatency, next)
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
