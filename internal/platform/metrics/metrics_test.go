package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncPlan("lose")
	m.IncPlan("lose")
	m.IncOnboarding(OutcomeGuest)
	m.ObserveHTTP("/onboarding/preview", http.MethodPost, 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.plansComputed.WithLabelValues("lose")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.onboardingTotal.WithLabelValues(OutcomeGuest)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/onboarding/preview", "POST", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.IncPlan("gain")
	m.IncOnboarding(OutcomeFailed)
	m.ObserveHTTP("", "GET", 500, time.Second)
	assert.Equal(t, http.DefaultTransport, m.InstrumentTransport(nil))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(nil)
	m.IncPlan("maintain")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nutrisnap_nutrition_plans_computed_total{goal="maintain"} 1`)
}
