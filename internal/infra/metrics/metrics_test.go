//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salon-booking/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePaymentPoll(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObservePaymentPoll("paid", 2)
	m.ObservePaymentPoll("paid", 1)
	m.ObservePaymentPoll("processing", 5)

	expected := `
# HELP salon_payment_polls_total Payment verifications by outcome
# TYPE salon_payment_polls_total counter
salon_payment_polls_total{outcome="paid"} 2
salon_payment_polls_total{outcome="processing"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "salon_payment_polls_total"))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics
	m.ObservePaymentPoll("paid", 1)
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/providers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/providers/a", "/api/providers/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP salon_http_requests_total HTTP requests by route, method and status
# TYPE salon_http_requests_total counter
salon_http_requests_total{method="GET",route="/api/providers/:id",status="200"} 2
salon_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "salon_http_requests_total"))
}
