package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveCommit(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveCommit(domain.ActionPurchase, "approved", 120*time.Millisecond)
	c.ObserveCommit(domain.ActionPurchase, "approved", 80*time.Millisecond)
	c.ObserveCommit(domain.ActionVoid, "transport_failure", time.Second)

	count, err := testutil.GatherAndCount(c.Registry(), "trident_gateway_gateway_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(c.Registry(), "trident_gateway_gateway_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveCommit(domain.ActionRefund, "declined", 10*time.Millisecond)
	c.ObserveHTTP("POST /v1/refunds", http.StatusOK)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `trident_gateway_gateway_requests_total{action="refund",outcome="declined"} 1`)
	assert.Contains(t, body, `trident_gateway_http_requests_total{route="POST /v1/refunds",status="200"} 1`)
}
