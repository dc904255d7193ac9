package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/metrics"
	"go.trai.ch/dockq/internal/core/domain"
)

func TestPrometheus_Counters(t *testing.T) {
	m := metrics.New()

	m.ObserveDispatch("ACHE", domain.OutcomeComputed, 2*time.Second)
	m.ObserveDispatch("ACHE", domain.OutcomeCached, time.Millisecond)
	m.ObserveDispatch("ACHE", domain.OutcomeCached, time.Millisecond)
	m.EngineFailure("ACHE", "timeout")
	m.StoreWriteFailure()

	count, err := testutil.GatherAndCount(m.Registry(),
		"dockq_dispatch_total",
		"dockq_engine_failures_total",
		"dockq_store_write_failures_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count, "two dispatch series, one engine failure series, one store counter")

	count, err = testutil.GatherAndCount(m.Registry(), "dockq_dispatch_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheus_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveDispatch("EGFR", domain.OutcomeMock, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dockq_dispatch_total{outcome="mock",target="EGFR"} 1`)
}
