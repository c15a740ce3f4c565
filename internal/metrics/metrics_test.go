package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.EntriesRead.WithLabelValues("new").Add(3)
	m.MalformedEntries.WithLabelValues("matches").Inc()
	m.ObserveTick(time.Now())

	assert.Equal(t, float64(3), testutil.ToFloat64(m.EntriesRead.WithLabelValues("new")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MalformedEntries.WithLabelValues("matches")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TickDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PublishErrors.WithLabelValues("depth").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marketfeed_publish_errors_total{channel="depth"} 1`)
}
