package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCharts(t *testing.T) {
	before := testutil.ToFloat64(ChartsCastTotal.WithLabelValues(SourceCache))

	RecordCharts(SourceCache, 3)
	RecordCharts(SourceCache, 0)

	got := testutil.ToFloat64(ChartsCastTotal.WithLabelValues(SourceCache)) - before
	if got != 3 {
		t.Fatalf("charts_cast_total{source=cache} grew by %v, want 3", got)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))

	RecordHTTPRequest("GET", "/health", "200", 5*time.Millisecond)

	got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")) - before
	if got != 1 {
		t.Fatalf("http_requests_total grew by %v, want 1", got)
	}
	if n := testutil.CollectAndCount(HTTPRequestDuration); n == 0 {
		t.Fatal("no duration series collected")
	}
}
