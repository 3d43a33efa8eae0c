package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestCounters(t *testing.T) {
	hit := CacheLookups.WithLabelValues(CacheHit)
	before := counterValue(t, hit)
	hit.Inc()
	if got := counterValue(t, hit); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	failed := UpstreamRequests.WithLabelValues(OutcomeError)
	before = counterValue(t, failed)
	failed.Add(2)
	if got := counterValue(t, failed); got != before+2 {
		t.Fatalf("expected %v, got %v", before+2, got)
	}
}
