package coopbus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsCollectorDescribesAndCollectsWithoutPanicking(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { r.RespondOK(nil) })
	top.SubscribeDefault(func(e *Event) {})

	collector := Metrics()

	descs := make(chan *prometheus.Desc, 16)
	collector.Describe(descs)
	close(descs)
	if got := len(descs); got != 8 {
		t.Fatalf("Describe sent %d descriptors, want 8", got)
	}

	metrics := make(chan prometheus.Metric, 16)
	collector.Collect(metrics)
	close(metrics)
	if got := len(metrics); got != 8 {
		t.Fatalf("Collect produced %d metrics, want 8", got)
	}
}
