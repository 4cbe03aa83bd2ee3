package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorsRegistered(t *testing.T) {
	if len(Collectors()) == 0 {
		t.Fatal("expected at least one collector, got 0")
	}
}

func TestMetricNamingConvention(t *testing.T) {
	for _, c := range Collectors() {
		for _, desc := range describe(c) {
			name := descField(desc, "fqName")
			if !strings.HasPrefix(name, "pulsar_operator_") {
				t.Errorf("metric %q does not start with pulsar_operator_ prefix", name)
			}
		}
	}
}

func TestMetricHelpNonEmpty(t *testing.T) {
	for _, c := range Collectors() {
		for _, desc := range describe(c) {
			if descField(desc, "help") == "" {
				t.Errorf("metric %q has empty help string", desc.String())
			}
		}
	}
}

func TestMetricLabels(t *testing.T) {
	tests := map[string]struct {
		collector  prometheus.Collector
		wantLabels []string
	}{
		"reconcileOutcomeTotal": {
			collector:  reconcileOutcomeTotal,
			wantLabels: []string{"kind", "outcome"},
		},
		"componentReady": {
			collector:  componentReady,
			wantLabels: []string{"kind", "name", "namespace"},
		},
		"autoscalerDecisionTotal": {
			collector:  autoscalerDecisionTotal,
			wantLabels: []string{"cluster", "namespace", "decision"},
		},
		"brokerDesiredReplicas": {
			collector:  brokerDesiredReplicas,
			wantLabels: []string{"cluster", "namespace"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			descs := describe(tt.collector)
			if len(descs) != 1 {
				t.Fatalf("expected 1 descriptor, got %d", len(descs))
			}
			descStr := descs[0].String()
			for _, label := range tt.wantLabels {
				if !strings.Contains(descStr, label) {
					t.Errorf("metric %s missing label %q in descriptor: %s", name, label, descStr)
				}
			}
		})
	}
}

func describe(c prometheus.Collector) []*prometheus.Desc {
	ch := make(chan *prometheus.Desc, 10)
	c.Describe(ch)
	close(ch)
	var out []*prometheus.Desc
	for d := range ch {
		out = append(out, d)
	}
	return out
}

// descField pulls a quoted field from the Desc string representation.
// Format: Desc{fqName: "pulsar_...", help: "...", ...}
func descField(desc *prometheus.Desc, key string) string {
	s := desc.String()
	prefix := key + ": \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}
