package metadata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

func TestBuildStandardLabels(t *testing.T) {
	tests := map[string]struct {
		clusterName string
		component   string
		want        map[string]string
	}{
		"typical case": {
			clusterName: "pulsar",
			component:   metadata.ComponentBroker,
			want: map[string]string{
				"cluster":                      "pulsar",
				"component":                    "broker",
				"app.kubernetes.io/name":       "pulsar",
				"app.kubernetes.io/instance":   "pulsar",
				"app.kubernetes.io/component":  "broker",
				"app.kubernetes.io/part-of":    "pulsar",
				"app.kubernetes.io/managed-by": "pulsar-operator",
			},
		},
		"empty strings allowed": {
			want: map[string]string{
				"cluster":                      "",
				"component":                    "",
				"app.kubernetes.io/name":       "pulsar",
				"app.kubernetes.io/instance":   "",
				"app.kubernetes.io/component":  "",
				"app.kubernetes.io/part-of":    "pulsar",
				"app.kubernetes.io/managed-by": "pulsar-operator",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.BuildStandardLabels(tc.clusterName, tc.component)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildStandardLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectorLabels_SubsetOfStandard(t *testing.T) {
	standard := metadata.BuildStandardLabels("c1", metadata.ComponentProxy)
	for k, v := range metadata.SelectorLabels("c1", metadata.ComponentProxy) {
		if standard[k] != v {
			t.Errorf("selector label %s=%s missing from standard labels", k, v)
		}
	}
}

func TestMergeLabels(t *testing.T) {
	tests := map[string]struct {
		standardLabels map[string]string
		customLabels   map[string]string
		want           map[string]string
	}{
		"standard labels win on conflicts": {
			standardLabels: map[string]string{"component": "broker"},
			customLabels:   map[string]string{"component": "mine", "team": "infra"},
			want:           map[string]string{"component": "broker", "team": "infra"},
		},
		"nil custom labels": {
			standardLabels: map[string]string{"cluster": "c1"},
			want:           map[string]string{"cluster": "c1"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.MergeLabels(tc.standardLabels, tc.customLabels)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResourceName(t *testing.T) {
	if got := metadata.ResourceName("pulsar", "broker"); got != "pulsar-broker" {
		t.Errorf("ResourceName() = %q, want %q", got, "pulsar-broker")
	}
}
