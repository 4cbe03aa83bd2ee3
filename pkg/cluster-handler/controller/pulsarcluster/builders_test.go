package pulsarcluster

import (
	"testing"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resolver"
	"github.com/numtide/pulsar-operator/pkg/testutil"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

func TestBuildBroker_Labels(t *testing.T) {
	t.Parallel()

	cluster := newCluster(pulsarv1alpha1.PulsarClusterSpec{})
	cluster.Labels = map[string]string{
		"team":                "streaming",
		metadata.LabelCluster: "other",
		metadata.LabelAppName: "not-pulsar",
	}

	b, err := BuildBroker(cluster, resolver.ResolveCluster(cluster.Spec), testutil.NewScheme(t))
	if err != nil {
		t.Fatalf("BuildBroker() error = %v", err)
	}

	tests := map[string]struct {
		key  string
		want string
	}{
		"cluster label carried over": {key: "team", want: "streaming"},
		"cluster name wins":          {key: metadata.LabelCluster, want: "pulsar"},
		"app name wins":              {key: metadata.LabelAppName, want: metadata.AppNamePulsar},
		"component set":              {key: metadata.LabelComponent, want: metadata.ComponentBroker},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := b.Labels[tc.key]; got != tc.want {
				t.Errorf("label %s = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}
