package autoscaler

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
)

func withRequest(pod corev1.Pod, cpu string) corev1.Pod {
	pod.Spec.Containers[0].Resources.Requests = corev1.ResourceList{
		corev1.ResourceCPU: resource.MustParse(cpu),
	}
	return pod
}

func podMetrics(pod, cpu string) metricsv1beta1.PodMetrics {
	return metricsv1beta1.PodMetrics{
		ObjectMeta: metav1.ObjectMeta{Name: pod, Namespace: "default"},
		Containers: []metricsv1beta1.ContainerMetrics{{
			Name:  "pulsar-broker",
			Usage: corev1.ResourceList{corev1.ResourceCPU: resource.MustParse(cpu)},
		}},
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	noUsage := podMetrics("b", "0")
	noUsage.Containers[0].Usage = corev1.ResourceList{}

	tests := map[string]struct {
		pods      []corev1.Pod
		metrics   []metricsv1beta1.PodMetrics
		wantStats []BrokerStat
		wantSkips []Skip
	}{
		"Pairs Usage With Request": {
			pods: []corev1.Pod{
				withRequest(brokerPod("b", time.Hour, true), "1"),
				withRequest(brokerPod("a", time.Hour, true), "500m"),
			},
			metrics: []metricsv1beta1.PodMetrics{podMetrics("a", "100m"), podMetrics("b", "900m")},
			wantStats: []BrokerStat{
				{Pod: "a", UsedMilliCPU: 100, RequestedMilliCPU: 500},
				{Pod: "b", UsedMilliCPU: 900, RequestedMilliCPU: 1000},
			},
		},
		"Missing Request Skipped": {
			pods:      []corev1.Pod{brokerPod("a", time.Hour, true)},
			metrics:   []metricsv1beta1.PodMetrics{podMetrics("a", "100m")},
			wantSkips: []Skip{{Pod: "a", Reason: "CPU request not set"}},
		},
		"Missing Metrics Skipped": {
			pods: []corev1.Pod{
				withRequest(brokerPod("a", time.Hour, true), "1"),
				withRequest(brokerPod("b", time.Hour, true), "1"),
			},
			metrics:   []metricsv1beta1.PodMetrics{podMetrics("a", "200m")},
			wantStats: []BrokerStat{{Pod: "a", UsedMilliCPU: 200, RequestedMilliCPU: 1000}},
			wantSkips: []Skip{{Pod: "b", Reason: "no metrics reported"}},
		},
		"Missing Usage Skipped": {
			pods:      []corev1.Pod{withRequest(brokerPod("b", time.Hour, true), "1")},
			metrics:   []metricsv1beta1.PodMetrics{noUsage},
			wantSkips: []Skip{{Pod: "b", Reason: "CPU usage not reported"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stats, skips := Collect(tc.pods, tc.metrics)
			if diff := cmp.Diff(tc.wantStats, stats); diff != "" {
				t.Errorf("Collect() stats mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantSkips, skips); diff != "" {
				t.Errorf("Collect() skips mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollect_AllSkippedDecidesNoAction(t *testing.T) {
	t.Parallel()

	stats, skips := Collect([]corev1.Pod{withRequest(brokerPod("a", time.Hour, true), "1")}, nil)
	if len(skips) != 1 {
		t.Fatalf("skips = %v, want one", skips)
	}
	if got := Decide(1, stats, defaultPolicy()); got.Action != NoAction {
		t.Errorf("Decide() = %s, want %s", got.Action, NoAction)
	}
}
