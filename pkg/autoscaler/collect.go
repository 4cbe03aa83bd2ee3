package autoscaler

import (
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
)

// Skip is a pod left out of the vote.
type Skip struct {
	Pod    string
	Reason string
}

// Collect pairs every pod's primary container CPU request with its observed
// usage. Pods missing either value are returned as skips. Stats are ordered
// by pod name.
func Collect(pods []corev1.Pod, metrics []metricsv1beta1.PodMetrics) ([]BrokerStat, []Skip) {
	usage := make(map[string]metricsv1beta1.PodMetrics, len(metrics))
	for _, m := range metrics {
		usage[m.Name] = m
	}

	var (
		stats []BrokerStat
		skips []Skip
	)
	for _, pod := range pods {
		if len(pod.Spec.Containers) == 0 {
			skips = append(skips, Skip{Pod: pod.Name, Reason: "pod has no containers"})
			continue
		}
		primary := pod.Spec.Containers[0]

		request, ok := primary.Resources.Requests[corev1.ResourceCPU]
		if !ok || request.IsZero() {
			skips = append(skips, Skip{Pod: pod.Name, Reason: "CPU request not set"})
			continue
		}

		m, ok := usage[pod.Name]
		if !ok {
			skips = append(skips, Skip{Pod: pod.Name, Reason: "no metrics reported"})
			continue
		}
		used, ok := containerCPU(m, primary.Name)
		if !ok {
			skips = append(skips, Skip{Pod: pod.Name, Reason: "CPU usage not reported"})
			continue
		}

		stats = append(stats, BrokerStat{
			Pod:               pod.Name,
			UsedMilliCPU:      used,
			RequestedMilliCPU: request.MilliValue(),
		})
	}

	slices.SortFunc(stats, func(a, b BrokerStat) int { return strings.Compare(a.Pod, b.Pod) })
	return stats, skips
}

func containerCPU(m metricsv1beta1.PodMetrics, container string) (int64, bool) {
	if len(m.Containers) == 0 {
		return 0, false
	}
	c := m.Containers[0]
	for _, candidate := range m.Containers {
		if candidate.Name == container {
			c = candidate
			break
		}
	}
	q, ok := c.Usage[corev1.ResourceCPU]
	if !ok {
		return 0, false
	}
	return q.MilliValue(), true
}
