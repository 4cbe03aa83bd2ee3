package autoscaler

import (
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

// DefaultGracePeriod is the minimum pod age before its metrics are trusted.
const DefaultGracePeriod = 30 * time.Second

// CheckReadiness reports whether the broker fleet is stable enough to be
// measured. When it is not, reason says why.
func CheckReadiness(
	expected int32,
	sts *appsv1.StatefulSet,
	pods []corev1.Pod,
	now time.Time,
	grace time.Duration,
) (ready bool, reason string) {
	if sts == nil {
		return false, "broker StatefulSet does not exist yet"
	}
	if sts.Status.ReadyReplicas != expected {
		return false, fmt.Sprintf("not all StatefulSet replicas ready, expected %d, got %d", expected, sts.Status.ReadyReplicas)
	}
	if int32(len(pods)) != expected {
		return false, fmt.Sprintf("found %d broker pods, expected %d", len(pods), expected)
	}

	for i := range pods {
		pod := &pods[i]
		if !primaryContainerReady(pod) {
			return false, fmt.Sprintf("broker pod %s is not ready", pod.Name)
		}
		if pod.Status.StartTime == nil {
			return false, fmt.Sprintf("broker pod %s has not started", pod.Name)
		}
		if age := now.Sub(pod.Status.StartTime.Time); age < grace {
			return false, fmt.Sprintf("broker pod %s is too young (%s)", pod.Name, age.Truncate(time.Second))
		}
	}
	return true, ""
}

func primaryContainerReady(pod *corev1.Pod) bool {
	statuses := pod.Status.ContainerStatuses
	if len(statuses) == 0 {
		return false
	}
	if len(pod.Spec.Containers) > 0 {
		for _, cs := range statuses {
			if cs.Name == pod.Spec.Containers[0].Name {
				return cs.Ready
			}
		}
	}
	return statuses[0].Ready
}
