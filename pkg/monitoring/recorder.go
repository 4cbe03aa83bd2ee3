package monitoring

import "time"

// RecordReconcile counts one finished reconcile cycle.
func RecordReconcile(kind, outcome string) {
	reconcileOutcomeTotal.WithLabelValues(kind, outcome).Inc()
}

// SetComponentReady sets the readiness gauge of a component resource.
func SetComponentReady(kind, name, namespace string, ready bool) {
	v := 0.0
	if ready {
		v = 1
	}
	componentReady.WithLabelValues(kind, name, namespace).Set(v)
}

// DeleteComponent drops every series of a deleted component resource.
func DeleteComponent(kind, name, namespace string) {
	componentReady.DeletePartialMatch(map[string]string{
		"kind":      kind,
		"name":      name,
		"namespace": namespace,
	})
}

// RecordAutoscalerDecision counts one autoscaler cycle and its duration.
func RecordAutoscalerDecision(cluster, namespace, decision string, duration time.Duration) {
	autoscalerDecisionTotal.WithLabelValues(cluster, namespace, decision).Inc()
	autoscalerCycleDuration.WithLabelValues(cluster, namespace).Observe(duration.Seconds())
}

// SetAutoscalerSampledPods sets how many broker pods contributed a vote.
func SetAutoscalerSampledPods(cluster, namespace string, pods int) {
	autoscalerSampledPods.WithLabelValues(cluster, namespace).Set(float64(pods))
}

// SetBrokerDesiredReplicas records the replica count the autoscaler applied.
func SetBrokerDesiredReplicas(cluster, namespace string, replicas int32) {
	brokerDesiredReplicas.WithLabelValues(cluster, namespace).Set(float64(replicas))
}

// DeleteAutoscaler drops the autoscaler series of a cluster that no longer
// autoscales.
func DeleteAutoscaler(cluster, namespace string) {
	match := map[string]string{"cluster": cluster, "namespace": namespace}
	autoscalerSampledPods.DeletePartialMatch(match)
	brokerDesiredReplicas.DeletePartialMatch(match)
}

// RecordTokenSecretCreated counts one secret created by the token provisioner.
// secretType is "key" or "token".
func RecordTokenSecretCreated(namespace, secretType string) {
	tokenSecretsCreatedTotal.WithLabelValues(namespace, secretType).Inc()
}
