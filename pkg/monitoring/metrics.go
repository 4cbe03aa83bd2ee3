package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Reconcile outcomes, one per terminal state of the reconcile state machine.
const (
	OutcomeReady   = "ready"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	reconcileOutcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsar_operator_reconcile_outcome_total",
			Help: "Reconcile cycles by resource kind and terminal outcome.",
		},
		[]string{"kind", "outcome"},
	)

	componentReady = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pulsar_operator_component_ready",
			Help: "1 when the last reconcile of the resource ended Ready, 0 otherwise.",
		},
		[]string{"kind", "name", "namespace"},
	)

	autoscalerDecisionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsar_operator_autoscaler_decision_total",
			Help: "Broker autoscaler cycles by decision.",
		},
		[]string{"cluster", "namespace", "decision"},
	)

	autoscalerCycleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulsar_operator_autoscaler_cycle_duration_seconds",
			Help:    "Latency of one broker autoscaler cycle in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cluster", "namespace"},
	)

	autoscalerSampledPods = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pulsar_operator_autoscaler_sampled_pods",
			Help: "Broker pods with usable CPU data in the last autoscaler cycle.",
		},
		[]string{"cluster", "namespace"},
	)

	brokerDesiredReplicas = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pulsar_operator_broker_desired_replicas",
			Help: "Broker replica count last written by the autoscaler.",
		},
		[]string{"cluster", "namespace"},
	)

	tokenSecretsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsar_operator_token_secrets_created_total",
			Help: "Secrets created by the token provisioner, by secret type.",
		},
		[]string{"namespace", "type"},
	)
)

func init() {
	metrics.Registry.MustRegister(Collectors()...)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		reconcileOutcomeTotal,
		componentReady,
		autoscalerDecisionTotal,
		autoscalerCycleDuration,
		autoscalerSampledPods,
		brokerDesiredReplicas,
		tokenSecretsCreatedTotal,
	}
}
