// Package monitoring provides Prometheus metrics and OpenTelemetry tracing
// helpers for the Pulsar Operator. It exposes domain-specific gauges and
// counters that complement the generic controller-runtime metrics already
// registered by the framework.
//
// All metrics follow the naming convention pulsar_operator_<subject>_<metric>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.RecordReconcile("Broker", monitoring.OutcomeReady)
//	monitoring.SetComponentReady("Broker", broker.Name, broker.Namespace, true)
//
// Usage in the autoscaler:
//
//	monitoring.RecordAutoscalerDecision(cluster, namespace, decision.Action.String(), elapsed)
package monitoring
