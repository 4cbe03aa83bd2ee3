package broker

import (
	corev1 "k8s.io/api/core/v1"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
)

// BuildService creates the Service in front of the brokers.
func BuildService(namespace string, spec pulsarv1alpha1.BrokerFullSpec) *corev1.Service {
	names := workload.NamesFor(spec.Global, namespace)
	return workload.BuildService(
		names.Broker,
		namespace,
		labels(spec),
		selector(spec),
		spec.Broker.Service,
		buildServicePorts(workload.BrokerTLSEnabled(spec.Global)),
	)
}
