package broker

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
)

const (
	// HTTPPortName is the broker admin and metrics port name.
	HTTPPortName = "http"
	// HTTPSPortName is the broker admin port name with TLS.
	HTTPSPortName = "https"
	// PulsarPortName is the binary protocol port name.
	PulsarPortName = "pulsar"
	// PulsarSSLPortName is the binary protocol port name with TLS.
	PulsarSSLPortName = "pulsarssl"
)

// buildContainerPorts returns the ports the broker container listens on.
func buildContainerPorts(tls bool) []corev1.ContainerPort {
	ports := []corev1.ContainerPort{
		workload.ContainerPort(HTTPPortName, workload.BrokerHTTPPort),
		workload.ContainerPort(PulsarPortName, workload.BrokerPulsarPort),
	}
	if tls {
		ports = append(ports,
			workload.ContainerPort(HTTPSPortName, workload.BrokerHTTPSPort),
			workload.ContainerPort(PulsarSSLPortName, workload.BrokerPulsarSSLPort),
		)
	}
	return ports
}

// buildServicePorts returns the ports published by the broker Service.
func buildServicePorts(tls bool) []corev1.ServicePort {
	ports := []corev1.ServicePort{
		workload.ServicePort(HTTPPortName, workload.BrokerHTTPPort),
		workload.ServicePort(PulsarPortName, workload.BrokerPulsarPort),
	}
	if tls {
		ports = append(ports,
			workload.ServicePort(HTTPSPortName, workload.BrokerHTTPSPort),
			workload.ServicePort(PulsarSSLPortName, workload.BrokerPulsarSSLPort),
		)
	}
	return ports
}
