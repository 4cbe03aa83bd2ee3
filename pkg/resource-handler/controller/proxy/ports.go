package proxy

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
)

const (
	// WebSocketPortName is the websocket port name.
	WebSocketPortName = "wss"
	// WebSocketPort is the websocket port.
	WebSocketPort int32 = 8001
)

type listeners struct {
	plain bool
	tls   bool
}

func listenersFor(spec pulsarv1alpha1.ProxyFullSpec) listeners {
	tls := workload.ProxyTLSEnabled(spec.Global)
	plainWithTLS := spec.Proxy.Service != nil && ptr.Deref(spec.Proxy.Service.EnablePlainTextWithTLS, false)
	return listeners{plain: !tls || plainWithTLS, tls: tls}
}

func (l listeners) servicePorts() []corev1.ServicePort {
	var ports []corev1.ServicePort
	if l.tls {
		ports = append(ports,
			workload.ServicePort("https", workload.BrokerHTTPSPort),
			workload.ServicePort("pulsarssl", workload.BrokerPulsarSSLPort),
		)
	}
	if l.plain {
		ports = append(ports,
			workload.ServicePort("http", workload.BrokerHTTPPort),
			workload.ServicePort("pulsar", workload.BrokerPulsarPort),
		)
	}
	return ports
}

// containerPorts mirrors servicePorts so that named target ports resolve,
// plus the websocket listener.
func (l listeners) containerPorts() []corev1.ContainerPort {
	var ports []corev1.ContainerPort
	if l.tls {
		ports = append(ports,
			workload.ContainerPort("https", workload.BrokerHTTPSPort),
			workload.ContainerPort("pulsarssl", workload.BrokerPulsarSSLPort),
		)
	}
	if l.plain {
		ports = append(ports,
			workload.ContainerPort("http", workload.BrokerHTTPPort),
			workload.ContainerPort("pulsar", workload.BrokerPulsarPort),
		)
	}
	return append(ports, workload.ContainerPort(WebSocketPortName, WebSocketPort))
}
