package workload

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// ServicePort builds a TCP service port that targets the container port of
// the same name.
func ServicePort(name string, port int32) corev1.ServicePort {
	return corev1.ServicePort{
		Name:       name,
		Protocol:   corev1.ProtocolTCP,
		Port:       port,
		TargetPort: intstr.FromString(name),
	}
}

// ContainerPort builds a named TCP container port.
func ContainerPort(name string, port int32) corev1.ContainerPort {
	return corev1.ContainerPort{
		Name:          name,
		ContainerPort: port,
		Protocol:      corev1.ProtocolTCP,
	}
}

// BuildService returns the Service of a component. ports are followed by the
// configured additional ports. A headless service has no cluster IP and
// publishes not-ready addresses so that peers can find each other during
// bootstrap.
func BuildService(
	name, namespace string,
	labels, selector map[string]string,
	cfg *pulsarv1alpha1.ServiceConfig,
	ports []corev1.ServicePort,
) *corev1.Service {
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Spec: corev1.ServiceSpec{
			Selector: selector,
			Ports:    ports,
		},
	}
	if cfg == nil {
		svc.Spec.Type = corev1.ServiceTypeClusterIP
		return svc
	}

	svc.Annotations = cfg.Annotations
	svc.Spec.Type = cfg.Type
	svc.Spec.Ports = append(svc.Spec.Ports, cfg.AdditionalPorts...)
	if ptr.Deref(cfg.Headless, false) {
		svc.Spec.Type = corev1.ServiceTypeClusterIP
		svc.Spec.ClusterIP = corev1.ClusterIPNone
		svc.Spec.PublishNotReadyAddresses = true
	}
	if cfg.LoadBalancerIP != "" && svc.Spec.Type == corev1.ServiceTypeLoadBalancer {
		svc.Spec.LoadBalancerIP = cfg.LoadBalancerIP
	}
	return svc
}
