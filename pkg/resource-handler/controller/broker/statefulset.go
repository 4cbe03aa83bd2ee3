package broker

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

const (
	// WaitBookieContainerName is the init container that blocks until the
	// first bookie resolves.
	WaitBookieContainerName = "wait-bookkeeper-ready"

	// MetricsURL is the local endpoint polled by the broker probes.
	MetricsURL = "http://localhost:8080/metrics/"
)

func labels(spec pulsarv1alpha1.BrokerFullSpec) map[string]string {
	return metadata.BuildStandardLabels(spec.Global.Name, spec.Global.Components.BrokerBaseName)
}

func selector(spec pulsarv1alpha1.BrokerFullSpec) map[string]string {
	return metadata.SelectorLabels(spec.Global.Name, spec.Global.Components.BrokerBaseName)
}

// BuildStatefulSet creates the StatefulSet running the brokers.
// Returns a deterministic StatefulSet based on the resolved spec.
func BuildStatefulSet(namespace string, spec pulsarv1alpha1.BrokerFullSpec) *appsv1.StatefulSet {
	names := workload.NamesFor(spec.Global, namespace)
	b := spec.Broker
	tls := workload.BrokerTLSEnabled(spec.Global)

	var parts workload.PodParts
	if tls {
		parts.AddTLS(workload.BrokerTLSSecret(spec.Global))
	}
	parts.InitContainers = append(parts.InitContainers,
		workload.WaitForHost(WaitBookieContainerName, &b.ComponentSpec, names.PodHost(names.Bookie, 0)))
	parts.AddLibs(b.InitContainer)

	probe := workload.Probe(b.Probe, workload.HTTPCheck(b.Probe, MetricsURL))
	command := workload.Command(tls, workload.ConfigFromEnv("broker",
		"conf/broker.conf",
		"conf/client.conf",
		"conf/functions_worker.yml",
	)...)

	podLabels := labels(spec)
	return &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Broker,
			Namespace: namespace,
			Labels:    podLabels,
		},
		Spec: appsv1.StatefulSetSpec{
			ServiceName:         names.Broker,
			Replicas:            b.Replicas,
			Selector:            &metav1.LabelSelector{MatchLabels: selector(spec)},
			PodManagementPolicy: b.PodManagementPolicy,
			UpdateStrategy:      *b.UpdateStrategy,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: workload.PodAnnotations(workload.BrokerHTTPPort, b.Annotations),
				},
				Spec: corev1.PodSpec{
					DNSConfig:                     spec.Global.DNSConfig,
					ServiceAccountName:            b.ServiceAccountName,
					NodeSelector:                  b.NodeSelectors,
					TerminationGracePeriodSeconds: b.GracePeriod,
					InitContainers:                parts.InitContainers,
					Containers: []corev1.Container{
						{
							Name:            names.Broker,
							Image:           b.Image,
							ImagePullPolicy: b.ImagePullPolicy,
							Resources:       workload.Resources(b.Resources),
							Command:         []string{"sh", "-c"},
							Args:            []string{command},
							Ports:           buildContainerPorts(tls),
							EnvFrom:         workload.EnvFromConfigMap(names.Broker),
							LivenessProbe:   probe,
							ReadinessProbe:  probe,
							VolumeMounts:    parts.Mounts,
						},
					},
					Volumes: parts.Volumes,
				},
			},
		},
	}
}
