package proxy

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

const (
	// WaitBrokerContainerName blocks until the broker service resolves.
	WaitBrokerContainerName = "wait-broker-ready"

	// DefaultMemoryOpts are the proxy JVM settings.
	DefaultMemoryOpts = "-Xms1g -Xmx1g -XX:MaxDirectMemorySize=1g"

	// MetricsURL is the local endpoint polled by the proxy probes.
	MetricsURL = "http://localhost:8080/metrics/"
)

func labels(spec pulsarv1alpha1.ProxyFullSpec) map[string]string {
	return metadata.BuildStandardLabels(spec.Global.Name, spec.Global.Components.ProxyBaseName)
}

func selector(spec pulsarv1alpha1.ProxyFullSpec) map[string]string {
	return metadata.SelectorLabels(spec.Global.Name, spec.Global.Components.ProxyBaseName)
}

// BuildService creates the Service in front of the proxies.
func BuildService(namespace string, spec pulsarv1alpha1.ProxyFullSpec) *corev1.Service {
	names := workload.NamesFor(spec.Global, namespace)
	return workload.BuildService(
		names.Proxy,
		namespace,
		labels(spec),
		selector(spec),
		spec.Proxy.Service,
		listenersFor(spec).servicePorts(),
	)
}

// BuildConfigMap creates the environment ConfigMap of the proxies.
func BuildConfigMap(namespace string, spec pulsarv1alpha1.ProxyFullSpec) *corev1.ConfigMap {
	names := workload.NamesFor(spec.Global, namespace)

	data := workload.LogDefaults()
	data["brokerServiceURL"] = names.BrokerServiceURL()
	data["brokerServiceURLTLS"] = names.BrokerServiceURLTLS()
	data["brokerWebServiceURL"] = names.BrokerWebServiceURL()
	data["brokerWebServiceURLTLS"] = names.BrokerWebServiceURLTLS()
	data["zookeeperServers"] = names.ZookeeperServers()
	data["configurationStoreServers"] = names.ZookeeperServers()
	data["PULSAR_MEM"] = DefaultMemoryOpts
	data["PULSAR_GC"] = "-XX:+UseG1GC"
	data["numHttpServerThreads"] = "10"

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Proxy,
			Namespace: namespace,
			Labels:    labels(spec),
		},
		Data: workload.MergeConfig(data, &spec.Proxy.ComponentSpec),
	}
}

// BuildDeployment creates the Deployment running the proxies.
func BuildDeployment(namespace string, spec pulsarv1alpha1.ProxyFullSpec) *appsv1.Deployment {
	names := workload.NamesFor(spec.Global, namespace)
	p := spec.Proxy
	l := listenersFor(spec)

	var parts workload.PodParts
	if l.tls {
		parts.AddTLS(workload.ProxyTLSSecret(spec.Global))
	}
	parts.InitContainers = append(parts.InitContainers,
		workload.WaitForHost(WaitBrokerContainerName, &p.ComponentSpec, names.ServiceHost(names.Broker)))
	parts.AddLibs(p.InitContainer)

	probe := workload.Probe(p.Probe, workload.HTTPCheck(p.Probe, MetricsURL))
	command := workload.Command(l.tls, workload.ConfigFromEnv("proxy", "conf/proxy.conf")...)

	podLabels := labels(spec)
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Proxy,
			Namespace: namespace,
			Labels:    podLabels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: p.Replicas,
			Selector: &metav1.LabelSelector{MatchLabels: selector(spec)},
			Strategy: *p.UpdateStrategy,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: workload.PodAnnotations(workload.BrokerHTTPPort, p.Annotations),
				},
				Spec: corev1.PodSpec{
					DNSConfig:                     spec.Global.DNSConfig,
					NodeSelector:                  p.NodeSelectors,
					TerminationGracePeriodSeconds: p.GracePeriod,
					InitContainers:                parts.InitContainers,
					Containers: []corev1.Container{
						{
							Name:            names.Proxy,
							Image:           p.Image,
							ImagePullPolicy: p.ImagePullPolicy,
							Resources:       workload.Resources(p.Resources),
							Command:         []string{"sh", "-c"},
							Args:            []string{command},
							Ports:           l.containerPorts(),
							EnvFrom:         workload.EnvFromConfigMap(names.Proxy),
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
