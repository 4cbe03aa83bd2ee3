package zookeeper

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
	"github.com/numtide/pulsar-operator/pkg/util/pvc"
)

const (
	// DataMountPath is where the data volume is mounted.
	DataMountPath = "/pulsar/data"

	// DefaultMemoryOpts are the ZooKeeper JVM settings.
	DefaultMemoryOpts = "-Xms1g -Xmx1g -Dcom.sun.management.jmxremote -Djute.maxbuffer=10485760"

	// RuokCommand is the probe command of every member.
	RuokCommand = "bin/pulsar-zookeeper-ruok.sh"

	// MetricsPort is the port of the embedded metrics server.
	MetricsPort int32 = 8000
)

func labels(spec pulsarv1alpha1.ZooKeeperFullSpec) map[string]string {
	return metadata.BuildStandardLabels(spec.Global.Name, spec.Global.Components.ZookeeperBaseName)
}

func selector(spec pulsarv1alpha1.ZooKeeperFullSpec) map[string]string {
	return metadata.SelectorLabels(spec.Global.Name, spec.Global.Components.ZookeeperBaseName)
}

// BuildService creates the headless Service governing the ensemble.
func BuildService(namespace string, spec pulsarv1alpha1.ZooKeeperFullSpec) *corev1.Service {
	names := workload.NamesFor(spec.Global, namespace)
	return workload.BuildService(
		names.Zookeeper,
		namespace,
		labels(spec),
		selector(spec),
		spec.ZooKeeper.Service,
		buildServicePorts(),
	)
}

// BuildConfigMap creates the environment ConfigMap of the ensemble. Members
// are listed by pod name so that generate-zookeeper-config.sh can write the
// server entries.
func BuildConfigMap(namespace string, spec pulsarv1alpha1.ZooKeeperFullSpec) *corev1.ConfigMap {
	names := workload.NamesFor(spec.Global, namespace)
	z := spec.ZooKeeper

	data := workload.LogDefaults()
	data["PULSAR_MEM"] = DefaultMemoryOpts
	data["PULSAR_GC"] = "-XX:+UseG1GC"
	data["ZOOKEEPER_SERVERS"] = names.ZookeeperEnsemble(ptr.Deref(z.Replicas, 0))
	data["dataDir"] = DataMountPath + "/zookeeper"
	data["PULSAR_PREFIX_serverCnxnFactory"] = "org.apache.zookeeper.server.NIOServerCnxnFactory"
	data["PULSAR_PREFIX_metricsProvider.className"] = "org.apache.zookeeper.metrics.prometheus.PrometheusMetricsProvider"
	data["PULSAR_PREFIX_metricsProvider.httpPort"] = fmt.Sprintf("%d", MetricsPort)

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Zookeeper,
			Namespace: namespace,
			Labels:    labels(spec),
		},
		Data: workload.MergeConfig(data, &z.ComponentSpec),
	}
}

// BuildStatefulSet creates the StatefulSet running the ensemble.
func BuildStatefulSet(namespace string, spec pulsarv1alpha1.ZooKeeperFullSpec) (*appsv1.StatefulSet, error) {
	names := workload.NamesFor(spec.Global, namespace)
	z := spec.ZooKeeper

	claim, err := pvc.BuildClaimTemplate(z.DataVolume, selector(spec))
	if err != nil {
		return nil, err
	}

	var parts workload.PodParts
	parts.AddLibs(z.InitContainer)
	parts.Mounts = append([]corev1.VolumeMount{{Name: z.DataVolume.Name, MountPath: DataMountPath}}, parts.Mounts...)

	probe := workload.Probe(z.Probe, RuokCommand)
	command := workload.Command(false,
		"bin/apply-config-from-env.py conf/zookeeper.conf",
		"bin/generate-zookeeper-config.sh conf/zookeeper.conf",
		workload.LogOpts+" exec bin/pulsar zookeeper",
	)

	podLabels := labels(spec)
	return &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Zookeeper,
			Namespace: namespace,
			Labels:    podLabels,
		},
		Spec: appsv1.StatefulSetSpec{
			ServiceName:                          names.Zookeeper,
			Replicas:                             z.Replicas,
			Selector:                             &metav1.LabelSelector{MatchLabels: selector(spec)},
			PodManagementPolicy:                  z.PodManagementPolicy,
			UpdateStrategy:                       *z.UpdateStrategy,
			PersistentVolumeClaimRetentionPolicy: pvc.RetainPolicy(),
			VolumeClaimTemplates:                 []corev1.PersistentVolumeClaim{claim},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: workload.PodAnnotations(MetricsPort, z.Annotations),
				},
				Spec: corev1.PodSpec{
					DNSConfig:                     spec.Global.DNSConfig,
					NodeSelector:                  z.NodeSelectors,
					TerminationGracePeriodSeconds: z.GracePeriod,
					InitContainers:                parts.InitContainers,
					Containers: []corev1.Container{
						{
							Name:            names.Zookeeper,
							Image:           z.Image,
							ImagePullPolicy: z.ImagePullPolicy,
							Resources:       workload.Resources(z.Resources),
							Command:         []string{"sh", "-c"},
							Args:            []string{command},
							Ports:           buildContainerPorts(),
							EnvFrom:         workload.EnvFromConfigMap(names.Zookeeper),
							LivenessProbe:   probe,
							ReadinessProbe:  probe,
							VolumeMounts:    parts.Mounts,
						},
					},
					Volumes: parts.Volumes,
				},
			},
		},
	}, nil
}
