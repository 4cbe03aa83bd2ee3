package bookkeeper

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
	"github.com/numtide/pulsar-operator/pkg/util/pvc"
)

const (
	// BookiePortName is the bookie protocol port name.
	BookiePortName = "bookie"
	// HTTPPortName is the admin and metrics port name.
	HTTPPortName = "http"

	// BookiePort is the bookie protocol port.
	BookiePort int32 = 3181
	// HTTPPort is the admin and metrics port.
	HTTPPort int32 = 8000

	// JournalMountPath is where the journal volume is mounted.
	JournalMountPath = "/pulsar/data/bookkeeper/journal"
	// LedgersMountPath is where the ledgers volume is mounted.
	LedgersMountPath = "/pulsar/data/bookkeeper/ledgers"

	// WaitZookeeperContainerName blocks until the first ZooKeeper member resolves.
	WaitZookeeperContainerName = "wait-zookeeper-ready"

	// ReadyURL is the local endpoint polled by the bookie probes.
	ReadyURL = "http://localhost:8000/api/v1/bookie/is_ready"

	// DefaultMemoryOpts are the bookie JVM settings.
	DefaultMemoryOpts = "-Xms2g -Xmx2g -XX:MaxDirectMemorySize=2g -Dio.netty.leakDetectionLevel=disabled " +
		"-Dio.netty.recycler.linkCapacity=1024 -XX:+ExitOnOutOfMemoryError"
)

func labels(spec pulsarv1alpha1.BookKeeperFullSpec) map[string]string {
	return metadata.BuildStandardLabels(spec.Global.Name, spec.Global.Components.BookkeeperBaseName)
}

func selector(spec pulsarv1alpha1.BookKeeperFullSpec) map[string]string {
	return metadata.SelectorLabels(spec.Global.Name, spec.Global.Components.BookkeeperBaseName)
}

// BuildService creates the Service governing the bookies.
func BuildService(namespace string, spec pulsarv1alpha1.BookKeeperFullSpec) *corev1.Service {
	names := workload.NamesFor(spec.Global, namespace)
	return workload.BuildService(
		names.Bookie,
		namespace,
		labels(spec),
		selector(spec),
		spec.BookKeeper.Service,
		[]corev1.ServicePort{
			workload.ServicePort(BookiePortName, BookiePort),
			workload.ServicePort(HTTPPortName, HTTPPort),
		},
	)
}

// BuildConfigMap creates the environment ConfigMap of the bookies.
func BuildConfigMap(namespace string, spec pulsarv1alpha1.BookKeeperFullSpec) *corev1.ConfigMap {
	names := workload.NamesFor(spec.Global, namespace)
	bk := spec.BookKeeper

	data := workload.LogDefaults()
	data["zkServers"] = names.ZookeeperServers()
	data["BOOKIE_MEM"] = DefaultMemoryOpts
	data["BOOKIE_GC"] = "-XX:+UseG1GC"
	data["journalDirectories"] = JournalMountPath
	data["ledgerDirectories"] = LedgersMountPath
	data["httpServerEnabled"] = "true"
	data["httpServerPort"] = "8000"
	data["useHostNameAsBookieID"] = "true"
	data["statsProviderClass"] = "org.apache.bookkeeper.stats.prometheus.PrometheusMetricsProvider"

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Bookie,
			Namespace: namespace,
			Labels:    labels(spec),
		},
		Data: workload.MergeConfig(data, &bk.ComponentSpec),
	}
}

// BuildStatefulSet creates the StatefulSet running the bookies.
func BuildStatefulSet(namespace string, spec pulsarv1alpha1.BookKeeperFullSpec) (*appsv1.StatefulSet, error) {
	names := workload.NamesFor(spec.Global, namespace)
	bk := spec.BookKeeper

	claimLabels := selector(spec)
	journal, err := pvc.BuildClaimTemplate(bk.JournalVolume, claimLabels)
	if err != nil {
		return nil, err
	}
	ledgers, err := pvc.BuildClaimTemplate(bk.LedgersVolume, claimLabels)
	if err != nil {
		return nil, err
	}

	var parts workload.PodParts
	parts.InitContainers = append(parts.InitContainers,
		workload.WaitForHost(WaitZookeeperContainerName, &bk.ComponentSpec, names.PodHost(names.Zookeeper, 0)))
	parts.AddLibs(bk.InitContainer)
	parts.Mounts = append([]corev1.VolumeMount{
		{Name: journal.Name, MountPath: JournalMountPath},
		{Name: ledgers.Name, MountPath: LedgersMountPath},
	}, parts.Mounts...)

	probe := workload.Probe(bk.Probe, workload.HTTPCheck(bk.Probe, ReadyURL))
	command := workload.Command(false, workload.ConfigFromEnv("bookie", "conf/bookkeeper.conf")...)

	podLabels := labels(spec)
	return &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Bookie,
			Namespace: namespace,
			Labels:    podLabels,
		},
		Spec: appsv1.StatefulSetSpec{
			ServiceName:                          names.Bookie,
			Replicas:                             bk.Replicas,
			Selector:                             &metav1.LabelSelector{MatchLabels: selector(spec)},
			PodManagementPolicy:                  bk.PodManagementPolicy,
			UpdateStrategy:                       *bk.UpdateStrategy,
			PersistentVolumeClaimRetentionPolicy: pvc.RetainPolicy(),
			VolumeClaimTemplates:                 []corev1.PersistentVolumeClaim{journal, ledgers},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: workload.PodAnnotations(HTTPPort, bk.Annotations),
				},
				Spec: corev1.PodSpec{
					DNSConfig:                     spec.Global.DNSConfig,
					NodeSelector:                  bk.NodeSelectors,
					TerminationGracePeriodSeconds: bk.GracePeriod,
					InitContainers:                parts.InitContainers,
					Containers: []corev1.Container{
						{
							Name:            names.Bookie,
							Image:           bk.Image,
							ImagePullPolicy: bk.ImagePullPolicy,
							Resources:       workload.Resources(bk.Resources),
							Command:         []string{"sh", "-c"},
							Args:            []string{command},
							Ports: []corev1.ContainerPort{
								workload.ContainerPort(BookiePortName, BookiePort),
								workload.ContainerPort(HTTPPortName, HTTPPort),
							},
							EnvFrom:        workload.EnvFromConfigMap(names.Bookie),
							LivenessProbe:  probe,
							ReadinessProbe: probe,
							VolumeMounts:   parts.Mounts,
						},
					},
					Volumes: parts.Volumes,
				},
			},
		},
	}, nil
}
