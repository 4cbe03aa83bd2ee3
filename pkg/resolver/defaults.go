package resolver

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

const (
	// DefaultClusterName is the Pulsar cluster name if not specified.
	DefaultClusterName = "pulsar"

	// DefaultZookeeperBaseName is the base name of the ZooKeeper resource.
	DefaultZookeeperBaseName = metadata.ComponentZookeeper

	// DefaultBookkeeperBaseName is the base name of the BookKeeper resource.
	DefaultBookkeeperBaseName = metadata.ComponentBookkeeper

	// DefaultBrokerBaseName is the base name of the Broker resource.
	DefaultBrokerBaseName = metadata.ComponentBroker

	// DefaultProxyBaseName is the base name of the Proxy resource.
	DefaultProxyBaseName = metadata.ComponentProxy

	// DefaultKubernetesClusterDomain is the cluster DNS suffix.
	DefaultKubernetesClusterDomain = "cluster.local"

	// DefaultImage is the container image used by every component if not specified.
	DefaultImage = "apachepulsar/pulsar:2.10.2"

	// DefaultImagePullPolicy is the image pull policy used for all components if not specified.
	DefaultImagePullPolicy = corev1.PullIfNotPresent

	// DefaultTLSSecretName is the certificate secret used when TLS is enabled without one.
	DefaultTLSSecretName = "pulsar-tls"

	// DefaultPublicKeyFile is the secret key holding the token public key.
	DefaultPublicKeyFile = "my-public.key"

	// DefaultPrivateKeyFile is the secret key holding the token private key.
	DefaultPrivateKeyFile = "my-private.key"

	// DefaultReplicas is the replica count of every component if not specified.
	DefaultReplicas int32 = 3

	// DefaultGracePeriod is the pod termination grace period in seconds.
	DefaultGracePeriod int64 = 60

	// DefaultProbeTimeout is the probe timeout in seconds.
	DefaultProbeTimeout int32 = 5

	// DefaultProbeInitial is the probe initial delay in seconds.
	DefaultProbeInitial int32 = 10

	// DefaultProbePeriod is the probe period in seconds.
	DefaultProbePeriod int32 = 30

	// DefaultPDBMaxUnavailable is the PodDisruptionBudget maxUnavailable.
	DefaultPDBMaxUnavailable int32 = 1

	// DefaultInitContainerEmptyDirPath is where the add-libs volume is mounted.
	DefaultInitContainerEmptyDirPath = "/pulsar/lib"

	// DefaultZookeeperDataSize is the PVC size of the ZooKeeper data volume.
	DefaultZookeeperDataSize = "5Gi"

	// DefaultBookkeeperJournalSize is the PVC size of the BookKeeper journal volume.
	DefaultBookkeeperJournalSize = "20Gi"

	// DefaultBookkeeperLedgersSize is the PVC size of the BookKeeper ledgers volume.
	DefaultBookkeeperLedgersSize = "50Gi"

	// DefaultAutoscalerPeriodMs is the broker autoscaler evaluation interval.
	DefaultAutoscalerPeriodMs int64 = 60000

	// DefaultLowerCPUThreshold is the utilization under which a broker votes to scale down.
	DefaultLowerCPUThreshold = 0.3

	// DefaultHigherCPUThreshold is the utilization over which a broker votes to scale up.
	DefaultHigherCPUThreshold = 0.8

	// DefaultScaleUpBy is the autoscaler scale-up step.
	DefaultScaleUpBy int32 = 1

	// DefaultScaleDownBy is the autoscaler scale-down step.
	DefaultScaleDownBy int32 = 1
)

// DefaultSuperUserRoles returns the roles that get a token when none are listed.
func DefaultSuperUserRoles() []string {
	return []string{"superuser", "admin", "websocket", "proxy"}
}

// DefaultResourcesZookeeper returns the default resource requests for ZooKeeper.
// It requests 300m CPU and 1Gi memory.
func DefaultResourcesZookeeper() corev1.ResourceRequirements {
	return requests("300m", "1Gi")
}

// DefaultResourcesBookkeeper returns the default resource requests for BookKeeper.
// It requests 1 CPU and 2Gi memory.
func DefaultResourcesBookkeeper() corev1.ResourceRequirements {
	return requests("1", "2Gi")
}

// DefaultResourcesBroker returns the default resource requests for the broker.
// It requests 1 CPU and 2Gi memory.
func DefaultResourcesBroker() corev1.ResourceRequirements {
	return requests("1", "2Gi")
}

// DefaultResourcesProxy returns the default resource requests for the proxy.
// It requests 1 CPU and 1Gi memory.
func DefaultResourcesProxy() corev1.ResourceRequirements {
	return requests("1", "1Gi")
}

func requests(cpu, memory string) corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(cpu),
			corev1.ResourceMemory: resource.MustParse(memory),
		},
	}
}
