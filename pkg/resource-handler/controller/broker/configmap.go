package broker

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
)

const (
	// DefaultMemoryOpts are the broker JVM heap and direct memory settings.
	DefaultMemoryOpts = "-Xms2g -Xmx2g -XX:MaxDirectMemorySize=2g -Dio.netty.leakDetectionLevel=disabled " +
		"-Dio.netty.recycler.linkCapacity=1024 -XX:+ExitOnOutOfMemoryError"

	// DefaultGCOpts selects the broker garbage collector.
	DefaultGCOpts = "-XX:+UseG1GC"
)

// BuildConfigMap creates the environment ConfigMap of the brokers.
func BuildConfigMap(namespace string, spec pulsarv1alpha1.BrokerFullSpec) *corev1.ConfigMap {
	names := workload.NamesFor(spec.Global, namespace)
	b := spec.Broker

	data := workload.LogDefaults()
	data["zookeeperServers"] = names.ZookeeperServers()
	data["configurationStoreServers"] = names.ZookeeperServers()
	data["clusterName"] = names.Cluster
	data["allowAutoTopicCreationType"] = "non-partitioned"
	data["PULSAR_MEM"] = DefaultMemoryOpts
	data["PULSAR_GC"] = DefaultGCOpts
	data["brokerDeduplicationEnabled"] = "false"
	data["exposeTopicLevelMetricsInPrometheus"] = "true"
	data["exposeConsumerLevelMetricsInPrometheus"] = "false"
	data["backlogQuotaDefaultRetentionPolicy"] = "producer_exception"

	if ptr.Deref(b.FunctionsWorkerEnabled, false) {
		data["functionsWorkerEnabled"] = "true"
		data["PF_pulsarFunctionsCluster"] = names.Cluster
		data["PF_pulsarServiceUrl"] = "pulsar://localhost:6650"
		data["PF_pulsarWebServiceUrl"] = "http://localhost:8080"
	}
	if ptr.Deref(b.WebSocketServiceEnabled, false) {
		data["webSocketServiceEnabled"] = "true"
	}

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      names.Broker,
			Namespace: namespace,
			Labels:    labels(spec),
		},
		Data: workload.MergeConfig(data, &b.ComponentSpec),
	}
}
