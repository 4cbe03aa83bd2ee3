package pulsarcluster

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

// childMeta names a child after the cluster and component. The cluster's own
// labels are carried over, but never replace the standard ones.
func childMeta(
	cluster *pulsarv1alpha1.PulsarCluster,
	g *pulsarv1alpha1.GlobalSpec,
	baseName string,
) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:      metadata.ResourceName(g.Name, baseName),
		Namespace: cluster.Namespace,
		Labels:    metadata.MergeLabels(metadata.BuildStandardLabels(g.Name, baseName), cluster.Labels),
	}
}

// BuildZooKeeper creates the ZooKeeper child of a resolved cluster spec.
func BuildZooKeeper(
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
	scheme *runtime.Scheme,
) (*pulsarv1alpha1.ZooKeeper, error) {
	zk := &pulsarv1alpha1.ZooKeeper{
		ObjectMeta: childMeta(cluster, spec.Global, spec.Global.Components.ZookeeperBaseName),
		Spec: pulsarv1alpha1.ZooKeeperFullSpec{
			Global:    spec.Global.DeepCopy(),
			ZooKeeper: spec.ZooKeeper.DeepCopy(),
		},
	}
	if err := ctrl.SetControllerReference(cluster, zk, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}
	return zk, nil
}

// BuildBookKeeper creates the BookKeeper child of a resolved cluster spec.
func BuildBookKeeper(
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
	scheme *runtime.Scheme,
) (*pulsarv1alpha1.BookKeeper, error) {
	bk := &pulsarv1alpha1.BookKeeper{
		ObjectMeta: childMeta(cluster, spec.Global, spec.Global.Components.BookkeeperBaseName),
		Spec: pulsarv1alpha1.BookKeeperFullSpec{
			Global:     spec.Global.DeepCopy(),
			BookKeeper: spec.BookKeeper.DeepCopy(),
		},
	}
	if err := ctrl.SetControllerReference(cluster, bk, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}
	return bk, nil
}

// BuildBroker creates the Broker child of a resolved cluster spec.
func BuildBroker(
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
	scheme *runtime.Scheme,
) (*pulsarv1alpha1.Broker, error) {
	b := &pulsarv1alpha1.Broker{
		ObjectMeta: childMeta(cluster, spec.Global, spec.Global.Components.BrokerBaseName),
		Spec: pulsarv1alpha1.BrokerFullSpec{
			Global: spec.Global.DeepCopy(),
			Broker: spec.Broker.DeepCopy(),
		},
	}
	if err := ctrl.SetControllerReference(cluster, b, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}
	return b, nil
}

// BuildProxy creates the Proxy child of a resolved cluster spec.
func BuildProxy(
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
	scheme *runtime.Scheme,
) (*pulsarv1alpha1.Proxy, error) {
	p := &pulsarv1alpha1.Proxy{
		ObjectMeta: childMeta(cluster, spec.Global, spec.Global.Components.ProxyBaseName),
		Spec: pulsarv1alpha1.ProxyFullSpec{
			Global: spec.Global.DeepCopy(),
			Proxy:  spec.Proxy.DeepCopy(),
		},
	}
	if err := ctrl.SetControllerReference(cluster, p, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}
	return p, nil
}
