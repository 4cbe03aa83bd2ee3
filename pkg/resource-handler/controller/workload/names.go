package workload

import (
	"fmt"
	"strings"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

const (
	// ZookeeperClientPort is the ZooKeeper client port.
	ZookeeperClientPort int32 = 2181
	// BrokerHTTPPort is the broker admin and metrics port.
	BrokerHTTPPort int32 = 8080
	// BrokerHTTPSPort is the broker admin port with TLS.
	BrokerHTTPSPort int32 = 8443
	// BrokerPulsarPort is the binary protocol port.
	BrokerPulsarPort int32 = 6650
	// BrokerPulsarSSLPort is the binary protocol port with TLS.
	BrokerPulsarSSLPort int32 = 6651
)

// Names resolves the object names of every component of a cluster. g must
// be resolved.
type Names struct {
	Cluster   string
	Namespace string
	Domain    string
	Zookeeper string
	Bookie    string
	Broker    string
	Proxy     string
}

// NamesFor returns the names of the components of the cluster described by g.
func NamesFor(g *pulsarv1alpha1.GlobalSpec, namespace string) Names {
	c := g.Components
	return Names{
		Cluster:   g.Name,
		Namespace: namespace,
		Domain:    g.KubernetesClusterDomain,
		Zookeeper: metadata.ResourceName(g.Name, c.ZookeeperBaseName),
		Bookie:    metadata.ResourceName(g.Name, c.BookkeeperBaseName),
		Broker:    metadata.ResourceName(g.Name, c.BrokerBaseName),
		Proxy:     metadata.ResourceName(g.Name, c.ProxyBaseName),
	}
}

// ServiceHost returns the fully qualified DNS name of a service.
func (n Names) ServiceHost(service string) string {
	return fmt.Sprintf("%s.%s.svc.%s", service, n.Namespace, n.Domain)
}

// PodHost returns the stable DNS name of ordinal of a StatefulSet governed
// by a headless service of the same name.
func (n Names) PodHost(sts string, ordinal int) string {
	return fmt.Sprintf("%s-%d.%s.%s", sts, ordinal, sts, n.Namespace)
}

// ZookeeperServers is the connect string of the ZooKeeper ensemble.
func (n Names) ZookeeperServers() string {
	return fmt.Sprintf("%s:%d", n.ServiceHost(n.Zookeeper), ZookeeperClientPort)
}

// ZookeeperEnsemble lists the pod names of a ZooKeeper StatefulSet.
func (n Names) ZookeeperEnsemble(replicas int32) string {
	members := make([]string, 0, replicas)
	for i := range int(replicas) {
		members = append(members, fmt.Sprintf("%s-%d", n.Zookeeper, i))
	}
	return strings.Join(members, ",")
}

// BrokerServiceURL is the binary protocol address of the broker service.
func (n Names) BrokerServiceURL() string {
	return fmt.Sprintf("pulsar://%s:%d", n.ServiceHost(n.Broker), BrokerPulsarPort)
}

// BrokerServiceURLTLS is the TLS binary protocol address of the broker service.
func (n Names) BrokerServiceURLTLS() string {
	return fmt.Sprintf("pulsar+ssl://%s:%d", n.ServiceHost(n.Broker), BrokerPulsarSSLPort)
}

// BrokerWebServiceURL is the admin address of the broker service.
func (n Names) BrokerWebServiceURL() string {
	return fmt.Sprintf("http://%s:%d", n.ServiceHost(n.Broker), BrokerHTTPPort)
}

// BrokerWebServiceURLTLS is the TLS admin address of the broker service.
func (n Names) BrokerWebServiceURLTLS() string {
	return fmt.Sprintf("https://%s:%d", n.ServiceHost(n.Broker), BrokerHTTPSPort)
}
