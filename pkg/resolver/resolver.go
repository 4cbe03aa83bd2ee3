package resolver

import (
	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// ResolveZooKeeperFull resolves the spec of a ZooKeeper resource.
func ResolveZooKeeperFull(in pulsarv1alpha1.ZooKeeperFullSpec) pulsarv1alpha1.ZooKeeperFullSpec {
	g := ResolveGlobal(in.Global)
	return pulsarv1alpha1.ZooKeeperFullSpec{Global: g, ZooKeeper: ResolveZooKeeper(in.ZooKeeper, g)}
}

// ResolveBookKeeperFull resolves the spec of a BookKeeper resource.
func ResolveBookKeeperFull(in pulsarv1alpha1.BookKeeperFullSpec) pulsarv1alpha1.BookKeeperFullSpec {
	g := ResolveGlobal(in.Global)
	return pulsarv1alpha1.BookKeeperFullSpec{Global: g, BookKeeper: ResolveBookKeeper(in.BookKeeper, g)}
}

// ResolveBrokerFull resolves the spec of a Broker resource.
func ResolveBrokerFull(in pulsarv1alpha1.BrokerFullSpec) pulsarv1alpha1.BrokerFullSpec {
	g := ResolveGlobal(in.Global)
	return pulsarv1alpha1.BrokerFullSpec{Global: g, Broker: ResolveBroker(in.Broker, g)}
}

// ResolveProxyFull resolves the spec of a Proxy resource.
func ResolveProxyFull(in pulsarv1alpha1.ProxyFullSpec) pulsarv1alpha1.ProxyFullSpec {
	g := ResolveGlobal(in.Global)
	return pulsarv1alpha1.ProxyFullSpec{Global: g, Proxy: ResolveProxy(in.Proxy, g)}
}

// ResolveCluster resolves the spec of a PulsarCluster: the GlobalSpec first,
// then every component against it.
func ResolveCluster(in pulsarv1alpha1.PulsarClusterSpec) pulsarv1alpha1.PulsarClusterSpec {
	g := ResolveGlobal(in.Global)
	return pulsarv1alpha1.PulsarClusterSpec{
		Global:     g,
		ZooKeeper:  ResolveZooKeeper(in.ZooKeeper, g),
		BookKeeper: ResolveBookKeeper(in.BookKeeper, g),
		Broker:     ResolveBroker(in.Broker, g),
		Proxy:      ResolveProxy(in.Proxy, g),
	}
}
