package workload

import (
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// GlobalTLSEnabled reports whether TLS is switched on cluster-wide.
func GlobalTLSEnabled(g *pulsarv1alpha1.GlobalSpec) bool {
	return g != nil && g.TLS != nil && ptr.Deref(g.TLS.Enabled, false)
}

// BrokerTLSEnabled reports whether brokers serve TLS listeners. It requires
// the global toggle.
func BrokerTLSEnabled(g *pulsarv1alpha1.GlobalSpec) bool {
	return GlobalTLSEnabled(g) && entryEnabled(g.TLS.Broker)
}

// ProxyTLSEnabled reports whether proxies serve TLS listeners. It requires
// the global toggle.
func ProxyTLSEnabled(g *pulsarv1alpha1.GlobalSpec) bool {
	return GlobalTLSEnabled(g) && entryEnabled(g.TLS.Proxy)
}

// BrokerTLSSecret returns the certificate secret mounted into brokers.
func BrokerTLSSecret(g *pulsarv1alpha1.GlobalSpec) string {
	return entrySecret(g, g.TLS.Broker)
}

// ProxyTLSSecret returns the certificate secret mounted into proxies.
func ProxyTLSSecret(g *pulsarv1alpha1.GlobalSpec) string {
	return entrySecret(g, g.TLS.Proxy)
}

func entryEnabled(e *pulsarv1alpha1.TLSEntryConfig) bool {
	return e == nil || ptr.Deref(e.Enabled, true)
}

func entrySecret(g *pulsarv1alpha1.GlobalSpec, e *pulsarv1alpha1.TLSEntryConfig) string {
	if e != nil && e.SecretName != "" {
		return e.SecretName
	}
	return g.TLS.DefaultSecretName
}
