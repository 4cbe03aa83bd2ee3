package resolver

import (
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// ResolveGlobal returns a fully defaulted copy of the GlobalSpec. The
// GlobalSpec has no parent, so every default is a fixed constant. A nil input
// resolves to the all-defaults spec.
func ResolveGlobal(in *pulsarv1alpha1.GlobalSpec) *pulsarv1alpha1.GlobalSpec {
	g := in.DeepCopy()
	if g == nil {
		g = &pulsarv1alpha1.GlobalSpec{}
	}

	if g.Name == "" {
		g.Name = DefaultClusterName
	}
	if g.KubernetesClusterDomain == "" {
		g.KubernetesClusterDomain = DefaultKubernetesClusterDomain
	}
	if g.Image == "" {
		g.Image = DefaultImage
	}
	if g.ImagePullPolicy == "" {
		g.ImagePullPolicy = DefaultImagePullPolicy
	}

	if g.Components == nil {
		g.Components = &pulsarv1alpha1.ComponentsConfig{}
	}
	defaultString(&g.Components.ZookeeperBaseName, DefaultZookeeperBaseName)
	defaultString(&g.Components.BookkeeperBaseName, DefaultBookkeeperBaseName)
	defaultString(&g.Components.BrokerBaseName, DefaultBrokerBaseName)
	defaultString(&g.Components.ProxyBaseName, DefaultProxyBaseName)

	defaultTLS(g)
	defaultAuth(g)
	return g
}

func defaultTLS(g *pulsarv1alpha1.GlobalSpec) {
	if g.TLS == nil {
		g.TLS = &pulsarv1alpha1.TLSConfig{}
	}
	tls := g.TLS
	if tls.Enabled == nil {
		tls.Enabled = ptr.To(false)
	}
	defaultString(&tls.DefaultSecretName, DefaultTLSSecretName)

	// Component entries inherit the cluster-wide toggle and secret.
	for _, entry := range []**pulsarv1alpha1.TLSEntryConfig{&tls.Broker, &tls.Proxy} {
		if *entry == nil {
			*entry = &pulsarv1alpha1.TLSEntryConfig{}
		}
		if (*entry).Enabled == nil {
			(*entry).Enabled = ptr.To(*tls.Enabled)
		}
		defaultString(&(*entry).SecretName, tls.DefaultSecretName)
	}
}

func defaultAuth(g *pulsarv1alpha1.GlobalSpec) {
	if g.Auth == nil {
		g.Auth = &pulsarv1alpha1.AuthConfig{}
	}
	if g.Auth.Enabled == nil {
		g.Auth.Enabled = ptr.To(false)
	}
	if g.Auth.Token == nil {
		g.Auth.Token = &pulsarv1alpha1.TokenAuthConfig{}
	}
	token := g.Auth.Token
	defaultString(&token.PublicKeyFile, DefaultPublicKeyFile)
	defaultString(&token.PrivateKeyFile, DefaultPrivateKeyFile)
	if token.SuperUserRoles == nil {
		token.SuperUserRoles = DefaultSuperUserRoles()
	}
	if token.ProvisionSecrets == nil {
		token.ProvisionSecrets = ptr.To(true)
	}
}

func defaultString(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
