package validation

import (
	"fmt"
	"path"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// validators is the closed set of spec validators, one per kind.
var validators = map[Kind]func(spec any) field.ErrorList{
	KindCluster:    typed(validateCluster),
	KindZooKeeper:  typed(validateZooKeeperFull),
	KindBookKeeper: typed(validateBookKeeperFull),
	KindBroker:     typed(validateBrokerFull),
	KindProxy:      typed(validateProxyFull),
}

func typed[T any](fn func(T, *field.Path) field.ErrorList) func(any) field.ErrorList {
	return func(spec any) field.ErrorList {
		s, ok := spec.(T)
		if !ok {
			var want T
			return field.ErrorList{field.TypeInvalid(field.NewPath("spec"), fmt.Sprintf("%T", spec), fmt.Sprintf("expected %T", want))}
		}
		return fn(s, field.NewPath("spec"))
	}
}

var (
	supportedPullPolicies  = []corev1.PullPolicy{corev1.PullAlways, corev1.PullNever, corev1.PullIfNotPresent}
	supportedServiceTypes  = []corev1.ServiceType{corev1.ServiceTypeClusterIP, corev1.ServiceTypeNodePort, corev1.ServiceTypeLoadBalancer}
	supportedPodManagement = []appsv1.PodManagementPolicyType{appsv1.OrderedReadyPodManagement, appsv1.ParallelPodManagement}
)

// ============================================================================
// Per-kind validators
// ============================================================================

func validateCluster(s pulsarv1alpha1.PulsarClusterSpec, p *field.Path) field.ErrorList {
	errs := validateGlobal(s.Global, p.Child("global"))
	errs = append(errs, validateZooKeeper(s.ZooKeeper, p.Child("zookeeper"))...)
	errs = append(errs, validateBookKeeper(s.BookKeeper, p.Child("bookkeeper"))...)
	errs = append(errs, validateBroker(s.Broker, p.Child("broker"))...)
	errs = append(errs, validateProxy(s.Proxy, p.Child("proxy"))...)
	return errs
}

func validateZooKeeperFull(s pulsarv1alpha1.ZooKeeperFullSpec, p *field.Path) field.ErrorList {
	return append(validateGlobal(s.Global, p.Child("global")), validateZooKeeper(s.ZooKeeper, p.Child("zookeeper"))...)
}

func validateBookKeeperFull(s pulsarv1alpha1.BookKeeperFullSpec, p *field.Path) field.ErrorList {
	return append(validateGlobal(s.Global, p.Child("global")), validateBookKeeper(s.BookKeeper, p.Child("bookkeeper"))...)
}

func validateBrokerFull(s pulsarv1alpha1.BrokerFullSpec, p *field.Path) field.ErrorList {
	return append(validateGlobal(s.Global, p.Child("global")), validateBroker(s.Broker, p.Child("broker"))...)
}

func validateProxyFull(s pulsarv1alpha1.ProxyFullSpec, p *field.Path) field.ErrorList {
	return append(validateGlobal(s.Global, p.Child("global")), validateProxy(s.Proxy, p.Child("proxy"))...)
}

func validateZooKeeper(s *pulsarv1alpha1.ZooKeeperSetSpec, p *field.Path) field.ErrorList {
	if s == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	errs := validateComponent(&s.ComponentSpec, p)
	errs = append(errs, validatePodManagement(s.PodManagementPolicy, p.Child("podManagementPolicy"))...)
	errs = append(errs, validateVolume(s.DataVolume, p.Child("dataVolume"))...)
	return errs
}

func validateBookKeeper(s *pulsarv1alpha1.BookKeeperSetSpec, p *field.Path) field.ErrorList {
	if s == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	errs := validateComponent(&s.ComponentSpec, p)
	errs = append(errs, validatePodManagement(s.PodManagementPolicy, p.Child("podManagementPolicy"))...)
	errs = append(errs, validateVolume(s.JournalVolume, p.Child("journalVolume"))...)
	errs = append(errs, validateVolume(s.LedgersVolume, p.Child("ledgersVolume"))...)
	if s.JournalVolume != nil && s.LedgersVolume != nil && s.JournalVolume.Name == s.LedgersVolume.Name {
		errs = append(errs, field.Duplicate(p.Child("ledgersVolume", "name"), s.LedgersVolume.Name))
	}
	return errs
}

func validateBroker(s *pulsarv1alpha1.BrokerSetSpec, p *field.Path) field.ErrorList {
	if s == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	errs := validateComponent(&s.ComponentSpec, p)
	errs = append(errs, validatePodManagement(s.PodManagementPolicy, p.Child("podManagementPolicy"))...)
	if s.ServiceAccountName != "" {
		for _, msg := range utilvalidation.IsDNS1123Subdomain(s.ServiceAccountName) {
			errs = append(errs, field.Invalid(p.Child("serviceAccountName"), s.ServiceAccountName, msg))
		}
	}
	errs = append(errs, validateAutoscaler(s.Autoscaler, p.Child("autoscaler"))...)
	return errs
}

// validateProxy only enforces what the schema would: presence, replica floor
// and enum membership.
func validateProxy(s *pulsarv1alpha1.ProxySetSpec, p *field.Path) field.ErrorList {
	if s == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	var errs field.ErrorList
	errs = append(errs, validateReplicas(s.Replicas, p.Child("replicas"))...)
	errs = append(errs, validatePullPolicy(s.ImagePullPolicy, p.Child("imagePullPolicy"))...)
	if s.Service != nil {
		errs = append(errs, validateServiceType(s.Service.Type, p.Child("service", "type"))...)
	}
	return errs
}

// ============================================================================
// Shared checks
// ============================================================================

func validateGlobal(g *pulsarv1alpha1.GlobalSpec, p *field.Path) field.ErrorList {
	if g == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	var errs field.ErrorList
	for _, msg := range utilvalidation.IsDNS1123Label(g.Name) {
		errs = append(errs, field.Invalid(p.Child("name"), g.Name, msg))
	}
	if g.Components == nil {
		errs = append(errs, field.Required(p.Child("components"), ""))
	} else {
		c := p.Child("components")
		base := map[string]string{
			"zookeeperBaseName":  g.Components.ZookeeperBaseName,
			"bookkeeperBaseName": g.Components.BookkeeperBaseName,
			"brokerBaseName":     g.Components.BrokerBaseName,
			"proxyBaseName":      g.Components.ProxyBaseName,
		}
		for key, name := range base {
			// The synthesized object name is <cluster>-<base>.
			for _, msg := range utilvalidation.IsDNS1123Label(g.Name + "-" + name) {
				errs = append(errs, field.Invalid(c.Child(key), name, msg))
			}
		}
	}
	for _, msg := range utilvalidation.IsDNS1123Subdomain(g.KubernetesClusterDomain) {
		errs = append(errs, field.Invalid(p.Child("kubernetesClusterDomain"), g.KubernetesClusterDomain, msg))
	}
	if g.Image == "" {
		errs = append(errs, field.Required(p.Child("image"), ""))
	}
	errs = append(errs, validatePullPolicy(g.ImagePullPolicy, p.Child("imagePullPolicy"))...)

	if g.TLS != nil && ptr.Deref(g.TLS.Enabled, false) {
		for name, entry := range map[string]*pulsarv1alpha1.TLSEntryConfig{"broker": g.TLS.Broker, "proxy": g.TLS.Proxy} {
			if entry != nil && ptr.Deref(entry.Enabled, false) && entry.SecretName == "" {
				errs = append(errs, field.Required(p.Child("tls", name, "secretName"), "required when TLS is enabled"))
			}
		}
	}

	if g.Auth != nil && ptr.Deref(g.Auth.Enabled, false) {
		tp := p.Child("auth", "token")
		t := g.Auth.Token
		if t == nil {
			errs = append(errs, field.Required(tp, "required when auth is enabled"))
			return errs
		}
		if t.PublicKeyFile == "" {
			errs = append(errs, field.Required(tp.Child("publicKeyFile"), ""))
		}
		if t.PrivateKeyFile == "" {
			errs = append(errs, field.Required(tp.Child("privateKeyFile"), ""))
		}
		if t.PublicKeyFile != "" && t.PublicKeyFile == t.PrivateKeyFile {
			errs = append(errs, field.Invalid(tp.Child("privateKeyFile"), t.PrivateKeyFile, "must differ from publicKeyFile"))
		}
		seen := map[string]bool{}
		for i, role := range t.SuperUserRoles {
			rp := tp.Child("superUserRoles").Index(i)
			if seen[role] {
				errs = append(errs, field.Duplicate(rp, role))
				continue
			}
			seen[role] = true
			// Each role becomes the secret name token-<role>.
			for _, msg := range utilvalidation.IsDNS1123Subdomain("token-" + role) {
				errs = append(errs, field.Invalid(rp, role, msg))
			}
		}
	}
	return errs
}

func validateComponent(c *pulsarv1alpha1.ComponentSpec, p *field.Path) field.ErrorList {
	var errs field.ErrorList
	if c.Image == "" {
		errs = append(errs, field.Required(p.Child("image"), ""))
	}
	errs = append(errs, validatePullPolicy(c.ImagePullPolicy, p.Child("imagePullPolicy"))...)
	errs = append(errs, validateReplicas(c.Replicas, p.Child("replicas"))...)
	errs = append(errs, validateResources(c.Resources, p.Child("resources"))...)

	if c.GracePeriod == nil {
		errs = append(errs, field.Required(p.Child("gracePeriod"), ""))
	} else if *c.GracePeriod < 0 {
		errs = append(errs, field.Invalid(p.Child("gracePeriod"), *c.GracePeriod, "must be greater than or equal to 0"))
	}

	if c.Probe == nil {
		errs = append(errs, field.Required(p.Child("probe"), ""))
	} else if ptr.Deref(c.Probe.Enabled, false) {
		pp := p.Child("probe")
		errs = append(errs, positive(c.Probe.Timeout, pp.Child("timeout"))...)
		errs = append(errs, positive(c.Probe.Period, pp.Child("period"))...)
		if c.Probe.Initial == nil {
			errs = append(errs, field.Required(pp.Child("initial"), ""))
		} else if *c.Probe.Initial < 0 {
			errs = append(errs, field.Invalid(pp.Child("initial"), *c.Probe.Initial, "must be greater than or equal to 0"))
		}
	}

	if c.PDB != nil && c.PDB.MaxUnavailable != nil && *c.PDB.MaxUnavailable < 0 {
		errs = append(errs, field.Invalid(p.Child("pdb", "maxUnavailable"), *c.PDB.MaxUnavailable, "must be greater than or equal to 0"))
	}

	if ic := c.InitContainer; ic != nil {
		ip := p.Child("initContainer")
		if ic.Image == "" {
			errs = append(errs, field.Required(ip.Child("image"), ""))
		}
		if !path.IsAbs(ic.EmptyDirPath) {
			errs = append(errs, field.Invalid(ip.Child("emptyDirPath"), ic.EmptyDirPath, "must be an absolute path"))
		}
	}

	if c.Service == nil {
		errs = append(errs, field.Required(p.Child("service"), ""))
	} else {
		errs = append(errs, validateService(c.Service, p.Child("service"))...)
	}

	for key := range c.Config {
		if key == "" {
			errs = append(errs, field.Invalid(p.Child("config"), key, "keys must not be empty"))
		}
	}
	return errs
}

func validateService(s *pulsarv1alpha1.ServiceConfig, p *field.Path) field.ErrorList {
	errs := validateServiceType(s.Type, p.Child("type"))
	if ptr.Deref(s.Headless, false) && s.Type == corev1.ServiceTypeLoadBalancer {
		errs = append(errs, field.Invalid(p.Child("headless"), true, "a headless service cannot be of type LoadBalancer"))
	}
	names := map[string]bool{}
	for i, port := range s.AdditionalPorts {
		pp := p.Child("additionalPorts").Index(i)
		for _, msg := range utilvalidation.IsValidPortNum(int(port.Port)) {
			errs = append(errs, field.Invalid(pp.Child("port"), port.Port, msg))
		}
		if port.Name != "" {
			if names[port.Name] {
				errs = append(errs, field.Duplicate(pp.Child("name"), port.Name))
			}
			names[port.Name] = true
		}
	}
	return errs
}

func validateAutoscaler(a *pulsarv1alpha1.BrokerAutoscalerSpec, p *field.Path) field.ErrorList {
	if a == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	var errs field.ErrorList
	if a.PeriodMs == nil {
		errs = append(errs, field.Required(p.Child("periodMs"), ""))
	} else if *a.PeriodMs < 1 {
		errs = append(errs, field.Invalid(p.Child("periodMs"), *a.PeriodMs, "must be greater than 0"))
	}
	errs = append(errs, positive(a.ScaleUpBy, p.Child("scaleUpBy"))...)
	errs = append(errs, positive(a.ScaleDownBy, p.Child("scaleDownBy"))...)

	lower, higher := a.LowerCPUThreshold, a.HigherCPUThreshold
	if lower == nil {
		errs = append(errs, field.Required(p.Child("lowerCpuThreshold"), ""))
	} else if *lower < 0 {
		errs = append(errs, field.Invalid(p.Child("lowerCpuThreshold"), *lower, "must be greater than or equal to 0"))
	}
	if higher == nil {
		errs = append(errs, field.Required(p.Child("higherCpuThreshold"), ""))
	} else if *higher <= 0 {
		errs = append(errs, field.Invalid(p.Child("higherCpuThreshold"), *higher, "must be greater than 0"))
	}
	if lower != nil && higher != nil && *lower >= *higher {
		errs = append(errs, field.Invalid(p.Child("lowerCpuThreshold"), *lower, "must be lower than higherCpuThreshold"))
	}

	if a.Min != nil && *a.Min < 1 {
		errs = append(errs, field.Invalid(p.Child("min"), *a.Min, "must be greater than 0"))
	}
	if a.Max != nil && *a.Max < 1 {
		errs = append(errs, field.Invalid(p.Child("max"), *a.Max, "must be greater than 0"))
	}
	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		errs = append(errs, field.Invalid(p.Child("min"), *a.Min, "must be lower than or equal to max"))
	}
	return errs
}

func validateVolume(v *pulsarv1alpha1.VolumeConfig, p *field.Path) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	var errs field.ErrorList
	for _, msg := range utilvalidation.IsDNS1123Label(v.Name) {
		errs = append(errs, field.Invalid(p.Child("name"), v.Name, msg))
	}
	q, err := resource.ParseQuantity(v.Size)
	switch {
	case err != nil:
		errs = append(errs, field.Invalid(p.Child("size"), v.Size, err.Error()))
	case q.Sign() <= 0:
		errs = append(errs, field.Invalid(p.Child("size"), v.Size, "must be greater than 0"))
	}
	return errs
}

func validateResources(r *corev1.ResourceRequirements, p *field.Path) field.ErrorList {
	if r == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	var errs field.ErrorList
	for name, q := range r.Requests {
		if q.Sign() < 0 {
			errs = append(errs, field.Invalid(p.Child("requests").Key(string(name)), q.String(), "must be greater than or equal to 0"))
		}
		if limit, ok := r.Limits[name]; ok && q.Cmp(limit) > 0 {
			errs = append(errs, field.Invalid(p.Child("requests").Key(string(name)), q.String(), "must be less than or equal to the limit "+limit.String()))
		}
	}
	return errs
}

func validateReplicas(r *int32, p *field.Path) field.ErrorList {
	if r == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	if *r < 0 {
		return field.ErrorList{field.Invalid(p, *r, "must be greater than or equal to 0")}
	}
	return nil
}

func validatePullPolicy(v corev1.PullPolicy, p *field.Path) field.ErrorList {
	return enum(v, supportedPullPolicies, p)
}

func validateServiceType(v corev1.ServiceType, p *field.Path) field.ErrorList {
	return enum(v, supportedServiceTypes, p)
}

func validatePodManagement(v appsv1.PodManagementPolicyType, p *field.Path) field.ErrorList {
	return enum(v, supportedPodManagement, p)
}

func enum[T ~string](v T, supported []T, p *field.Path) field.ErrorList {
	for _, s := range supported {
		if v == s {
			return nil
		}
	}
	values := make([]string, len(supported))
	for i, s := range supported {
		values[i] = string(s)
	}
	return field.ErrorList{field.NotSupported(p, v, values)}
}

func positive(v *int32, p *field.Path) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(p, "")}
	}
	if *v < 1 {
		return field.ErrorList{field.Invalid(p, *v, "must be greater than 0")}
	}
	return nil
}
