package resolver

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// componentDefaults are the per-kind constants applied by defaultComponent.
type componentDefaults struct {
	resources   func() corev1.ResourceRequirements
	serviceType corev1.ServiceType
	headless    bool
}

// defaultComponent fills the shared component fields in place. g must be resolved.
func defaultComponent(c *pulsarv1alpha1.ComponentSpec, g *pulsarv1alpha1.GlobalSpec, d componentDefaults) {
	defaultString(&c.Image, g.Image)
	if c.ImagePullPolicy == "" {
		c.ImagePullPolicy = g.ImagePullPolicy
	}
	if c.Replicas == nil {
		c.Replicas = ptr.To(DefaultReplicas)
	}
	if c.Resources == nil {
		res := d.resources()
		c.Resources = &res
	}
	if c.GracePeriod == nil {
		c.GracePeriod = ptr.To(DefaultGracePeriod)
	}

	if c.Probe == nil {
		c.Probe = &pulsarv1alpha1.ProbeConfig{}
	}
	if c.Probe.Enabled == nil {
		c.Probe.Enabled = ptr.To(true)
	}
	if c.Probe.Timeout == nil {
		c.Probe.Timeout = ptr.To(DefaultProbeTimeout)
	}
	if c.Probe.Initial == nil {
		c.Probe.Initial = ptr.To(DefaultProbeInitial)
	}
	if c.Probe.Period == nil {
		c.Probe.Period = ptr.To(DefaultProbePeriod)
	}

	if c.PDB == nil {
		c.PDB = &pulsarv1alpha1.PodDisruptionBudgetConfig{}
	}
	if c.PDB.Enabled == nil {
		c.PDB.Enabled = ptr.To(true)
	}
	if c.PDB.MaxUnavailable == nil {
		c.PDB.MaxUnavailable = ptr.To(DefaultPDBMaxUnavailable)
	}

	// The init container is optional; only an explicitly configured one is defaulted.
	if c.InitContainer != nil {
		if c.InitContainer.ImagePullPolicy == "" {
			c.InitContainer.ImagePullPolicy = c.ImagePullPolicy
		}
		defaultString(&c.InitContainer.EmptyDirPath, DefaultInitContainerEmptyDirPath)
	}

	if c.Service == nil {
		c.Service = &pulsarv1alpha1.ServiceConfig{}
	}
	if c.Service.Type == "" {
		c.Service.Type = d.serviceType
	}
	if c.Service.Headless == nil {
		c.Service.Headless = ptr.To(d.headless)
	}
	if c.Service.EnablePlainTextWithTLS == nil {
		c.Service.EnablePlainTextWithTLS = ptr.To(false)
	}
}

func defaultVolume(v **pulsarv1alpha1.VolumeConfig, name, size string) {
	if *v == nil {
		*v = &pulsarv1alpha1.VolumeConfig{}
	}
	defaultString(&(*v).Name, name)
	defaultString(&(*v).Size, size)
}

func defaultStatefulSetStrategy(s **appsv1.StatefulSetUpdateStrategy) {
	if *s == nil {
		*s = &appsv1.StatefulSetUpdateStrategy{}
	}
	if (*s).Type == "" {
		(*s).Type = appsv1.RollingUpdateStatefulSetStrategyType
	}
}

// ResolveZooKeeper returns a defaulted copy of the ZooKeeper spec. g must be resolved.
func ResolveZooKeeper(in *pulsarv1alpha1.ZooKeeperSetSpec, g *pulsarv1alpha1.GlobalSpec) *pulsarv1alpha1.ZooKeeperSetSpec {
	s := in.DeepCopy()
	if s == nil {
		s = &pulsarv1alpha1.ZooKeeperSetSpec{}
	}
	defaultComponent(&s.ComponentSpec, g, componentDefaults{
		resources:   DefaultResourcesZookeeper,
		serviceType: corev1.ServiceTypeClusterIP,
		headless:    true,
	})
	if s.PodManagementPolicy == "" {
		s.PodManagementPolicy = appsv1.ParallelPodManagement
	}
	defaultStatefulSetStrategy(&s.UpdateStrategy)
	defaultVolume(&s.DataVolume, "data", DefaultZookeeperDataSize)
	return s
}

// ResolveBookKeeper returns a defaulted copy of the BookKeeper spec. g must be resolved.
func ResolveBookKeeper(in *pulsarv1alpha1.BookKeeperSetSpec, g *pulsarv1alpha1.GlobalSpec) *pulsarv1alpha1.BookKeeperSetSpec {
	s := in.DeepCopy()
	if s == nil {
		s = &pulsarv1alpha1.BookKeeperSetSpec{}
	}
	defaultComponent(&s.ComponentSpec, g, componentDefaults{
		resources:   DefaultResourcesBookkeeper,
		serviceType: corev1.ServiceTypeClusterIP,
		headless:    true,
	})
	if s.PodManagementPolicy == "" {
		s.PodManagementPolicy = appsv1.ParallelPodManagement
	}
	defaultStatefulSetStrategy(&s.UpdateStrategy)
	defaultVolume(&s.JournalVolume, "journal", DefaultBookkeeperJournalSize)
	defaultVolume(&s.LedgersVolume, "ledgers", DefaultBookkeeperLedgersSize)
	return s
}

// ResolveBroker returns a defaulted copy of the Broker spec. g must be resolved.
func ResolveBroker(in *pulsarv1alpha1.BrokerSetSpec, g *pulsarv1alpha1.GlobalSpec) *pulsarv1alpha1.BrokerSetSpec {
	s := in.DeepCopy()
	if s == nil {
		s = &pulsarv1alpha1.BrokerSetSpec{}
	}
	defaultComponent(&s.ComponentSpec, g, componentDefaults{
		resources:   DefaultResourcesBroker,
		serviceType: corev1.ServiceTypeClusterIP,
	})
	if s.PodManagementPolicy == "" {
		s.PodManagementPolicy = appsv1.ParallelPodManagement
	}
	defaultStatefulSetStrategy(&s.UpdateStrategy)
	if s.FunctionsWorkerEnabled == nil {
		s.FunctionsWorkerEnabled = ptr.To(false)
	}
	if s.WebSocketServiceEnabled == nil {
		s.WebSocketServiceEnabled = ptr.To(false)
	}
	s.Autoscaler = ResolveAutoscaler(s.Autoscaler)
	return s
}

// ResolveAutoscaler returns a defaulted copy of the autoscaler settings.
// Min and Max stay nil when unset: nil means unbounded.
func ResolveAutoscaler(in *pulsarv1alpha1.BrokerAutoscalerSpec) *pulsarv1alpha1.BrokerAutoscalerSpec {
	a := in.DeepCopy()
	if a == nil {
		a = &pulsarv1alpha1.BrokerAutoscalerSpec{}
	}
	if a.Enabled == nil {
		a.Enabled = ptr.To(false)
	}
	if a.PeriodMs == nil {
		a.PeriodMs = ptr.To(DefaultAutoscalerPeriodMs)
	}
	if a.LowerCPUThreshold == nil {
		a.LowerCPUThreshold = ptr.To(DefaultLowerCPUThreshold)
	}
	if a.HigherCPUThreshold == nil {
		a.HigherCPUThreshold = ptr.To(DefaultHigherCPUThreshold)
	}
	if a.ScaleUpBy == nil {
		a.ScaleUpBy = ptr.To(DefaultScaleUpBy)
	}
	if a.ScaleDownBy == nil {
		a.ScaleDownBy = ptr.To(DefaultScaleDownBy)
	}
	return a
}

// ResolveProxy returns a defaulted copy of the Proxy spec. g must be resolved.
func ResolveProxy(in *pulsarv1alpha1.ProxySetSpec, g *pulsarv1alpha1.GlobalSpec) *pulsarv1alpha1.ProxySetSpec {
	s := in.DeepCopy()
	if s == nil {
		s = &pulsarv1alpha1.ProxySetSpec{}
	}
	defaultComponent(&s.ComponentSpec, g, componentDefaults{
		resources:   DefaultResourcesProxy,
		serviceType: corev1.ServiceTypeLoadBalancer,
	})
	if s.UpdateStrategy == nil {
		s.UpdateStrategy = &appsv1.DeploymentStrategy{}
	}
	if s.UpdateStrategy.Type == "" {
		s.UpdateStrategy.Type = appsv1.RollingUpdateDeploymentStrategyType
	}
	if s.UpdateStrategy.Type == appsv1.RollingUpdateDeploymentStrategyType && s.UpdateStrategy.RollingUpdate == nil {
		s.UpdateStrategy.RollingUpdate = &appsv1.RollingUpdateDeployment{
			MaxUnavailable: ptr.To(intstr.FromInt32(0)),
			MaxSurge:       ptr.To(intstr.FromInt32(1)),
		}
	}
	return s
}
