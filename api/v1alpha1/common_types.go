/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
)

// ============================================================================
// Global Configuration
// ============================================================================
//
// GlobalSpec is owned by the PulsarCluster and copied by value into every
// component resource. Component controllers treat it as read-only.

// GlobalSpec defines the cluster-wide settings shared by every component.
type GlobalSpec struct {
	// Name is the Pulsar cluster name. It prefixes every synthesized object.
	// +kubebuilder:validation:MaxLength=40
	// +optional
	Name string `json:"name,omitempty"`

	// Components overrides the base names of the component resources.
	// +optional
	Components *ComponentsConfig `json:"components,omitempty"`

	// DNSConfig is applied to every component pod.
	// +optional
	DNSConfig *corev1.PodDNSConfig `json:"dnsConfig,omitempty"`

	// KubernetesClusterDomain is the cluster DNS suffix used in service addresses.
	// +optional
	KubernetesClusterDomain string `json:"kubernetesClusterDomain,omitempty"`

	// Image is the default container image for every component.
	// +kubebuilder:validation:MaxLength=512
	// +optional
	Image string `json:"image,omitempty"`

	// ImagePullPolicy is the default pull policy for every component.
	// +kubebuilder:validation:Enum=Always;Never;IfNotPresent
	// +optional
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`

	// TLS configures transport encryption.
	// +optional
	TLS *TLSConfig `json:"tls,omitempty"`

	// Auth configures client authentication.
	// +optional
	Auth *AuthConfig `json:"auth,omitempty"`
}

// ComponentsConfig holds the base name of each component resource.
type ComponentsConfig struct {
	// +optional
	ZookeeperBaseName string `json:"zookeeperBaseName,omitempty"`
	// +optional
	BookkeeperBaseName string `json:"bookkeeperBaseName,omitempty"`
	// +optional
	BrokerBaseName string `json:"brokerBaseName,omitempty"`
	// +optional
	ProxyBaseName string `json:"proxyBaseName,omitempty"`
}

// TLSConfig toggles TLS cluster-wide and per component.
type TLSConfig struct {
	// Enabled turns TLS on for every component that does not override it.
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// DefaultSecretName is the certificate secret used when a component does not name one.
	// +optional
	DefaultSecretName string `json:"defaultSecretName,omitempty"`

	// +optional
	Broker *TLSEntryConfig `json:"broker,omitempty"`

	// +optional
	Proxy *TLSEntryConfig `json:"proxy,omitempty"`
}

// TLSEntryConfig is the TLS setting of a single component.
type TLSEntryConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// +optional
	SecretName string `json:"secretName,omitempty"`
}

// AuthConfig configures authentication.
type AuthConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// +optional
	Token *TokenAuthConfig `json:"token,omitempty"`
}

// TokenAuthConfig configures JWT token authentication.
type TokenAuthConfig struct {
	// PublicKeyFile is the secret key holding the public key.
	// +optional
	PublicKeyFile string `json:"publicKeyFile,omitempty"`

	// PrivateKeyFile is the secret key holding the private key.
	// +optional
	PrivateKeyFile string `json:"privateKeyFile,omitempty"`

	// SuperUserRoles get a signed token secret each.
	// +optional
	SuperUserRoles []string `json:"superUserRoles,omitempty"`

	// ProvisionSecrets makes the operator generate the key pair and tokens when absent.
	// +optional
	ProvisionSecrets *bool `json:"provisionSecrets,omitempty"`
}

// ============================================================================
// Shared Component Configuration
// ============================================================================

// ComponentSpec holds the settings every component kind shares.
type ComponentSpec struct {
	// Image overrides GlobalSpec.Image.
	// +kubebuilder:validation:MaxLength=512
	// +optional
	Image string `json:"image,omitempty"`

	// +kubebuilder:validation:Enum=Always;Never;IfNotPresent
	// +optional
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`

	// Replicas is the desired number of pods.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// Resources defines the compute resource requirements.
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`

	// +optional
	Probe *ProbeConfig `json:"probe,omitempty"`

	// +optional
	NodeSelectors map[string]string `json:"nodeSelectors,omitempty"`

	// Annotations are added to the pods.
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`

	// Config is merged last into the component ConfigMap.
	// +optional
	Config map[string]string `json:"config,omitempty"`

	// GracePeriod is the pod termination grace period in seconds.
	// +kubebuilder:validation:Minimum=0
	// +optional
	GracePeriod *int64 `json:"gracePeriod,omitempty"`

	// +optional
	PDB *PodDisruptionBudgetConfig `json:"pdb,omitempty"`

	// +optional
	InitContainer *InitContainerConfig `json:"initContainer,omitempty"`

	// +optional
	Service *ServiceConfig `json:"service,omitempty"`
}

// ProbeConfig configures the liveness and readiness probes.
type ProbeConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// Timeout in seconds, also used as curl --max-time.
	// +optional
	Timeout *int32 `json:"timeout,omitempty"`

	// Initial delay in seconds.
	// +optional
	Initial *int32 `json:"initial,omitempty"`

	// Period in seconds.
	// +optional
	Period *int32 `json:"period,omitempty"`
}

// InitContainerConfig adds an init container that copies extra libraries into
// a shared emptyDir.
type InitContainerConfig struct {
	// +optional
	Image string `json:"image,omitempty"`

	// +optional
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`

	// +optional
	Command []string `json:"command,omitempty"`

	// +optional
	Args []string `json:"args,omitempty"`

	// EmptyDirPath is where the shared volume is mounted in both containers.
	// +optional
	EmptyDirPath string `json:"emptyDirPath,omitempty"`
}

// PodDisruptionBudgetConfig controls the optional PodDisruptionBudget.
type PodDisruptionBudgetConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// +kubebuilder:validation:Minimum=0
	// +optional
	MaxUnavailable *int32 `json:"maxUnavailable,omitempty"`
}

// ServiceConfig shapes the component Service.
type ServiceConfig struct {
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`

	// +optional
	AdditionalPorts []corev1.ServicePort `json:"additionalPorts,omitempty"`

	// +kubebuilder:validation:Enum=ClusterIP;NodePort;LoadBalancer
	// +optional
	Type corev1.ServiceType `json:"type,omitempty"`

	// Headless sets clusterIP to None.
	// +optional
	Headless *bool `json:"headless,omitempty"`

	// +optional
	LoadBalancerIP string `json:"loadBalancerIP,omitempty"`

	// EnablePlainTextWithTLS keeps the plaintext ports open next to the TLS ones.
	// +optional
	EnablePlainTextWithTLS *bool `json:"enablePlainTextWithTLS,omitempty"`
}

// VolumeConfig describes a persistent volume claim template.
type VolumeConfig struct {
	// +optional
	Name string `json:"name,omitempty"`

	// Size is a resource quantity, e.g. "10Gi".
	// +optional
	Size string `json:"size,omitempty"`

	// +optional
	StorageClassName *string `json:"storageClassName,omitempty"`
}

// ============================================================================
// Status
// ============================================================================

// StatusReason discriminates the error outcomes of a reconcile cycle.
// +kubebuilder:validation:Enum=ErrorConfig;ErrorUpgrading
type StatusReason string

const (
	// ReasonErrorConfig means the resolved spec failed validation.
	ReasonErrorConfig StatusReason = "ErrorConfig"
	// ReasonErrorUpgrading means synthesizing the cluster objects failed.
	ReasonErrorUpgrading StatusReason = "ErrorUpgrading"
)

// ComponentStatus is the outcome of the last reconcile cycle. It is
// overwritten on every cycle.
type ComponentStatus struct {
	// Ready is true when the last cycle applied every object.
	Ready bool `json:"ready"`

	// Reason is set when Ready is false.
	// +optional
	Reason StatusReason `json:"reason,omitempty"`

	// +optional
	Message string `json:"message,omitempty"`

	// ObservedGeneration is the generation the status was computed from.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}
