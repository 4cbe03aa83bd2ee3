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
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// Proxy Spec
// ============================================================================

// ProxySetSpec configures the stateless proxy layer.
type ProxySetSpec struct {
	ComponentSpec `json:",inline"`

	// +optional
	UpdateStrategy *appsv1.DeploymentStrategy `json:"updateStrategy,omitempty"`
}

// ProxyFullSpec is the spec of the Proxy resource.
type ProxyFullSpec struct {
	// +optional
	Global *GlobalSpec `json:"global,omitempty"`

	// +optional
	Proxy *ProxySetSpec `json:"proxy,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Reason",type="string",JSONPath=".status.reason"

// Proxy is the Schema for the proxies API.
type Proxy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ProxyFullSpec   `json:"spec,omitempty"`
	Status ComponentStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ProxyList contains a list of Proxy.
type ProxyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Proxy `json:"items"`
}

// GetComponentStatus returns the mutable status of the resource.
func (p *Proxy) GetComponentStatus() *ComponentStatus { return &p.Status }

func init() {
	SchemeBuilder.Register(&Proxy{}, &ProxyList{})
}
