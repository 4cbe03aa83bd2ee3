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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// PulsarCluster Spec (User-editable API)
// ============================================================================

// PulsarClusterSpec defines the desired state of a complete Pulsar cluster.
// Unset fields are filled from defaults on every reconcile.
type PulsarClusterSpec struct {
	// +optional
	Global *GlobalSpec `json:"global,omitempty"`

	// +optional
	ZooKeeper *ZooKeeperSetSpec `json:"zookeeper,omitempty"`

	// +optional
	BookKeeper *BookKeeperSetSpec `json:"bookkeeper,omitempty"`

	// +optional
	Broker *BrokerSetSpec `json:"broker,omitempty"`

	// +optional
	Proxy *ProxySetSpec `json:"proxy,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=pc
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Reason",type="string",JSONPath=".status.reason"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// PulsarCluster is the Schema for the pulsarclusters API.
type PulsarCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PulsarClusterSpec `json:"spec,omitempty"`
	Status ComponentStatus   `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PulsarClusterList contains a list of PulsarCluster.
type PulsarClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PulsarCluster `json:"items"`
}

// GetComponentStatus returns the mutable status of the resource.
func (p *PulsarCluster) GetComponentStatus() *ComponentStatus { return &p.Status }

func init() {
	SchemeBuilder.Register(&PulsarCluster{}, &PulsarClusterList{})
}
