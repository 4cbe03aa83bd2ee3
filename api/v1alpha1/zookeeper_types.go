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
// ZooKeeper Spec
// ============================================================================

// ZooKeeperSetSpec configures the coordination service ensemble.
type ZooKeeperSetSpec struct {
	ComponentSpec `json:",inline"`

	// +kubebuilder:validation:Enum=OrderedReady;Parallel
	// +optional
	PodManagementPolicy appsv1.PodManagementPolicyType `json:"podManagementPolicy,omitempty"`

	// +optional
	UpdateStrategy *appsv1.StatefulSetUpdateStrategy `json:"updateStrategy,omitempty"`

	// DataVolume is the volume claim template for the ZooKeeper data dir.
	// +optional
	DataVolume *VolumeConfig `json:"dataVolume,omitempty"`
}

// ZooKeeperFullSpec is the spec of the ZooKeeper resource.
type ZooKeeperFullSpec struct {
	// +optional
	Global *GlobalSpec `json:"global,omitempty"`

	// +optional
	ZooKeeper *ZooKeeperSetSpec `json:"zookeeper,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=zk
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Reason",type="string",JSONPath=".status.reason"

// ZooKeeper is the Schema for the zookeepers API.
type ZooKeeper struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ZooKeeperFullSpec `json:"spec,omitempty"`
	Status ComponentStatus   `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ZooKeeperList contains a list of ZooKeeper.
type ZooKeeperList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ZooKeeper `json:"items"`
}

// GetComponentStatus returns the mutable status of the resource.
func (z *ZooKeeper) GetComponentStatus() *ComponentStatus { return &z.Status }

func init() {
	SchemeBuilder.Register(&ZooKeeper{}, &ZooKeeperList{})
}
