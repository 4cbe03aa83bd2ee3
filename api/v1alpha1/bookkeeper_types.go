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
// BookKeeper Spec
// ============================================================================

// BookKeeperSetSpec configures the storage bookies.
type BookKeeperSetSpec struct {
	ComponentSpec `json:",inline"`

	// +kubebuilder:validation:Enum=OrderedReady;Parallel
	// +optional
	PodManagementPolicy appsv1.PodManagementPolicyType `json:"podManagementPolicy,omitempty"`

	// +optional
	UpdateStrategy *appsv1.StatefulSetUpdateStrategy `json:"updateStrategy,omitempty"`

	// +optional
	JournalVolume *VolumeConfig `json:"journalVolume,omitempty"`

	// +optional
	LedgersVolume *VolumeConfig `json:"ledgersVolume,omitempty"`
}

// BookKeeperFullSpec is the spec of the BookKeeper resource.
type BookKeeperFullSpec struct {
	// +optional
	Global *GlobalSpec `json:"global,omitempty"`

	// +optional
	BookKeeper *BookKeeperSetSpec `json:"bookkeeper,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=bk
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Reason",type="string",JSONPath=".status.reason"

// BookKeeper is the Schema for the bookkeepers API.
type BookKeeper struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BookKeeperFullSpec `json:"spec,omitempty"`
	Status ComponentStatus    `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BookKeeperList contains a list of BookKeeper.
type BookKeeperList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BookKeeper `json:"items"`
}

// GetComponentStatus returns the mutable status of the resource.
func (b *BookKeeper) GetComponentStatus() *ComponentStatus { return &b.Status }

func init() {
	SchemeBuilder.Register(&BookKeeper{}, &BookKeeperList{})
}
