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
// Broker Spec
// ============================================================================

// BrokerSetSpec configures the broker fleet.
type BrokerSetSpec struct {
	ComponentSpec `json:",inline"`

	// +kubebuilder:validation:Enum=OrderedReady;Parallel
	// +optional
	PodManagementPolicy appsv1.PodManagementPolicyType `json:"podManagementPolicy,omitempty"`

	// +optional
	UpdateStrategy *appsv1.StatefulSetUpdateStrategy `json:"updateStrategy,omitempty"`

	// FunctionsWorkerEnabled runs the functions worker inside the broker.
	// +optional
	FunctionsWorkerEnabled *bool `json:"functionsWorkerEnabled,omitempty"`

	// +optional
	WebSocketServiceEnabled *bool `json:"webSocketServiceEnabled,omitempty"`

	// +optional
	ServiceAccountName string `json:"serviceAccountName,omitempty"`

	// Autoscaler resizes the fleet from observed CPU utilization.
	// +optional
	Autoscaler *BrokerAutoscalerSpec `json:"autoscaler,omitempty"`
}

// BrokerAutoscalerSpec configures the broker CPU autoscaler.
// +kubebuilder:validation:XValidation:rule="!has(self.min) || !has(self.max) || self.min <= self.max",message="min must not exceed max"
type BrokerAutoscalerSpec struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// PeriodMs is the evaluation interval in milliseconds.
	// +kubebuilder:validation:Minimum=1
	// +optional
	PeriodMs *int64 `json:"periodMs,omitempty"`

	// LowerCPUThreshold is the usage/request fraction under which a pod votes to scale down.
	// +kubebuilder:validation:Type=number
	// +optional
	LowerCPUThreshold *float64 `json:"lowerCpuThreshold,omitempty"`

	// HigherCPUThreshold is the usage/request fraction over which a pod votes to scale up.
	// +kubebuilder:validation:Type=number
	// +optional
	HigherCPUThreshold *float64 `json:"higherCpuThreshold,omitempty"`

	// +kubebuilder:validation:Minimum=1
	// +optional
	ScaleUpBy *int32 `json:"scaleUpBy,omitempty"`

	// +kubebuilder:validation:Minimum=1
	// +optional
	ScaleDownBy *int32 `json:"scaleDownBy,omitempty"`

	// Min is the lowest replica count the autoscaler may set. Nil means unbounded.
	// +optional
	Min *int32 `json:"min,omitempty"`

	// Max is the highest replica count the autoscaler may set. Nil means unbounded.
	// +optional
	Max *int32 `json:"max,omitempty"`
}

// BrokerFullSpec is the spec of the Broker resource.
type BrokerFullSpec struct {
	// +optional
	Global *GlobalSpec `json:"global,omitempty"`

	// +optional
	Broker *BrokerSetSpec `json:"broker,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Replicas",type="integer",JSONPath=".spec.broker.replicas"
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Reason",type="string",JSONPath=".status.reason"

// Broker is the Schema for the brokers API.
type Broker struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BrokerFullSpec  `json:"spec,omitempty"`
	Status ComponentStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BrokerList contains a list of Broker.
type BrokerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Broker `json:"items"`
}

// GetComponentStatus returns the mutable status of the resource.
func (b *Broker) GetComponentStatus() *ComponentStatus { return &b.Status }

func init() {
	SchemeBuilder.Register(&Broker{}, &BrokerList{})
}
