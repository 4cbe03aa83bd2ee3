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

// Package status builds the ComponentStatus values written at the end of a
// reconcile cycle.
//
// A status is always built whole and written over the previous one. None of
// these helpers merge with the existing status.
package status

import (
	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// Ready is the status of a cycle that applied every object.
func Ready(generation int64) pulsarv1alpha1.ComponentStatus {
	return pulsarv1alpha1.ComponentStatus{Ready: true, ObservedGeneration: generation}
}

// ConfigError is the status of a cycle that stopped at validation.
func ConfigError(generation int64, message string) pulsarv1alpha1.ComponentStatus {
	return errorStatus(generation, pulsarv1alpha1.ReasonErrorConfig, message)
}

// UpgradeError is the status of a cycle whose synchronization failed.
func UpgradeError(generation int64, message string) pulsarv1alpha1.ComponentStatus {
	return errorStatus(generation, pulsarv1alpha1.ReasonErrorUpgrading, message)
}

func errorStatus(generation int64, reason pulsarv1alpha1.StatusReason, message string) pulsarv1alpha1.ComponentStatus {
	return pulsarv1alpha1.ComponentStatus{
		Ready:              false,
		Reason:             reason,
		Message:            message,
		ObservedGeneration: generation,
	}
}
