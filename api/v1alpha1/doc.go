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

// Package v1alpha1 defines the API types for the Pulsar Operator.
//
// This package contains the Go type definitions for all Custom Resources in the
// pulsar.numtide.com API group.
//
// # Custom Resources
//
// User-Facing Resources:
//   - PulsarCluster: The root resource describing a complete messaging cluster.
//     Users define the global settings and every component here.
//
// Operator-Managed Resources (child resources created by the operator):
//   - ZooKeeper: The coordination service ensemble.
//   - BookKeeper: The storage bookies.
//   - Broker: The stateless serving layer, optionally CPU-autoscaled.
//   - Proxy: The client-facing entry point in front of the brokers.
//
// # Resource Hierarchy
//
//	PulsarCluster
//	├── ZooKeeper   (StatefulSet, headless Service, ConfigMap, PDB)
//	├── BookKeeper  (StatefulSet, headless Service, ConfigMap, PDB)
//	├── Broker      (StatefulSet, Service, ConfigMap, PDB)
//	└── Proxy       (Deployment, Service, ConfigMap, PDB)
//
// Every component resource embeds a copy of the cluster's GlobalSpec so it can
// be reconciled without reading its parent.
//
// +kubebuilder:object:generate=true
// +groupName=pulsar.numtide.com
package v1alpha1
