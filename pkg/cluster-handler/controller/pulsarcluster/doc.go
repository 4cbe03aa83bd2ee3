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

// Package pulsarcluster implements the controller for the PulsarCluster
// resource.
//
// A PulsarCluster is the single entry point users edit. The controller
// resolves and validates the whole spec, then materializes one ZooKeeper,
// BookKeeper, Broker and Proxy resource named <cluster>-<baseName>. Each
// child carries its own copy of the resolved GlobalSpec, so the component
// controllers never read the parent.
//
// # Token Secrets
//
// With token authentication on and provisionSecrets set, a key pair and one
// signed token per superuser role are created as Secrets before any
// component is touched. Existing Secrets are never overwritten.
//
// # Broker Autoscaling
//
// When spec.broker.autoscaler.enabled is set, the cluster is registered with
// the autoscaler scheduler and the Broker replica count is left to the
// autoscaler. Disabling it, or deleting the PulsarCluster, unregisters it.
package pulsarcluster
