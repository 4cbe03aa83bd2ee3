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

// Package broker implements the controller for the Broker resource.
//
// The Broker controller synthesizes the serving tier of a Pulsar cluster from
// a resolved BrokerFullSpec:
//
// # ConfigMap
//
// Broker settings are passed as environment variables and rendered into
// conf/broker.conf at start. The ConfigMap carries the metadata store
// addresses, the cluster name, the optional functions worker and websocket
// toggles, fixed JVM defaults and finally the user config overlay.
//
// # Service
//
// Exposes http (8080) and pulsar (6650), plus https (8443) and pulsarssl
// (6651) when broker TLS is on.
//
// # StatefulSet
//
// Pods wait for the first bookie to resolve before starting. When the
// autoscaler is enabled the replica count is owned by the autoscaler, which
// patches spec.broker.replicas of the Broker resource.
//
// # PodDisruptionBudget
//
// Created when enabled, deleted when disabled.
package broker
