// Package resolver computes the effective specification of a Pulsar component.
//
// A component resource carries a possibly partial spec plus a copy of the
// cluster's GlobalSpec. Resolution fills every unset field from fixed defaults,
// cascading from the GlobalSpec into the component where a component field has a
// global counterpart (image, pull policy, TLS).
//
// # Rules
//
//  1. Defaults overlay, never override: an explicitly set field is returned as is.
//  2. Resolution is a fixed point: resolving a resolved spec returns an equal spec.
//  3. Resolution is pure: inputs are never mutated and no I/O is performed.
//
// The GlobalSpec is resolved first, without a parent, and the resolved copy is
// embedded by value into the returned component spec.
//
// Usage:
//
//	resolved := resolver.ResolveBrokerFull(broker.Spec)
//	replicas := *resolved.Broker.Replicas
package resolver
