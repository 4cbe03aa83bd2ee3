// Package reconcile implements the reconcile cycle shared by every Pulsar
// component controller.
//
// A cycle moves one custom resource through a fixed sequence of phases:
//
//	Pending -> Resolving -> Validating -> Invalid
//	                                   -> Synchronizing -> Ready
//	                                                    -> Failed
//
// The kind-specific parts (how to default, validate and synthesize a spec)
// are supplied as a Strategy, a record of functions. The Reconciler owns the
// rest: fetching the object, running the phases in order, and writing the
// resulting status exactly once.
//
// Invalid is terminal for the cycle and is re-evaluated on the next event.
// Failed is retriable and requeues after a fixed delay. Neither is returned
// to controller-runtime as an error; the only error a cycle returns is a
// failed status write.
package reconcile
