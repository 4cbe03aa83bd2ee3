// Package testutil provides test utilities for the operator's controllers.
//
// The main support is a wrapper around controller-runtime's fake client that
// injects failures per operation and counts the calls that went through, so
// tests can assert both error paths and "exactly one status write" style
// guarantees without envtest.
//
// Example:
//
//	base := fake.NewClientBuilder().WithScheme(testutil.NewScheme(t)).Build()
//	c := testutil.NewFakeClientWithFailures(base, &testutil.FailureConfig{
//	    OnPatch: testutil.FailOnObjectName("pulsar-broker", testutil.ErrInjected),
//	})
//	...
//	if got := c.Calls().StatusUpdate; got != 1 { ... }
package testutil
