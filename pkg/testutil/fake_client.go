package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// NewScheme returns a scheme with the core, Pulsar and pod metrics types.
func NewScheme(t testing.TB) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(s))
	utilruntime.Must(pulsarv1alpha1.AddToScheme(s))
	utilruntime.Must(metricsv1beta1.AddToScheme(s))
	return s
}

// FailureConfig configures when the fake client should return errors.
// Each field is a function that receives the object/key and returns an error if the operation should fail.
type FailureConfig struct {
	// OnGet is called before Get operations. Return non-nil to fail the operation.
	OnGet func(key client.ObjectKey) error

	// OnList is called before List operations. Return non-nil to fail the operation.
	OnList func(list client.ObjectList) error

	// OnCreate is called before Create operations. Return non-nil to fail the operation.
	OnCreate func(obj client.Object) error

	// OnUpdate is called before Update operations. Return non-nil to fail the operation.
	OnUpdate func(obj client.Object) error

	// OnPatch is called before Patch operations. Return non-nil to fail the operation.
	OnPatch func(obj client.Object) error

	// OnDelete is called before Delete operations. Return non-nil to fail the operation.
	OnDelete func(obj client.Object) error

	// OnStatusUpdate is called before Status().Update() operations. Return non-nil to fail the operation.
	OnStatusUpdate func(obj client.Object) error
}

// Calls counts the operations that reached the wrapped client. Status writes
// are counted even when an injected failure rejects them.
type Calls struct {
	Get, List, Create, Update, Patch, Delete, StatusUpdate, StatusPatch int
}

// Writes is the number of mutating calls, status writes excluded.
func (c Calls) Writes() int {
	return c.Create + c.Update + c.Patch + c.Delete
}

// FakeClient wraps a real fake client, injects failures based on its
// configuration and counts the calls it forwards.
type FakeClient struct {
	client.Client
	config *FailureConfig

	mu    sync.Mutex
	calls Calls
}

// NewFakeClientWithFailures creates a fake client that can be configured to fail operations.
// This is useful for testing error handling paths in controllers.
func NewFakeClientWithFailures(baseClient client.Client, config *FailureConfig) *FakeClient {
	if config == nil {
		config = &FailureConfig{}
	}
	return &FakeClient{Client: baseClient, config: config}
}

// Calls returns a snapshot of the forwarded call counts.
func (c *FakeClient) Calls() Calls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *FakeClient) count(fn func(*Calls)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.calls)
}

func (c *FakeClient) Get(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
	if err := check(c.config.OnGet, key); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.Get++ })
	return c.Client.Get(ctx, key, obj, opts...)
}

func (c *FakeClient) List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	if err := check(c.config.OnList, list); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.List++ })
	return c.Client.List(ctx, list, opts...)
}

func (c *FakeClient) Create(ctx context.Context, obj client.Object, opts ...client.CreateOption) error {
	if err := check(c.config.OnCreate, obj); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.Create++ })
	return c.Client.Create(ctx, obj, opts...)
}

func (c *FakeClient) Update(ctx context.Context, obj client.Object, opts ...client.UpdateOption) error {
	if err := check(c.config.OnUpdate, obj); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.Update++ })
	return c.Client.Update(ctx, obj, opts...)
}

func (c *FakeClient) Patch(ctx context.Context, obj client.Object, patch client.Patch, opts ...client.PatchOption) error {
	if err := check(c.config.OnPatch, obj); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.Patch++ })
	return c.Client.Patch(ctx, obj, patch, opts...)
}

func (c *FakeClient) Delete(ctx context.Context, obj client.Object, opts ...client.DeleteOption) error {
	if err := check(c.config.OnDelete, obj); err != nil {
		return err
	}
	c.count(func(n *Calls) { n.Delete++ })
	return c.Client.Delete(ctx, obj, opts...)
}

func (c *FakeClient) Status() client.SubResourceWriter {
	return &statusWriter{SubResourceWriter: c.Client.Status(), parent: c}
}

type statusWriter struct {
	client.SubResourceWriter
	parent *FakeClient
}

func (s *statusWriter) Update(ctx context.Context, obj client.Object, opts ...client.SubResourceUpdateOption) error {
	s.parent.count(func(n *Calls) { n.StatusUpdate++ })
	if err := check(s.parent.config.OnStatusUpdate, obj); err != nil {
		return err
	}
	return s.SubResourceWriter.Update(ctx, obj, opts...)
}

func (s *statusWriter) Patch(ctx context.Context, obj client.Object, patch client.Patch, opts ...client.SubResourcePatchOption) error {
	s.parent.count(func(n *Calls) { n.StatusPatch++ })
	return s.SubResourceWriter.Patch(ctx, obj, patch, opts...)
}

func check[T any](fn func(T) error, arg T) error {
	if fn == nil {
		return nil
	}
	return fn(arg)
}

// Helper functions for common failure scenarios

// FailOnObjectName returns an error if the object name matches.
func FailOnObjectName(name string, err error) func(client.Object) error {
	return func(obj client.Object) error {
		accessor, metaErr := meta.Accessor(obj)
		if metaErr != nil {
			panic(fmt.Sprintf("meta.Accessor failed: %v", metaErr))
		}
		if accessor.GetName() == name {
			return err
		}
		return nil
	}
}

// FailOnKind returns an error for objects of type T.
func FailOnKind[T client.Object](err error) func(client.Object) error {
	return func(obj client.Object) error {
		if _, ok := obj.(T); ok {
			return err
		}
		return nil
	}
}

// FailOnKeyName returns an error if the key name matches.
func FailOnKeyName(name string, err error) func(client.ObjectKey) error {
	return func(key client.ObjectKey) error {
		if key.Name == name {
			return err
		}
		return nil
	}
}

// FailOnListType returns an error for lists of type T.
func FailOnListType[T client.ObjectList](err error) func(client.ObjectList) error {
	return func(list client.ObjectList) error {
		if _, ok := list.(T); ok {
			return err
		}
		return nil
	}
}

// FailObjAfterNCalls returns an Object failure function that fails after N successful calls.
func FailObjAfterNCalls(n int, err error) func(client.Object) error {
	var mu sync.Mutex
	count := 0
	return func(client.Object) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		if count > n {
			return err
		}
		return nil
	}
}

// Common errors for testing
var (
	ErrInjected       = errors.New("injected test error")
	ErrNetworkTimeout = errors.New("network timeout")
)
