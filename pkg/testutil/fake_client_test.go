package testutil

import (
	"errors"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func TestFakeClientWithFailures(t *testing.T) {
	t.Parallel()

	cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "target", Namespace: "default"}}
	other := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "default"}}

	tests := map[string]struct {
		config  *FailureConfig
		op      func(t *testing.T, c client.Client) error
		wantErr error
	}{
		"Nil Config Passes Through": {
			op: func(t *testing.T, c client.Client) error {
				return c.Create(t.Context(), cm.DeepCopy())
			},
		},
		"Create Fails On Name": {
			config: &FailureConfig{OnCreate: FailOnObjectName("target", ErrInjected)},
			op: func(t *testing.T, c client.Client) error {
				return c.Create(t.Context(), cm.DeepCopy())
			},
			wantErr: ErrInjected,
		},
		"Create Other Name Succeeds": {
			config: &FailureConfig{OnCreate: FailOnObjectName("target", ErrInjected)},
			op: func(t *testing.T, c client.Client) error {
				return c.Create(t.Context(), other.DeepCopy())
			},
		},
		"Get Fails On Key": {
			config: &FailureConfig{OnGet: FailOnKeyName("target", ErrNetworkTimeout)},
			op: func(t *testing.T, c client.Client) error {
				return c.Get(t.Context(), client.ObjectKeyFromObject(cm), &corev1.ConfigMap{})
			},
			wantErr: ErrNetworkTimeout,
		},
		"List Fails On Type": {
			config: &FailureConfig{OnList: FailOnListType[*corev1.ConfigMapList](ErrInjected)},
			op: func(t *testing.T, c client.Client) error {
				return c.List(t.Context(), &corev1.ConfigMapList{})
			},
			wantErr: ErrInjected,
		},
		"Delete Fails On Kind": {
			config: &FailureConfig{OnDelete: FailOnKind[*corev1.ConfigMap](ErrInjected)},
			op: func(t *testing.T, c client.Client) error {
				return c.Delete(t.Context(), cm.DeepCopy())
			},
			wantErr: ErrInjected,
		},
		"Update Fails After N Calls": {
			config: &FailureConfig{OnUpdate: FailObjAfterNCalls(0, ErrInjected)},
			op: func(t *testing.T, c client.Client) error {
				return c.Update(t.Context(), cm.DeepCopy())
			},
			wantErr: ErrInjected,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := fake.NewClientBuilder().WithScheme(NewScheme(t)).Build()
			c := NewFakeClientWithFailures(base, tc.config)
			err := tc.op(t, c)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestFakeClient_CountsCalls(t *testing.T) {
	t.Parallel()

	pod := &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "pod", Namespace: "default"}}
	base := fake.NewClientBuilder().WithScheme(NewScheme(t)).WithObjects(pod).WithStatusSubresource(pod).Build()
	c := NewFakeClientWithFailures(base, &FailureConfig{
		OnStatusUpdate: func(client.Object) error { return ErrInjected },
	})

	got := &corev1.Pod{}
	if err := c.Get(t.Context(), client.ObjectKeyFromObject(pod), got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := c.Status().Update(t.Context(), got); !errors.Is(err, ErrInjected) {
		t.Fatalf("Status().Update error = %v, want injected", err)
	}

	calls := c.Calls()
	if calls.Get != 1 || calls.StatusUpdate != 1 || calls.Writes() != 0 {
		t.Errorf("calls = %+v, want 1 get, 1 status update, 0 writes", calls)
	}
}
