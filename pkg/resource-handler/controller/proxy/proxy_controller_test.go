package proxy

import (
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/testutil"
)

func TestProxyReconciler_Reconcile(t *testing.T) {
	t.Parallel()

	key := types.NamespacedName{Name: "pulsar-proxy", Namespace: "default"}

	tests := map[string]struct {
		proxy      *pulsarv1alpha1.ProxySetSpec
		failures   *testutil.FailureConfig
		wantReason pulsarv1alpha1.StatusReason
	}{
		"creates deployment": {
			proxy: &pulsarv1alpha1.ProxySetSpec{
				ComponentSpec: pulsarv1alpha1.ComponentSpec{Replicas: ptr.To(int32(2))},
			},
		},
		"negative replicas are invalid": {
			proxy: &pulsarv1alpha1.ProxySetSpec{
				ComponentSpec: pulsarv1alpha1.ComponentSpec{Replicas: ptr.To(int32(-2))},
			},
			wantReason: pulsarv1alpha1.ReasonErrorConfig,
		},
		"service apply failure": {
			failures: &testutil.FailureConfig{
				OnPatch: testutil.FailOnKind[*corev1.Service](testutil.ErrNetworkTimeout),
			},
			wantReason: pulsarv1alpha1.ReasonErrorUpgrading,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			proxy := &pulsarv1alpha1.Proxy{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace, UID: "proxy-uid"},
				Spec: pulsarv1alpha1.ProxyFullSpec{
					Global: &pulsarv1alpha1.GlobalSpec{Name: "pulsar"},
					Proxy:  tc.proxy,
				},
			}
			scheme := testutil.NewScheme(t)
			base := fake.NewClientBuilder().
				WithScheme(scheme).
				WithObjects(proxy).
				WithStatusSubresource(&pulsarv1alpha1.Proxy{}).
				Build()
			c := testutil.NewFakeClientWithFailures(base, tc.failures)
			r := NewProxyReconciler(c, scheme, record.NewFakeRecorder(10))

			if _, err := r.Reconcile(t.Context(), ctrl.Request{NamespacedName: key}); err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}

			got := &pulsarv1alpha1.Proxy{}
			if err := base.Get(t.Context(), key, got); err != nil {
				t.Fatalf("failed to get Proxy: %v", err)
			}
			if got.Status.Reason != tc.wantReason || got.Status.Ready != (tc.wantReason == "") {
				t.Fatalf("status = %+v, want reason %q", got.Status, tc.wantReason)
			}
			if tc.wantReason != "" {
				return
			}

			d := &appsv1.Deployment{}
			if err := base.Get(t.Context(), client.ObjectKeyFromObject(proxy), d); err != nil {
				t.Fatalf("Deployment should exist: %v", err)
			}
			if got := ptr.Deref(d.Spec.Replicas, 0); got != 2 {
				t.Errorf("Replicas = %d, want 2", got)
			}
		})
	}
}
