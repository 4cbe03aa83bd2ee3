package bookkeeper

import (
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/testutil"
)

func TestBookKeeperReconciler_Reconcile(t *testing.T) {
	t.Parallel()

	key := types.NamespacedName{Name: "pulsar-bookkeeper", Namespace: "default"}

	tests := map[string]struct {
		bk         *pulsarv1alpha1.BookKeeperSetSpec
		wantReason pulsarv1alpha1.StatusReason
		wantObjs   bool
	}{
		"creates bookies": {
			bk:       &pulsarv1alpha1.BookKeeperSetSpec{},
			wantObjs: true,
		},
		"unparsable ledgers size is invalid": {
			bk: &pulsarv1alpha1.BookKeeperSetSpec{
				LedgersVolume: &pulsarv1alpha1.VolumeConfig{Size: "lots"},
			},
			wantReason: pulsarv1alpha1.ReasonErrorConfig,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			bk := &pulsarv1alpha1.BookKeeper{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace, UID: "bk-uid"},
				Spec: pulsarv1alpha1.BookKeeperFullSpec{
					Global:     &pulsarv1alpha1.GlobalSpec{Name: "pulsar"},
					BookKeeper: tc.bk,
				},
			}
			scheme := testutil.NewScheme(t)
			c := fake.NewClientBuilder().
				WithScheme(scheme).
				WithObjects(bk).
				WithStatusSubresource(&pulsarv1alpha1.BookKeeper{}).
				Build()
			r := NewBookKeeperReconciler(c, scheme, record.NewFakeRecorder(10))

			if _, err := r.Reconcile(t.Context(), ctrl.Request{NamespacedName: key}); err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}

			got := &pulsarv1alpha1.BookKeeper{}
			if err := c.Get(t.Context(), key, got); err != nil {
				t.Fatalf("failed to get BookKeeper: %v", err)
			}
			if got.Status.Reason != tc.wantReason || got.Status.Ready != (tc.wantReason == "") {
				t.Errorf("status = %+v, want reason %q", got.Status, tc.wantReason)
			}

			for _, obj := range []client.Object{
				&appsv1.StatefulSet{}, &corev1.Service{}, &corev1.ConfigMap{}, &policyv1.PodDisruptionBudget{},
			} {
				err := c.Get(t.Context(), key, obj)
				if tc.wantObjs && err != nil {
					t.Errorf("%T should exist: %v", obj, err)
				}
				if !tc.wantObjs && !apierrors.IsNotFound(err) {
					t.Errorf("%T should not exist, got err = %v", obj, err)
				}
			}
		})
	}
}
