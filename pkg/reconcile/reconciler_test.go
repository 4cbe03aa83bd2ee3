package reconcile

import (
	"context"
	"errors"
	"strings"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resolver"
	"github.com/numtide/pulsar-operator/pkg/testutil"
	"github.com/numtide/pulsar-operator/pkg/validation"
)

func zookeeper(name string) *pulsarv1alpha1.ZooKeeper {
	return &pulsarv1alpha1.ZooKeeper{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default", Generation: 4},
		Spec: pulsarv1alpha1.ZooKeeperFullSpec{
			Global:    &pulsarv1alpha1.GlobalSpec{Name: "pulsar"},
			ZooKeeper: &pulsarv1alpha1.ZooKeeperSetSpec{},
		},
	}
}

type syncRecorder struct {
	calls int
	err   error
}

func (s *syncRecorder) sync(context.Context, *pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec) error {
	s.calls++
	return s.err
}

func newReconciler(
	t *testing.T,
	objs []client.Object,
	failures *testutil.FailureConfig,
	sync *syncRecorder,
) (*Reconciler[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec], *testutil.FakeClient, *record.FakeRecorder) {
	t.Helper()

	scheme := testutil.NewScheme(t)
	base := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&pulsarv1alpha1.ZooKeeper{}).
		Build()
	c := testutil.NewFakeClientWithFailures(base, failures)
	recorder := record.NewFakeRecorder(10)

	return &Reconciler[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: Strategy[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec]{
			Kind: validation.KindZooKeeper,
			New:  func() *pulsarv1alpha1.ZooKeeper { return &pulsarv1alpha1.ZooKeeper{} },
			Resolve: func(z *pulsarv1alpha1.ZooKeeper) pulsarv1alpha1.ZooKeeperFullSpec {
				return resolver.ResolveZooKeeperFull(z.Spec)
			},
			Synchronize: sync.sync,
		},
	}, c, recorder
}

func request(name string) ctrl.Request {
	return ctrl.Request{NamespacedName: types.NamespacedName{Name: name, Namespace: "default"}}
}

func TestReconciler_Reconcile(t *testing.T) {
	t.Parallel()

	invalid := zookeeper("zk")
	invalid.Spec.Global.Name = "Not_A_Label"
	invalid.Spec.ZooKeeper.Replicas = ptr.To(int32(-1))

	tests := map[string]struct {
		obj        *pulsarv1alpha1.ZooKeeper
		syncErr    error
		wantResult ctrl.Result
		wantSync   int
		wantStatus pulsarv1alpha1.ComponentStatus
		wantMsg    []string
		wantEvent  string
	}{
		"Valid Spec Becomes Ready": {
			obj:        zookeeper("zk"),
			wantSync:   1,
			wantStatus: pulsarv1alpha1.ComponentStatus{Ready: true, ObservedGeneration: 4},
			wantEvent:  "Normal Synced",
		},
		"Invalid Spec Skips Synchronization": {
			obj:        invalid,
			wantSync:   0,
			wantStatus: pulsarv1alpha1.ComponentStatus{Reason: pulsarv1alpha1.ReasonErrorConfig, ObservedGeneration: 4},
			wantMsg:    []string{`"spec.global.name"`, `"spec.zookeeper.replicas"`},
			wantEvent:  "Warning InvalidSpec",
		},
		"Synchronization Failure Is Retriable": {
			obj:        zookeeper("zk"),
			syncErr:    errors.New("quota exceeded"),
			wantResult: ctrl.Result{RequeueAfter: DefaultRequeueAfterError},
			wantSync:   1,
			wantStatus: pulsarv1alpha1.ComponentStatus{Reason: pulsarv1alpha1.ReasonErrorUpgrading, ObservedGeneration: 4},
			wantMsg:    []string{"quota exceeded"},
			wantEvent:  "Warning FailedApply",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sync := &syncRecorder{err: tc.syncErr}
			r, c, recorder := newReconciler(t, []client.Object{tc.obj.DeepCopy()}, nil, sync)

			result, err := r.Reconcile(t.Context(), request(tc.obj.Name))
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			if result != tc.wantResult {
				t.Errorf("Reconcile() result = %+v, want %+v", result, tc.wantResult)
			}
			if sync.calls != tc.wantSync {
				t.Errorf("Synchronize calls = %d, want %d", sync.calls, tc.wantSync)
			}
			if got := c.Calls().StatusUpdate; got != 1 {
				t.Errorf("status updates = %d, want exactly 1", got)
			}

			got := &pulsarv1alpha1.ZooKeeper{}
			if err := c.Get(t.Context(), client.ObjectKeyFromObject(tc.obj), got); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			msg := got.Status.Message
			got.Status.Message = ""
			if got.Status != tc.wantStatus {
				t.Errorf("status = %+v, want %+v", got.Status, tc.wantStatus)
			}
			for _, want := range tc.wantMsg {
				if !strings.Contains(msg, want) {
					t.Errorf("status message %q does not contain %q", msg, want)
				}
			}
			if tc.wantMsg == nil && msg != "" {
				t.Errorf("status message = %q, want empty", msg)
			}

			select {
			case event := <-recorder.Events:
				if !strings.HasPrefix(event, tc.wantEvent) {
					t.Errorf("event = %q, want prefix %q", event, tc.wantEvent)
				}
			default:
				t.Errorf("no event recorded, want %q", tc.wantEvent)
			}
		})
	}
}

func TestReconciler_Reconcile_OverwritesPreviousStatus(t *testing.T) {
	t.Parallel()

	obj := zookeeper("zk")
	obj.Status = pulsarv1alpha1.ComponentStatus{
		Reason:  pulsarv1alpha1.ReasonErrorUpgrading,
		Message: "previous failure",
	}
	r, c, _ := newReconciler(t, []client.Object{obj}, nil, &syncRecorder{})

	if _, err := r.Reconcile(t.Context(), request("zk")); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	got := &pulsarv1alpha1.ZooKeeper{}
	if err := c.Get(t.Context(), client.ObjectKeyFromObject(obj), got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.Status.Ready || got.Status.Reason != "" || got.Status.Message != "" {
		t.Errorf("status = %+v, want a clean Ready status", got.Status)
	}
}

func TestReconciler_Reconcile_NotFound(t *testing.T) {
	t.Parallel()

	sync := &syncRecorder{}
	r, c, _ := newReconciler(t, nil, nil, sync)
	var gone []types.NamespacedName
	r.Strategy.OnNotFound = func(_ context.Context, key types.NamespacedName) {
		gone = append(gone, key)
	}

	result, err := r.Reconcile(t.Context(), request("missing"))
	if err != nil || result != (ctrl.Result{}) {
		t.Fatalf("Reconcile() = %+v, %v; want empty result and nil error", result, err)
	}
	if sync.calls != 0 || c.Calls().StatusUpdate != 0 {
		t.Errorf("sync calls = %d, status updates = %d; want 0 and 0", sync.calls, c.Calls().StatusUpdate)
	}
	if len(gone) != 1 || gone[0].Name != "missing" {
		t.Errorf("OnNotFound keys = %v, want [default/missing]", gone)
	}
}

func TestReconciler_Reconcile_ClientErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		failures *testutil.FailureConfig
		wantSync int
	}{
		"Get Failure": {
			failures: &testutil.FailureConfig{OnGet: testutil.FailOnKeyName("zk", testutil.ErrNetworkTimeout)},
			wantSync: 0,
		},
		"Status Write Failure": {
			failures: &testutil.FailureConfig{OnStatusUpdate: testutil.FailOnObjectName("zk", testutil.ErrNetworkTimeout)},
			wantSync: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sync := &syncRecorder{}
			r, _, _ := newReconciler(t, []client.Object{zookeeper("zk")}, tc.failures, sync)

			_, err := r.Reconcile(t.Context(), request("zk"))
			if !errors.Is(err, testutil.ErrNetworkTimeout) {
				t.Errorf("Reconcile() error = %v, want %v", err, testutil.ErrNetworkTimeout)
			}
			if sync.calls != tc.wantSync {
				t.Errorf("Synchronize calls = %d, want %d", sync.calls, tc.wantSync)
			}
		})
	}
}

func TestReconciler_Cycle_CustomValidate(t *testing.T) {
	t.Parallel()

	sync := &syncRecorder{}
	r, _, _ := newReconciler(t, nil, nil, sync)
	r.RequeueAfterError = 5
	r.Strategy.Validate = func(pulsarv1alpha1.ZooKeeperFullSpec) validation.Result {
		return validation.Result{}
	}

	obj := zookeeper("zk")
	obj.Spec.Global.Name = "Not_A_Label"
	outcome := r.Cycle(t.Context(), obj)

	if outcome.Phase != PhaseReady {
		t.Errorf("phase = %s, want %s", outcome.Phase, PhaseReady)
	}
	if sync.calls != 1 {
		t.Errorf("Synchronize calls = %d, want 1", sync.calls)
	}
	if r.requeueAfterError() != 5 {
		t.Errorf("requeueAfterError() = %v, want 5ns", r.requeueAfterError())
	}
	if obj.Status != (pulsarv1alpha1.ComponentStatus{}) {
		t.Errorf("Cycle() wrote status %+v onto the object", obj.Status)
	}
}

func TestReconciler_Cycle_OnInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name      string
		wantPhase Phase
		wantCalls int
	}{
		"Invalid Spec": {name: "Not_A_Label", wantPhase: PhaseInvalid, wantCalls: 1},
		"Valid Spec":   {name: "pulsar", wantPhase: PhaseReady, wantCalls: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sync := &syncRecorder{}
			r, _, _ := newReconciler(t, nil, nil, sync)
			var invalid []string
			r.Strategy.OnInvalid = func(_ context.Context, obj *pulsarv1alpha1.ZooKeeper) {
				invalid = append(invalid, obj.Name)
			}

			obj := zookeeper("zk")
			obj.Spec.Global.Name = tc.name
			outcome := r.Cycle(t.Context(), obj)

			if outcome.Phase != tc.wantPhase {
				t.Errorf("phase = %s, want %s", outcome.Phase, tc.wantPhase)
			}
			if len(invalid) != tc.wantCalls {
				t.Errorf("OnInvalid calls = %v, want %d", invalid, tc.wantCalls)
			}
			if tc.wantCalls > 0 && sync.calls != 0 {
				t.Errorf("Synchronize calls = %d, want 0", sync.calls)
			}
		})
	}
}
