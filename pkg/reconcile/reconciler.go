package reconcile

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/monitoring"
	"github.com/numtide/pulsar-operator/pkg/util/status"
	"github.com/numtide/pulsar-operator/pkg/validation"
)

// DefaultRequeueAfterError is how long a Failed cycle waits before retrying.
const DefaultRequeueAfterError = 30 * time.Second

// Object is a custom resource driven by a Reconciler.
type Object interface {
	client.Object
	GetComponentStatus() *pulsarv1alpha1.ComponentStatus
}

// Strategy holds the kind-specific steps of a cycle. S is the resolved spec
// type of the kind.
type Strategy[T Object, S any] struct {
	// Kind selects the validator and labels logs, events and metrics.
	Kind validation.Kind

	// New returns an empty object to fetch into.
	New func() T

	// Resolve returns the fully defaulted spec of obj. It must not modify obj.
	Resolve func(obj T) S

	// Validate checks a resolved spec. Defaults to validation.Validate for Kind.
	Validate func(resolved S) validation.Result

	// Synchronize creates or patches every cluster object owned by obj.
	Synchronize func(ctx context.Context, obj T, resolved S) error

	// OnNotFound runs when the object no longer exists. Optional.
	OnNotFound func(ctx context.Context, key types.NamespacedName)

	// OnInvalid runs when the resolved spec fails validation, before the
	// status is written. Optional.
	OnInvalid func(ctx context.Context, obj T)
}

// Reconciler drives the reconcile cycle of one component kind.
type Reconciler[T Object, S any] struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Strategy Strategy[T, S]

	// RequeueAfterError is the retry delay of a Failed cycle.
	// Zero means DefaultRequeueAfterError.
	RequeueAfterError time.Duration
}

// Reconcile fetches the object named by req, runs one cycle on it and writes
// the resulting status.
func (r *Reconciler[T, S]) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	kind := string(r.Strategy.Kind)
	ctx, span := monitoring.StartReconcileSpan(ctx, kind+".Reconcile", req.Name, req.Namespace, kind)
	defer span.End()

	logger := monitoring.EnrichLoggerWithTrace(ctx, log.FromContext(ctx)).
		WithValues("kind", kind, "namespace", req.Namespace, "name", req.Name)
	ctx = log.IntoContext(ctx, logger)

	obj := r.Strategy.New()
	if err := r.Get(ctx, req.NamespacedName, obj); err != nil {
		if errors.IsNotFound(err) {
			logger.V(1).Info("resource not found, ignoring")
			monitoring.DeleteComponent(kind, req.Name, req.Namespace)
			if r.Strategy.OnNotFound != nil {
				r.Strategy.OnNotFound(ctx, req.NamespacedName)
			}
			return ctrl.Result{}, nil
		}
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, fmt.Errorf("failed to get %s: %w", kind, err)
	}

	if !obj.GetDeletionTimestamp().IsZero() {
		// Owned objects are collected through their owner references.
		return ctrl.Result{}, nil
	}

	outcome := r.Cycle(ctx, obj)

	*obj.GetComponentStatus() = outcome.Status
	if err := r.Status().Update(ctx, obj); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to update status", "phase", outcome.Phase)
		return ctrl.Result{}, fmt.Errorf("failed to update %s status: %w", kind, err)
	}

	monitoring.RecordReconcile(kind, outcome.metricLabel())
	monitoring.SetComponentReady(kind, req.Name, req.Namespace, outcome.Status.Ready)

	switch outcome.Phase {
	case PhaseInvalid:
		r.Recorder.Event(obj, "Warning", "InvalidSpec", outcome.Status.Message)
		return ctrl.Result{}, nil
	case PhaseFailed:
		monitoring.RecordSpanError(span, outcome.Err)
		r.Recorder.Eventf(obj, "Warning", "FailedApply", "Failed to synchronize %s: %v", kind, outcome.Err)
		return ctrl.Result{RequeueAfter: r.requeueAfterError()}, nil
	default:
		r.Recorder.Event(obj, "Normal", "Synced", "Successfully reconciled "+kind)
		return ctrl.Result{}, nil
	}
}

// Cycle runs resolve, validate and synchronize on obj and returns the outcome.
// It never writes status and never returns a synchronization error by itself.
func (r *Reconciler[T, S]) Cycle(ctx context.Context, obj T) Outcome {
	logger := log.FromContext(ctx)
	generation := obj.GetGeneration()

	phase := PhaseResolving
	logger.V(1).Info("reconcile phase", "phase", phase)
	resolved := r.Strategy.Resolve(obj)

	phase = PhaseValidating
	logger.V(1).Info("reconcile phase", "phase", phase)
	if result := r.validate(resolved); !result.Valid() {
		logger.Info("Invalid spec", "violations", len(result.Violations))
		if r.Strategy.OnInvalid != nil {
			r.Strategy.OnInvalid(ctx, obj)
		}
		return Outcome{Phase: PhaseInvalid, Status: status.ConfigError(generation, result.Error())}
	}

	phase = PhaseSynchronizing
	logger.V(1).Info("reconcile phase", "phase", phase)
	syncCtx, span := monitoring.StartChildSpan(ctx, string(r.Strategy.Kind)+".Synchronize")
	err := r.Strategy.Synchronize(syncCtx, obj, resolved)
	monitoring.RecordSpanError(span, err)
	span.End()
	if err != nil {
		logger.Error(err, "Failed to synchronize")
		return Outcome{Phase: PhaseFailed, Status: status.UpgradeError(generation, err.Error()), Err: err}
	}

	return Outcome{Phase: PhaseReady, Status: status.Ready(generation)}
}

func (r *Reconciler[T, S]) validate(resolved S) validation.Result {
	if r.Strategy.Validate != nil {
		return r.Strategy.Validate(resolved)
	}
	return validation.Validate(r.Strategy.Kind, resolved)
}

func (r *Reconciler[T, S]) requeueAfterError() time.Duration {
	if r.RequeueAfterError > 0 {
		return r.RequeueAfterError
	}
	return DefaultRequeueAfterError
}
