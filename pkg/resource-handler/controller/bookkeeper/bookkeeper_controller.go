package bookkeeper

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/reconcile"
	"github.com/numtide/pulsar-operator/pkg/resolver"
	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
	"github.com/numtide/pulsar-operator/pkg/validation"
)

// BookKeeperReconciler reconciles a BookKeeper object.
type BookKeeperReconciler struct {
	*reconcile.Reconciler[*pulsarv1alpha1.BookKeeper, pulsarv1alpha1.BookKeeperFullSpec]
	Applier reconcile.Applier
}

// NewBookKeeperReconciler returns a BookKeeperReconciler using c for every read and write.
func NewBookKeeperReconciler(c client.Client, scheme *runtime.Scheme, recorder record.EventRecorder) *BookKeeperReconciler {
	r := &BookKeeperReconciler{Applier: reconcile.Applier{Client: c, Scheme: scheme}}
	r.Reconciler = &reconcile.Reconciler[*pulsarv1alpha1.BookKeeper, pulsarv1alpha1.BookKeeperFullSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: reconcile.Strategy[*pulsarv1alpha1.BookKeeper, pulsarv1alpha1.BookKeeperFullSpec]{
			Kind: validation.KindBookKeeper,
			New:  func() *pulsarv1alpha1.BookKeeper { return &pulsarv1alpha1.BookKeeper{} },
			Resolve: func(bk *pulsarv1alpha1.BookKeeper) pulsarv1alpha1.BookKeeperFullSpec {
				return resolver.ResolveBookKeeperFull(bk.Spec)
			},
			Synchronize: r.synchronize,
		},
	}
	return r
}

func (r *BookKeeperReconciler) synchronize(
	ctx context.Context,
	bk *pulsarv1alpha1.BookKeeper,
	spec pulsarv1alpha1.BookKeeperFullSpec,
) error {
	names := workload.NamesFor(spec.Global, bk.Namespace)
	sts, err := BuildStatefulSet(bk.Namespace, spec)
	if err != nil {
		return err
	}
	pdb := workload.BuildPodDisruptionBudget(names.Bookie, bk.Namespace, labels(spec), selector(spec), spec.BookKeeper.PDB)
	return workload.ApplyAll(ctx, r.Applier, bk, names.Bookie, pdb,
		BuildConfigMap(bk.Namespace, spec),
		BuildService(bk.Namespace, spec),
		sts,
	)
}

// SetupWithManager sets up the controller with the Manager.
func (r *BookKeeperReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&pulsarv1alpha1.BookKeeper{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		WithOptions(controllerOpts).
		Complete(r)
}
