package zookeeper

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

// ZooKeeperReconciler reconciles a ZooKeeper object.
type ZooKeeperReconciler struct {
	*reconcile.Reconciler[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec]
	Applier reconcile.Applier
}

// NewZooKeeperReconciler returns a ZooKeeperReconciler using c for every read and write.
func NewZooKeeperReconciler(c client.Client, scheme *runtime.Scheme, recorder record.EventRecorder) *ZooKeeperReconciler {
	r := &ZooKeeperReconciler{Applier: reconcile.Applier{Client: c, Scheme: scheme}}
	r.Reconciler = &reconcile.Reconciler[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: reconcile.Strategy[*pulsarv1alpha1.ZooKeeper, pulsarv1alpha1.ZooKeeperFullSpec]{
			Kind: validation.KindZooKeeper,
			New:  func() *pulsarv1alpha1.ZooKeeper { return &pulsarv1alpha1.ZooKeeper{} },
			Resolve: func(z *pulsarv1alpha1.ZooKeeper) pulsarv1alpha1.ZooKeeperFullSpec {
				return resolver.ResolveZooKeeperFull(z.Spec)
			},
			Synchronize: r.synchronize,
		},
	}
	return r
}

func (r *ZooKeeperReconciler) synchronize(
	ctx context.Context,
	z *pulsarv1alpha1.ZooKeeper,
	spec pulsarv1alpha1.ZooKeeperFullSpec,
) error {
	names := workload.NamesFor(spec.Global, z.Namespace)
	sts, err := BuildStatefulSet(z.Namespace, spec)
	if err != nil {
		return err
	}
	pdb := workload.BuildPodDisruptionBudget(names.Zookeeper, z.Namespace, labels(spec), selector(spec), spec.ZooKeeper.PDB)
	return workload.ApplyAll(ctx, r.Applier, z, names.Zookeeper, pdb,
		BuildConfigMap(z.Namespace, spec),
		BuildService(z.Namespace, spec),
		sts,
	)
}

// SetupWithManager sets up the controller with the Manager.
func (r *ZooKeeperReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&pulsarv1alpha1.ZooKeeper{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		WithOptions(controllerOpts).
		Complete(r)
}
