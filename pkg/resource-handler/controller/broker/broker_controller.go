package broker

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

// BrokerReconciler reconciles a Broker object.
type BrokerReconciler struct {
	*reconcile.Reconciler[*pulsarv1alpha1.Broker, pulsarv1alpha1.BrokerFullSpec]
	Applier reconcile.Applier
}

// NewBrokerReconciler returns a BrokerReconciler using c for every read and write.
func NewBrokerReconciler(c client.Client, scheme *runtime.Scheme, recorder record.EventRecorder) *BrokerReconciler {
	r := &BrokerReconciler{Applier: reconcile.Applier{Client: c, Scheme: scheme}}
	r.Reconciler = &reconcile.Reconciler[*pulsarv1alpha1.Broker, pulsarv1alpha1.BrokerFullSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: reconcile.Strategy[*pulsarv1alpha1.Broker, pulsarv1alpha1.BrokerFullSpec]{
			Kind: validation.KindBroker,
			New:  func() *pulsarv1alpha1.Broker { return &pulsarv1alpha1.Broker{} },
			Resolve: func(b *pulsarv1alpha1.Broker) pulsarv1alpha1.BrokerFullSpec {
				return resolver.ResolveBrokerFull(b.Spec)
			},
			Synchronize: r.synchronize,
		},
	}
	return r
}

// synchronize applies the ConfigMap, Service, StatefulSet and disruption
// budget of the brokers.
func (r *BrokerReconciler) synchronize(
	ctx context.Context,
	b *pulsarv1alpha1.Broker,
	spec pulsarv1alpha1.BrokerFullSpec,
) error {
	names := workload.NamesFor(spec.Global, b.Namespace)
	pdb := workload.BuildPodDisruptionBudget(names.Broker, b.Namespace, labels(spec), selector(spec), spec.Broker.PDB)
	return workload.ApplyAll(ctx, r.Applier, b, names.Broker, pdb,
		BuildConfigMap(b.Namespace, spec),
		BuildService(b.Namespace, spec),
		BuildStatefulSet(b.Namespace, spec),
	)
}

// SetupWithManager sets up the controller with the Manager.
func (r *BrokerReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&pulsarv1alpha1.Broker{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		WithOptions(controllerOpts).
		Complete(r)
}
