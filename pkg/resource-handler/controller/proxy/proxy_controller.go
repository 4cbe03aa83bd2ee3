package proxy

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

// ProxyReconciler reconciles a Proxy object.
type ProxyReconciler struct {
	*reconcile.Reconciler[*pulsarv1alpha1.Proxy, pulsarv1alpha1.ProxyFullSpec]
	Applier reconcile.Applier
}

// NewProxyReconciler returns a ProxyReconciler using c for every read and write.
func NewProxyReconciler(c client.Client, scheme *runtime.Scheme, recorder record.EventRecorder) *ProxyReconciler {
	r := &ProxyReconciler{Applier: reconcile.Applier{Client: c, Scheme: scheme}}
	r.Reconciler = &reconcile.Reconciler[*pulsarv1alpha1.Proxy, pulsarv1alpha1.ProxyFullSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: reconcile.Strategy[*pulsarv1alpha1.Proxy, pulsarv1alpha1.ProxyFullSpec]{
			Kind: validation.KindProxy,
			New:  func() *pulsarv1alpha1.Proxy { return &pulsarv1alpha1.Proxy{} },
			Resolve: func(p *pulsarv1alpha1.Proxy) pulsarv1alpha1.ProxyFullSpec {
				return resolver.ResolveProxyFull(p.Spec)
			},
			Synchronize: r.synchronize,
		},
	}
	return r
}

// synchronize applies the ConfigMap, Service, Deployment and disruption
// budget of the proxies.
func (r *ProxyReconciler) synchronize(
	ctx context.Context,
	p *pulsarv1alpha1.Proxy,
	spec pulsarv1alpha1.ProxyFullSpec,
) error {
	names := workload.NamesFor(spec.Global, p.Namespace)
	pdb := workload.BuildPodDisruptionBudget(names.Proxy, p.Namespace, labels(spec), selector(spec), spec.Proxy.PDB)
	return workload.ApplyAll(ctx, r.Applier, p, names.Proxy, pdb,
		BuildConfigMap(p.Namespace, spec),
		BuildService(p.Namespace, spec),
		BuildDeployment(p.Namespace, spec),
	)
}

// SetupWithManager sets up the controller with the Manager.
func (r *ProxyReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&pulsarv1alpha1.Proxy{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		WithOptions(controllerOpts).
		Complete(r)
}
