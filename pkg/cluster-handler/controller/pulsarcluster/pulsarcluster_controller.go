package pulsarcluster

import (
	"context"
	"errors"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/autoscaler"
	"github.com/numtide/pulsar-operator/pkg/reconcile"
	"github.com/numtide/pulsar-operator/pkg/resolver"
	"github.com/numtide/pulsar-operator/pkg/token"
	"github.com/numtide/pulsar-operator/pkg/validation"
)

// AutoscalerScheduler registers the periodic broker autoscaler of a cluster.
type AutoscalerScheduler interface {
	Schedule(key types.NamespacedName, t autoscaler.Target, period time.Duration) error
	Unschedule(key types.NamespacedName)
}

// PulsarClusterReconciler reconciles a PulsarCluster object.
type PulsarClusterReconciler struct {
	*reconcile.Reconciler[*pulsarv1alpha1.PulsarCluster, pulsarv1alpha1.PulsarClusterSpec]
	Tokens token.Provisioner
	// Autoscaler is optional. When nil, autoscaler settings are validated
	// but never acted upon.
	Autoscaler AutoscalerScheduler
}

// NewPulsarClusterReconciler returns a PulsarClusterReconciler using c for
// every read and write.
func NewPulsarClusterReconciler(
	c client.Client,
	scheme *runtime.Scheme,
	recorder record.EventRecorder,
	scheduler AutoscalerScheduler,
) *PulsarClusterReconciler {
	r := &PulsarClusterReconciler{
		Tokens:     token.Provisioner{Client: c, Scheme: scheme},
		Autoscaler: scheduler,
	}
	r.Reconciler = &reconcile.Reconciler[*pulsarv1alpha1.PulsarCluster, pulsarv1alpha1.PulsarClusterSpec]{
		Client:   c,
		Scheme:   scheme,
		Recorder: recorder,
		Strategy: reconcile.Strategy[*pulsarv1alpha1.PulsarCluster, pulsarv1alpha1.PulsarClusterSpec]{
			Kind: validation.KindCluster,
			New:  func() *pulsarv1alpha1.PulsarCluster { return &pulsarv1alpha1.PulsarCluster{} },
			Resolve: func(c *pulsarv1alpha1.PulsarCluster) pulsarv1alpha1.PulsarClusterSpec {
				return resolver.ResolveCluster(c.Spec)
			},
			Synchronize: r.synchronize,
			OnNotFound:  r.unschedule,
			OnInvalid:   r.unscheduleInvalid,
		},
	}
	return r
}

func (r *PulsarClusterReconciler) synchronize(
	ctx context.Context,
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
) error {
	if err := r.reconcileTokens(ctx, cluster, spec.Global); err != nil {
		return err
	}
	if err := r.reconcileComponents(ctx, cluster, spec); err != nil {
		return err
	}
	return r.reconcileAutoscaler(ctx, cluster, spec)
}

func (r *PulsarClusterReconciler) reconcileTokens(
	ctx context.Context,
	cluster *pulsarv1alpha1.PulsarCluster,
	g *pulsarv1alpha1.GlobalSpec,
) error {
	auth := g.Auth
	if auth == nil || !ptr.Deref(auth.Enabled, false) || auth.Token == nil ||
		!ptr.Deref(auth.Token.ProvisionSecrets, false) {
		return nil
	}

	created, err := r.Tokens.EnsureSecrets(ctx, cluster, token.Config{
		Namespace:      cluster.Namespace,
		PrivateKeyFile: auth.Token.PrivateKeyFile,
		PublicKeyFile:  auth.Token.PublicKeyFile,
		SuperUserRoles: auth.Token.SuperUserRoles,
	})
	if err != nil {
		return fmt.Errorf("failed to provision token secrets: %w", err)
	}
	for _, name := range created {
		r.Recorder.Eventf(cluster, "Normal", "Created", "Created Secret %s", name)
	}
	return nil
}

func (r *PulsarClusterReconciler) reconcileComponents(
	ctx context.Context,
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
) error {
	zk, err := BuildZooKeeper(cluster, spec, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build ZooKeeper: %w", err)
	}
	existingZK := &pulsarv1alpha1.ZooKeeper{}
	if err := r.upsert(ctx, cluster, zk, existingZK, func() {
		existingZK.Labels = zk.Labels
		existingZK.Spec = *zk.Spec.DeepCopy()
	}); err != nil {
		return err
	}

	bk, err := BuildBookKeeper(cluster, spec, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build BookKeeper: %w", err)
	}
	existingBK := &pulsarv1alpha1.BookKeeper{}
	if err := r.upsert(ctx, cluster, bk, existingBK, func() {
		existingBK.Labels = bk.Labels
		existingBK.Spec = *bk.Spec.DeepCopy()
	}); err != nil {
		return err
	}

	broker, err := BuildBroker(cluster, spec, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build Broker: %w", err)
	}
	existingBroker := &pulsarv1alpha1.Broker{}
	if err := r.upsert(ctx, cluster, broker, existingBroker, func() {
		var current *int32
		if existingBroker.Spec.Broker != nil {
			current = existingBroker.Spec.Broker.Replicas
		}
		existingBroker.Labels = broker.Labels
		existingBroker.Spec = *broker.Spec.DeepCopy()
		// The autoscaler owns the replica count once it is enabled.
		if autoscalerEnabled(spec) && current != nil {
			existingBroker.Spec.Broker.Replicas = current
		}
	}); err != nil {
		return err
	}

	proxy, err := BuildProxy(cluster, spec, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build Proxy: %w", err)
	}
	existingProxy := &pulsarv1alpha1.Proxy{}
	return r.upsert(ctx, cluster, proxy, existingProxy, func() {
		existingProxy.Labels = proxy.Labels
		existingProxy.Spec = *proxy.Spec.DeepCopy()
	})
}

// upsert creates desired when it does not exist. Otherwise it fetches it
// into existing, lets update copy the desired state over and writes it back.
func (r *PulsarClusterReconciler) upsert(
	ctx context.Context,
	cluster *pulsarv1alpha1.PulsarCluster,
	desired, existing client.Object,
	update func(),
) error {
	kind := fmt.Sprintf("%T", desired)
	if gvk, err := r.GroupVersionKindFor(desired); err == nil {
		kind = gvk.Kind
	}

	err := r.Get(ctx, client.ObjectKeyFromObject(desired), existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create %s '%s': %w", kind, desired.GetName(), err)
			}
			r.Recorder.Eventf(cluster, "Normal", "Created", "Created %s %s", kind, desired.GetName())
			return nil
		}
		return fmt.Errorf("failed to get %s '%s': %w", kind, desired.GetName(), err)
	}

	update()
	if err := controllerutil.SetControllerReference(cluster, existing, r.Scheme); err != nil {
		return fmt.Errorf("failed to set controller reference on %s '%s': %w", kind, desired.GetName(), err)
	}
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update %s '%s': %w", kind, desired.GetName(), err)
	}
	return nil
}

func autoscalerEnabled(spec pulsarv1alpha1.PulsarClusterSpec) bool {
	return spec.Broker != nil && spec.Broker.Autoscaler != nil && ptr.Deref(spec.Broker.Autoscaler.Enabled, false)
}

func (r *PulsarClusterReconciler) reconcileAutoscaler(
	ctx context.Context,
	cluster *pulsarv1alpha1.PulsarCluster,
	spec pulsarv1alpha1.PulsarClusterSpec,
) error {
	if r.Autoscaler == nil {
		return nil
	}
	key := client.ObjectKeyFromObject(cluster)
	if !autoscalerEnabled(spec) {
		r.Autoscaler.Unschedule(key)
		return nil
	}

	target := autoscaler.Target{
		Namespace:      cluster.Namespace,
		Cluster:        spec.Global.Name,
		BrokerBaseName: spec.Global.Components.BrokerBaseName,
	}
	period := time.Duration(ptr.Deref(spec.Broker.Autoscaler.PeriodMs, resolver.DefaultAutoscalerPeriodMs)) * time.Millisecond
	err := r.Autoscaler.Schedule(key, target, period)
	if errors.Is(err, autoscaler.ErrSchedulerStopped) {
		// The manager is shutting down.
		log.FromContext(ctx).V(1).Info("Autoscaler scheduler stopped, not scheduling")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to schedule broker autoscaler: %w", err)
	}
	return nil
}

func (r *PulsarClusterReconciler) unschedule(_ context.Context, key types.NamespacedName) {
	if r.Autoscaler != nil {
		r.Autoscaler.Unschedule(key)
	}
}

// unscheduleInvalid stops autoscaling a cluster whose spec no longer
// validates, so a schedule from an older spec cannot keep resizing brokers.
func (r *PulsarClusterReconciler) unscheduleInvalid(ctx context.Context, cluster *pulsarv1alpha1.PulsarCluster) {
	r.unschedule(ctx, client.ObjectKeyFromObject(cluster))
}

// SetupWithManager sets up the controller with the Manager.
func (r *PulsarClusterReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&pulsarv1alpha1.PulsarCluster{}).
		Owns(&pulsarv1alpha1.ZooKeeper{}).
		Owns(&pulsarv1alpha1.BookKeeper{}).
		Owns(&pulsarv1alpha1.Broker{}).
		Owns(&pulsarv1alpha1.Proxy{}).
		WithOptions(controllerOpts).
		Complete(r)
}
