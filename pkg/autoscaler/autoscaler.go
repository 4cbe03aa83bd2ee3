package autoscaler

import (
	"context"
	"errors"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/monitoring"
	"github.com/numtide/pulsar-operator/pkg/resolver"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

// ClusterClient is the cluster access the autoscaler needs. PodMetrics must
// be served uncached: the metrics API supports neither watch nor informers.
type ClusterClient interface {
	client.Reader
	Patch(ctx context.Context, obj client.Object, patch client.Patch, opts ...client.PatchOption) error
}

// Target identifies the broker fleet of one Pulsar cluster.
type Target struct {
	Namespace string
	// Cluster is the resolved GlobalSpec.Name.
	Cluster string
	// BrokerBaseName is the resolved broker base name.
	BrokerBaseName string
}

// BrokerName is the name of the Broker resource and its StatefulSet.
func (t Target) BrokerName() string {
	return metadata.ResourceName(t.Cluster, t.BrokerBaseName)
}

func (t Target) brokerKey() types.NamespacedName {
	return types.NamespacedName{Namespace: t.Namespace, Name: t.BrokerName()}
}

// Observation is everything one cycle read from the cluster.
type Observation struct {
	Broker   *pulsarv1alpha1.Broker
	Replicas int32
	Policy   Policy

	Ready       bool
	NotReadyWhy string

	Stats []BrokerStat
	Skips []Skip
}

// Decide is the pure decision over an observation.
func (o Observation) Decide() Decision {
	switch {
	case !o.Policy.Enabled:
		return noAction(o.Replicas, "autoscaler disabled")
	case !o.Ready:
		return noAction(o.Replicas, o.NotReadyWhy)
	}
	return Decide(o.Replicas, o.Stats, o.Policy)
}

// Autoscaler runs broker autoscaling cycles.
type Autoscaler struct {
	Client ClusterClient
	// Clock defaults to the real clock.
	Clock clock.PassiveClock
	// GracePeriod defaults to DefaultGracePeriod.
	GracePeriod time.Duration
}

func (a *Autoscaler) clock() clock.PassiveClock {
	if a.Clock == nil {
		return clock.RealClock{}
	}
	return a.Clock
}

func (a *Autoscaler) gracePeriod() time.Duration {
	if a.GracePeriod > 0 {
		return a.GracePeriod
	}
	return DefaultGracePeriod
}

// Observe reads the Broker resource, its StatefulSet, its pods and, when the
// fleet passes the readiness gate, their CPU metrics.
func (a *Autoscaler) Observe(ctx context.Context, t Target) (Observation, error) {
	broker := &pulsarv1alpha1.Broker{}
	if err := a.Client.Get(ctx, t.brokerKey(), broker); err != nil {
		return Observation{}, fmt.Errorf("failed to get Broker %s: %w", t.BrokerName(), err)
	}

	resolved := resolver.ResolveBrokerFull(broker.Spec)
	obs := Observation{
		Broker:   broker,
		Replicas: ptr.Deref(resolved.Broker.Replicas, resolver.DefaultReplicas),
		Policy:   PolicyFor(resolved.Broker.Autoscaler),
	}
	if !obs.Policy.Enabled {
		return obs, nil
	}

	var sts *appsv1.StatefulSet
	found := &appsv1.StatefulSet{}
	switch err := a.Client.Get(ctx, t.brokerKey(), found); {
	case err == nil:
		sts = found
	case !apierrors.IsNotFound(err):
		return Observation{}, fmt.Errorf("failed to get StatefulSet %s: %w", t.BrokerName(), err)
	}

	selector := client.MatchingLabels(metadata.SelectorLabels(t.Cluster, t.BrokerBaseName))
	pods := &corev1.PodList{}
	if err := a.Client.List(ctx, pods, client.InNamespace(t.Namespace), selector); err != nil {
		return Observation{}, fmt.Errorf("failed to list broker pods: %w", err)
	}

	obs.Ready, obs.NotReadyWhy = CheckReadiness(obs.Replicas, sts, pods.Items, a.clock().Now(), a.gracePeriod())
	if !obs.Ready {
		return obs, nil
	}

	podMetrics := &metricsv1beta1.PodMetricsList{}
	if err := a.Client.List(ctx, podMetrics, client.InNamespace(t.Namespace), selector); err != nil {
		return Observation{}, fmt.Errorf("failed to list broker pod metrics: %w", err)
	}
	obs.Stats, obs.Skips = Collect(pods.Items, podMetrics.Items)
	return obs, nil
}

// Apply patches the Broker resource's replica count to d.To. The patch carries
// the observed resourceVersion, so a concurrent writer makes it fail with a
// conflict instead of being overwritten.
func (a *Autoscaler) Apply(ctx context.Context, broker *pulsarv1alpha1.Broker, d Decision) error {
	if d.Action == NoAction {
		return nil
	}
	patch := client.MergeFromWithOptions(broker.DeepCopy(), client.MergeFromWithOptimisticLock{})
	if broker.Spec.Broker == nil {
		broker.Spec.Broker = &pulsarv1alpha1.BrokerSetSpec{}
	}
	broker.Spec.Broker.Replicas = ptr.To(d.To)
	if err := a.Client.Patch(ctx, broker, patch); err != nil {
		return fmt.Errorf("failed to patch Broker %s replicas: %w", broker.Name, err)
	}
	return nil
}

// Cycle runs one full observe, decide and apply pass.
func (a *Autoscaler) Cycle(ctx context.Context, t Target) (Decision, error) {
	logger := log.FromContext(ctx)

	obs, err := a.Observe(ctx, t)
	if err != nil {
		return Decision{}, err
	}
	monitoring.SetAutoscalerSampledPods(t.Cluster, t.Namespace, len(obs.Stats))
	for _, s := range obs.Skips {
		logger.V(1).Info("Broker pod excluded from vote", "pod", s.Pod, "reason", s.Reason)
	}
	for _, s := range obs.Stats {
		logger.V(1).Info("Broker pod CPU", "pod", s.Pod,
			"usedMilliCPU", s.UsedMilliCPU, "requestedMilliCPU", s.RequestedMilliCPU,
			"utilization", fmt.Sprintf("%.2f", s.Utilization()))
	}

	d := obs.Decide()
	if d.Action == NoAction {
		logger.V(1).Info("No scaling", "replicas", d.From, "reason", d.Reason)
		return d, nil
	}

	if err := a.Apply(ctx, obs.Broker, d); err != nil {
		return d, err
	}
	monitoring.SetBrokerDesiredReplicas(t.Cluster, t.Namespace, d.To)
	logger.Info("Scaled brokers", "from", d.From, "to", d.To, "reason", d.Reason)
	return d, nil
}

// Run is one scheduled cycle. It never returns an error: failures are logged,
// a conflicting concurrent write is left to the next cycle, and cancellation
// is ignored.
func (a *Autoscaler) Run(ctx context.Context, t Target) {
	start := a.clock().Now()
	ctx, span := monitoring.StartAutoscalerSpan(ctx, t.Cluster, t.Namespace)
	defer span.End()

	logger := monitoring.EnrichLoggerWithTrace(ctx, log.FromContext(ctx)).
		WithValues("namespace", t.Namespace, "cluster", t.Cluster, "broker", t.BrokerName())
	ctx = log.IntoContext(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Errorf("panic: %v", r), "Broker autoscaler error")
		}
	}()

	d, err := a.Cycle(ctx, t)
	switch {
	case err == nil:
		monitoring.RecordAutoscalerDecision(t.Cluster, t.Namespace, d.Action.String(), a.clock().Since(start))
	case IsCancellation(err):
	case apierrors.IsConflict(err):
		logger.Info("Broker changed during the cycle, retrying next period")
	default:
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Broker autoscaler error")
	}
}

// IsCancellation reports whether err only signals that the autoscaler is
// shutting down.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrSchedulerStopped) || errors.Is(err, context.Canceled)
}
