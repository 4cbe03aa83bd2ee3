package workload

import (
	"context"

	policyv1 "k8s.io/api/policy/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/reconcile"
)

// BuildPodDisruptionBudget returns the disruption budget of a component, or
// nil when it is disabled.
func BuildPodDisruptionBudget(
	name, namespace string,
	labels, selector map[string]string,
	cfg *pulsarv1alpha1.PodDisruptionBudgetConfig,
) *policyv1.PodDisruptionBudget {
	if cfg == nil || !ptr.Deref(cfg.Enabled, false) {
		return nil
	}
	maxUnavailable := intstr.FromInt32(ptr.Deref(cfg.MaxUnavailable, 1))
	return &policyv1.PodDisruptionBudget{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Spec: policyv1.PodDisruptionBudgetSpec{
			MaxUnavailable: &maxUnavailable,
			Selector:       &metav1.LabelSelector{MatchLabels: selector},
		},
	}
}

// ApplyAll applies objs and the disruption budget of owner. A nil pdb
// deletes the budget named name if one was applied before.
func ApplyAll(
	ctx context.Context,
	a reconcile.Applier,
	owner client.Object,
	name string,
	pdb *policyv1.PodDisruptionBudget,
	objs ...client.Object,
) error {
	if pdb != nil {
		objs = append(objs, pdb)
	}
	if err := a.Apply(ctx, owner, objs...); err != nil {
		return err
	}
	if pdb != nil {
		return nil
	}
	return a.Prune(ctx, &policyv1.PodDisruptionBudget{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: owner.GetNamespace()},
	})
}
