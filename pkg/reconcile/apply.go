package reconcile

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// DefaultFieldOwner is the server-side apply field manager of the operator.
const DefaultFieldOwner = "pulsar-operator"

// Applier server-side applies synthesized objects on behalf of an owner.
type Applier struct {
	Client     client.Client
	Scheme     *runtime.Scheme
	FieldOwner string
}

// Apply attaches a controller reference to owner on every object and
// server-side applies them in order. It stops at the first failure.
func (a Applier) Apply(ctx context.Context, owner client.Object, objs ...client.Object) error {
	fieldOwner := a.FieldOwner
	if fieldOwner == "" {
		fieldOwner = DefaultFieldOwner
	}

	for _, obj := range objs {
		gvk, err := apiutil.GVKForObject(obj, a.Scheme)
		if err != nil {
			return fmt.Errorf("failed to resolve kind of %s: %w", obj.GetName(), err)
		}
		if err := controllerutil.SetControllerReference(owner, obj, a.Scheme); err != nil {
			return fmt.Errorf("failed to set controller reference on %s %s: %w", gvk.Kind, obj.GetName(), err)
		}

		obj.GetObjectKind().SetGroupVersionKind(gvk)
		obj.SetManagedFields(nil)
		obj.SetResourceVersion("")
		if err := a.Client.Patch(
			ctx,
			obj,
			client.Apply,
			client.ForceOwnership,
			client.FieldOwner(fieldOwner),
		); err != nil {
			return fmt.Errorf("failed to apply %s %s: %w", gvk.Kind, obj.GetName(), err)
		}
	}
	return nil
}

// Prune deletes objects that the owner no longer wants, such as a disabled
// PodDisruptionBudget. Objects that are already gone are skipped.
func (a Applier) Prune(ctx context.Context, objs ...client.Object) error {
	for _, obj := range objs {
		if err := client.IgnoreNotFound(a.Client.Delete(ctx, obj)); err != nil {
			return fmt.Errorf("failed to delete %T %s: %w", obj, obj.GetName(), err)
		}
	}
	return nil
}
