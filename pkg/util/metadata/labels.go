package metadata

import (
	"maps"
)

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNamePulsar is the fixed application name for all Pulsar resources.
	AppNamePulsar = "pulsar"

	// ManagedByPulsarOperator identifies the operator managing these resources.
	ManagedByPulsarOperator = "pulsar-operator"
)

const (
	// ComponentZookeeper identifies the coordination service.
	ComponentZookeeper = "zookeeper"

	// ComponentBookkeeper identifies the storage bookies.
	ComponentBookkeeper = "bookkeeper"

	// ComponentBroker identifies the brokers.
	ComponentBroker = "broker"

	// ComponentProxy identifies the proxies.
	ComponentProxy = "proxy"
)

const (
	// LabelCluster identifies which Pulsar cluster a resource belongs to.
	// Its value is GlobalSpec.Name.
	LabelCluster = "cluster"

	// LabelComponent identifies which component a resource belongs to.
	LabelComponent = "component"
)

// ResourceName returns the name shared by a component resource and the
// objects synthesized for it: <cluster>-<baseName>.
func ResourceName(clusterName, baseName string) string {
	return clusterName + "-" + baseName
}

// BuildStandardLabels returns the labels every synthesized object carries.
// clusterName is GlobalSpec.Name and component is the component's configured
// base name, which defaults to one of the Component constants.
func BuildStandardLabels(clusterName, component string) map[string]string {
	labels := SelectorLabels(clusterName, component)
	labels[LabelAppName] = AppNamePulsar
	labels[LabelAppPartOf] = AppNamePulsar
	labels[LabelAppManagedBy] = ManagedByPulsarOperator
	return labels
}

// SelectorLabels returns the stable identity labels used in workload and
// service selectors, and by the autoscaler to find broker pods.
//
// Mutable metadata is kept out so that changing it never requires recreating
// a StatefulSet, whose selector is immutable.
func SelectorLabels(clusterName, component string) map[string]string {
	return map[string]string{
		LabelCluster:      clusterName,
		LabelComponent:    component,
		LabelAppInstance:  clusterName,
		LabelAppComponent: component,
	}
}

// MergeLabels merges custom labels with standard labels.
//
// Note that standard labels take precedence over custom labels to prevent users
// from overriding critical operator-managed labels.
func MergeLabels(standardLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string, len(standardLabels)+len(customLabels))
	maps.Copy(merged, customLabels)
	maps.Copy(merged, standardLabels)
	return merged
}
