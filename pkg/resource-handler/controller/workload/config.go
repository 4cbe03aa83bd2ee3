package workload

import (
	"maps"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// LogDefaults are the logging settings every component ConfigMap starts from.
func LogDefaults() map[string]string {
	return map[string]string{
		"PULSAR_LOG_LEVEL":      "info",
		"PULSAR_LOG_ROOT_LEVEL": "info",
		"PULSAR_EXTRA_OPTS":     "-Dpulsar.log.root.level=info",
	}
}

// MergeConfig layers the user config of c over defaults. User keys win.
func MergeConfig(defaults map[string]string, c *pulsarv1alpha1.ComponentSpec) map[string]string {
	out := make(map[string]string, len(defaults)+len(c.Config))
	maps.Copy(out, defaults)
	maps.Copy(out, c.Config)
	return out
}
