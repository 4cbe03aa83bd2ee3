package workload

import (
	"fmt"
	"maps"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

const (
	// LibVolumeName is the emptyDir shared between add-libs and the main container.
	LibVolumeName = "lib-data"

	// AddLibsContainerName is the name of the optional user init container.
	AddLibsContainerName = "add-libs"

	// TLSVolumeName is the volume holding the component certificate secret.
	TLSVolumeName = "certs"

	// TLSMountPath is where the certificate secret is mounted.
	TLSMountPath = "/pulsar/certs"

	// LogOpts disables message lookups in log4j2.
	LogOpts = `OPTS="${OPTS} -Dlog4j2.formatMsgNoLookups=true"`
)

// convertKeyStep turns the mounted PEM key into PKCS#8 and builds the
// keystores Pulsar expects.
const convertKeyStep = "openssl pkcs8 -topk8 -inform PEM -outform PEM -in " + TLSMountPath + "/tls.key " +
	"-out /pulsar/tls-pk8.key -nocrypt && . /pulsar/tools/certconverter.sh"

// Probe returns the exec probe used for both liveness and readiness, or nil
// when probes are disabled.
func Probe(cfg *pulsarv1alpha1.ProbeConfig, command string) *corev1.Probe {
	if cfg == nil || !ptr.Deref(cfg.Enabled, false) {
		return nil
	}
	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			Exec: &corev1.ExecAction{Command: []string{"sh", "-c", command}},
		},
		InitialDelaySeconds: ptr.Deref(cfg.Initial, 0),
		PeriodSeconds:       ptr.Deref(cfg.Period, 0),
		TimeoutSeconds:      ptr.Deref(cfg.Timeout, 0),
	}
}

// HTTPCheck returns a shell command that fails unless url answers with a
// 2xx within the probe timeout.
func HTTPCheck(cfg *pulsarv1alpha1.ProbeConfig, url string) string {
	var timeout int32
	if cfg != nil {
		timeout = ptr.Deref(cfg.Timeout, 0)
	}
	return fmt.Sprintf("curl -s --max-time %d --fail %s > /dev/null", timeout, url)
}

// WaitForHost returns an init container that blocks until host resolves.
func WaitForHost(name string, c *pulsarv1alpha1.ComponentSpec, host string) corev1.Container {
	return corev1.Container{
		Name:            name,
		Image:           c.Image,
		ImagePullPolicy: c.ImagePullPolicy,
		Command:         []string{"sh", "-c"},
		Args:            []string{fmt.Sprintf("until nslookup %s; do sleep 3; done;", host)},
	}
}

// PodParts collects the init containers, volumes and main container mounts
// of a component pod.
type PodParts struct {
	InitContainers []corev1.Container
	Volumes        []corev1.Volume
	Mounts         []corev1.VolumeMount
}

// AddLibs appends the user init container and the emptyDir it shares with
// the main container. It does nothing when ic is nil.
func (p *PodParts) AddLibs(ic *pulsarv1alpha1.InitContainerConfig) {
	if ic == nil {
		return
	}
	mount := corev1.VolumeMount{Name: LibVolumeName, MountPath: ic.EmptyDirPath}
	p.Volumes = append(p.Volumes, corev1.Volume{
		Name:         LibVolumeName,
		VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}},
	})
	p.Mounts = append(p.Mounts, mount)
	p.InitContainers = append(p.InitContainers, corev1.Container{
		Name:            AddLibsContainerName,
		Image:           ic.Image,
		ImagePullPolicy: ic.ImagePullPolicy,
		Command:         ic.Command,
		Args:            ic.Args,
		VolumeMounts:    []corev1.VolumeMount{mount},
	})
}

// AddTLS mounts secretName at TLSMountPath.
func (p *PodParts) AddTLS(secretName string) {
	p.Volumes = append(p.Volumes, corev1.Volume{
		Name: TLSVolumeName,
		VolumeSource: corev1.VolumeSource{
			Secret: &corev1.SecretVolumeSource{SecretName: secretName},
		},
	})
	p.Mounts = append(p.Mounts, corev1.VolumeMount{
		Name:      TLSVolumeName,
		MountPath: TLSMountPath,
		ReadOnly:  true,
	})
}

// Command joins shell steps with &&. When tls is set the key conversion runs
// first.
func Command(tls bool, steps ...string) string {
	if tls {
		steps = append([]string{convertKeyStep}, steps...)
	}
	return strings.Join(steps, " && ")
}

// PodAnnotations returns the prometheus scrape annotations for port merged
// under the user annotations.
func PodAnnotations(port int32, user map[string]string) map[string]string {
	out := map[string]string{
		"prometheus.io/scrape": "true",
		"prometheus.io/port":   fmt.Sprintf("%d", port),
	}
	maps.Copy(out, user)
	return out
}

// ConfigFromEnv returns the entrypoint that renders each config file from
// the container environment and then execs the Pulsar service.
func ConfigFromEnv(service string, files ...string) []string {
	steps := make([]string, 0, len(files)+1)
	for _, f := range files {
		if strings.HasSuffix(f, ".yml") {
			steps = append(steps, "bin/gen-yml-from-env.py "+f)
			continue
		}
		steps = append(steps, "bin/apply-config-from-env.py "+f)
	}
	return append(steps, LogOpts+" exec bin/pulsar "+service)
}

// EnvFromConfigMap exposes every key of the named ConfigMap as an env var.
func EnvFromConfigMap(name string) []corev1.EnvFromSource {
	return []corev1.EnvFromSource{{
		ConfigMapRef: &corev1.ConfigMapEnvSource{
			LocalObjectReference: corev1.LocalObjectReference{Name: name},
		},
	}}
}

// Resources dereferences a resolved resource requirement.
func Resources(r *corev1.ResourceRequirements) corev1.ResourceRequirements {
	if r == nil {
		return corev1.ResourceRequirements{}
	}
	return *r
}
