package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

func TestProbe(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg  *pulsarv1alpha1.ProbeConfig
		want *corev1.Probe
	}{
		"nil config": {
			cfg:  nil,
			want: nil,
		},
		"disabled": {
			cfg:  &pulsarv1alpha1.ProbeConfig{Enabled: ptr.To(false), Timeout: ptr.To(int32(5))},
			want: nil,
		},
		"enabled": {
			cfg: &pulsarv1alpha1.ProbeConfig{
				Enabled: ptr.To(true),
				Timeout: ptr.To(int32(5)),
				Initial: ptr.To(int32(10)),
				Period:  ptr.To(int32(30)),
			},
			want: &corev1.Probe{
				ProbeHandler: corev1.ProbeHandler{
					Exec: &corev1.ExecAction{Command: []string{"sh", "-c", "check"}},
				},
				InitialDelaySeconds: 10,
				PeriodSeconds:       30,
				TimeoutSeconds:      5,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := Probe(tc.cfg, "check")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Probe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHTTPCheck(t *testing.T) {
	t.Parallel()

	got := HTTPCheck(&pulsarv1alpha1.ProbeConfig{Timeout: ptr.To(int32(5))}, "http://localhost:8080/metrics/")
	want := "curl -s --max-time 5 --fail http://localhost:8080/metrics/ > /dev/null"
	if got != want {
		t.Errorf("HTTPCheck() = %q, want %q", got, want)
	}
}

func TestWaitForHost(t *testing.T) {
	t.Parallel()

	c := &pulsarv1alpha1.ComponentSpec{Image: "pulsar:1", ImagePullPolicy: corev1.PullAlways}
	got := WaitForHost("wait-zookeeper-ready", c, "pulsar-zookeeper-0.pulsar-zookeeper.ns")
	want := corev1.Container{
		Name:            "wait-zookeeper-ready",
		Image:           "pulsar:1",
		ImagePullPolicy: corev1.PullAlways,
		Command:         []string{"sh", "-c"},
		Args:            []string{"until nslookup pulsar-zookeeper-0.pulsar-zookeeper.ns; do sleep 3; done;"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WaitForHost() mismatch (-want +got):\n%s", diff)
	}
}

func TestPodParts(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ic     *pulsarv1alpha1.InitContainerConfig
		secret string
		want   PodParts
	}{
		"nothing configured": {
			want: PodParts{},
		},
		"add-libs only": {
			ic: &pulsarv1alpha1.InitContainerConfig{
				Image:        "libs:1",
				Command:      []string{"cp"},
				Args:         []string{"-r", "/libs", "/pulsar/lib"},
				EmptyDirPath: "/pulsar/lib",
			},
			want: PodParts{
				InitContainers: []corev1.Container{{
					Name:         "add-libs",
					Image:        "libs:1",
					Command:      []string{"cp"},
					Args:         []string{"-r", "/libs", "/pulsar/lib"},
					VolumeMounts: []corev1.VolumeMount{{Name: "lib-data", MountPath: "/pulsar/lib"}},
				}},
				Volumes: []corev1.Volume{{
					Name:         "lib-data",
					VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}},
				}},
				Mounts: []corev1.VolumeMount{{Name: "lib-data", MountPath: "/pulsar/lib"}},
			},
		},
		"tls only": {
			secret: "pulsar-tls",
			want: PodParts{
				Volumes: []corev1.Volume{{
					Name: "certs",
					VolumeSource: corev1.VolumeSource{
						Secret: &corev1.SecretVolumeSource{SecretName: "pulsar-tls"},
					},
				}},
				Mounts: []corev1.VolumeMount{{Name: "certs", MountPath: "/pulsar/certs", ReadOnly: true}},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got PodParts
			got.AddLibs(tc.ic)
			if tc.secret != "" {
				got.AddTLS(tc.secret)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("PodParts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	steps := ConfigFromEnv("broker", "conf/broker.conf", "conf/functions_worker.yml")

	tests := map[string]struct {
		tls  bool
		want string
	}{
		"plaintext": {
			want: "bin/apply-config-from-env.py conf/broker.conf && " +
				"bin/gen-yml-from-env.py conf/functions_worker.yml && " +
				`OPTS="${OPTS} -Dlog4j2.formatMsgNoLookups=true" exec bin/pulsar broker`,
		},
		"tls converts the key first": {
			tls: true,
			want: "openssl pkcs8 -topk8 -inform PEM -outform PEM -in /pulsar/certs/tls.key " +
				"-out /pulsar/tls-pk8.key -nocrypt && . /pulsar/tools/certconverter.sh && " +
				"bin/apply-config-from-env.py conf/broker.conf && " +
				"bin/gen-yml-from-env.py conf/functions_worker.yml && " +
				`OPTS="${OPTS} -Dlog4j2.formatMsgNoLookups=true" exec bin/pulsar broker`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Command(tc.tls, steps...); got != tc.want {
				t.Errorf("Command() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestPodAnnotations(t *testing.T) {
	t.Parallel()

	got := PodAnnotations(8080, map[string]string{"team": "data", "prometheus.io/scrape": "false"})
	want := map[string]string{
		"prometheus.io/scrape": "false",
		"prometheus.io/port":   "8080",
		"team":                 "data",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PodAnnotations() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	c := &pulsarv1alpha1.ComponentSpec{Config: map[string]string{"PULSAR_LOG_LEVEL": "debug", "x": "y"}}
	got := MergeConfig(LogDefaults(), c)
	want := map[string]string{
		"PULSAR_LOG_LEVEL":      "debug",
		"PULSAR_LOG_ROOT_LEVEL": "info",
		"PULSAR_EXTRA_OPTS":     "-Dpulsar.log.root.level=info",
		"x":                     "y",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeConfig() mismatch (-want +got):\n%s", diff)
	}
}
