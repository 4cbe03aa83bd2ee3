package broker

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resolver"
)

func resolved(global *pulsarv1alpha1.GlobalSpec, b *pulsarv1alpha1.BrokerSetSpec) pulsarv1alpha1.BrokerFullSpec {
	return resolver.ResolveBrokerFull(pulsarv1alpha1.BrokerFullSpec{Global: global, Broker: b})
}

func tlsOn() *pulsarv1alpha1.GlobalSpec {
	return &pulsarv1alpha1.GlobalSpec{
		Name: "pulsar",
		TLS:  &pulsarv1alpha1.TLSConfig{Enabled: ptr.To(true), DefaultSecretName: "certs-secret"},
	}
}

func portNames[T corev1.ServicePort | corev1.ContainerPort](ports []T, name func(T) string) []string {
	out := make([]string, 0, len(ports))
	for _, p := range ports {
		out = append(out, name(p))
	}
	return out
}

func TestBuildService(t *testing.T) {
	t.Parallel()

	svcPortName := func(p corev1.ServicePort) string { return p.Name }

	tests := map[string]struct {
		spec      pulsarv1alpha1.BrokerFullSpec
		wantPorts []string
		wantType  corev1.ServiceType
		wantIP    string
	}{
		"plaintext": {
			spec:      resolved(nil, nil),
			wantPorts: []string{"http", "pulsar"},
			wantType:  corev1.ServiceTypeClusterIP,
		},
		"tls adds secure ports": {
			spec:      resolved(tlsOn(), nil),
			wantPorts: []string{"http", "pulsar", "https", "pulsarssl"},
			wantType:  corev1.ServiceTypeClusterIP,
		},
		"headless with additional port": {
			spec: resolved(nil, &pulsarv1alpha1.BrokerSetSpec{
				ComponentSpec: pulsarv1alpha1.ComponentSpec{
					Service: &pulsarv1alpha1.ServiceConfig{
						Headless:        ptr.To(true),
						AdditionalPorts: []corev1.ServicePort{{Name: "kafka", Port: 9092}},
					},
				},
			}),
			wantPorts: []string{"http", "pulsar", "kafka"},
			wantType:  corev1.ServiceTypeClusterIP,
			wantIP:    corev1.ClusterIPNone,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc := BuildService("ns", tc.spec)
			if svc.Name != "pulsar-broker" {
				t.Errorf("Name = %q, want pulsar-broker", svc.Name)
			}
			if diff := cmp.Diff(tc.wantPorts, portNames(svc.Spec.Ports, svcPortName)); diff != "" {
				t.Errorf("ports mismatch (-want +got):\n%s", diff)
			}
			if svc.Spec.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", svc.Spec.Type, tc.wantType)
			}
			if svc.Spec.ClusterIP != tc.wantIP {
				t.Errorf("ClusterIP = %q, want %q", svc.Spec.ClusterIP, tc.wantIP)
			}
		})
	}
}

func TestBuildConfigMap(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		broker  *pulsarv1alpha1.BrokerSetSpec
		want    map[string]string
		wantNot []string
	}{
		"defaults": {
			want: map[string]string{
				"zookeeperServers":           "pulsar-zookeeper.ns.svc.cluster.local:2181",
				"configurationStoreServers":  "pulsar-zookeeper.ns.svc.cluster.local:2181",
				"clusterName":                "pulsar",
				"allowAutoTopicCreationType": "non-partitioned",
				"PULSAR_MEM":                 DefaultMemoryOpts,
				"PULSAR_GC":                  "-XX:+UseG1GC",
				"PULSAR_LOG_LEVEL":           "info",
			},
			wantNot: []string{"functionsWorkerEnabled", "webSocketServiceEnabled"},
		},
		"functions and websocket": {
			broker: &pulsarv1alpha1.BrokerSetSpec{
				FunctionsWorkerEnabled:  ptr.To(true),
				WebSocketServiceEnabled: ptr.To(true),
			},
			want: map[string]string{
				"functionsWorkerEnabled":    "true",
				"PF_pulsarFunctionsCluster": "pulsar",
				"PF_pulsarServiceUrl":       "pulsar://localhost:6650",
				"PF_pulsarWebServiceUrl":    "http://localhost:8080",
				"webSocketServiceEnabled":   "true",
			},
		},
		"user config wins": {
			broker: &pulsarv1alpha1.BrokerSetSpec{
				ComponentSpec: pulsarv1alpha1.ComponentSpec{
					Config: map[string]string{"PULSAR_MEM": "-Xmx1g", "managedLedgerDefaultEnsembleSize": "2"},
				},
			},
			want: map[string]string{
				"PULSAR_MEM":                       "-Xmx1g",
				"managedLedgerDefaultEnsembleSize": "2",
				"clusterName":                      "pulsar",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cm := BuildConfigMap("ns", resolved(nil, tc.broker))
			for k, v := range tc.want {
				if got := cm.Data[k]; got != v {
					t.Errorf("Data[%q] = %q, want %q", k, got, v)
				}
			}
			for _, k := range tc.wantNot {
				if _, ok := cm.Data[k]; ok {
					t.Errorf("Data[%q] should not be set", k)
				}
			}
		})
	}
}

func TestBuildStatefulSet(t *testing.T) {
	t.Parallel()

	containerPortName := func(p corev1.ContainerPort) string { return p.Name }

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		sts := BuildStatefulSet("ns", resolved(nil, nil))

		if sts.Name != "pulsar-broker" || sts.Spec.ServiceName != "pulsar-broker" {
			t.Errorf("names = %s/%s, want pulsar-broker", sts.Name, sts.Spec.ServiceName)
		}
		if got := ptr.Deref(sts.Spec.Replicas, 0); got != 3 {
			t.Errorf("Replicas = %d, want 3", got)
		}
		wantSelector := map[string]string{
			"cluster":                     "pulsar",
			"component":                   "broker",
			"app.kubernetes.io/instance":  "pulsar",
			"app.kubernetes.io/component": "broker",
		}
		if diff := cmp.Diff(wantSelector, sts.Spec.Selector.MatchLabels); diff != "" {
			t.Errorf("selector mismatch (-want +got):\n%s", diff)
		}

		pod := sts.Spec.Template
		if pod.Annotations["prometheus.io/scrape"] != "true" || pod.Annotations["prometheus.io/port"] != "8080" {
			t.Errorf("missing scrape annotations: %v", pod.Annotations)
		}
		if len(pod.Spec.InitContainers) != 1 || pod.Spec.InitContainers[0].Name != WaitBookieContainerName {
			t.Fatalf("init containers = %+v, want only %s", pod.Spec.InitContainers, WaitBookieContainerName)
		}
		wantWait := "until nslookup pulsar-bookkeeper-0.pulsar-bookkeeper.ns; do sleep 3; done;"
		if got := pod.Spec.InitContainers[0].Args[0]; got != wantWait {
			t.Errorf("wait args = %q, want %q", got, wantWait)
		}

		c := pod.Spec.Containers[0]
		if c.Name != "pulsar-broker" || c.Image != resolver.DefaultImage {
			t.Errorf("container = %s (%s)", c.Name, c.Image)
		}
		if diff := cmp.Diff([]string{"http", "pulsar"}, portNames(c.Ports, containerPortName)); diff != "" {
			t.Errorf("container ports mismatch (-want +got):\n%s", diff)
		}
		if strings.Contains(c.Args[0], "openssl") {
			t.Errorf("plaintext command should not convert keys: %s", c.Args[0])
		}
		if !strings.HasSuffix(c.Args[0], "exec bin/pulsar broker") {
			t.Errorf("command = %q, want exec bin/pulsar broker", c.Args[0])
		}
		wantProbe := []string{"sh", "-c", "curl -s --max-time 5 --fail http://localhost:8080/metrics/ > /dev/null"}
		if c.LivenessProbe == nil || c.ReadinessProbe == nil {
			t.Fatal("probes should be set by default")
		}
		if diff := cmp.Diff(wantProbe, c.LivenessProbe.Exec.Command); diff != "" {
			t.Errorf("probe mismatch (-want +got):\n%s", diff)
		}
		if c.EnvFrom[0].ConfigMapRef.Name != "pulsar-broker" {
			t.Errorf("envFrom = %+v, want pulsar-broker ConfigMap", c.EnvFrom)
		}
		if pod.Spec.TerminationGracePeriodSeconds == nil || *pod.Spec.TerminationGracePeriodSeconds != 60 {
			t.Errorf("grace period = %v, want 60", pod.Spec.TerminationGracePeriodSeconds)
		}
	})

	t.Run("tls, add-libs and disabled probe", func(t *testing.T) {
		t.Parallel()
		spec := resolved(tlsOn(), &pulsarv1alpha1.BrokerSetSpec{
			ComponentSpec: pulsarv1alpha1.ComponentSpec{
				Probe:         &pulsarv1alpha1.ProbeConfig{Enabled: ptr.To(false)},
				InitContainer: &pulsarv1alpha1.InitContainerConfig{Image: "libs:1"},
				NodeSelectors: map[string]string{"pool": "brokers"},
			},
			ServiceAccountName: "broker-sa",
		})
		sts := BuildStatefulSet("ns", spec)
		pod := sts.Spec.Template.Spec
		c := pod.Containers[0]

		if diff := cmp.Diff([]string{"http", "pulsar", "https", "pulsarssl"}, portNames(c.Ports, containerPortName)); diff != "" {
			t.Errorf("container ports mismatch (-want +got):\n%s", diff)
		}
		if !strings.HasPrefix(c.Args[0], "openssl pkcs8") {
			t.Errorf("tls command should convert keys first: %s", c.Args[0])
		}
		if c.LivenessProbe != nil || c.ReadinessProbe != nil {
			t.Error("disabled probe should not be set")
		}
		if len(pod.InitContainers) != 2 || pod.InitContainers[1].Name != "add-libs" {
			t.Errorf("init containers = %+v, want wait + add-libs", pod.InitContainers)
		}
		wantVolumes := []string{"certs", "lib-data"}
		var gotVolumes []string
		for _, v := range pod.Volumes {
			gotVolumes = append(gotVolumes, v.Name)
		}
		if diff := cmp.Diff(wantVolumes, gotVolumes); diff != "" {
			t.Errorf("volumes mismatch (-want +got):\n%s", diff)
		}
		if pod.Volumes[0].Secret.SecretName != "certs-secret" {
			t.Errorf("tls secret = %q, want certs-secret", pod.Volumes[0].Secret.SecretName)
		}
		if pod.ServiceAccountName != "broker-sa" || pod.NodeSelector["pool"] != "brokers" {
			t.Errorf("pod placement not propagated: sa=%q nodeSelector=%v", pod.ServiceAccountName, pod.NodeSelector)
		}
	})
}
