/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"crypto/tls"
	"flag"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	"k8s.io/utils/clock"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/autoscaler"
	pulsarclustercontroller "github.com/numtide/pulsar-operator/pkg/cluster-handler/controller/pulsarcluster"
	"github.com/numtide/pulsar-operator/pkg/config"
	bookkeepercontroller "github.com/numtide/pulsar-operator/pkg/resource-handler/controller/bookkeeper"
	brokercontroller "github.com/numtide/pulsar-operator/pkg/resource-handler/controller/broker"
	proxycontroller "github.com/numtide/pulsar-operator/pkg/resource-handler/controller/proxy"
	zookeepercontroller "github.com/numtide/pulsar-operator/pkg/resource-handler/controller/zookeeper"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(metricsv1beta1.AddToScheme(scheme))
	utilruntime.Must(pulsarv1alpha1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

func main() {
	config.BindFlags(pflag.CommandLine)
	opts := zap.Options{Development: true, TimeEncoder: zapcore.ISO8601TimeEncoder}
	opts.BindFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		setupLog.Error(err, "invalid operator configuration")
		os.Exit(1)
	}

	var tlsOpts []func(*tls.Config)
	if !cfg.EnableHTTP2 {
		tlsOpts = append(tlsOpts, func(c *tls.Config) {
			setupLog.Info("disabling http/2")
			c.NextProtos = []string{"http/1.1"}
		})
	}

	metricsServerOptions := metricsserver.Options{
		BindAddress:   cfg.MetricsBindAddress,
		SecureServing: cfg.MetricsSecure,
		TLSOpts:       tlsOpts,
	}
	if cfg.MetricsSecure {
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}

	cacheOptions := cache.Options{}
	if cfg.WatchNamespace != "" {
		cacheOptions.DefaultNamespaces = map[string]cache.Config{cfg.WatchNamespace: {}}
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsServerOptions,
		HealthProbeBindAddress: cfg.HealthProbeBindAddress,
		LeaderElection:         cfg.LeaderElect,
		LeaderElectionID:       "pulsar-operator.pulsar.numtide.com",
		Cache:                  cacheOptions,
		Client: client.Options{
			Cache: &client.CacheOptions{
				// Metrics are sampled once per autoscaler cycle and secrets
				// are only read while provisioning tokens.
				DisableFor: []client.Object{
					&metricsv1beta1.PodMetrics{},
					&corev1.Secret{},
				},
			},
		},
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	scheduler := autoscaler.NewScheduler(&autoscaler.Autoscaler{
		Client:      mgr.GetClient(),
		Clock:       clock.RealClock{},
		GracePeriod: cfg.AutoscalerGracePeriod,
	})
	if err := mgr.Add(scheduler); err != nil {
		setupLog.Error(err, "unable to add autoscaler scheduler to manager")
		os.Exit(1)
	}

	cluster := pulsarclustercontroller.NewPulsarClusterReconciler(
		mgr.GetClient(), mgr.GetScheme(), mgr.GetEventRecorderFor("pulsarcluster-controller"), scheduler)
	cluster.RequeueAfterError = cfg.RequeueAfterError
	if err := cluster.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "PulsarCluster")
		os.Exit(1)
	}

	zk := zookeepercontroller.NewZooKeeperReconciler(
		mgr.GetClient(), mgr.GetScheme(), mgr.GetEventRecorderFor("zookeeper-controller"))
	zk.RequeueAfterError = cfg.RequeueAfterError
	zk.Applier.FieldOwner = cfg.FieldOwner
	if err := zk.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "ZooKeeper")
		os.Exit(1)
	}

	bk := bookkeepercontroller.NewBookKeeperReconciler(
		mgr.GetClient(), mgr.GetScheme(), mgr.GetEventRecorderFor("bookkeeper-controller"))
	bk.RequeueAfterError = cfg.RequeueAfterError
	bk.Applier.FieldOwner = cfg.FieldOwner
	if err := bk.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "BookKeeper")
		os.Exit(1)
	}

	broker := brokercontroller.NewBrokerReconciler(
		mgr.GetClient(), mgr.GetScheme(), mgr.GetEventRecorderFor("broker-controller"))
	broker.RequeueAfterError = cfg.RequeueAfterError
	broker.Applier.FieldOwner = cfg.FieldOwner
	if err := broker.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Broker")
		os.Exit(1)
	}

	proxy := proxycontroller.NewProxyReconciler(
		mgr.GetClient(), mgr.GetScheme(), mgr.GetEventRecorderFor("proxy-controller"))
	proxy.RequeueAfterError = cfg.RequeueAfterError
	proxy.Applier.FieldOwner = cfg.FieldOwner
	if err := proxy.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Proxy")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager", "watchNamespace", cfg.WatchNamespace)
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
