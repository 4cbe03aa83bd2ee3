// Package config loads the operator's runtime configuration.
//
// Every setting is a command-line flag whose value can also come from an
// environment variable named PULSAR_OPERATOR_<FLAG>, dashes replaced by
// underscores. A flag set on the command line wins over the environment,
// which wins over the built-in default.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PULSAR_OPERATOR"

// Flag names.
const (
	MetricsBindAddress     = "metrics-bind-address"
	MetricsSecure          = "metrics-secure"
	EnableHTTP2            = "enable-http2"
	HealthProbeBindAddress = "health-probe-bind-address"
	LeaderElect            = "leader-elect"
	WatchNamespace         = "watch-namespace"
	AutoscalerGracePeriod  = "autoscaler-grace-period"
	RequeueAfterError      = "requeue-after-error"
	FieldOwner             = "field-owner"
)

// Operator is the resolved operator configuration.
type Operator struct {
	MetricsBindAddress     string
	MetricsSecure          bool
	EnableHTTP2            bool
	HealthProbeBindAddress string
	LeaderElect            bool
	// WatchNamespace restricts the manager cache to one namespace. Empty
	// watches all namespaces.
	WatchNamespace        string
	AutoscalerGracePeriod time.Duration
	RequeueAfterError     time.Duration
	FieldOwner            string
}

// Default returns the configuration used when nothing is set.
func Default() Operator {
	return Operator{
		MetricsBindAddress:     ":8080",
		MetricsSecure:          false,
		EnableHTTP2:            false,
		HealthProbeBindAddress: ":8081",
		LeaderElect:            false,
		AutoscalerGracePeriod:  30 * time.Second,
		RequeueAfterError:      30 * time.Second,
		FieldOwner:             "pulsar-operator",
	}
}

// BindFlags registers every operator flag on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(MetricsBindAddress, d.MetricsBindAddress, "The address the metrics endpoint binds to. Use 0 to disable it.")
	fs.Bool(MetricsSecure, d.MetricsSecure, "If set, the metrics endpoint is served securely via HTTPS.")
	fs.Bool(EnableHTTP2, d.EnableHTTP2, "If set, HTTP/2 will be enabled for the metrics server.")
	fs.String(HealthProbeBindAddress, d.HealthProbeBindAddress, "The address the probe endpoint binds to.")
	fs.Bool(LeaderElect, d.LeaderElect, "Enable leader election for controller manager.")
	fs.String(WatchNamespace, d.WatchNamespace, "Only watch resources in this namespace. Empty watches all namespaces.")
	fs.Duration(AutoscalerGracePeriod, d.AutoscalerGracePeriod, "Minimum broker pod age before the autoscaler trusts its metrics.")
	fs.Duration(RequeueAfterError, d.RequeueAfterError, "Delay before retrying a resource whose synchronization failed.")
	fs.String(FieldOwner, d.FieldOwner, "Field manager name used for server-side apply.")
}

// Load reads the configuration from fs, which must have been set up by
// BindFlags and parsed, and from the environment.
func Load(fs *pflag.FlagSet) (Operator, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Operator{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	o := Operator{
		MetricsBindAddress:     v.GetString(MetricsBindAddress),
		MetricsSecure:          v.GetBool(MetricsSecure),
		EnableHTTP2:            v.GetBool(EnableHTTP2),
		HealthProbeBindAddress: v.GetString(HealthProbeBindAddress),
		LeaderElect:            v.GetBool(LeaderElect),
		WatchNamespace:         v.GetString(WatchNamespace),
		AutoscalerGracePeriod:  v.GetDuration(AutoscalerGracePeriod),
		RequeueAfterError:      v.GetDuration(RequeueAfterError),
		FieldOwner:             v.GetString(FieldOwner),
	}
	if err := o.Validate(); err != nil {
		return Operator{}, err
	}
	return o, nil
}

// Validate rejects settings the manager cannot run with.
func (o Operator) Validate() error {
	var errs []error
	if o.AutoscalerGracePeriod <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", AutoscalerGracePeriod, o.AutoscalerGracePeriod))
	}
	if o.RequeueAfterError <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", RequeueAfterError, o.RequeueAfterError))
	}
	if o.FieldOwner == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", FieldOwner))
	}
	if o.HealthProbeBindAddress == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", HealthProbeBindAddress))
	}
	return errors.Join(errs...)
}
