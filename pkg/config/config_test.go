package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	o, err := Load(parse(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("PULSAR_OPERATOR_REQUEUE_AFTER_ERROR", "45s")
	t.Setenv("PULSAR_OPERATOR_LEADER_ELECT", "true")
	t.Setenv("PULSAR_OPERATOR_FIELD_OWNER", "from-env")

	o, err := Load(parse(t, "--field-owner=from-flag", "--watch-namespace=pulsar"))
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, o.RequeueAfterError, "env beats default")
	assert.True(t, o.LeaderElect, "env beats default")
	assert.Equal(t, "from-flag", o.FieldOwner, "flag beats env")
	assert.Equal(t, "pulsar", o.WatchNamespace)
	assert.Equal(t, 30*time.Second, o.AutoscalerGracePeriod)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Load(parse(t, "--autoscaler-grace-period=0s", "--field-owner="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), AutoscalerGracePeriod)
	assert.Contains(t, err.Error(), FieldOwner)
}

func TestOperator_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate  func(*Operator)
		wantErr string
	}{
		"Default Is Valid":        {mutate: func(*Operator) {}},
		"Negative Requeue":        {mutate: func(o *Operator) { o.RequeueAfterError = -time.Second }, wantErr: RequeueAfterError},
		"Zero Grace":              {mutate: func(o *Operator) { o.AutoscalerGracePeriod = 0 }, wantErr: AutoscalerGracePeriod},
		"Empty Probe Address":     {mutate: func(o *Operator) { o.HealthProbeBindAddress = "" }, wantErr: HealthProbeBindAddress},
		"Metrics Disabled Is Ok":  {mutate: func(o *Operator) { o.MetricsBindAddress = "0" }},
		"Empty Field Owner Fails": {mutate: func(o *Operator) { o.FieldOwner = "" }, wantErr: FieldOwner},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			o := Default()
			tc.mutate(&o)
			err := o.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
