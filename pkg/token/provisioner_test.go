package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/testutil"
)

var cfg = Config{
	Namespace:      "default",
	PrivateKeyFile: "my-private.key",
	PublicKeyFile:  "my-public.key",
	SuperUserRoles: []string{"admin", "proxy"},
}

func owner() *pulsarv1alpha1.PulsarCluster {
	return &pulsarv1alpha1.PulsarCluster{
		ObjectMeta: metav1.ObjectMeta{Name: "pulsar", Namespace: "default", UID: "cluster-uid"},
	}
}

func newProvisioner(t *testing.T, failures *testutil.FailureConfig, objs ...client.Object) (*Provisioner, *testutil.FakeClient) {
	t.Helper()
	scheme := testutil.NewScheme(t)
	base := fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).Build()
	c := testutil.NewFakeClientWithFailures(base, failures)
	return &Provisioner{Client: c, Scheme: scheme}, c
}

func secret(t *testing.T, c client.Client, name string) *corev1.Secret {
	t.Helper()
	s := &corev1.Secret{}
	require.NoError(t, c.Get(t.Context(), client.ObjectKey{Namespace: "default", Name: name}, s))
	return s
}

func keySecrets(t *testing.T) (*corev1.Secret, *corev1.Secret) {
	t.Helper()
	key, err := GenerateKeyPair()
	require.NoError(t, err)
	privDER, err := EncodePrivateKey(key)
	require.NoError(t, err)
	pubDER, err := EncodePublicKey(&key.PublicKey)
	require.NoError(t, err)
	return &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: PrivateKeySecretName, Namespace: "default"},
			Data:       map[string][]byte{cfg.PrivateKeyFile: privDER},
		}, &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: PublicKeySecretName, Namespace: "default"},
			Data:       map[string][]byte{cfg.PublicKeyFile: pubDER},
		}
}

func TestEnsureSecrets_FromScratch(t *testing.T) {
	t.Parallel()

	p, c := newProvisioner(t, nil)
	created, err := p.EnsureSecrets(t.Context(), owner(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{PrivateKeySecretName, PublicKeySecretName, "token-admin", "token-proxy"}, created)

	pub, err := ParsePublicKey(secret(t, c, PublicKeySecretName).Data[cfg.PublicKeyFile])
	require.NoError(t, err)
	_, err = ParsePrivateKey(secret(t, c, PrivateKeySecretName).Data[cfg.PrivateKeyFile])
	require.NoError(t, err)

	for _, role := range cfg.SuperUserRoles {
		s := secret(t, c, RoleSecretName(role))
		subject, err := Subject(pub, string(s.Data[RoleTokenKey(role)]))
		require.NoError(t, err)
		assert.Equal(t, role, subject)

		refs := s.GetOwnerReferences()
		require.Len(t, refs, 1)
		assert.Equal(t, "PulsarCluster", refs[0].Kind)
	}
}

func TestEnsureSecrets_Idempotent(t *testing.T) {
	t.Parallel()

	p, c := newProvisioner(t, nil)
	_, err := p.EnsureSecrets(t.Context(), owner(), cfg)
	require.NoError(t, err)
	before := secret(t, c, "token-admin").Data

	created, err := p.EnsureSecrets(t.Context(), owner(), cfg)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, before, secret(t, c, "token-admin").Data)
}

func TestEnsureSecrets_ExistingKeyPair(t *testing.T) {
	t.Parallel()

	priv, pub := keySecrets(t)
	userToken := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "token-admin", Namespace: "default"},
		Data:       map[string][]byte{"admin.jwt": []byte("user-provided")},
	}
	p, c := newProvisioner(t, nil, priv, pub, userToken)

	created, err := p.EnsureSecrets(t.Context(), owner(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-proxy"}, created)

	assert.Equal(t, pub.Data, secret(t, c, PublicKeySecretName).Data, "public key must not be replaced")
	assert.Equal(t, []byte("user-provided"), secret(t, c, "token-admin").Data["admin.jwt"])

	key, err := ParsePublicKey(pub.Data[cfg.PublicKeyFile])
	require.NoError(t, err)
	subject, err := Subject(key, string(secret(t, c, "token-proxy").Data["proxy.jwt"]))
	require.NoError(t, err)
	assert.Equal(t, "proxy", subject)
}

func TestEnsureSecrets_Errors(t *testing.T) {
	t.Parallel()

	priv, pub := keySecrets(t)
	emptyPub := pub.DeepCopy()
	emptyPub.Data = map[string][]byte{"other": []byte("x")}
	emptyPriv := priv.DeepCopy()
	emptyPriv.Data = nil

	tests := map[string]struct {
		objs     []client.Object
		failures *testutil.FailureConfig
		wantErr  string
	}{
		"Private Key Without Public Key": {
			objs:    []client.Object{priv.DeepCopy()},
			wantErr: "public key secret token-public-key is missing",
		},
		"Public Key Without Private Key": {
			objs:    []client.Object{pub.DeepCopy()},
			wantErr: "private key secret token-private-key is missing",
		},
		"Public Key Secret Missing Its Key": {
			objs:    []client.Object{priv.DeepCopy(), emptyPub},
			wantErr: "does not contain the key my-public.key",
		},
		"Private Key Secret Missing Its Key": {
			objs:    []client.Object{emptyPriv, pub.DeepCopy()},
			wantErr: "does not contain the key my-private.key",
		},
		"Create Fails": {
			failures: &testutil.FailureConfig{OnCreate: testutil.FailOnObjectName("token-admin", testutil.ErrInjected)},
			wantErr:  testutil.ErrInjected.Error(),
		},
		"Read Fails": {
			failures: &testutil.FailureConfig{OnGet: testutil.FailOnKeyName(PublicKeySecretName, testutil.ErrNetworkTimeout)},
			wantErr:  testutil.ErrNetworkTimeout.Error(),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, _ := newProvisioner(t, tc.failures, tc.objs...)
			_, err := p.EnsureSecrets(t.Context(), owner(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestEnsureSecrets_ConcurrentCreateIsKept(t *testing.T) {
	t.Parallel()

	priv, pub := keySecrets(t)
	raced := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "token-admin", Namespace: "default"},
		Data:       map[string][]byte{"admin.jwt": []byte("raced")},
	}
	p, c := newProvisioner(t, nil, priv, pub, raced)

	// The Secret appeared after the existence check.

	err := p.createSecret(t.Context(), owner(), "default", "token-admin", "admin.jwt", []byte("new"), secretTypeToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("raced"), secret(t, c, "token-admin").Data["admin.jwt"])
}
