package token

import (
	"context"
	"crypto/rsa"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/numtide/pulsar-operator/pkg/monitoring"
	"github.com/numtide/pulsar-operator/pkg/util/metadata"
)

const (
	// PrivateKeySecretName holds the signing key.
	PrivateKeySecretName = "token-private-key"
	// PublicKeySecretName holds the verification key.
	PublicKeySecretName = "token-public-key"

	secretTypePrivateKey = "private-key"
	secretTypePublicKey  = "public-key"
	secretTypeToken      = "token"
)

// RoleSecretName is the name of the Secret holding the token of role.
func RoleSecretName(role string) string {
	return "token-" + role
}

// RoleTokenKey is the data key of the token inside its Secret.
func RoleTokenKey(role string) string {
	return role + ".jwt"
}

// Config selects what to provision.
type Config struct {
	Namespace      string
	PrivateKeyFile string
	PublicKeyFile  string
	SuperUserRoles []string
}

// Provisioner creates missing token Secrets.
type Provisioner struct {
	Client client.Client
	Scheme *runtime.Scheme
}

// EnsureSecrets creates the key pair Secrets when neither exists, then a token
// Secret for every role that has none. Created Secrets are controlled by
// owner. It returns the names of the Secrets it created.
func (p *Provisioner) EnsureSecrets(ctx context.Context, owner client.Object, cfg Config) ([]string, error) {
	logger := log.FromContext(ctx)

	privSecret, err := p.getSecret(ctx, cfg.Namespace, PrivateKeySecretName)
	if err != nil {
		return nil, err
	}
	pubSecret, err := p.getSecret(ctx, cfg.Namespace, PublicKeySecretName)
	if err != nil {
		return nil, err
	}

	var (
		created []string
		key     *rsa.PrivateKey
	)
	switch {
	case privSecret != nil && pubSecret == nil:
		return nil, fmt.Errorf("found private key secret %s, but the public key secret %s is missing: "+
			"delete the private key secret or create the public key one", PrivateKeySecretName, PublicKeySecretName)
	case pubSecret != nil && privSecret == nil:
		return nil, fmt.Errorf("found public key secret %s, but the private key secret %s is missing: "+
			"delete the public key secret or create the private key one", PublicKeySecretName, PrivateKeySecretName)
	case pubSecret != nil:
		if _, ok := pubSecret.Data[cfg.PublicKeyFile]; !ok {
			return nil, fmt.Errorf("found public key secret %s, but it does not contain the key %s", PublicKeySecretName, cfg.PublicKeyFile)
		}
		if _, ok := privSecret.Data[cfg.PrivateKeyFile]; !ok {
			return nil, fmt.Errorf("found private key secret %s, but it does not contain the key %s", PrivateKeySecretName, cfg.PrivateKeyFile)
		}
	default:
		key, err = GenerateKeyPair()
		if err != nil {
			return nil, err
		}
		privDER, err := EncodePrivateKey(key)
		if err != nil {
			return nil, err
		}
		pubDER, err := EncodePublicKey(&key.PublicKey)
		if err != nil {
			return nil, err
		}
		if err := p.createSecret(ctx, owner, cfg.Namespace, PrivateKeySecretName, cfg.PrivateKeyFile, privDER, secretTypePrivateKey); err != nil {
			return nil, err
		}
		created = append(created, PrivateKeySecretName)
		if err := p.createSecret(ctx, owner, cfg.Namespace, PublicKeySecretName, cfg.PublicKeyFile, pubDER, secretTypePublicKey); err != nil {
			return created, err
		}
		created = append(created, PublicKeySecretName)
		logger.Info("Generated token key pair", "privateKeySecret", PrivateKeySecretName, "publicKeySecret", PublicKeySecretName)
	}

	for _, role := range cfg.SuperUserRoles {
		name := RoleSecretName(role)
		existing, err := p.getSecret(ctx, cfg.Namespace, name)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		if key == nil {
			key, err = ParsePrivateKey(privSecret.Data[cfg.PrivateKeyFile])
			if err != nil {
				return created, fmt.Errorf("secret %s: %w", PrivateKeySecretName, err)
			}
		}
		signed, err := Mint(key, role)
		if err != nil {
			return created, err
		}
		if err := p.createSecret(ctx, owner, cfg.Namespace, name, RoleTokenKey(role), []byte(signed), secretTypeToken); err != nil {
			return created, err
		}
		created = append(created, name)
		logger.Info("Generated token secret", "secret", name, "role", role)
	}
	return created, nil
}

func (p *Provisioner) getSecret(ctx context.Context, namespace, name string) (*corev1.Secret, error) {
	secret := &corev1.Secret{}
	if err := p.Client.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	return secret, nil
}

// createSecret creates one Secret, retrying transient API failures. A Secret
// that appeared concurrently is kept as is.
func (p *Provisioner) createSecret(
	ctx context.Context,
	owner client.Object,
	namespace, name, key string,
	value []byte,
	secretType string,
) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    map[string]string{metadata.LabelAppManagedBy: metadata.ManagedByPulsarOperator},
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{key: value},
	}
	if owner != nil {
		if err := controllerutil.SetControllerReference(owner, secret, p.Scheme); err != nil {
			return fmt.Errorf("failed to set controller reference on secret %s: %w", name, err)
		}
	}

	err := retry.OnError(retry.DefaultBackoff, isTransient, func() error {
		return p.Client.Create(ctx, secret)
	})
	switch {
	case err == nil:
		monitoring.RecordTokenSecretCreated(namespace, secretType)
		return nil
	case apierrors.IsAlreadyExists(err):
		return nil
	default:
		return fmt.Errorf("failed to create secret %s: %w", name, err)
	}
}

func isTransient(err error) bool {
	return apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsInternalError(err)
}
