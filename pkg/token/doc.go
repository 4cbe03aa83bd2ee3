// Package token bootstraps the token authentication material of a Pulsar
// cluster.
//
// Three kinds of Secret are involved, all named by convention:
//
//	token-private-key  PKCS#8 DER RSA private key under the configured file key
//	token-public-key   PKIX DER RSA public key under the configured file key
//	token-<role>       RS256 JWT with subject <role> under the key <role>.jwt
//
// Provisioner creates whatever is missing and never overwrites an existing
// Secret, so a user may bring their own key pair or tokens.
package token
