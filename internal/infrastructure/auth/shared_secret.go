package auth

import (
	"crypto/subtle"
	"log"
	"os"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

// SharedSecretAuthorizer verifies the shop's single admin password against the
// ADMIN_PASSWORD environment variable. The comparison is constant-time.
//
// When ADMIN_PASSWORD is unset, every verification fails closed.

type SharedSecretAuthorizer struct {
	secret string
}

func NewSharedSecretAuthorizerFromEnv() *SharedSecretAuthorizer {
	secret := os.Getenv(adminPasswordEnv)
	if secret == "" {
		log.Printf("[auth][infra] %s not set; password verification disabled", adminPasswordEnv)
	}
	return &SharedSecretAuthorizer{secret: secret}
}

func (a *SharedSecretAuthorizer) Verify(secret string) bool {
	if a.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.secret), []byte(secret)) == 1
}
