package interfaces

// IAuthorizer gates destructive UI actions behind a shared secret. This is
// deliberately not an identity system: the shop runs with one admin password.

type IAuthorizer interface {
	Verify(secret string) bool
}
