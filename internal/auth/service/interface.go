// Package service provides technical services for authentication operations.
//
// This package implements credential verification backed by Argon2id hashing and
// stateless bearer token issuance/validation backed by HMAC-signed JWTs.
package service

import (
	"time"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
)

// CredentialService verifies a presented username/password pair against the
// single configured identity.
type CredentialService interface {
	// Verify returns the matched user, or ok=false for any mismatch. The caller
	// cannot tell an unknown username from a wrong password.
	Verify(username, password string) (user *authDomain.User, ok bool)
}

// TokenService issues and validates signed, time-bounded bearer tokens.
// Tokens are self-contained: validation depends only on the token itself and
// the process signing secret, never on server-side session state.
type TokenService interface {
	// Issue creates a signed token carrying the subject and an absolute expiry
	// of now + ttl. Returns the compact serialized token and its expiry.
	Issue(subject string, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Validate verifies the signature and expiry and returns the subject claim.
	// Every verification failure yields domain.ErrInvalidToken.
	Validate(token string) (subject string, err error)
}
