// Package domain defines the core authentication entities and types.
package domain

import (
	"github.com/allisson/vidfetch/internal/errors"
)

// User represents the authenticated identity. The service is configured with a
// single identity pair, so there is no persistent user storage behind this type.
type User struct {
	Username string
}

// LoginInput contains the credentials presented on a login attempt along with
// the caller network address for audit logging.
type LoginInput struct {
	Username string
	Password string
	ClientIP string
}

// LoginOutput contains the issued bearer token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken covers every token verification failure: bad signature,
	// malformed structure, missing subject, expired. Uniform on purpose.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")
)
