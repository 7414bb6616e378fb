// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
)

// AuthUseCase defines the authentication business operations.
type AuthUseCase interface {
	// Login verifies the presented credentials and issues a bearer token.
	// Failures are reported as ErrInvalidCredentials without distinguishing
	// unknown usernames from wrong passwords.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate validates a bearer token and returns its subject.
	Authenticate(ctx context.Context, token string) (subject string, err error)
}
