package service

import (
	"crypto/subtle"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
	apperrors "github.com/allisson/vidfetch/internal/errors"
)

// credentialService implements CredentialService using Argon2id password hashing.
// The configured password is hashed once at construction; verification goes
// through the hasher's constant-time verify routine.
type credentialService struct {
	username     string
	passwordHash string
	hasher       *pwdhash.PasswordHasher
}

// Verify checks the supplied pair against the configured identity.
// The password hash comparison runs even when the username does not match,
// keeping the timing of both failure paths aligned.
func (s *credentialService) Verify(username, password string) (*authDomain.User, bool) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	passwordMatch, err := s.hasher.Verify([]byte(password), s.passwordHash)
	if err != nil {
		passwordMatch = false
	}

	if !usernameMatch || !passwordMatch {
		return nil, false
	}

	return &authDomain.User{Username: s.username}, true
}

// NewCredentialService creates a CredentialService for the configured identity.
// Uses the interactive Argon2id policy, which is sized for login-path latency.
func NewCredentialService(username, password string) (CredentialService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	passwordHash, err := hasher.Hash([]byte(password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash configured password")
	}

	return &credentialService{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
	}, nil
}
