package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
	apperrors "github.com/allisson/vidfetch/internal/errors"
)

// tokenService implements TokenService using HMAC-signed JWTs.
type tokenService struct {
	secret []byte
	method jwt.SigningMethod
}

// Issue creates a signed token with subject, issued-at and expiry claims.
func (t *tokenService) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Validate verifies signature and expiry and extracts the subject claim.
// All failure modes collapse into ErrInvalidToken so the result gives a
// forger no hint about which check failed.
func (t *tokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", authDomain.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", authDomain.ErrInvalidToken
	}

	return claims.Subject, nil
}

// NewTokenService creates a TokenService signing with the given secret and
// HMAC algorithm (HS256, HS384 or HS512).
func NewTokenService(secret string, algorithm string) (TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, apperrors.New("unknown signing algorithm: " + algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, apperrors.New("signing algorithm must be an HMAC variant: " + algorithm)
	}

	return &tokenService{
		secret: []byte(secret),
		method: method,
	}, nil
}
