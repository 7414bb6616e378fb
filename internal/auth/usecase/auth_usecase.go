package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
	authService "github.com/allisson/vidfetch/internal/auth/service"
	"github.com/allisson/vidfetch/internal/config"
)

// authUseCase implements AuthUseCase on top of the credential and token services.
type authUseCase struct {
	config            *config.Config
	credentialService authService.CredentialService
	tokenService      authService.TokenService
	logger            *slog.Logger
}

// Login verifies credentials and issues a token with the configured expiration.
//
// Security notes:
//   - Failed attempts are audit-logged with the caller network address but the
//     caller only ever sees ErrInvalidCredentials.
//   - The issued token is stateless; nothing is persisted on login.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, ok := a.credentialService.Verify(input.Username, input.Password)
	if !ok {
		a.logger.Warn("failed login attempt",
			slog.String("client_ip", input.ClientIP),
		)
		return nil, authDomain.ErrInvalidCredentials
	}

	token, _, err := a.tokenService.Issue(user.Username, a.config.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}

	a.logger.Info("successful login",
		slog.String("username", user.Username),
		slog.String("client_ip", input.ClientIP),
	)

	return &authDomain.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Authenticate validates a bearer token and returns the subject it carries.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	return a.tokenService.Validate(token)
}

// NewAuthUseCase creates an AuthUseCase with the required dependencies.
func NewAuthUseCase(
	cfg *config.Config,
	credentialService authService.CredentialService,
	tokenService authService.TokenService,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		config:            cfg,
		credentialService: credentialService,
		tokenService:      tokenService,
		logger:            logger,
	}
}
