// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/errors"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

type authService struct {
	txManager      repository.TransactionManager
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	policy         entity.LockoutPolicy
	seed           config.AdminSeed
	logger         *slog.Logger
	now            func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:      params.TxManager,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
		now:            time.Now,
	}
	if params.Config.Auth != nil {
		srv.policy = entity.LockoutPolicy{
			MaxFailedAttempts: params.Config.Auth.MaxFailedAttempts,
			LockDuration:      params.Config.Auth.LockDuration,
		}
		srv.seed = params.Config.Auth.Admin
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Login checks the password and issues a session token. A failed attempt is
// committed even though the call returns an error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	var (
		credential *entity.Credential
		authErr    error
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()

		found, err := credRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, domainerrors.ErrCredentialNotFound) {
				authErr = domainerrors.ErrInvalidCredentials

				return nil
			}

			return errors.Wrap(err, "failed to find credential")
		}

		now := srv.now()
		if found.IsLocked(now) {
			authErr = domainerrors.ErrAccountLocked

			return nil
		}

		if !srv.passwordHasher.Check(input.Password, found.PasswordHash) {
			found.RecordFailure(now, srv.policy)
			if err := credRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to record failed login")
			}
			authErr = domainerrors.ErrInvalidCredentials

			return nil
		}

		found.RecordSuccess(now)
		if err := credRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to record login")
		}
		credential = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Login transaction failed", "error", err, "username", input.Username)

		return nil, errors.Wrap(err, "failed to login")
	}
	if authErr != nil {
		srv.log(ctx).Warn("Login rejected", "username", input.Username, "reason", authErr.Error())

		return nil, authErr
	}

	token, expiresAt, err := srv.tokenService.Issue(credential.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", "username", credential.Username)

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  credential.Username,
		Email:     credential.Email,
	}, nil
}

func (srv *authService) Verify(_ context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, err
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	identity := &usecase.Identity{Username: username}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

func (srv *authService) EnsureAdmin(ctx context.Context) error {
	username := strings.TrimSpace(srv.seed.Username)
	if username == "" || srv.seed.Password == "" {
		srv.log(ctx).Info("Admin seed not configured, skipping")

		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()

		_, err := credRepo.FindByUsername(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to find credential")
		}

		credential, err := srv.newCredential(username, srv.seed.Email, srv.seed.Password)
		if err != nil {
			return err
		}
		if err := credRepo.Create(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create admin credential")
		}

		srv.log(ctx).Info("Seeded admin credential", "username", username)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure admin")
	}

	return nil
}

func (srv *authService) CreateAdmin(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	credential, err := srv.newCredential(username, email, password)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCredentialRepository().Create(ctx, credential)
	})
	if err != nil {
		return errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Created admin credential", "username", username)

	return nil
}

func (srv *authService) ResetPassword(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	hash, err := srv.passwordHasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()

		credential, err := credRepo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}

		credential.PasswordHash = hash
		credential.FailedAttempts = 0
		credential.LockedUntil = nil
		credential.UpdatedAt = srv.now()

		return credRepo.Update(ctx, credential)
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Reset admin password", "username", username)

	return nil
}

func (srv *authService) newCredential(username, email, password string) (*entity.Credential, error) {
	hash, err := srv.passwordHasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()

	return &entity.Credential{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
