// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "cliniweb/internal/delivery/context"
	"cliniweb/internal/domain/entity"
	domainerrors "cliniweb/internal/domain/errors"
	"cliniweb/internal/domain/repository"
	"cliniweb/internal/domain/service"
	"cliniweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyHash is a well-formed bcrypt hash of a throwaway string. It is
// compared against on the identifier-miss path so an unknown identifier
// costs the same bcrypt work as a wrong password, keeping the two failure
// modes indistinguishable by timing as well as by response bytes.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the registration flow: presence validation, bcrypt
// hashing, then a single atomic insert. Identifier uniqueness is delegated
// entirely to the store's constraint; the repository translates a violation
// into ErrIdentifierTaken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || input.Identifier == "" || input.Password == "" || input.Role == "" {
		return errors.Wrap(domainerrors.ErrMissingFields, "registration rejected")
	}

	srv.log(ctx).Info("Starting registration", slog.String("identifier", input.Identifier))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	credential := &entity.Credential{
		Identifier:   input.Identifier,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}

	if err := srv.credentialRepo.Insert(ctx, credential); err != nil {
		srv.log(ctx).Warn("Failed to insert credential", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return errors.Wrap(err, "failed to insert credential")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("credentialID", credential.ID))

	return nil
}

// Login verifies a credential in a fixed early-exit order: presence,
// lookup-exists, role-match, password-match. The three verification
// failures all return the same ErrInvalidCredentials value, and every path
// performs exactly one bcrypt comparison.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Identifier == "" || input.Password == "" || input.Role == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "login rejected")
	}

	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier), slog.String("claimedRole", input.Role))

	credential, err := srv.credentialRepo.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.hasher.Check(input.Password, dummyHash)
			srv.log(ctx).Warn("Login failed: identifier not found", slog.String("identifier", input.Identifier))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		srv.log(ctx).Error("Failed to look up credential", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	passwordMatches := srv.hasher.Check(input.Password, credential.PasswordHash)

	if credential.Role != input.Role {
		srv.log(ctx).Warn("Login failed: role mismatch", slog.String("identifier", input.Identifier))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !passwordMatches {
		srv.log(ctx).Warn("Login failed: wrong password", slog.String("identifier", input.Identifier))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	redirectTo := entity.Role(credential.Role).RedirectTarget()
	srv.log(ctx).Debug("Login succeeded", slog.String("identifier", input.Identifier), slog.String("redirectTo", redirectTo))

	return &usecase.LoginOutput{RedirectTo: redirectTo}, nil
}
