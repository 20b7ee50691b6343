package service

import (
	"context"
	"log/slog"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/platform/logger"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service/auth"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// UserService provides user account operations.
type UserService interface {
	// Register validates the given credentials, hashes the password, and
	// persists a new user. Returns store.ErrEmailExists if the email is
	// already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate checks the given credentials against the stored user.
	// Returns ErrInvalidCredentials on unknown email or wrong password;
	// the two cases are indistinguishable to the caller on purpose.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	users    store.UserStore
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// Ensure userServiceImpl implements UserService interface
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, verifier auth.PasswordVerifier, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		users:    users,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password)
	if err != nil {
		log.Warn("invalid registration credentials",
			slog.String("error", err.Error()))
		return nil, err
	}

	hash, err := s.verifier.HashPassword(user.Password)
	if err != nil {
		return nil, NewUserServiceError("register", "failed to hash password", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewUserServiceError("register", "failed to save user", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", created.ID))
	return created, nil
}

// Authenticate implements UserService.Authenticate
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Same error as a wrong password so the response does not
			// reveal which emails are registered.
			return nil, ErrInvalidCredentials
		}
		return nil, NewUserServiceError("authenticate", "failed to retrieve user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch",
			slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, NewUserServiceError("get_user", "failed to retrieve user", err)
	}
	return user, nil
}
