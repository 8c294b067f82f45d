package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"remixjokes/src/core/domain"
	"remixjokes/src/core/ports"
)

// timingGuardPassword is hashed once so unknown usernames still pay for a hash comparison.
const timingGuardPassword = "remix-jokes-timing-guard"

// AuthService handles registration and credential checks.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	log       *slog.Logger
	dummyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *AuthService {
	dummy, err := hasher.Hash(timingGuardPassword)
	if err != nil {
		log.Warn("could not prepare timing guard hash", "error", err)
	}
	return &AuthService{users: users, hasher: hasher, log: log, dummyHash: dummy}
}

// Register creates a user with a hashed password.
// An existing username fails with a conflict and nothing is written.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if err := domain.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.NewConflictError(fmt.Sprintf("User with username %s already exists", username))
	case !domain.IsNotFound(err):
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, hash)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login returns the user matching the credentials.
// Unknown usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			if s.dummyHash != "" {
				_ = s.hasher.Compare(s.dummyHash, password)
			}
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
