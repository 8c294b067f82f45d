package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"remixjokes/src/core/domain"
	"remixjokes/src/core/ports"
)

// SessionService issues and resolves signed session tokens.
type SessionService struct {
	codec   ports.SessionCodec
	users   ports.UserRepository
	revoker ports.SessionRevoker
	log     *slog.Logger
}

// NewSessionService wires the session flow. revoker may be nil, in which case
// logging out only clears the client cookie.
func NewSessionService(codec ports.SessionCodec, users ports.UserRepository, revoker ports.SessionRevoker, log *slog.Logger) *SessionService {
	return &SessionService{codec: codec, users: users, revoker: revoker, log: log}
}

// Create issues a token for userID.
func (s *SessionService) Create(ctx context.Context, userID string) (*domain.Session, error) {
	token, claims, err := s.codec.Encode(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}
	s.log.Debug("session created", "user_id", userID, "expires_at", claims.ExpiresAt)
	return &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// UserID returns the user the token belongs to. It never fails: absent, tampered,
// expired and revoked tokens all report false.
func (s *SessionService) UserID(ctx context.Context, token string) (string, bool) {
	claims, ok := s.resolve(ctx, token)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// UserByID loads the user behind an already resolved session. An empty id or a
// user that no longer exists reports false.
func (s *SessionService) UserByID(ctx context.Context, userID string) (*domain.User, bool) {
	if userID == "" {
		return nil, false
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.log.Error("failed to load session user", "user_id", userID, "error", err)
		}
		return nil, false
	}
	return user, true
}

// Destroy revokes the token until its natural expiry. Invalid tokens are ignored.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	claims, ok := s.resolve(ctx, token)
	if !ok || s.revoker == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.log.Debug("session revoked", "user_id", claims.UserID)
	return nil
}

func (s *SessionService) resolve(ctx context.Context, token string) (domain.SessionClaims, bool) {
	if token == "" {
		return domain.SessionClaims{}, false
	}
	claims, err := s.codec.Decode(token)
	if err != nil {
		s.log.Debug("session rejected", "error", err)
		return domain.SessionClaims{}, false
	}
	if s.revoker == nil {
		return claims, true
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Fail closed: an unverifiable session is treated as absent.
		s.log.Warn("session revocation check failed", "error", err)
		return domain.SessionClaims{}, false
	}
	if revoked {
		return domain.SessionClaims{}, false
	}
	return claims, true
}
