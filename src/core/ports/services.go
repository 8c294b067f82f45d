package ports

import (
	"context"
	"time"

	"remixjokes/src/core/domain"
)

// ExternalService is the base interface for external service adapters.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// PasswordHasher produces and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

// SessionCodec signs and verifies session tokens.
type SessionCodec interface {
	Encode(userID string) (token string, claims domain.SessionClaims, err error)
	// Decode fails for tampered, expired or foreign tokens.
	Decode(token string) (domain.SessionClaims, error)
}

// SessionRevoker remembers session tokens that were logged out before they expired.
type SessionRevoker interface {
	ExternalService

	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
