// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"remixjokes/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository stores registered users.
type UserRepository interface {
	Repository

	// CreateUser inserts a user. A taken username yields a conflict error.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// JokeRepository stores jokes.
type JokeRepository interface {
	Repository

	CreateJoke(ctx context.Context, jokesterID, name, content string) (*domain.Joke, error)
	GetJoke(ctx context.Context, jokeID string) (*domain.Joke, error)
	// ListRecentJokes returns the newest jokes first.
	ListRecentJokes(ctx context.Context, limit int) ([]domain.JokeListItem, error)
	RandomJoke(ctx context.Context) (*domain.Joke, error)
	// DeleteJoke removes the joke only if jokesterID still owns it; otherwise not found.
	DeleteJoke(ctx context.Context, jokeID, jokesterID string) error
}
