package usecase

import (
	"context"
	"log/slog"

	"remixjokes/src/core/domain"
	"remixjokes/src/core/ports"
)

// JokeService handles listing, creating and deleting jokes.
type JokeService struct {
	jokes ports.JokeRepository
	log   *slog.Logger
}

func NewJokeService(jokes ports.JokeRepository, log *slog.Logger) *JokeService {
	return &JokeService{jokes: jokes, log: log}
}

// Recent returns the newest jokes for the sidebar.
func (s *JokeService) Recent(ctx context.Context) ([]domain.JokeListItem, error) {
	items, err := s.jokes.ListRecentJokes(ctx, domain.RecentJokesLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.JokeListItem{}
	}
	return items, nil
}

func (s *JokeService) Get(ctx context.Context, jokeID string) (*domain.Joke, error) {
	return s.jokes.GetJoke(ctx, jokeID)
}

// Random picks any joke; not found when there are none.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	return s.jokes.RandomJoke(ctx)
}

// Create validates and stores a joke owned by jokesterID.
func (s *JokeService) Create(ctx context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	if err := domain.ValidateJoke(name, content); err != nil {
		return nil, err
	}
	joke, err := s.jokes.CreateJoke(ctx, jokesterID, name, content)
	if err != nil {
		return nil, err
	}
	s.log.Info("joke created", "joke_id", joke.ID, "user_id", jokesterID)
	return joke, nil
}

// Delete removes a joke on behalf of requesterID.
// The joke must exist and belong to the requester; nothing is mutated otherwise.
func (s *JokeService) Delete(ctx context.Context, requesterID, jokeID string) error {
	joke, err := s.jokes.GetJoke(ctx, jokeID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewNotFoundError("Can't delete what does not exist")
		}
		return err
	}
	if !joke.OwnedBy(requesterID) {
		s.log.Warn("joke delete refused", "joke_id", jokeID, "user_id", requesterID)
		return domain.NewForbiddenError("Pssh, nice try. That's not your joke")
	}

	if err := s.jokes.DeleteJoke(ctx, jokeID, requesterID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewNotFoundError("Can't delete what does not exist")
		}
		return err
	}
	s.log.Info("joke deleted", "joke_id", jokeID, "user_id", requesterID)
	return nil
}
