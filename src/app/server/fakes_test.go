package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"remixjokes/src/core/domain"
)

// memStore is an in-memory UserRepository and JokeRepository.
type memStore struct {
	mu    sync.Mutex
	clock time.Time
	users map[string]domain.User
	jokes map[string]domain.Joke
}

func newMemStore() *memStore {
	return &memStore{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users: map[string]domain.User{},
		jokes: map[string]domain.Joke{},
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) Health(context.Context) error { return nil }

func (m *memStore) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return nil, domain.NewConflictError("User with username " + username + " already exists")
		}
	}
	now := m.tick()
	u := domain.User{ID: uuid.NewString(), Username: username, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	m.users[u.ID] = u
	return &u, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memStore) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		return &u, nil
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memStore) CreateJoke(_ context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	j := domain.Joke{ID: uuid.NewString(), JokesterID: jokesterID, Name: name, Content: content, CreatedAt: now, UpdatedAt: now}
	m.jokes[j.ID] = j
	return &j, nil
}

func (m *memStore) GetJoke(_ context.Context, jokeID string) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jokes[jokeID]; ok {
		return &j, nil
	}
	return nil, domain.NewNotFoundError("joke")
}

func (m *memStore) ListRecentJokes(_ context.Context, limit int) ([]domain.JokeListItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.Joke, 0, len(m.jokes))
	for _, j := range m.jokes {
		all = append(all, j)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].CreatedAt.After(all[b].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	items := make([]domain.JokeListItem, 0, len(all))
	for _, j := range all {
		items = append(items, domain.JokeListItem{ID: j.ID, Name: j.Name})
	}
	return items, nil
}

func (m *memStore) RandomJoke(_ context.Context) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jokes {
		return &j, nil
	}
	return nil, domain.NewNotFoundError("joke")
}

func (m *memStore) DeleteJoke(_ context.Context, jokeID, jokesterID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jokes[jokeID]
	if !ok || j.JokesterID != jokesterID {
		return domain.NewNotFoundError("joke")
	}
	delete(m.jokes, jokeID)
	return nil
}

func (m *memStore) jokeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jokes)
}

type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
	checks  int
}

func (r *memRevoker) Health(context.Context) error { return nil }

func (r *memRevoker) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = true
	return nil
}

func (r *memRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks++
	return r.revoked[tokenID], nil
}

func (r *memRevoker) checkCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checks
}
