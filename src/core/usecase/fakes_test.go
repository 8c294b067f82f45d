package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"remixjokes/src/core/domain"
)

// memStore is an in-memory UserRepository and JokeRepository.
type memStore struct {
	mu    sync.Mutex
	seq   int
	base  time.Time
	users map[string]*domain.User
	jokes map[string]*domain.Joke

	createUserCalls int
	deleteCalls     int
	lookupErr       error
	healthErr       error
}

func newMemStore() *memStore {
	return &memStore{
		base:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users: map[string]*domain.User{},
		jokes: map[string]*domain.Joke{},
	}
}

func (m *memStore) next() (string, time.Time) {
	m.seq++
	return fmt.Sprintf("id-%d", m.seq), m.base.Add(time.Duration(m.seq) * time.Second)
}

func (m *memStore) Health(context.Context) error { return m.healthErr }

func (m *memStore) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createUserCalls++
	for _, u := range m.users {
		if u.Username == username {
			return nil, domain.NewConflictError("taken")
		}
	}
	id, ts := m.next()
	u := &domain.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: ts, UpdatedAt: ts}
	m.users[id] = u
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memStore) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memStore) CreateJoke(_ context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ts := m.next()
	j := &domain.Joke{ID: id, JokesterID: jokesterID, Name: name, Content: content, CreatedAt: ts, UpdatedAt: ts}
	m.jokes[id] = j
	cp := *j
	return &cp, nil
}

func (m *memStore) GetJoke(_ context.Context, jokeID string) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jokes[jokeID]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, domain.NewNotFoundError("joke")
}

func (m *memStore) ListRecentJokes(_ context.Context, limit int) ([]domain.JokeListItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*domain.Joke, 0, len(m.jokes))
	for _, j := range m.jokes {
		all = append(all, j)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].CreatedAt.After(all[b].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	var items []domain.JokeListItem
	for _, j := range all {
		items = append(items, domain.JokeListItem{ID: j.ID, Name: j.Name})
	}
	return items, nil
}

func (m *memStore) RandomJoke(_ context.Context) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jokes {
		cp := *j
		return &cp, nil
	}
	return nil, domain.NewNotFoundError("joke")
}

func (m *memStore) DeleteJoke(_ context.Context, jokeID, jokesterID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	j, ok := m.jokes[jokeID]
	if !ok || j.JokesterID != jokesterID {
		return domain.NewNotFoundError("joke")
	}
	delete(m.jokes, jokeID)
	return nil
}

// plainHasher "hashes" by prefixing, which is enough to test the flow around it.
type plainHasher struct {
	compares int
}

func (h *plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *plainHasher) Compare(hash, password string) error {
	h.compares++
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// memRevoker is an in-memory SessionRevoker.
type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newMemRevoker() *memRevoker {
	return &memRevoker{revoked: map[string]time.Time{}}
}

func (r *memRevoker) Health(context.Context) error { return r.err }

func (r *memRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.revoked[tokenID] = until
	return nil
}

func (r *memRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[tokenID]
	return ok, nil
}
