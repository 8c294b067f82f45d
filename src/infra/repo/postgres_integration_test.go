package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remixjokes/src/core/domain"
	"remixjokes/src/infra/config"
	"remixjokes/src/infra/db"
	"remixjokes/src/infra/logger"
)

// newIntegrationRepo connects to the database named by the APP_DB_* variables and
// applies the schema. The test is skipped when APP_DB_HOST is unset.
func newIntegrationRepo(t *testing.T) *PostgresRepository {
	t.Helper()
	if os.Getenv("APP_DB_HOST") == "" {
		t.Skip("APP_DB_HOST not set; skipping Postgres integration test")
	}

	cfg, err := config.LoadStorage()
	require.NoError(t, err)

	ctx := context.Background()
	pg, err := db.New(ctx, cfg.Database, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(pg.Close)
	require.NoError(t, pg.Migrate(ctx))

	return NewPostgresRepository(pg, logger.Discard())
}

// createTestUser registers a uniquely named user and removes it, with its jokes, afterwards.
func createTestUser(t *testing.T, r *PostgresRepository) *domain.User {
	t.Helper()
	ctx := context.Background()
	u, err := r.CreateUser(ctx, "it-"+uuid.NewString()[:8], "hash")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, u.ID)
	})
	return u
}

func TestPostgres_DuplicateUsernameConflicts(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()
	u := createTestUser(t, r)

	_, err := r.CreateUser(ctx, u.Username, "other-hash")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "User with username "+u.Username+" already exists", domain.Message(err))

	got, err := r.GetUserByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestPostgres_DeleteRequiresOwner(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, r)
	other := createTestUser(t, r)

	joke, err := r.CreateJoke(ctx, owner.ID, "Frisbee", "It was getting bigger, then it hit me.")
	require.NoError(t, err)

	err = r.DeleteJoke(ctx, joke.ID, other.ID)
	assert.True(t, domain.IsNotFound(err))

	got, err := r.GetJoke(ctx, joke.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.JokesterID)

	require.NoError(t, r.DeleteJoke(ctx, joke.ID, owner.ID))
	_, err = r.GetJoke(ctx, joke.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestPostgres_RecentJokesNewestFirst(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()
	u := createTestUser(t, r)

	first, err := r.CreateJoke(ctx, u.ID, "Older", "The first of two jokes.")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := r.CreateJoke(ctx, u.ID, "Newer", "The second of two jokes.")
	require.NoError(t, err)

	items, err := r.ListRecentJokes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}
