package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"remixjokes/src/core/domain"
	"remixjokes/src/core/ports"
	"remixjokes/src/infra/db"
)

var (
	_ ports.UserRepository = (*PostgresRepository)(nil)
	_ ports.JokeRepository = (*PostgresRepository)(nil)
)

// PostgresRepository implements the user and joke repositories using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// validID keeps malformed ids away from the uuid columns, where they would be a
// syntax error instead of a plain miss.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, created_at, updated_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, uuid.NewString(), username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("User with username " + username + " already exists")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if !validID(userID) {
		return nil, domain.NewNotFoundError("user")
	}
	const q = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, userID))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

// Jokes

func (r *PostgresRepository) CreateJoke(ctx context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	if !validID(jokesterID) {
		return nil, domain.NewNotFoundError("user")
	}
	const q = `
		INSERT INTO jokes (id, jokester_id, name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, jokester_id, name, content, created_at, updated_at
	`
	return r.scanJoke(r.pool.QueryRow(ctx, q, uuid.NewString(), jokesterID, name, content))
}

func (r *PostgresRepository) GetJoke(ctx context.Context, jokeID string) (*domain.Joke, error) {
	if !validID(jokeID) {
		return nil, domain.NewNotFoundError("joke")
	}
	const q = `
		SELECT id, jokester_id, name, content, created_at, updated_at
		FROM jokes
		WHERE id = $1
	`
	return r.scanJoke(r.pool.QueryRow(ctx, q, jokeID))
}

func (r *PostgresRepository) ListRecentJokes(ctx context.Context, limit int) ([]domain.JokeListItem, error) {
	const q = `
		SELECT id, name
		FROM jokes
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.JokeListItem, 0, limit)
	for rows.Next() {
		var it domain.JokeListItem
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) RandomJoke(ctx context.Context) (*domain.Joke, error) {
	const q = `
		SELECT id, jokester_id, name, content, created_at, updated_at
		FROM jokes
		ORDER BY random()
		LIMIT 1
	`
	return r.scanJoke(r.pool.QueryRow(ctx, q))
}

func (r *PostgresRepository) DeleteJoke(ctx context.Context, jokeID, jokesterID string) error {
	if !validID(jokeID) || !validID(jokesterID) {
		return domain.NewNotFoundError("joke")
	}
	const q = `
		DELETE FROM jokes
		WHERE id = $1 AND jokester_id = $2
	`
	res, err := r.pool.Exec(ctx, q, jokeID, jokesterID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

func (r *PostgresRepository) scanJoke(row pgx.Row) (*domain.Joke, error) {
	var j domain.Joke
	if err := row.Scan(&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}
