package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"whispeer/internal/app/db"
	"whispeer/internal/app/user"
)

// PostgresStore persists User aggregates in PostgreSQL, one row per user.
// The message list lives in a JSONB column, so Save is a single UPDATE of
// the whole document.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a PostgresStore backed by the given connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByUsername loads the full aggregate for an exact username match.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u := &user.User{}

	row := s.pool.QueryRow(ctx,
		`SELECT id, username, password, avatar_color, messages
		 FROM users WHERE username = $1`,
		username,
	)

	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.AvatarColor, &u.Messages); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	if u.Messages == nil {
		u.Messages = []user.Message{}
	}

	return u, nil
}

// SearchByUsername returns all usernames containing the fragment, case-insensitively.
// LIKE metacharacters in the fragment are escaped so they match literally.
func (s *PostgresStore) SearchByUsername(ctx context.Context, fragment string) ([]string, error) {
	pattern := "%" + escapeLike(fragment) + "%"

	rows, err := s.pool.Query(ctx,
		`SELECT username FROM users WHERE username ILIKE $1 ORDER BY username`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		usernames = append(usernames, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return usernames, nil
}

// Create inserts a new user row with an empty message list.
func (s *PostgresStore) Create(ctx context.Context, username, password, avatarColor string) (*user.User, error) {
	u := user.New(username, password, avatarColor)

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, password, avatar_color, messages)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.Password, u.AvatarColor, u.Messages,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}

	return u, nil
}

// Save writes the whole aggregate back in one statement. Last write wins.
func (s *PostgresStore) Save(ctx context.Context, u *user.User) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET avatar_color = $2, messages = $3, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.AvatarColor, u.Messages,
	)
	if err != nil {
		return fmt.Errorf("save user %q: %w", u.Username, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Ping reports whether the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// escapeLike escapes the LIKE metacharacters backslash, percent, and
// underscore so a search fragment matches literally.
func escapeLike(fragment string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(fragment)
}
