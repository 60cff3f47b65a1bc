/*
Package store provides durable keyed storage of User aggregates.

Each user is persisted as one document: account fields plus the full nested
message list. Save always writes the whole aggregate; when two requests race
on the same user the later save wins. There is no version check, which is a
documented limitation of the data model, not an oversight.
*/
package store

import (
	"context"
	"errors"

	"whispeer/internal/app/user"
)

var (
	// ErrUserNotFound is returned when no user exists under the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned by Create when the username is taken.
	// Login-path callers treat it as "the user exists now" and re-read.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserStore is the persistence boundary for User aggregates.
type UserStore interface {
	// FindByUsername loads the full aggregate, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// SearchByUsername returns the usernames containing the fragment,
	// case-insensitively. No match is an empty slice, not an error.
	SearchByUsername(ctx context.Context, fragment string) ([]string, error)

	// Create inserts a new user with an empty message list.
	// Returns ErrUserAlreadyExists when the username is taken.
	Create(ctx context.Context, username, password, avatarColor string) (*user.User, error)

	// Save persists the whole aggregate (avatar color and message list).
	Save(ctx context.Context, u *user.User) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
