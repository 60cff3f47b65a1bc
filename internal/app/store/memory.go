package store

import (
	"context"
	"strings"
	"sync"

	"whispeer/internal/app/user"
)

// MemoryStore is an in-memory UserStore used by tests. It deep-copies
// aggregates on every read and write so callers observe the same
// fetch-mutate-save cycle the Postgres store enforces.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*user.User

	// FailWith, when set, is returned by every operation. Lets tests
	// exercise the store-failure paths.
	FailWith error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*user.User)}
}

func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *MemoryStore) SearchByUsername(ctx context.Context, fragment string) ([]string, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(fragment)
	usernames := make([]string, 0)
	for name := range s.users {
		if strings.Contains(strings.ToLower(name), needle) {
			usernames = append(usernames, name)
		}
	}
	return usernames, nil
}

func (s *MemoryStore) Create(ctx context.Context, username, password, avatarColor string) (*user.User, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, ErrUserAlreadyExists
	}

	u := user.New(username, password, avatarColor)
	s.users[username] = copyUser(u)
	return u, nil
}

func (s *MemoryStore) Save(ctx context.Context, u *user.User) error {
	if s.FailWith != nil {
		return s.FailWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[u.Username]
	if !ok {
		return ErrUserNotFound
	}

	cp := copyUser(u)
	cp.ID = stored.ID
	s.users[u.Username] = cp
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return s.FailWith
}

func copyUser(u *user.User) *user.User {
	cp := *u
	cp.Messages = make([]user.Message, len(u.Messages))
	for i, m := range u.Messages {
		mc := m
		mc.Replies = append([]user.Reply(nil), m.Replies...)
		cp.Messages[i] = mc
	}
	return &cp
}
