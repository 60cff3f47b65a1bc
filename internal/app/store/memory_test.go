package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreCreateAndFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "alice", "secret", "")
	assert.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	_, err = s.Create(ctx, "alice", "other", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = s.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)

	found, err := s.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "secret", found.Password)
}

func TestMemoryStoreReadsAreCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Create(ctx, "alice", "secret", "")
	assert.NoError(t, err)

	// Mutating a fetched aggregate must not leak into the store until Save.
	u, err := s.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	u.AppendMessage("unsaved", time.Now().UTC())

	fresh, err := s.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Empty(t, fresh.Messages)

	assert.NoError(t, s.Save(ctx, u))

	saved, err := s.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, saved.Messages, 1)
}

func TestMemoryStoreSearch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"Anna", "joanna", "bob"} {
		_, err := s.Create(ctx, name, "pw", "")
		assert.NoError(t, err)
	}

	got, err := s.SearchByUsername(ctx, "ann")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Anna", "joanna"}, got)

	got, err = s.SearchByUsername(ctx, "xyz-nonexistent")
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMemoryStoreSaveUnknownUser(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u, err := s.Create(ctx, "alice", "secret", "")
	assert.NoError(t, err)

	u.Username = "ghost"
	assert.ErrorIs(t, s.Save(ctx, u), ErrUserNotFound)
}
