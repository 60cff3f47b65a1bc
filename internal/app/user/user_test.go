package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	u := New("alice", "secret", "")
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, DefaultAvatarColor, u.AvatarColor)
	assert.NotNil(t, u.Messages)
	assert.Empty(t, u.Messages)

	colored := New("bob", "secret", "#f8c3d8")
	assert.Equal(t, "#f8c3d8", colored.AvatarColor)
}

func TestAppendMessage(t *testing.T) {
	u := New("alice", "secret", "")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	u.AppendMessage("hello", now)
	u.AppendMessage("world", now.Add(time.Minute))

	assert.Len(t, u.Messages, 2)
	assert.Equal(t, "hello", u.Messages[0].Text)
	assert.Equal(t, "world", u.Messages[1].Text)
	assert.False(t, u.Messages[0].IsPinned)
	assert.Equal(t, now, u.Messages[0].CreatedAt)
	assert.NotNil(t, u.Messages[0].Replies)
	assert.Empty(t, u.Messages[0].Replies)
}

func TestRemoveMessage(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		index     int
		wantErr   bool
		wantTexts []string
	}{
		{name: "first", index: 0, wantTexts: []string{"b", "c"}},
		{name: "middle", index: 1, wantTexts: []string{"a", "c"}},
		{name: "last", index: 2, wantTexts: []string{"a", "b"}},
		{name: "negative", index: -1, wantErr: true, wantTexts: []string{"a", "b", "c"}},
		{name: "equal to length", index: 3, wantErr: true, wantTexts: []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := New("alice", "secret", "")
			u.AppendMessage("a", now)
			u.AppendMessage("b", now)
			u.AppendMessage("c", now)

			err := u.RemoveMessage(tc.index)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantTexts, u.MessageTexts())
		})
	}
}

func TestTogglePin(t *testing.T) {
	u := New("alice", "secret", "")
	u.AppendMessage("hello", time.Now().UTC())

	pinned, err := u.TogglePin(0)
	assert.NoError(t, err)
	assert.True(t, pinned)

	// A second toggle restores the original state.
	pinned, err = u.TogglePin(0)
	assert.NoError(t, err)
	assert.False(t, pinned)

	_, err = u.TogglePin(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = u.TogglePin(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAppendReply(t *testing.T) {
	u := New("alice", "secret", "")
	now := time.Now().UTC()
	u.AppendMessage("hello", now)

	assert.NoError(t, u.AppendReply(0, "thanks", now))
	assert.NoError(t, u.AppendReply(0, "again", now))
	assert.Len(t, u.Messages[0].Replies, 2)
	assert.Equal(t, "thanks", u.Messages[0].Replies[0].Text)

	assert.ErrorIs(t, u.AppendReply(1, "nope", now), ErrIndexOutOfRange)
	assert.ErrorIs(t, u.AppendReply(-1, "nope", now), ErrIndexOutOfRange)
}

func TestMessageTexts(t *testing.T) {
	u := New("alice", "secret", "")
	assert.Equal(t, []string{}, u.MessageTexts())

	now := time.Now().UTC()
	u.AppendMessage("one", now)
	u.AppendMessage("two", now)
	assert.Equal(t, []string{"one", "two"}, u.MessageTexts())
}
