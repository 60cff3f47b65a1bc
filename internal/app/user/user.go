/*
Package user contains the core data structures of the application: the User
aggregate and its owned message list.

A User owns an ordered list of Messages, each owning an ordered list of
Replies. Messages are addressed by their current position in the list, so
removing a message shifts every later index down by one. All index-addressed
operations live here so the bounds rule is enforced in exactly one place.
*/
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultAvatarColor is assigned when a user logs in for the first time
// without choosing a color.
const DefaultAvatarColor = "#c3e7f8"

// ErrIndexOutOfRange is returned by index-addressed operations when the
// position is outside [0, len) of the current message list.
var ErrIndexOutOfRange = errors.New("message index out of range")

// Reply is a single response attached to a message by the message owner.
type Reply struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is one anonymous message in a user's feed. The sender identity is
// never recorded. Text is immutable once created; only the pin flag and the
// reply list change afterwards.
type Message struct {
	Text      string    `json:"text"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Reply   `json:"replies"`
}

// User is the persisted aggregate: account identity plus the owned, ordered
// message list. The whole aggregate is saved as one document.
type User struct {
	ID          uuid.UUID `json:"-"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	AvatarColor string    `json:"avatarColor"`
	Messages    []Message `json:"messages"`
}

// New creates a user with an empty message list. An empty avatarColor falls
// back to DefaultAvatarColor.
func New(username, password, avatarColor string) *User {
	if avatarColor == "" {
		avatarColor = DefaultAvatarColor
	}

	return &User{
		ID:          uuid.New(),
		Username:    username,
		Password:    password,
		AvatarColor: avatarColor,
		Messages:    []Message{},
	}
}

// AppendMessage adds a new unpinned message with no replies to the end of the list.
func (u *User) AppendMessage(text string, now time.Time) {
	u.Messages = append(u.Messages, Message{
		Text:      text,
		IsPinned:  false,
		CreatedAt: now,
		Replies:   []Reply{},
	})
}

// RemoveMessage deletes the message at position i, shifting later indices down.
func (u *User) RemoveMessage(i int) error {
	if i < 0 || i >= len(u.Messages) {
		return ErrIndexOutOfRange
	}

	u.Messages = append(u.Messages[:i], u.Messages[i+1:]...)
	return nil
}

// TogglePin flips the pin flag of the message at position i and returns the new state.
// Stored order is untouched; any pinned-first presentation is a client concern.
func (u *User) TogglePin(i int) (bool, error) {
	if i < 0 || i >= len(u.Messages) {
		return false, ErrIndexOutOfRange
	}

	u.Messages[i].IsPinned = !u.Messages[i].IsPinned
	return u.Messages[i].IsPinned, nil
}

// AppendReply attaches a reply to the message at position i.
func (u *User) AppendReply(i int, text string, now time.Time) error {
	if i < 0 || i >= len(u.Messages) {
		return ErrIndexOutOfRange
	}

	u.Messages[i].Replies = append(u.Messages[i].Replies, Reply{
		Text:      text,
		CreatedAt: now,
	})
	return nil
}

// MessageTexts returns only the text of each message, in stored order.
// This is the projection the get-user endpoint exposes.
func (u *User) MessageTexts() []string {
	texts := make([]string, 0, len(u.Messages))
	for _, m := range u.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}
