package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-hub/errors"
)

func TestMessage_EditableBy(t *testing.T) {
	base := Message{
		ID:        "msg-1",
		RoomID:    "room-1",
		SenderID:  "alice",
		Content:   "hello",
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}

	t.Run("sender may edit inside the window", func(t *testing.T) {
		req := require.New(t)
		msg := base

		req.NoError(msg.EditableBy("alice", time.Now().UTC()))
	})

	t.Run("only the sender may edit", func(t *testing.T) {
		req := require.New(t)
		msg := base

		req.ErrorIs(msg.EditableBy("bob", time.Now().UTC()), errors.ErrForbidden)
	})

	t.Run("deleted messages are frozen", func(t *testing.T) {
		req := require.New(t)
		msg := base
		msg.Deleted = true

		req.ErrorIs(msg.EditableBy("alice", time.Now().UTC()), errors.ErrMessageDeleted)
	})

	t.Run("the window closes after fifteen minutes", func(t *testing.T) {
		req := require.New(t)
		msg := base
		msg.CreatedAt = time.Now().UTC().Add(-EditWindow - time.Second)

		req.ErrorIs(msg.EditableBy("alice", time.Now().UTC()), errors.ErrEditWindowExpired)
	})
}

func TestMessage_HasReaction(t *testing.T) {
	req := require.New(t)
	msg := Message{
		ID:        "msg-1",
		Reactions: map[string][]string{"👍": {"alice", "bob"}},
	}

	req.True(msg.HasReaction("alice", "👍"))
	req.True(msg.HasReaction("bob", "👍"))
	req.False(msg.HasReaction("carol", "👍"))
	req.False(msg.HasReaction("alice", "🎉"))

	var bare Message
	req.False(bare.HasReaction("alice", "👍"))
}

func TestValidContent(t *testing.T) {
	req := require.New(t)

	req.True(ValidContent("hello"))
	req.False(ValidContent(""))
	req.False(ValidContent("   "))

	long := make([]rune, MaxContentLength)
	for i := range long {
		long[i] = 'é'
	}
	req.True(ValidContent(string(long)))
	req.False(ValidContent(string(long) + "x"))
}
