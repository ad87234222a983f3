package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-hub/domain"
	"chat-hub/errors"
)

func newMessageRepository(t *testing.T) *MessageRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	index, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	return NewMessageRepository(db, index, slog.Default())
}

func textMessage(roomID, senderID, content string, at time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		SenderID:  senderID,
		Type:      domain.MessageText,
		Content:   content,
		CreatedAt: at,
	}
}

func Test_Store_And_Fetch_Message(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	msg := textMessage("room-1", "alice", "hello there", time.Now().UTC())
	req.NoError(repository.Store(msg))

	fetched, err := repository.GetByID(msg.ID)
	req.NoError(err)
	req.Equal(msg.ID, fetched.ID)
	req.Equal(msg.Content, fetched.Content)
	req.Equal(msg.CreatedAt.UnixNano(), fetched.CreatedAt.UnixNano())

	_, err = repository.GetByID("missing")
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func Test_List_Newest_First_With_Pages(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repository.Store(textMessage("room-1", "alice", "msg", at.Add(time.Duration(i)*time.Minute))))
	}
	req.NoError(repository.Store(textMessage("room-2", "bob", "other room", at)))

	page1, total, err := repository.ListByRoom("room-1", 1, 2)
	req.NoError(err)
	req.Equal(int64(5), total)
	req.Len(page1, 2)
	req.True(page1[0].CreatedAt.After(page1[1].CreatedAt))

	page3, _, err := repository.ListByRoom("room-1", 3, 2)
	req.NoError(err)
	req.Len(page3, 1)
	req.Equal(at.UnixNano(), page3[0].CreatedAt.UnixNano())
}

func Test_Edit_Keeps_History(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	msg := textMessage("room-1", "alice", "first draft", at)
	req.NoError(repository.Store(msg))

	edited, err := repository.ApplyEdit(msg.ID, "alice", "final version", at.Add(time.Minute))
	req.NoError(err)
	req.Equal("final version", edited.Content)
	req.Len(edited.EditHistory, 1)
	req.Equal("first draft", edited.EditHistory[0].Content)

	_, err = repository.ApplyEdit(msg.ID, "bob", "hijacked", at.Add(time.Minute))
	req.ErrorIs(err, errors.ErrForbidden)

	_, err = repository.ApplyEdit(msg.ID, "alice", "too late", at.Add(domain.EditWindow+time.Second))
	req.ErrorIs(err, errors.ErrEditWindowExpired)
}

func Test_Delete_Is_Terminal(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	msg := textMessage("room-1", "alice", "regrettable", at)
	req.NoError(repository.Store(msg))

	deleted, err := repository.ApplyDelete(msg.ID, "alice", at.Add(time.Second))
	req.NoError(err)
	req.True(deleted.Deleted)
	req.Equal(domain.DeletedPlaceholder, deleted.Content)

	_, err = repository.ApplyDelete(msg.ID, "alice", at.Add(2*time.Second))
	req.ErrorIs(err, errors.ErrMessageDeleted)

	_, err = repository.ApplyEdit(msg.ID, "alice", "resurrection", at.Add(2*time.Second))
	req.ErrorIs(err, errors.ErrMessageDeleted)
}

func Test_Reactions_Are_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	msg := textMessage("room-1", "alice", "react to me", time.Now().UTC())
	req.NoError(repository.Store(msg))

	updated, changed, err := repository.AddReaction(msg.ID, "bob", "👍")
	req.NoError(err)
	req.True(changed)
	req.Equal([]string{"bob"}, updated.Reactions["👍"])

	_, changed, err = repository.AddReaction(msg.ID, "bob", "👍")
	req.NoError(err)
	req.False(changed)

	updated, changed, err = repository.RemoveReaction(msg.ID, "bob", "👍")
	req.NoError(err)
	req.True(changed)
	req.Empty(updated.Reactions)

	_, changed, err = repository.RemoveReaction(msg.ID, "bob", "👍")
	req.NoError(err)
	req.False(changed)
}

func Test_Count_Unread_Skips_Own_And_Deleted(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	watermark := time.Now().UTC()
	old := textMessage("room-1", "alice", "already read", watermark.Add(-time.Minute))
	fresh := textMessage("room-1", "alice", "unread", watermark.Add(time.Minute))
	own := textMessage("room-1", "bob", "my own", watermark.Add(2*time.Minute))
	gone := textMessage("room-1", "alice", "soon deleted", watermark.Add(3*time.Minute))
	for _, msg := range []domain.Message{old, fresh, own, gone} {
		req.NoError(repository.Store(msg))
	}
	_, err := repository.ApplyDelete(gone.ID, "alice", watermark.Add(4*time.Minute))
	req.NoError(err)

	count, err := repository.CountUnread("room-1", watermark, "bob")
	req.NoError(err)
	req.Equal(int64(1), count)
}

func Test_Search_Scoped_To_Room(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	hit := textMessage("room-1", "alice", "the quarterly report is ready", at)
	req.NoError(repository.Store(hit))
	req.NoError(repository.Store(textMessage("room-1", "bob", "lunch anyone", at.Add(time.Second))))
	req.NoError(repository.Store(textMessage("room-2", "clara", "another report elsewhere", at.Add(2*time.Second))))

	found, total, err := repository.Search(context.Background(), "room-1", "report", 1, 10)
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Len(found, 1)
	req.Equal(hit.ID, found[0].ID)
}

func Test_Search_Excludes_Deleted(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	msg := textMessage("room-1", "alice", "findable until deleted", at)
	req.NoError(repository.Store(msg))

	_, err := repository.ApplyDelete(msg.ID, "alice", at.Add(time.Second))
	req.NoError(err)

	found, _, err := repository.Search(context.Background(), "room-1", "findable", 1, 10)
	req.NoError(err)
	req.Empty(found)
}

func Test_Record_Read_Receipts(t *testing.T) {
	req := require.New(t)
	repository := newMessageRepository(t)

	at := time.Now().UTC()
	msg := textMessage("room-1", "alice", "read me", at)
	req.NoError(repository.Store(msg))

	readAt := at.Add(time.Minute)
	req.NoError(repository.RecordRead([]string{msg.ID, "unknown-id"}, "bob", readAt))

	fetched, err := repository.GetByID(msg.ID)
	req.NoError(err)
	req.Equal(readAt.UnixNano(), fetched.ReadBy["bob"].UnixNano())

	// A second receipt keeps the first timestamp.
	req.NoError(repository.RecordRead([]string{msg.ID}, "bob", readAt.Add(time.Hour)))
	fetched, err = repository.GetByID(msg.ID)
	req.NoError(err)
	req.Equal(readAt.UnixNano(), fetched.ReadBy["bob"].UnixNano())
}
