package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/moderation"
)

type messageServiceFixture struct {
	messages   *mocks.MockIMessageRepository
	rooms      *mocks.MockIRoomRepository
	dispatcher *mocks.MockIDispatcher
	svc        IMessageService
}

func newMessageServiceFixture(t *testing.T) messageServiceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := messageServiceFixture{
		messages:   mocks.NewMockIMessageRepository(ctrl),
		rooms:      mocks.NewMockIRoomRepository(ctrl),
		dispatcher: mocks.NewMockIDispatcher(ctrl),
	}
	moderator, err := moderation.NewModerator([]string{"badword"}, '*')
	require.NoError(t, err)
	f.svc = NewMessageService(f.messages, f.rooms, moderator, f.dispatcher)
	return f
}

func memberRoom(id string, userIDs ...string) domain.Room {
	room := domain.Room{ID: id, Type: domain.RoomGroup, Name: id, Active: true}
	for i, uid := range userIDs {
		role := domain.RoleMember
		if i == 0 {
			room.CreatorID = uid
			role = domain.RoleAdmin
		}
		room.Members = append(room.Members, domain.Member{UserID: uid, Role: role})
	}
	return room
}

func TestMessageService_SendMessage(t *testing.T) {
	room := memberRoom("room-1", "alice", "bob")

	t.Run("should persist before fanning out", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		stored := false
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().
			Store(gomock.Cond(func(m domain.Message) bool {
				return m.RoomID == "room-1" && m.SenderID == "alice" && m.Content == "hello there"
			})).
			DoAndReturn(func(domain.Message) error {
				stored = true
				return nil
			})
		f.rooms.EXPECT().SetLastMessage("room-1", gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().
			Dispatch(gomock.AssignableToTypeOf(event.MessageNew{})).
			Do(func(event.Event) {
				req.True(stored, "fan-out must only see stored messages")
			})

		msg, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "alice",
			RoomID:   "room-1",
			Content:  "hello there",
		})

		req.NoError(err)
		req.Equal(domain.MessageText, msg.Type)
		req.NotEmpty(msg.ID)
	})

	t.Run("should censor forbidden words before storing", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().
			Store(gomock.Cond(func(m domain.Message) bool {
				return m.Content == "what a *******"
			})).
			Return(nil)
		f.rooms.EXPECT().SetLastMessage("room-1", gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any())

		_, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "alice",
			RoomID:   "room-1",
			Content:  "what a badword",
		})

		req.NoError(err)
	})

	t.Run("should refuse a non-member", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "mallory",
			RoomID:   "room-1",
			Content:  "let me in",
		})

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should refuse blank content for text messages", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "alice",
			RoomID:   "room-1",
			Content:  "   ",
		})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should refuse the system type from clients", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "alice",
			RoomID:   "room-1",
			Type:     domain.MessageSystem,
			Content:  "fake announcement",
		})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should require an attachment for image messages", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID: "alice",
			RoomID:   "room-1",
			Type:     domain.MessageImage,
		})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should allow an attachment without a caption", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().Store(gomock.Any()).Return(nil)
		f.rooms.EXPECT().SetLastMessage("room-1", gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any())

		msg, err := f.svc.SendMessage(context.Background(), SendMessageCommand{
			SenderID:   "alice",
			RoomID:     "room-1",
			Type:       domain.MessageImage,
			Attachment: &domain.Attachment{Name: "x.png", MimeType: "image/png", Size: 2048},
		})

		req.NoError(err)
		req.NotNil(msg.Attachment)
	})
}

func TestMessageService_EditMessage(t *testing.T) {
	t.Run("should apply the edit and fan it out", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		updated := domain.Message{ID: "msg-1", RoomID: "room-1", SenderID: "alice", Content: "fixed"}
		f.messages.EXPECT().
			ApplyEdit("msg-1", "alice", "fixed", gomock.Any()).
			Return(updated, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.MessageEdited{}))

		msg, err := f.svc.EditMessage("alice", "msg-1", "fixed")

		req.NoError(err)
		req.Equal("fixed", msg.Content)
	})

	t.Run("should surface the expired window error untouched", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().
			ApplyEdit("msg-1", "alice", gomock.Any(), gomock.Any()).
			Return(domain.Message{}, errors.ErrEditWindowExpired)

		_, err := f.svc.EditMessage("alice", "msg-1", "too late")

		req.ErrorIs(err, errors.ErrEditWindowExpired)
	})

	t.Run("should censor edited content too", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().
			ApplyEdit("msg-1", "alice", "*******", gomock.Any()).
			Return(domain.Message{ID: "msg-1"}, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any())

		_, err := f.svc.EditMessage("alice", "msg-1", "badword")

		req.NoError(err)
	})
}

func TestMessageService_DeleteMessage(t *testing.T) {
	msg := domain.Message{ID: "msg-1", RoomID: "room-1", SenderID: "bob", Content: "oops"}
	room := memberRoom("room-1", "alice", "bob", "carol")

	t.Run("should let the sender delete their own message", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.messages.EXPECT().ApplyDelete("msg-1", "bob", gomock.Any()).Return(msg, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.MessageDeleted{}))

		req.NoError(f.svc.DeleteMessage("bob", "msg-1"))
	})

	t.Run("should let a room admin delete someone else's message", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().ApplyDelete("msg-1", "alice", gomock.Any()).Return(msg, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any())

		req.NoError(f.svc.DeleteMessage("alice", "msg-1"))
	})

	t.Run("should refuse a plain member deleting someone else's message", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		req.ErrorIs(f.svc.DeleteMessage("carol", "msg-1"), errors.ErrForbidden)
	})
}

func TestMessageService_Reactions(t *testing.T) {
	msg := domain.Message{ID: "msg-1", RoomID: "room-1", SenderID: "alice"}
	room := memberRoom("room-1", "alice", "bob")

	t.Run("should fan out only when the reaction actually changed", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		withReaction := msg
		withReaction.Reactions = map[string][]string{"👍": {"bob"}}

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().AddReaction("msg-1", "bob", "👍").Return(withReaction, true, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.ReactionAdded{})).Times(1)

		_, err := f.svc.AddReaction("bob", "msg-1", "👍")
		req.NoError(err)
	})

	t.Run("should stay silent on a repeated reaction", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().AddReaction("msg-1", "bob", "👍").Return(msg, false, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := f.svc.AddReaction("bob", "msg-1", "👍")
		req.NoError(err)
	})

	t.Run("should refuse reacting from outside the room", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").Return(msg, nil)
		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.AddReaction("mallory", "msg-1", "👍")
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should refuse an empty emoji", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		_, err := f.svc.AddReaction("bob", "msg-1", "")
		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestMessageService_MarkRead(t *testing.T) {
	t.Run("should advance the watermark to now when no ids are given", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		before := time.Now().UTC()
		f.rooms.EXPECT().
			AdvanceWatermark("room-1", "bob", gomock.Any()).
			DoAndReturn(func(_, _ string, at time.Time) (time.Time, error) { return at, nil })
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.MessagesRead{}))

		effective, err := f.svc.MarkRead("bob", "room-1", nil)

		req.NoError(err)
		req.False(effective.Before(before))
	})

	t.Run("should use the newest referenced message as the watermark", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		older := time.Now().UTC().Add(-2 * time.Minute)
		newer := time.Now().UTC().Add(-1 * time.Minute)

		f.messages.EXPECT().GetByID("msg-1").
			Return(domain.Message{ID: "msg-1", RoomID: "room-1", CreatedAt: older}, nil)
		f.messages.EXPECT().GetByID("msg-2").
			Return(domain.Message{ID: "msg-2", RoomID: "room-1", CreatedAt: newer}, nil)
		f.messages.EXPECT().RecordRead([]string{"msg-1", "msg-2"}, "bob", gomock.Any()).Return(nil)
		f.rooms.EXPECT().
			AdvanceWatermark("room-1", "bob", gomock.Cond(func(at time.Time) bool {
				return at.Equal(newer)
			})).
			Return(newer, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any())

		effective, err := f.svc.MarkRead("bob", "room-1", []string{"msg-1", "msg-2"})

		req.NoError(err)
		req.Equal(newer.UnixNano(), effective.UnixNano())
	})

	t.Run("should reject ids belonging to another room", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("msg-1").
			Return(domain.Message{ID: "msg-1", RoomID: "other-room"}, nil)

		_, err := f.svc.MarkRead("bob", "room-1", []string{"msg-1"})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should fail when every referenced id is unknown", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.messages.EXPECT().GetByID("ghost").
			Return(domain.Message{}, errors.ErrMessageNotFound)

		_, err := f.svc.MarkRead("bob", "room-1", []string{"ghost"})

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})
}

func TestMessageService_SetTyping(t *testing.T) {
	room := memberRoom("room-1", "alice", "bob")

	t.Run("should relay typing start and stop", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil).Times(2)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.TypingStart{}))
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.TypingStop{}))

		req.NoError(f.svc.SetTyping("bob", "room-1", true))
		req.NoError(f.svc.SetTyping("bob", "room-1", false))
	})

	t.Run("should refuse typing signals from non-members", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		req.ErrorIs(f.svc.SetTyping("mallory", "room-1", true), errors.ErrForbidden)
	})
}

func TestMessageService_UnreadCounts(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)

	watermark := time.Now().UTC().Add(-time.Hour)
	roomA := memberRoom("room-a", "alice", "bob")
	roomA.Members[1].LastReadAt = watermark
	roomB := memberRoom("room-b", "carol", "bob")

	f.rooms.EXPECT().ListFor("bob", 1, gomock.Any()).Return([]domain.Room{roomA, roomB}, int64(2), nil)
	f.messages.EXPECT().CountUnread("room-a", gomock.Cond(func(at time.Time) bool {
		return at.Equal(watermark)
	}), "bob").Return(int64(3), nil)
	f.messages.EXPECT().CountUnread("room-b", gomock.Any(), "bob").Return(int64(0), nil)

	counts, err := f.svc.UnreadCounts("bob")

	req.NoError(err)
	req.Len(counts, 2)
	req.Equal(UnreadCount{RoomID: "room-a", Count: 3}, counts[0])
	req.Equal(UnreadCount{RoomID: "room-b", Count: 0}, counts[1])
}

func TestMessageService_Search(t *testing.T) {
	room := memberRoom("room-1", "alice", "bob")

	t.Run("should refuse an empty query", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		_, _, err := f.svc.SearchMessages(context.Background(), "bob", "room-1", "", 1, 20)

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should scope the search to members", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, _, err := f.svc.SearchMessages(context.Background(), "mallory", "room-1", "hello", 1, 20)

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should delegate to the index for members", func(t *testing.T) {
		req := require.New(t)
		f := newMessageServiceFixture(t)

		found := []domain.Message{{ID: "msg-1", RoomID: "room-1", Content: "hello"}}
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.messages.EXPECT().
			Search(gomock.Any(), "room-1", "hello", 1, 20).
			Return(found, uint64(1), nil)

		msgs, total, err := f.svc.SearchMessages(context.Background(), "bob", "room-1", "hello", 1, 20)

		req.NoError(err)
		req.Equal(uint64(1), total)
		req.Len(msgs, 1)
	})
}
