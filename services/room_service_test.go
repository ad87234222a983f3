package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/mocks"
)

type roomServiceFixture struct {
	rooms      *mocks.MockIRoomRepository
	users      *mocks.MockIUserRepository
	messages   *mocks.MockIMessageRepository
	dispatcher *mocks.MockIDispatcher
	svc        IRoomService
}

func newRoomServiceFixture(t *testing.T) roomServiceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := roomServiceFixture{
		rooms:      mocks.NewMockIRoomRepository(ctrl),
		users:      mocks.NewMockIUserRepository(ctrl),
		messages:   mocks.NewMockIMessageRepository(ctrl),
		dispatcher: mocks.NewMockIDispatcher(ctrl),
	}
	f.svc = NewRoomService(f.rooms, f.users, f.messages, f.dispatcher)
	return f
}

func activeUser(id string) domain.User {
	return domain.User{ID: id, Username: id, DisplayName: id, Active: true}
}

func TestRoomService_CreateRoom(t *testing.T) {
	t.Run("should create a group room with the creator as admin", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.users.EXPECT().GetByID("bob").Return(activeUser("bob"), nil)
		f.rooms.EXPECT().
			Create(gomock.Cond(func(r domain.Room) bool {
				creator, ok := r.MemberOf("alice")
				return ok && creator.Role == domain.RoleAdmin && r.IsMember("bob")
			})).
			DoAndReturn(func(r domain.Room) (domain.Room, error) { return r, nil })

		room, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomGroup,
			Name:      "planning",
			MemberIDs: []string{"bob"},
		})

		req.NoError(err)
		req.Equal("alice", room.CreatorID)
		req.Len(room.Members, 2)
	})

	t.Run("should force direct rooms private with both ends as plain members", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.users.EXPECT().GetByID("bob").Return(activeUser("bob"), nil)
		f.rooms.EXPECT().
			Create(gomock.Cond(func(r domain.Room) bool {
				a, _ := r.MemberOf("alice")
				b, _ := r.MemberOf("bob")
				return r.Settings.Private && a.Role == domain.RoleMember && b.Role == domain.RoleMember
			})).
			DoAndReturn(func(r domain.Room) (domain.Room, error) { return r, nil })

		_, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomDirect,
			MemberIDs: []string{"bob"},
		})

		req.NoError(err)
	})

	t.Run("should reject a direct room without exactly one other member", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.users.EXPECT().GetByID(gomock.Any()).Return(activeUser("x"), nil).AnyTimes()
		f.rooms.EXPECT().Create(gomock.Any()).Times(0)

		_, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomDirect,
			MemberIDs: []string{"bob", "carol"},
		})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should reject a group room without a name", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		_, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomGroup,
		})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should enforce the member cap at creation", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.users.EXPECT().GetByID(gomock.Any()).Return(activeUser("x"), nil).AnyTimes()

		_, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomGroup,
			Name:      "tiny",
			MemberIDs: []string{"bob", "carol"},
			Settings:  domain.RoomSettings{MaxMembers: 2},
		})

		req.ErrorIs(err, errors.ErrRoomFull)
	})

	t.Run("should refuse deactivated members", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		gone := activeUser("bob")
		gone.Active = false
		f.users.EXPECT().GetByID("bob").Return(gone, nil)

		_, err := f.svc.CreateRoom(CreateRoomCommand{
			CreatorID: "alice",
			Type:      domain.RoomDirect,
			MemberIDs: []string{"bob"},
		})

		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestRoomService_JoinRoom(t *testing.T) {
	openRoom := domain.Room{
		ID:        "room-1",
		Type:      domain.RoomPublic,
		Name:      "lobby",
		CreatorID: "alice",
		Members:   []domain.Member{{UserID: "alice", Role: domain.RoleAdmin}},
		Active:    true,
	}

	t.Run("should join a public room, announce it and fan out the event", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		joined := openRoom
		joined.Members = append(joined.Members, domain.Member{UserID: "bob", Role: domain.RoleMember})

		f.rooms.EXPECT().Get("room-1").Return(openRoom, nil)
		f.rooms.EXPECT().
			AddMember("room-1", gomock.Cond(func(m domain.Member) bool {
				return m.UserID == "bob" && m.Role == domain.RoleMember
			})).
			Return(joined, nil)

		// System message in the timeline plus a live event.
		f.users.EXPECT().GetByID("bob").Return(activeUser("bob"), nil)
		f.messages.EXPECT().
			Store(gomock.Cond(func(m domain.Message) bool {
				return m.RoomID == "room-1" && m.Type == domain.MessageSystem
			})).
			Return(nil)
		f.rooms.EXPECT().SetLastMessage("room-1", gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.MessageNew{}))
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.RoomUserJoined{}))

		room, err := f.svc.JoinRoom("bob", "room-1")

		req.NoError(err)
		req.True(room.IsMember("bob"))
	})

	t.Run("should refuse to self-join a private room", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		private := openRoom
		private.Settings.Private = true

		f.rooms.EXPECT().Get("room-1").Return(private, nil)

		_, err := f.svc.JoinRoom("bob", "room-1")

		req.ErrorIs(err, errors.ErrForbidden)
	})
}

func TestRoomService_Moderation(t *testing.T) {
	room := domain.Room{
		ID:        "room-1",
		Type:      domain.RoomGroup,
		Name:      "planning",
		CreatorID: "alice",
		Members: []domain.Member{
			{UserID: "alice", Role: domain.RoleAdmin},
			{UserID: "bob", Role: domain.RoleMember},
			{UserID: "carol", Role: domain.RoleMember},
		},
		Active: true,
	}

	t.Run("should let an admin remove a member", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		after := room
		after.Members = room.Members[:2]

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.rooms.EXPECT().RemoveMember("room-1", "carol").Return(after, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.RoomMemberRemoved{}))

		updated, err := f.svc.RemoveMember("alice", "room-1", "carol")

		req.NoError(err)
		req.False(updated.IsMember("carol"))
	})

	t.Run("should refuse removal by a plain member", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.RemoveMember("bob", "room-1", "carol")

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should never remove the creator", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.RemoveMember("alice", "room-1", "alice")

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should never reassign the creator's role", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(room, nil)

		_, err := f.svc.UpdateMemberRole("alice", "room-1", "alice", domain.RoleMember)

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should promote a member to moderator", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		after := room
		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.rooms.EXPECT().UpdateMemberRole("room-1", "bob", domain.RoleModerator).Return(after, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.RoomRoleUpdated{}))

		_, err := f.svc.UpdateMemberRole("alice", "room-1", "bob", domain.RoleModerator)

		req.NoError(err)
	})

	t.Run("should restrict inviting into invite-only rooms to moderators", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		restricted := room
		restricted.Settings.InviteOnly = true

		f.rooms.EXPECT().Get("room-1").Return(restricted, nil)

		_, err := f.svc.InviteMember("bob", "room-1", "dave")

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should let any member invite into an open room", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		after := room
		after.Members = append(after.Members, domain.Member{UserID: "dave", Role: domain.RoleMember})

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.users.EXPECT().GetByID("dave").Return(activeUser("dave"), nil)
		f.rooms.EXPECT().AddMember("room-1", gomock.Any()).Return(after, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.RoomMemberAdded{}))

		updated, err := f.svc.InviteMember("bob", "room-1", "dave")

		req.NoError(err)
		req.True(updated.IsMember("dave"))
	})
}

func TestRoomService_GetRoom(t *testing.T) {
	privateRoom := domain.Room{
		ID:        "room-1",
		Type:      domain.RoomGroup,
		CreatorID: "alice",
		Members:   []domain.Member{{UserID: "alice", Role: domain.RoleAdmin}},
		Settings:  domain.RoomSettings{Private: true},
	}

	t.Run("should hide private rooms from strangers", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(privateRoom, nil)

		_, err := f.svc.GetRoom("mallory", "room-1")

		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should return the room to a member", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		f.rooms.EXPECT().Get("room-1").Return(privateRoom, nil)

		room, err := f.svc.GetRoom("alice", "room-1")

		req.NoError(err)
		req.Equal("room-1", room.ID)
	})
}

func TestRoomService_LeaveRoom(t *testing.T) {
	room := domain.Room{
		ID:        "room-1",
		Type:      domain.RoomGroup,
		CreatorID: "alice",
		Members: []domain.Member{
			{UserID: "alice", Role: domain.RoleAdmin},
			{UserID: "bob", Role: domain.RoleMember},
		},
	}

	t.Run("should let a member leave, announce it and fan out the event", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		after := room
		after.Members = room.Members[:1]

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.rooms.EXPECT().RemoveMember("room-1", "bob").Return(after, nil)
		f.users.EXPECT().GetByID("bob").Return(activeUser("bob"), nil)
		f.messages.EXPECT().Store(gomock.Any()).Return(nil)
		f.rooms.EXPECT().SetLastMessage("room-1", gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.MessageNew{}))
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.RoomUserLeft{}))

		req.NoError(f.svc.LeaveRoom("bob", "room-1"))
	})

	t.Run("should refuse the creator leaving their own room", func(t *testing.T) {
		req := require.New(t)
		f := newRoomServiceFixture(t)

		// A creator outside the member list would still pass CanModerate,
		// so the only safe answer is to keep them in.
		departed := room
		departed.Members = room.Members[1:]
		req.False(departed.IsMember("alice"))
		req.True(departed.CanModerate("alice"))

		f.rooms.EXPECT().Get("room-1").Return(room, nil)
		f.rooms.EXPECT().RemoveMember(gomock.Any(), gomock.Any()).Times(0)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		req.ErrorIs(f.svc.LeaveRoom("alice", "room-1"), errors.ErrForbidden)
	})
}
