package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-hub/domain"
	"chat-hub/errors"
)

func newRoomRepository(t *testing.T) *RoomRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRoomRepository(db, slog.Default())
}

func groupRoom(creatorID string, memberIDs ...string) domain.Room {
	at := time.Now().UTC()
	members := []domain.Member{{UserID: creatorID, Role: domain.RoleAdmin, JoinedAt: at}}
	for _, id := range memberIDs {
		members = append(members, domain.Member{UserID: id, Role: domain.RoleMember, JoinedAt: at})
	}
	return domain.Room{
		ID:             uuid.NewString(),
		Type:           domain.RoomGroup,
		Name:           "planning",
		CreatorID:      creatorID,
		Members:        members,
		Active:         true,
		CreatedAt:      at,
		LastActivityAt: at,
	}
}

func directRoom(userA, userB string) domain.Room {
	at := time.Now().UTC()
	return domain.Room{
		ID:        uuid.NewString(),
		Type:      domain.RoomDirect,
		CreatorID: userA,
		Members: []domain.Member{
			{UserID: userA, Role: domain.RoleMember, JoinedAt: at},
			{UserID: userB, Role: domain.RoleMember, JoinedAt: at},
		},
		Settings:       domain.RoomSettings{Private: true},
		Active:         true,
		CreatedAt:      at,
		LastActivityAt: at,
	}
}

func Test_Create_And_Get_Room(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	room := groupRoom("alice", "bob")
	created, err := repository.Create(room)
	req.NoError(err)
	req.Equal(room.ID, created.ID)

	fetched, err := repository.Get(room.ID)
	req.NoError(err)
	req.Equal(room.Name, fetched.Name)
	req.Len(fetched.Members, 2)

	_, err = repository.Get("missing")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func Test_Direct_Room_Unique_Per_Pair(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	first, err := repository.Create(directRoom("alice", "bob"))
	req.NoError(err)

	// Same pair in reverse order resolves to the existing room.
	second, err := repository.Create(directRoom("bob", "alice"))
	req.NoError(err)
	req.Equal(first.ID, second.ID)

	other, err := repository.Create(directRoom("alice", "clara"))
	req.NoError(err)
	req.NotEqual(first.ID, other.ID)
}

func Test_Add_Member_Honors_Cap_And_Duplicates(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	room := groupRoom("alice", "bob")
	room.Settings.MaxMembers = 3
	_, err := repository.Create(room)
	req.NoError(err)

	_, err = repository.AddMember(room.ID, domain.Member{UserID: "bob", Role: domain.RoleMember, JoinedAt: time.Now().UTC()})
	req.ErrorIs(err, errors.ErrMemberAlreadyExists)

	updated, err := repository.AddMember(room.ID, domain.Member{UserID: "clara", Role: domain.RoleMember, JoinedAt: time.Now().UTC()})
	req.NoError(err)
	req.Len(updated.Members, 3)

	_, err = repository.AddMember(room.ID, domain.Member{UserID: "dave", Role: domain.RoleMember, JoinedAt: time.Now().UTC()})
	req.ErrorIs(err, errors.ErrRoomFull)
}

func Test_Remove_Member_And_Update_Role(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	room := groupRoom("alice", "bob", "clara")
	_, err := repository.Create(room)
	req.NoError(err)

	updated, err := repository.UpdateMemberRole(room.ID, "bob", domain.RoleModerator)
	req.NoError(err)
	member, ok := updated.MemberOf("bob")
	req.True(ok)
	req.Equal(domain.RoleModerator, member.Role)

	updated, err = repository.RemoveMember(room.ID, "clara")
	req.NoError(err)
	req.False(updated.IsMember("clara"))

	_, err = repository.RemoveMember(room.ID, "clara")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Watermark_Only_Advances(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	room := groupRoom("alice", "bob")
	_, err := repository.Create(room)
	req.NoError(err)

	later := time.Now().UTC().Add(time.Hour)
	effective, err := repository.AdvanceWatermark(room.ID, "bob", later)
	req.NoError(err)
	req.Equal(later.UnixNano(), effective.UnixNano())

	// An older timestamp never moves the watermark backwards.
	effective, err = repository.AdvanceWatermark(room.ID, "bob", later.Add(-time.Minute))
	req.NoError(err)
	req.Equal(later.UnixNano(), effective.UnixNano())

	_, err = repository.AdvanceWatermark(room.ID, "stranger", later)
	req.ErrorIs(err, errors.ErrForbidden)
}

func Test_List_Rooms_For_Member_By_Activity(t *testing.T) {
	req := require.New(t)
	repository := newRoomRepository(t)

	quiet := groupRoom("alice", "bob")
	busy := groupRoom("alice", "bob")
	stranger := groupRoom("clara")
	for _, room := range []domain.Room{quiet, busy, stranger} {
		_, err := repository.Create(room)
		req.NoError(err)
	}
	req.NoError(repository.SetLastMessage(busy.ID, uuid.NewString(), time.Now().UTC().Add(time.Hour)))

	rooms, total, err := repository.ListFor("bob", 1, 10)
	req.NoError(err)
	req.Equal(int64(2), total)
	req.Len(rooms, 2)
	req.Equal(busy.ID, rooms[0].ID)
	req.Equal(quiet.ID, rooms[1].ID)
}
