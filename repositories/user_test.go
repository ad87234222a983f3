package repositories

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-hub/domain"
	"chat-hub/errors"
)

func newUserRepository(t *testing.T) *UserRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db)
}

func Test_Create_And_Lookup_User(t *testing.T) {
	req := require.New(t)
	repository := newUserRepository(t)

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     "alice",
		DisplayName:  "Alice",
		PasswordHash: "not-a-real-hash",
		Roles:        []string{"user"},
		Status:       domain.StatusOffline,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	req.NoError(repository.Create(user))

	byID, err := repository.GetByID(user.ID)
	req.NoError(err)
	req.Equal(user.Username, byID.Username)

	byName, err := repository.GetByUsername("alice")
	req.NoError(err)
	req.Equal(user.ID, byName.ID)

	_, err = repository.GetByUsername("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Username_Is_Unique(t *testing.T) {
	req := require.New(t)
	repository := newUserRepository(t)

	first := domain.User{ID: uuid.NewString(), Username: "alice", Active: true}
	req.NoError(repository.Create(first))

	second := domain.User{ID: uuid.NewString(), Username: "alice", Active: true}
	req.ErrorIs(repository.Create(second), errors.ErrUserAlreadyExists)

	// The original record must be untouched.
	kept, err := repository.GetByUsername("alice")
	req.NoError(err)
	req.Equal(first.ID, kept.ID)
}

func Test_Set_Status_Keeps_Other_Fields(t *testing.T) {
	req := require.New(t)
	repository := newUserRepository(t)

	user := domain.User{
		ID:          uuid.NewString(),
		Username:    "alice",
		DisplayName: "Alice",
		Status:      domain.StatusOffline,
		Active:      true,
	}
	req.NoError(repository.Create(user))

	seen := time.Now().UTC()
	req.NoError(repository.SetStatus(user.ID, domain.StatusAway, seen))

	updated, err := repository.GetByID(user.ID)
	req.NoError(err)
	req.Equal(domain.StatusAway, updated.Status)
	req.Equal(seen.UnixNano(), updated.LastSeenAt.UnixNano())
	req.Equal("Alice", updated.DisplayName)
}

func Test_Deactivate_User(t *testing.T) {
	req := require.New(t)
	repository := newUserRepository(t)

	user := domain.User{ID: uuid.NewString(), Username: "alice", Active: true}
	req.NoError(repository.Create(user))
	req.NoError(repository.Deactivate(user.ID))

	updated, err := repository.GetByID(user.ID)
	req.NoError(err)
	req.False(updated.Active)
}
