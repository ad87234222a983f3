package runtime

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/mocks"
)

type presenceFixture struct {
	registry   *mocks.MockIRegistry
	users      *mocks.MockIUserRepository
	dispatcher *mocks.MockIDispatcher
	presence   *Presence
}

func newPresenceFixture(t *testing.T) presenceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := presenceFixture{
		registry:   mocks.NewMockIRegistry(ctrl),
		users:      mocks.NewMockIUserRepository(ctrl),
		dispatcher: mocks.NewMockIDispatcher(ctrl),
	}
	f.presence = NewPresence(slog.Default(), f.registry, f.users, f.dispatcher)
	return f
}

func TestPresence_SessionEdges(t *testing.T) {
	t.Run("first session flips the user online", func(t *testing.T) {
		f := newPresenceFixture(t)

		f.users.EXPECT().SetStatus("alice", domain.StatusOnline, gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Cond(func(e event.Event) bool {
			status, ok := e.(event.UserStatus)
			return ok && status.UserID == "alice" && status.Status == domain.StatusOnline
		}))

		f.presence.SessionUp("alice", true)
	})

	t.Run("additional sessions are silent", func(t *testing.T) {
		f := newPresenceFixture(t)

		f.users.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		f.presence.SessionUp("alice", false)
	})

	t.Run("last session drop flips the user offline", func(t *testing.T) {
		f := newPresenceFixture(t)

		f.users.EXPECT().SetStatus("alice", domain.StatusOffline, gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.UserStatus{}))

		f.presence.SessionDown("alice", true)
	})

	t.Run("non-final session drop is silent", func(t *testing.T) {
		f := newPresenceFixture(t)

		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		f.presence.SessionDown("alice", false)
	})
}

func TestPresence_SetStatus(t *testing.T) {
	t.Run("a live user may choose away", func(t *testing.T) {
		req := require.New(t)
		f := newPresenceFixture(t)

		f.registry.EXPECT().IsOnline("alice").Return(true)
		f.users.EXPECT().SetStatus("alice", domain.StatusAway, gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.AssignableToTypeOf(event.UserStatus{}))

		req.NoError(f.presence.SetStatus("alice", domain.StatusAway))
	})

	t.Run("offline cannot be chosen explicitly", func(t *testing.T) {
		req := require.New(t)
		f := newPresenceFixture(t)

		err := f.presence.SetStatus("alice", domain.StatusOffline)

		req.ErrorIs(err, errors.ErrInvalidStatus)
	})

	t.Run("a user without live sessions has no status to set", func(t *testing.T) {
		req := require.New(t)
		f := newPresenceFixture(t)

		f.registry.EXPECT().IsOnline("alice").Return(false)

		err := f.presence.SetStatus("alice", domain.StatusBusy)

		req.ErrorIs(err, errors.ErrInvalidStatus)
	})

	t.Run("a failed persist suppresses the event", func(t *testing.T) {
		req := require.New(t)
		f := newPresenceFixture(t)

		f.registry.EXPECT().IsOnline("alice").Return(true)
		f.users.EXPECT().SetStatus("alice", domain.StatusBusy, gomock.Any()).Return(errors.ErrUserNotFound)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		req.NoError(f.presence.SetStatus("alice", domain.StatusBusy))
	})
}
