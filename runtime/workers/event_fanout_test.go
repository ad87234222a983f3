package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/mocks"
)

type fanoutFixture struct {
	registry *mocks.MockIRegistry
	rooms    *mocks.MockIRoomRepository
	worker   *EventFanout
}

func newFanoutFixture(t *testing.T, sinkTimeout time.Duration) fanoutFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fanoutFixture{
		registry: mocks.NewMockIRegistry(ctrl),
		rooms:    mocks.NewMockIRoomRepository(ctrl),
	}
	f.worker = NewEventFanout(slog.Default(), make(chan event.Event, 8),
		f.registry, f.rooms, sinkTimeout)
	return f
}

func newMockSink(t *testing.T) *mocks.MockEventSink {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockEventSink(ctrl)
}

func TestEventFanout_RoomEventReachesMembers(t *testing.T) {
	f := newFanoutFixture(t, time.Second)
	memberSink := newMockSink(t)
	permanentSink := newMockSink(t)
	f.worker.Add(permanentSink)

	evt := event.NewMessageNew(domain.Message{ID: "msg-1", RoomID: "room-1", SenderID: "alice"})

	f.rooms.EXPECT().ResolveMembers("room-1").Return([]string{"alice", "bob"}, nil)
	f.registry.EXPECT().
		SinksFor([]string{"alice", "bob"}, "").
		Return([]contract.EventSink{memberSink})

	// Both the live member and the permanent sink see the event
	memberSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	permanentSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	f.worker.Fanout(context.Background(), evt)
}

func TestEventFanout_TypingExcludesTheTypist(t *testing.T) {
	f := newFanoutFixture(t, time.Second)

	evt := event.NewTypingStart("room-1", "alice")

	f.rooms.EXPECT().ResolveMembers("room-1").Return([]string{"alice", "bob"}, nil)
	f.registry.EXPECT().
		SinksFor([]string{"alice", "bob"}, "alice").
		Return(nil)

	f.worker.Fanout(context.Background(), evt)
}

func TestEventFanout_GlobalEventReachesEverySession(t *testing.T) {
	f := newFanoutFixture(t, time.Second)
	sink1 := newMockSink(t)
	sink2 := newMockSink(t)

	evt := event.UserStatus{UserID: "alice", Status: domain.StatusOnline, At: time.Now().UTC()}

	// Presence is not room-scoped: the audience is every live session
	f.registry.EXPECT().AllSinks().Return([]contract.EventSink{sink1, sink2})
	sink1.EXPECT().Consume(gomock.Any(), evt).Return(nil)
	sink2.EXPECT().Consume(gomock.Any(), evt).Return(nil)

	f.worker.Fanout(context.Background(), evt)
}

func TestEventFanout_VanishedRoomIsDroppedSilently(t *testing.T) {
	f := newFanoutFixture(t, time.Second)
	permanentSink := newMockSink(t)
	f.worker.Add(permanentSink)

	evt := event.NewTypingStart("gone-room", "alice")

	// The room disappeared between production and fan-out
	f.rooms.EXPECT().ResolveMembers("gone-room").Return(nil, errors.ErrRoomNotFound)

	// Permanent sinks still observe the event
	permanentSink.EXPECT().Consume(gomock.Any(), evt).Return(nil)

	f.worker.Fanout(context.Background(), evt)
}

func TestEventFanout_SlowSinkIsCutOff(t *testing.T) {
	req := require.New(t)
	f := newFanoutFixture(t, 20*time.Millisecond)
	slowSink := newMockSink(t)

	evt := event.UserStatus{UserID: "alice", Status: domain.StatusAway, At: time.Now().UTC()}

	f.registry.EXPECT().AllSinks().Return([]contract.EventSink{slowSink})
	slowSink.EXPECT().
		Consume(gomock.Any(), evt).
		DoAndReturn(func(ctx context.Context, e event.Event) error {
			<-ctx.Done() // Waiting for the timeout to trigger cancellation
			return ctx.Err()
		})

	start := time.Now()
	f.worker.Fanout(context.Background(), evt)

	// The slow sink stalled the fan-out for the timeout, not forever
	req.Less(time.Since(start), 500*time.Millisecond)
}

func TestEventFanout_RunStopsOnContextDone(t *testing.T) {
	req := require.New(t)
	f := newFanoutFixture(t, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = f.worker.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Fan-out worker should stop when the context is canceled")
	}
}
