package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-hub/domain"
	"chat-hub/domain/event"
)

func TestSession_Consume(t *testing.T) {
	req := require.New(t)
	session := NewSession(2)

	first := event.NewTypingStart("room-1", "alice")
	second := event.NewTypingStop("room-1", "alice")

	req.NoError(session.Consume(context.Background(), first))
	req.NoError(session.Consume(context.Background(), second))

	req.Equal(first, <-session.Events)
	req.Equal(second, <-session.Events)
}

func TestSession_Consume_BufferFull(t *testing.T) {
	req := require.New(t)
	session := NewSession(1)

	req.NoError(session.Consume(context.Background(), event.NewTypingStart("room-1", "alice")))

	// Nobody drains: the second event is dropped, never blocked on
	err := session.Consume(context.Background(), event.NewTypingStop("room-1", "alice"))
	req.ErrorIs(err, ErrBufferFull)

	// The session itself stays usable
	<-session.Events
	req.NoError(session.Consume(context.Background(), event.NewTypingStart("room-1", "bob")))
}

func TestSession_Consume_NeverBlocks(t *testing.T) {
	req := require.New(t)
	session := NewSession(0)

	evt := event.UserStatus{UserID: "alice", Status: domain.StatusOnline, At: time.Now().UTC()}

	done := make(chan error, 1)
	go func() {
		done <- session.Consume(context.Background(), evt)
	}()

	select {
	case err := <-done:
		req.ErrorIs(err, ErrBufferFull)
	case <-time.After(200 * time.Millisecond):
		req.Fail("Consume must not block the fan-out")
	}
}
