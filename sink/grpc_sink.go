package sink

import (
	"context"
	"errors"

	"chat-hub/domain/event"
)

// ErrBufferFull reports that a session's outbound buffer rejected an
// event. The session keeps running; it just missed one notification.
var ErrBufferFull = errors.New("session buffer full")

// Session bridges the fan-out pipeline to one connected stream. Consume
// never blocks the fan-out: a slow consumer loses events instead of
// slowing everyone down.
type Session struct {
	Events chan event.Event
}

func NewSession(bufferSize int) *Session {
	return &Session{Events: make(chan event.Event, bufferSize)}
}

// Consume is called by the fan-out worker. The stream handler drains the
// channel on the other side.
func (s *Session) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}
