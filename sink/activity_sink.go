package sink

import (
	"context"
	"log/slog"

	"chat-hub/domain/event"
)

// Activity is a permanent sink that writes every event to the log.
// Useful in development and as an audit trail; it never fails.
type Activity struct {
	log *slog.Logger
}

func NewActivity(log *slog.Logger) *Activity {
	return &Activity{log: log}
}

func (a *Activity) Consume(_ context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.MessageNew:
		a.log.Debug("Activity", "event", e.EventName(), "room_id", evt.RoomID(), "sender_id", evt.Message.SenderID)
	case event.UserStatus:
		a.log.Debug("Activity", "event", e.EventName(), "user_id", evt.UserID, "status", evt.Status)
	default:
		if scoped, ok := e.(event.RoomEvent); ok {
			a.log.Debug("Activity", "event", e.EventName(), "room_id", scoped.RoomID())
		} else {
			a.log.Debug("Activity", "event", e.EventName())
		}
	}
	return nil
}
