package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"chat-hub/contract"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/observability"
	"chat-hub/repositories"
)

// EventFanout delivers domain events to live sessions.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across rooms, durability, or retries. EventFanout is not a
// message broker: the store is the source of truth, events are a
// notification layer.
//
// Room-scoped events reach the room's current members; global events
// (presence) reach every live session. Permanent sinks (metrics, logs)
// receive everything.
type EventFanout struct {
	Log            *slog.Logger
	Events         chan event.Event
	registry       contract.IRegistry
	rooms          repositories.IRoomRepository
	permanentSinks []contract.EventSink
	sinkTimeout    time.Duration
}

func NewEventFanout(log *slog.Logger, events chan event.Event,
	registry contract.IRegistry, rooms repositories.IRoomRepository,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		Log:         log,
		Events:      events,
		registry:    registry,
		rooms:       rooms,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.permanentSinks = append(w.permanentSinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.Events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping event fan-out")
			return nil
		}
	}
}

// Fanout resolves the event's audience and delivers to each sink.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	observability.EventsFannedOut.WithLabelValues(evt.EventName()).Inc()

	sinks := w.resolve(evt)
	sinks = append(sinks, w.permanentSinks...)

	for _, sink := range sinks {
		w.deliver(ctx, sink, evt)
	}
}

func (w *EventFanout) resolve(evt event.Event) []contract.EventSink {
	roomEvt, ok := evt.(event.RoomEvent)
	if !ok {
		// Global event: every live session.
		return w.registry.AllSinks()
	}

	members, err := w.rooms.ResolveMembers(roomEvt.RoomID())
	if err != nil {
		// The room may have vanished between production and fan-out
		// (typing notifications race with room deletion).
		if !stderrors.Is(err, errors.ErrRoomNotFound) {
			w.Log.Error("Failed to resolve event audience", "event", evt.EventName(), "room_id", roomEvt.RoomID(), "error", err)
		}
		return nil
	}
	return w.registry.SinksFor(members, roomEvt.ExcludedUser())
}

func (w *EventFanout) deliver(ctx context.Context, sink contract.EventSink, evt event.Event) {
	deliverCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()

	if err := sink.Consume(deliverCtx, evt); err != nil {
		observability.DeliveriesDropped.Inc()
		w.Log.Debug("Event delivery failed", "event", evt.EventName(), "error", err)
	}
}
