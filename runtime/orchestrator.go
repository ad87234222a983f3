// Package runtime handles session registration, presence transitions and
// event propagation. It orchestrates the system without containing
// business logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/observability"
	"chat-hub/repositories"
	"chat-hub/runtime/workers"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	presence       *Presence
	rooms          repositories.IRoomRepository
	events         chan event.Event
	permanentSinks []contract.EventSink
	sinkTimeout    time.Duration
	started        bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, users repositories.IUserRepository,
	rooms repositories.IRoomRepository, bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	o := &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		rooms:       rooms,
		events:      make(chan event.Event, bufferSize),
		sinkTimeout: sinkTimeout,
	}
	o.presence = NewPresence(log, registry, users, o)
	return o
}

// Add registers permanent sinks that receive every event regardless of
// audience. Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch hands an event to the fan-out pipeline. Best-effort: a full
// pipeline drops the event rather than blocking the producer.
func (o *Orchestrator) Dispatch(e event.Event) {
	select {
	case o.events <- e:
	default:
		observability.EventsDropped.Inc()
		o.log.Warn("Event pipeline full, dropping event", "event", e.EventName())
	}
}

// RegisterSession attaches a live session's sink and runs the presence
// edge when this is the user's first session.
func (o *Orchestrator) RegisterSession(sess domain.Session, sink contract.EventSink) {
	first := o.registry.Register(sess.UserID, sess.ID, sink)
	observability.ActiveSessions.Inc()
	observability.SessionsTotal.Inc()
	o.presence.SessionUp(sess.UserID, first)
	o.log.Info("Session registered", "user_id", sess.UserID, "session_id", sess.ID, "first", first)
}

// UnregisterSession detaches a session and runs the presence edge when
// it was the user's last one.
func (o *Orchestrator) UnregisterSession(sess domain.Session) {
	last := o.registry.Unregister(sess.UserID, sess.ID)
	observability.ActiveSessions.Dec()
	o.presence.SessionDown(sess.UserID, last)
	o.log.Info("Session unregistered", "user_id", sess.UserID, "session_id", sess.ID, "last", last)
}

// SetStatus applies an explicit presence choice for a connected user.
func (o *Orchestrator) SetStatus(userID string, status domain.Status) error {
	return o.presence.SetStatus(userID, status)
}

// Start wires the fan-out worker under the supervisor and blocks until
// Stop is called. Run it in its own goroutine.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return
	}
	o.started = true

	fanout := workers.NewEventFanout(o.log, o.events, o.registry, o.rooms, o.sinkTimeout)
	fanout.Add(o.permanentSinks...)
	o.supervisor.Add(fanout)
	o.mu.Unlock()

	o.supervisor.Run(ctx)
}

// Stop cancels the supervised workers; Start returns once they finish.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
