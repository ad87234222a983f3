package runtime

import (
	"log/slog"
	"time"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/repositories"
)

// Presence derives a user's aggregate status from their live sessions
// and their explicit choice. Connection edges move between offline and
// online automatically; away and busy are only ever set explicitly and
// survive until the user changes them or the last session drops.
type Presence struct {
	log        *slog.Logger
	registry   contract.IRegistry
	users      repositories.IUserRepository
	dispatcher contract.IDispatcher
}

func NewPresence(log *slog.Logger, registry contract.IRegistry,
	users repositories.IUserRepository, dispatcher contract.IDispatcher) *Presence {
	return &Presence{log: log, registry: registry, users: users, dispatcher: dispatcher}
}

// SessionUp records the offline-to-online edge. Only the first session
// changes the aggregate status; further sessions are silent.
func (p *Presence) SessionUp(userID string, first bool) {
	if !first {
		return
	}
	p.transition(userID, domain.StatusOnline)
}

// SessionDown records the online-to-offline edge when the last session
// drops, stamping the moment as the user's last-seen time.
func (p *Presence) SessionDown(userID string, last bool) {
	if !last {
		return
	}
	p.transition(userID, domain.StatusOffline)
}

// SetStatus applies an explicit status choice. Offline cannot be chosen,
// only disconnecting all sessions produces it, and a user without any
// live session has no status to set.
func (p *Presence) SetStatus(userID string, status domain.Status) error {
	if !status.Settable() {
		return errors.ErrInvalidStatus
	}
	if !p.registry.IsOnline(userID) {
		return errors.ErrInvalidStatus
	}
	p.transition(userID, status)
	return nil
}

func (p *Presence) transition(userID string, status domain.Status) {
	now := time.Now().UTC()
	if err := p.users.SetStatus(userID, status, now); err != nil {
		p.log.Error("Failed to persist presence change", "user_id", userID, "status", status, "error", err)
		return
	}
	p.dispatcher.Dispatch(event.UserStatus{UserID: userID, Status: status, At: now})
}
