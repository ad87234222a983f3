// Package domain contains core concepts of the messaging coordinator.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

// Status is the aggregate presence state of a user across all sessions.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOnline, StatusAway, StatusBusy, StatusOffline:
		return Status(s), true
	}
	return "", false
}

// Settable reports whether a user may explicitly request this status.
// Offline is never requested, it is derived from the last session closing.
func (s Status) Settable() bool {
	return s == StatusOnline || s == StatusAway || s == StatusBusy
}

// User is the durable identity record.
// Friend and blocked relationships are id sets, never owning pointers:
// ownership of the referenced User belongs to the store.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	Roles        []string
	Status       Status
	LastSeenAt   time.Time
	FriendIDs    []string
	BlockedIDs   []string
	Active       bool
	CreatedAt    time.Time
}
