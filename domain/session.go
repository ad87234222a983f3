package domain

import "time"

// Session is one authenticated live connection belonging to a user.
// A user may hold several simultaneously (multi-device). Sessions carry
// no durable state and do not survive a process restart.
type Session struct {
	ID          string
	UserID      string
	ConnectedAt time.Time
}
