// Package event defines the outbound events produced by the coordinator.
// One explicit type per wire event name; payload fields are validated at
// the boundary before any of these is constructed.
package event

import (
	"time"

	"chat-hub/domain"
)

// Event is anything that can be pushed to a connected session.
type Event interface {
	EventName() string
}

// RoomEvent is an event scoped to the current members of one room.
// ExcludedUser, when non-empty, names a user whose own sessions must not
// receive the event (peer notifications vs self confirmations).
type RoomEvent interface {
	Event
	RoomID() string
	ExcludedUser() string
}

// roomScoped carries the common fan-out scope of room events.
type roomScoped struct {
	Room    string
	Exclude string
}

func (r roomScoped) RoomID() string       { return r.Room }
func (r roomScoped) ExcludedUser() string { return r.Exclude }

// --- message lifecycle ---

type MessageNew struct {
	roomScoped
	Message domain.Message
}

func NewMessageNew(msg domain.Message) MessageNew {
	return MessageNew{roomScoped: roomScoped{Room: msg.RoomID}, Message: msg}
}

func (MessageNew) EventName() string { return "message:new" }

type MessageEdited struct {
	roomScoped
	Message domain.Message
}

func NewMessageEdited(msg domain.Message) MessageEdited {
	return MessageEdited{roomScoped: roomScoped{Room: msg.RoomID}, Message: msg}
}

func (MessageEdited) EventName() string { return "message:edited" }

type MessageDeleted struct {
	roomScoped
	MessageID string
	DeletedBy string
	At        time.Time
}

func NewMessageDeleted(roomID, messageID, deletedBy string, at time.Time) MessageDeleted {
	return MessageDeleted{
		roomScoped: roomScoped{Room: roomID},
		MessageID:  messageID,
		DeletedBy:  deletedBy,
		At:         at,
	}
}

func (MessageDeleted) EventName() string { return "message:deleted" }

type ReactionAdded struct {
	roomScoped
	MessageID string
	UserID    string
	Emoji     string
	Users     []string
}

func NewReactionAdded(roomID, messageID, userID, emoji string, users []string) ReactionAdded {
	return ReactionAdded{
		roomScoped: roomScoped{Room: roomID},
		MessageID:  messageID,
		UserID:     userID,
		Emoji:      emoji,
		Users:      users,
	}
}

func (ReactionAdded) EventName() string { return "message:reaction:added" }

type ReactionRemoved struct {
	roomScoped
	MessageID string
	UserID    string
	Emoji     string
	Users     []string
}

func NewReactionRemoved(roomID, messageID, userID, emoji string, users []string) ReactionRemoved {
	return ReactionRemoved{
		roomScoped: roomScoped{Room: roomID},
		MessageID:  messageID,
		UserID:     userID,
		Emoji:      emoji,
		Users:      users,
	}
}

func (ReactionRemoved) EventName() string { return "message:reaction:removed" }

// MessagesRead notifies other members that ReaderID advanced their
// watermark. The reader's own sessions are excluded.
type MessagesRead struct {
	roomScoped
	ReaderID string
	ReadAt   time.Time
}

func NewMessagesRead(roomID, readerID string, readAt time.Time) MessagesRead {
	return MessagesRead{
		roomScoped: roomScoped{Room: roomID, Exclude: readerID},
		ReaderID:   readerID,
		ReadAt:     readAt,
	}
}

func (MessagesRead) EventName() string { return "messages:read" }

// --- room membership ---

type RoomUserJoined struct {
	roomScoped
	UserID string
	At     time.Time
}

func NewRoomUserJoined(roomID, userID string, at time.Time) RoomUserJoined {
	return RoomUserJoined{roomScoped: roomScoped{Room: roomID}, UserID: userID, At: at}
}

func (RoomUserJoined) EventName() string { return "room:user_joined" }

type RoomUserLeft struct {
	roomScoped
	UserID string
	At     time.Time
}

func NewRoomUserLeft(roomID, userID string, at time.Time) RoomUserLeft {
	return RoomUserLeft{roomScoped: roomScoped{Room: roomID}, UserID: userID, At: at}
}

func (RoomUserLeft) EventName() string { return "room:user_left" }

type RoomMemberAdded struct {
	roomScoped
	UserID  string
	AddedBy string
	Role    domain.Role
	At      time.Time
}

func NewRoomMemberAdded(roomID, userID, addedBy string, role domain.Role, at time.Time) RoomMemberAdded {
	return RoomMemberAdded{
		roomScoped: roomScoped{Room: roomID},
		UserID:     userID,
		AddedBy:    addedBy,
		Role:       role,
		At:         at,
	}
}

func (RoomMemberAdded) EventName() string { return "room:member_added" }

type RoomMemberRemoved struct {
	roomScoped
	UserID    string
	RemovedBy string
	At        time.Time
}

func NewRoomMemberRemoved(roomID, userID, removedBy string, at time.Time) RoomMemberRemoved {
	return RoomMemberRemoved{
		roomScoped: roomScoped{Room: roomID},
		UserID:     userID,
		RemovedBy:  removedBy,
		At:         at,
	}
}

func (RoomMemberRemoved) EventName() string { return "room:member_removed" }

type RoomRoleUpdated struct {
	roomScoped
	UserID    string
	UpdatedBy string
	Role      domain.Role
	At        time.Time
}

func NewRoomRoleUpdated(roomID, userID, updatedBy string, role domain.Role, at time.Time) RoomRoleUpdated {
	return RoomRoleUpdated{
		roomScoped: roomScoped{Room: roomID},
		UserID:     userID,
		UpdatedBy:  updatedBy,
		Role:       role,
		At:         at,
	}
}

func (RoomRoleUpdated) EventName() string { return "room:role_updated" }

// --- ephemeral ---

type TypingStart struct {
	roomScoped
	UserID string
}

func NewTypingStart(roomID, userID string) TypingStart {
	return TypingStart{roomScoped: roomScoped{Room: roomID, Exclude: userID}, UserID: userID}
}

func (TypingStart) EventName() string { return "typing:start" }

type TypingStop struct {
	roomScoped
	UserID string
}

func NewTypingStop(roomID, userID string) TypingStop {
	return TypingStop{roomScoped: roomScoped{Room: roomID, Exclude: userID}, UserID: userID}
}

func (TypingStop) EventName() string { return "typing:stop" }

// --- presence ---

// UserStatus is global: presence is a cross-cutting signal delivered to
// every live session, not a room-scoped one. It deliberately does not
// implement RoomEvent.
type UserStatus struct {
	UserID string
	Status domain.Status
	At     time.Time
}

func (UserStatus) EventName() string { return "user:status" }
