package domain

import (
	"strings"
	"time"
)

// RoomType is a closed enumeration; a direct room always has exactly
// two members and is unique per unordered user pair.
type RoomType string

const (
	RoomDirect RoomType = "direct"
	RoomGroup  RoomType = "group"
	RoomPublic RoomType = "public"
)

func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(s) {
	case RoomDirect, RoomGroup, RoomPublic:
		return RoomType(s), true
	}
	return "", false
}

// Role of a member inside a room.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleMember:
		return Role(s), true
	}
	return "", false
}

// Member is a room membership record. LastReadAt is the read watermark:
// everything created at or before it counts as read for this member.
type Member struct {
	UserID     string
	Role       Role
	JoinedAt   time.Time
	LastReadAt time.Time
}

type RoomSettings struct {
	Private    bool
	InviteOnly bool
	MaxMembers int
}

type Room struct {
	ID             string
	Type           RoomType
	Name           string
	CreatorID      string
	Members        []Member
	Settings       RoomSettings
	LastMessageID  string
	LastActivityAt time.Time
	Active         bool
	CreatedAt      time.Time
}

// MemberOf returns the membership record for userID, if any.
func (r *Room) MemberOf(userID string) (Member, bool) {
	for _, m := range r.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}

func (r *Room) IsMember(userID string) bool {
	_, ok := r.MemberOf(userID)
	return ok
}

// CanModerate reports whether userID may act on other members' content:
// the room creator or any member holding the admin role.
func (r *Room) CanModerate(userID string) bool {
	if userID == r.CreatorID {
		return true
	}
	m, ok := r.MemberOf(userID)
	return ok && m.Role == RoleAdmin
}

// SelfJoinable reports whether a non-member may add themselves.
// Only public, non-private, non-invite-only rooms allow it.
func (r *Room) SelfJoinable() bool {
	return r.Type == RoomPublic && !r.Settings.Private && !r.Settings.InviteOnly
}

// Full reports whether the member cap has been reached.
func (r *Room) Full() bool {
	return r.Settings.MaxMembers > 0 && len(r.Members) >= r.Settings.MaxMembers
}

// MemberIDs returns the ids of all current members.
func (r *Room) MemberIDs() []string {
	ids := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// DirectPairKey builds the uniqueness key for a direct room between two
// users. The pair is unordered: both argument orders yield the same key.
func DirectPairKey(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}
