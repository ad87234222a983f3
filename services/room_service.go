package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/repositories"
)

type CreateRoomCommand struct {
	CreatorID string
	Type      domain.RoomType
	Name      string
	MemberIDs []string
	Settings  domain.RoomSettings
}

type IRoomService interface {
	CreateRoom(cmd CreateRoomCommand) (domain.Room, error)
	JoinRoom(userID, roomID string) (domain.Room, error)
	LeaveRoom(userID, roomID string) error
	InviteMember(actorID, roomID, userID string) (domain.Room, error)
	RemoveMember(actorID, roomID, userID string) (domain.Room, error)
	UpdateMemberRole(actorID, roomID, userID string, role domain.Role) (domain.Room, error)
	ListRooms(userID string, page, limit int) ([]domain.Room, int64, error)
	GetRoom(userID, roomID string) (domain.Room, error)
}

type RoomService struct {
	roomRepository    repositories.IRoomRepository
	userRepository    repositories.IUserRepository
	messageRepository repositories.IMessageRepository
	dispatcher        contract.IDispatcher
}

func NewRoomService(rooms repositories.IRoomRepository, users repositories.IUserRepository,
	messages repositories.IMessageRepository, dispatcher contract.IDispatcher) IRoomService {
	return &RoomService{
		roomRepository:    rooms,
		userRepository:    users,
		messageRepository: messages,
		dispatcher:        dispatcher,
	}
}

// CreateRoom builds and persists a room. Direct rooms take exactly one
// other member, are forced private, and creating the same pair twice
// returns the existing room. Group and public rooms start with the
// creator as admin plus any pre-invited members.
func (s *RoomService) CreateRoom(cmd CreateRoomCommand) (domain.Room, error) {
	now := time.Now().UTC()

	memberIDs := lo.Uniq(lo.Without(cmd.MemberIDs, cmd.CreatorID))
	for _, id := range memberIDs {
		user, err := s.userRepository.GetByID(id)
		if err != nil {
			return domain.Room{}, err
		}
		if !user.Active {
			return domain.Room{}, errors.ErrUserNotFound
		}
	}

	switch cmd.Type {
	case domain.RoomDirect:
		if len(memberIDs) != 1 {
			return domain.Room{}, errors.ErrInvalidInput
		}
	case domain.RoomGroup, domain.RoomPublic:
		if cmd.Name == "" {
			return domain.Room{}, errors.ErrInvalidInput
		}
		if cmd.Settings.MaxMembers > 0 && len(memberIDs)+1 > cmd.Settings.MaxMembers {
			return domain.Room{}, errors.ErrRoomFull
		}
	default:
		return domain.Room{}, errors.ErrInvalidInput
	}

	room := domain.Room{
		ID:             uuid.NewString(),
		Type:           cmd.Type,
		Name:           cmd.Name,
		CreatorID:      cmd.CreatorID,
		Settings:       cmd.Settings,
		Active:         true,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	if cmd.Type == domain.RoomDirect {
		// Both ends of a direct room are plain members, nobody moderates.
		room.Settings.Private = true
		room.Members = []domain.Member{
			{UserID: cmd.CreatorID, Role: domain.RoleMember, JoinedAt: now},
			{UserID: memberIDs[0], Role: domain.RoleMember, JoinedAt: now},
		}
		return s.roomRepository.Create(room)
	}

	room.Members = []domain.Member{{UserID: cmd.CreatorID, Role: domain.RoleAdmin, JoinedAt: now}}
	for _, id := range memberIDs {
		room.Members = append(room.Members, domain.Member{UserID: id, Role: domain.RoleMember, JoinedAt: now})
	}
	return s.roomRepository.Create(room)
}

// JoinRoom adds the caller to a self-joinable room.
func (s *RoomService) JoinRoom(userID, roomID string) (domain.Room, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !room.SelfJoinable() {
		return domain.Room{}, errors.ErrForbidden
	}

	now := time.Now().UTC()
	updated, err := s.roomRepository.AddMember(roomID, domain.Member{
		UserID:   userID,
		Role:     domain.RoleMember,
		JoinedAt: now,
	})
	if err != nil {
		return domain.Room{}, err
	}

	s.announce(updated, userID, "joined the room", now)
	s.dispatcher.Dispatch(event.NewRoomUserJoined(roomID, userID, now))
	return updated, nil
}

// LeaveRoom removes the caller from the room. The creator cannot leave:
// CanModerate keys off CreatorID, so a departed creator would keep
// moderation powers over a room they no longer belong to.
func (s *RoomService) LeaveRoom(userID, roomID string) error {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return err
	}
	if userID == room.CreatorID {
		return errors.ErrForbidden
	}

	updated, err := s.roomRepository.RemoveMember(roomID, userID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	s.announce(updated, userID, "left the room", now)
	s.dispatcher.Dispatch(event.NewRoomUserLeft(roomID, userID, now))
	return nil
}

// InviteMember adds someone else to the room. Any member may invite into
// an open room; invite-only rooms restrict inviting to moderators.
func (s *RoomService) InviteMember(actorID, roomID, userID string) (domain.Room, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !room.IsMember(actorID) {
		return domain.Room{}, errors.ErrForbidden
	}
	if room.Settings.InviteOnly && !s.canModerate(room, actorID) {
		return domain.Room{}, errors.ErrForbidden
	}

	user, err := s.userRepository.GetByID(userID)
	if err != nil {
		return domain.Room{}, err
	}
	if !user.Active {
		return domain.Room{}, errors.ErrUserNotFound
	}

	now := time.Now().UTC()
	updated, err := s.roomRepository.AddMember(roomID, domain.Member{
		UserID:   userID,
		Role:     domain.RoleMember,
		JoinedAt: now,
	})
	if err != nil {
		return domain.Room{}, err
	}

	s.dispatcher.Dispatch(event.NewRoomMemberAdded(roomID, userID, actorID, domain.RoleMember, now))
	return updated, nil
}

// RemoveMember ejects a member. Only moderators may do it, and the
// creator can never be removed.
func (s *RoomService) RemoveMember(actorID, roomID, userID string) (domain.Room, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !s.canModerate(room, actorID) {
		return domain.Room{}, errors.ErrForbidden
	}
	if userID == room.CreatorID {
		return domain.Room{}, errors.ErrForbidden
	}

	updated, err := s.roomRepository.RemoveMember(roomID, userID)
	if err != nil {
		return domain.Room{}, err
	}

	s.dispatcher.Dispatch(event.NewRoomMemberRemoved(roomID, userID, actorID, time.Now().UTC()))
	return updated, nil
}

// UpdateMemberRole changes a member's role. The creator's standing is
// immutable: nobody reassigns the creator, not even the creator.
func (s *RoomService) UpdateMemberRole(actorID, roomID, userID string, role domain.Role) (domain.Room, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !s.canModerate(room, actorID) {
		return domain.Room{}, errors.ErrForbidden
	}
	if userID == room.CreatorID {
		return domain.Room{}, errors.ErrForbidden
	}

	updated, err := s.roomRepository.UpdateMemberRole(roomID, userID, role)
	if err != nil {
		return domain.Room{}, err
	}

	s.dispatcher.Dispatch(event.NewRoomRoleUpdated(roomID, userID, actorID, role, time.Now().UTC()))
	return updated, nil
}

func (s *RoomService) ListRooms(userID string, page, limit int) ([]domain.Room, int64, error) {
	return s.roomRepository.ListFor(userID, page, limit)
}

// GetRoom returns the room to one of its members.
func (s *RoomService) GetRoom(userID, roomID string) (domain.Room, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !room.IsMember(userID) && room.Settings.Private {
		return domain.Room{}, errors.ErrForbidden
	}
	return room, nil
}

// canModerate applies the moderation rule consistently: the creator or
// an admin, plus the moderator role for member-level actions.
func (s *RoomService) canModerate(room domain.Room, userID string) bool {
	if room.CanModerate(userID) {
		return true
	}
	member, ok := room.MemberOf(userID)
	return ok && member.Role == domain.RoleModerator
}

// announce drops a system message into the room so the membership change
// is visible in the timeline, then notifies live members.
func (s *RoomService) announce(room domain.Room, userID, action string, at time.Time) {
	display := userID
	if user, err := s.userRepository.GetByID(userID); err == nil {
		display = user.DisplayName
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		SenderID:  userID,
		Type:      domain.MessageSystem,
		Content:   display + " " + action,
		CreatedAt: at,
	}
	if err := s.messageRepository.Store(msg); err != nil {
		return
	}
	_ = s.roomRepository.SetLastMessage(room.ID, msg.ID, at)
	s.dispatcher.Dispatch(event.NewMessageNew(msg))
}
