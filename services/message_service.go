package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/moderation"
	"chat-hub/observability"
	"chat-hub/repositories"
)

// maxRoomsPerUser bounds the room scan when aggregating unread counts.
const maxRoomsPerUser = 1024

type SendMessageCommand struct {
	SenderID   string
	RoomID     string
	Type       domain.MessageType
	Content    string
	Attachment *domain.Attachment
}

type UnreadCount struct {
	RoomID string
	Count  int64
}

type IMessageService interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (domain.Message, error)
	EditMessage(editorID, messageID, newContent string) (domain.Message, error)
	DeleteMessage(actorID, messageID string) error
	AddReaction(userID, messageID, emoji string) (domain.Message, error)
	RemoveReaction(userID, messageID, emoji string) (domain.Message, error)
	MarkRead(userID, roomID string, messageIDs []string) (time.Time, error)
	SetTyping(userID, roomID string, typing bool) error
	ListMessages(userID, roomID string, page, limit int) ([]domain.Message, int64, error)
	SearchMessages(ctx context.Context, userID, roomID, query string, page, limit int) ([]domain.Message, uint64, error)
	UnreadCounts(userID string) ([]UnreadCount, error)
}

type MessageService struct {
	messageRepository repositories.IMessageRepository
	roomRepository    repositories.IRoomRepository
	moderator         *moderation.Moderator
	dispatcher        contract.IDispatcher
}

func NewMessageService(messages repositories.IMessageRepository,
	rooms repositories.IRoomRepository, moderator *moderation.Moderator,
	dispatcher contract.IDispatcher) IMessageService {
	return &MessageService{
		messageRepository: messages,
		roomRepository:    rooms,
		moderator:         moderator,
		dispatcher:        dispatcher,
	}
}

// SendMessage validates, censors, persists and fans out a new message,
// in that order. Fan-out only ever sees stored messages, so a consumer
// can always fetch what it was notified about.
func (s *MessageService) SendMessage(ctx context.Context, cmd SendMessageCommand) (domain.Message, error) {
	room, err := s.roomRepository.Get(cmd.RoomID)
	if err != nil {
		return domain.Message{}, err
	}
	if !room.IsMember(cmd.SenderID) {
		return domain.Message{}, errors.ErrForbidden
	}

	if cmd.Type == "" {
		cmd.Type = domain.MessageText
	}
	if _, ok := domain.ParseMessageType(string(cmd.Type)); !ok || cmd.Type == domain.MessageSystem {
		return domain.Message{}, errors.ErrInvalidInput
	}
	// Attachment messages may omit the caption; text may not.
	if cmd.Type == domain.MessageText && !domain.ValidContent(cmd.Content) {
		return domain.Message{}, errors.ErrInvalidInput
	}
	if cmd.Type != domain.MessageText {
		if cmd.Attachment == nil {
			return domain.Message{}, errors.ErrInvalidInput
		}
		if cmd.Content != "" && !domain.ValidContent(cmd.Content) {
			return domain.Message{}, errors.ErrInvalidInput
		}
	}

	msg := domain.Message{
		ID:         uuid.NewString(),
		RoomID:     cmd.RoomID,
		SenderID:   cmd.SenderID,
		Type:       cmd.Type,
		Content:    s.censor(cmd.Content),
		Attachment: cmd.Attachment,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messageRepository.Store(msg); err != nil {
		return domain.Message{}, err
	}
	observability.MessagesStored.Inc()

	if err := s.roomRepository.SetLastMessage(room.ID, msg.ID, msg.CreatedAt); err != nil {
		return domain.Message{}, err
	}

	s.dispatcher.Dispatch(event.NewMessageNew(msg))
	return msg, nil
}

// EditMessage rewrites a message's content. Ownership, the edit window
// and the deleted flag are all enforced at the store so a stale read
// cannot bypass them.
func (s *MessageService) EditMessage(editorID, messageID, newContent string) (domain.Message, error) {
	if !domain.ValidContent(newContent) {
		return domain.Message{}, errors.ErrInvalidInput
	}

	updated, err := s.messageRepository.ApplyEdit(messageID, editorID, s.censor(newContent), time.Now().UTC())
	if err != nil {
		return domain.Message{}, err
	}

	s.dispatcher.Dispatch(event.NewMessageEdited(updated))
	return updated, nil
}

// DeleteMessage soft-deletes. The sender may always delete their own
// message; moderators may delete anyone's.
func (s *MessageService) DeleteMessage(actorID, messageID string) error {
	msg, err := s.messageRepository.GetByID(messageID)
	if err != nil {
		return err
	}

	if msg.SenderID != actorID {
		room, err := s.roomRepository.Get(msg.RoomID)
		if err != nil {
			return err
		}
		if !s.roomModerator(room, actorID) {
			return errors.ErrForbidden
		}
	}

	now := time.Now().UTC()
	deleted, err := s.messageRepository.ApplyDelete(messageID, actorID, now)
	if err != nil {
		return err
	}

	s.dispatcher.Dispatch(event.NewMessageDeleted(deleted.RoomID, deleted.ID, actorID, now))
	return nil
}

// AddReaction toggles a reaction on. Repeating it is a no-op and fans
// out nothing.
func (s *MessageService) AddReaction(userID, messageID, emoji string) (domain.Message, error) {
	if emoji == "" {
		return domain.Message{}, errors.ErrInvalidInput
	}
	if err := s.requireReactionAccess(userID, messageID); err != nil {
		return domain.Message{}, err
	}

	updated, changed, err := s.messageRepository.AddReaction(messageID, userID, emoji)
	if err != nil {
		return domain.Message{}, err
	}
	if changed {
		s.dispatcher.Dispatch(event.NewReactionAdded(updated.RoomID, updated.ID, userID, emoji, updated.Reactions[emoji]))
	}
	return updated, nil
}

func (s *MessageService) RemoveReaction(userID, messageID, emoji string) (domain.Message, error) {
	if emoji == "" {
		return domain.Message{}, errors.ErrInvalidInput
	}
	if err := s.requireReactionAccess(userID, messageID); err != nil {
		return domain.Message{}, err
	}

	updated, changed, err := s.messageRepository.RemoveReaction(messageID, userID, emoji)
	if err != nil {
		return domain.Message{}, err
	}
	if changed {
		s.dispatcher.Dispatch(event.NewReactionRemoved(updated.RoomID, updated.ID, userID, emoji, updated.Reactions[emoji]))
	}
	return updated, nil
}

// MarkRead stamps receipts on the given messages and advances the
// reader's watermark to the newest of them. An empty id list means
// "everything up to now". Returns the effective watermark.
func (s *MessageService) MarkRead(userID, roomID string, messageIDs []string) (time.Time, error) {
	now := time.Now().UTC()

	watermark := now
	if len(messageIDs) > 0 {
		newest := time.Time{}
		for _, id := range messageIDs {
			msg, err := s.messageRepository.GetByID(id)
			if err != nil {
				if stderrors.Is(err, errors.ErrMessageNotFound) {
					continue
				}
				return time.Time{}, err
			}
			if msg.RoomID != roomID {
				return time.Time{}, errors.ErrInvalidInput
			}
			if msg.CreatedAt.After(newest) {
				newest = msg.CreatedAt
			}
		}
		if newest.IsZero() {
			return time.Time{}, errors.ErrMessageNotFound
		}
		watermark = newest

		if err := s.messageRepository.RecordRead(messageIDs, userID, now); err != nil {
			return time.Time{}, err
		}
	}

	effective, err := s.roomRepository.AdvanceWatermark(roomID, userID, watermark)
	if err != nil {
		return time.Time{}, err
	}

	s.dispatcher.Dispatch(event.NewMessagesRead(roomID, userID, effective))
	return effective, nil
}

// SetTyping relays a typing signal. Nothing is persisted; a missed
// typing event costs nothing.
func (s *MessageService) SetTyping(userID, roomID string, typing bool) error {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return err
	}
	if !room.IsMember(userID) {
		return errors.ErrForbidden
	}

	if typing {
		s.dispatcher.Dispatch(event.NewTypingStart(roomID, userID))
	} else {
		s.dispatcher.Dispatch(event.NewTypingStop(roomID, userID))
	}
	return nil
}

func (s *MessageService) ListMessages(userID, roomID string, page, limit int) ([]domain.Message, int64, error) {
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return nil, 0, err
	}
	if !room.IsMember(userID) {
		return nil, 0, errors.ErrForbidden
	}
	return s.messageRepository.ListByRoom(roomID, page, limit)
}

func (s *MessageService) SearchMessages(ctx context.Context, userID, roomID, query string, page, limit int) ([]domain.Message, uint64, error) {
	if query == "" {
		return nil, 0, errors.ErrInvalidInput
	}
	room, err := s.roomRepository.Get(roomID)
	if err != nil {
		return nil, 0, err
	}
	if !room.IsMember(userID) {
		return nil, 0, errors.ErrForbidden
	}
	return s.messageRepository.Search(ctx, roomID, query, page, limit)
}

// UnreadCounts aggregates, per room the user belongs to, how many
// messages arrived after their watermark. The user's own messages never
// count.
func (s *MessageService) UnreadCounts(userID string) ([]UnreadCount, error) {
	rooms, _, err := s.roomRepository.ListFor(userID, 1, maxRoomsPerUser)
	if err != nil {
		return nil, err
	}

	counts := make([]UnreadCount, 0, len(rooms))
	for _, room := range rooms {
		member, ok := room.MemberOf(userID)
		if !ok {
			continue
		}
		count, err := s.messageRepository.CountUnread(room.ID, member.LastReadAt, userID)
		if err != nil {
			return nil, err
		}
		counts = append(counts, UnreadCount{RoomID: room.ID, Count: count})
	}
	return counts, nil
}

func (s *MessageService) requireReactionAccess(userID, messageID string) error {
	msg, err := s.messageRepository.GetByID(messageID)
	if err != nil {
		return err
	}
	room, err := s.roomRepository.Get(msg.RoomID)
	if err != nil {
		return err
	}
	if !room.IsMember(userID) {
		return errors.ErrForbidden
	}
	return nil
}

func (s *MessageService) roomModerator(room domain.Room, userID string) bool {
	if room.CanModerate(userID) {
		return true
	}
	member, ok := room.MemberOf(userID)
	return ok && member.Role == domain.RoleModerator
}

func (s *MessageService) censor(content string) string {
	if s.moderator == nil || content == "" {
		return content
	}
	censored := s.moderator.Censor(content)
	if censored != content {
		observability.MessagesCensored.Inc()
	}
	return censored
}
