package server

import (
	"sort"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"chat-hub/domain"
	"chat-hub/domain/event"
	pb "chat-hub/proto/chat"
)

// toServerEvent translates a domain event into its wire form. Unknown
// event types yield nil and are skipped by the stream loop.
func toServerEvent(e event.Event) *pb.ServerEvent {
	switch evt := e.(type) {
	case event.MessageNew:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageNew{MessageNew: toChatMessage(evt.Message)}}
	case event.MessageEdited:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageEdited{MessageEdited: toChatMessage(evt.Message)}}
	case event.MessageDeleted:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageDeleted{MessageDeleted: &pb.MessageDeletedEvent{
			RoomId:    evt.RoomID(),
			MessageId: evt.MessageID,
			DeletedBy: evt.DeletedBy,
			At:        timestamppb.New(evt.At),
		}}}
	case event.ReactionAdded:
		return &pb.ServerEvent{Event: &pb.ServerEvent_ReactionAdded{ReactionAdded: &pb.ReactionEvent{
			RoomId:    evt.RoomID(),
			MessageId: evt.MessageID,
			UserId:    evt.UserID,
			Emoji:     evt.Emoji,
			UserIds:   evt.Users,
		}}}
	case event.ReactionRemoved:
		return &pb.ServerEvent{Event: &pb.ServerEvent_ReactionRemoved{ReactionRemoved: &pb.ReactionEvent{
			RoomId:    evt.RoomID(),
			MessageId: evt.MessageID,
			UserId:    evt.UserID,
			Emoji:     evt.Emoji,
			UserIds:   evt.Users,
		}}}
	case event.MessagesRead:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessagesRead{MessagesRead: &pb.ReadEvent{
			RoomId:   evt.RoomID(),
			ReaderId: evt.ReaderID,
			At:       timestamppb.New(evt.ReadAt),
		}}}
	case event.RoomUserJoined:
		return &pb.ServerEvent{Event: &pb.ServerEvent_UserJoined{UserJoined: &pb.MemberEvent{
			RoomId: evt.RoomID(),
			UserId: evt.UserID,
			At:     timestamppb.New(evt.At),
		}}}
	case event.RoomUserLeft:
		return &pb.ServerEvent{Event: &pb.ServerEvent_UserLeft{UserLeft: &pb.MemberEvent{
			RoomId: evt.RoomID(),
			UserId: evt.UserID,
			At:     timestamppb.New(evt.At),
		}}}
	case event.RoomMemberAdded:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MemberAdded{MemberAdded: &pb.MemberEvent{
			RoomId:  evt.RoomID(),
			UserId:  evt.UserID,
			ActorId: evt.AddedBy,
			Role:    string(evt.Role),
			At:      timestamppb.New(evt.At),
		}}}
	case event.RoomMemberRemoved:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MemberRemoved{MemberRemoved: &pb.MemberEvent{
			RoomId:  evt.RoomID(),
			UserId:  evt.UserID,
			ActorId: evt.RemovedBy,
			At:      timestamppb.New(evt.At),
		}}}
	case event.RoomRoleUpdated:
		return &pb.ServerEvent{Event: &pb.ServerEvent_RoleUpdated{RoleUpdated: &pb.MemberEvent{
			RoomId:  evt.RoomID(),
			UserId:  evt.UserID,
			ActorId: evt.UpdatedBy,
			Role:    string(evt.Role),
			At:      timestamppb.New(evt.At),
		}}}
	case event.UserStatus:
		return &pb.ServerEvent{Event: &pb.ServerEvent_UserStatus{UserStatus: &pb.StatusEvent{
			UserId: evt.UserID,
			Status: string(evt.Status),
			At:     timestamppb.New(evt.At),
		}}}
	case event.TypingStart:
		return &pb.ServerEvent{Event: &pb.ServerEvent_TypingStart{TypingStart: &pb.TypingEvent{
			RoomId: evt.RoomID(),
			UserId: evt.UserID,
		}}}
	case event.TypingStop:
		return &pb.ServerEvent{Event: &pb.ServerEvent_TypingStop{TypingStop: &pb.TypingEvent{
			RoomId: evt.RoomID(),
			UserId: evt.UserID,
		}}}
	}
	return nil
}

func toChatMessage(msg domain.Message) *pb.ChatMessage {
	out := &pb.ChatMessage{
		Id:        msg.ID,
		RoomId:    msg.RoomID,
		SenderId:  msg.SenderID,
		Type:      string(msg.Type),
		Content:   msg.Content,
		CreatedAt: timestamppb.New(msg.CreatedAt),
		Reactions: toReactionGroups(msg.Reactions),
		Deleted:   msg.Deleted,
	}
	if msg.Attachment != nil {
		out.Attachment = &pb.Attachment{
			Name:     msg.Attachment.Name,
			MimeType: msg.Attachment.MimeType,
			Size:     msg.Attachment.Size,
		}
	}
	if !msg.EditedAt.IsZero() {
		out.EditedAt = timestamppb.New(msg.EditedAt)
	}
	return out
}

// toReactionGroups orders groups by emoji so the wire form is stable.
func toReactionGroups(reactions map[string][]string) []*pb.ReactionGroup {
	if len(reactions) == 0 {
		return nil
	}
	emojis := lo.Keys(reactions)
	sort.Strings(emojis)
	return lo.Map(emojis, func(emoji string, _ int) *pb.ReactionGroup {
		return &pb.ReactionGroup{Emoji: emoji, UserIds: reactions[emoji]}
	})
}

func toChatRoom(room domain.Room) *pb.ChatRoom {
	return &pb.ChatRoom{
		Id:             room.ID,
		Type:           string(room.Type),
		Name:           room.Name,
		CreatorId:      room.CreatorID,
		Members:        lo.Map(room.Members, func(m domain.Member, _ int) *pb.ChatMember { return toChatMember(m) }),
		Private:        room.Settings.Private,
		InviteOnly:     room.Settings.InviteOnly,
		MaxMembers:     int32(room.Settings.MaxMembers),
		LastMessageId:  room.LastMessageID,
		LastActivityAt: timestamppb.New(room.LastActivityAt),
	}
}

func toChatMember(m domain.Member) *pb.ChatMember {
	out := &pb.ChatMember{
		UserId:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: timestamppb.New(m.JoinedAt),
	}
	if !m.LastReadAt.IsZero() {
		out.LastReadAt = timestamppb.New(m.LastReadAt)
	}
	return out
}
