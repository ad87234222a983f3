package repositories

import (
	"time"

	"chat-hub/domain"
	pb "chat-hub/proto/storage"
)

func fromUser(u domain.User) *pb.User {
	return &pb.User{
		Id:           u.ID,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
		Status:       string(u.Status),
		LastSeenAt:   u.LastSeenAt.UnixNano(),
		FriendIds:    u.FriendIDs,
		BlockedIds:   u.BlockedIDs,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt.UnixNano(),
	}
}

func toUser(u *pb.User) domain.User {
	return domain.User{
		ID:           u.Id,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
		Status:       domain.Status(u.Status),
		LastSeenAt:   time.Unix(0, u.LastSeenAt).UTC(),
		FriendIDs:    u.FriendIds,
		BlockedIDs:   u.BlockedIds,
		Active:       u.Active,
		CreatedAt:    time.Unix(0, u.CreatedAt).UTC(),
	}
}

func fromRoom(r domain.Room) *pb.Room {
	members := make([]*pb.Member, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, &pb.Member{
			UserId:     m.UserID,
			Role:       string(m.Role),
			JoinedAt:   m.JoinedAt.UnixNano(),
			LastReadAt: m.LastReadAt.UnixNano(),
		})
	}
	return &pb.Room{
		Id:        r.ID,
		Type:      string(r.Type),
		Name:      r.Name,
		CreatorId: r.CreatorID,
		Members:   members,
		Settings: &pb.RoomSettings{
			Private:    r.Settings.Private,
			InviteOnly: r.Settings.InviteOnly,
			MaxMembers: int32(r.Settings.MaxMembers),
		},
		LastMessageId:  r.LastMessageID,
		LastActivityAt: r.LastActivityAt.UnixNano(),
		Active:         r.Active,
		CreatedAt:      r.CreatedAt.UnixNano(),
	}
}

func toRoom(r *pb.Room) domain.Room {
	members := make([]domain.Member, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, domain.Member{
			UserID:     m.UserId,
			Role:       domain.Role(m.Role),
			JoinedAt:   time.Unix(0, m.JoinedAt).UTC(),
			LastReadAt: time.Unix(0, m.LastReadAt).UTC(),
		})
	}
	room := domain.Room{
		ID:             r.Id,
		Type:           domain.RoomType(r.Type),
		Name:           r.Name,
		CreatorID:      r.CreatorId,
		Members:        members,
		LastMessageID:  r.LastMessageId,
		LastActivityAt: time.Unix(0, r.LastActivityAt).UTC(),
		Active:         r.Active,
		CreatedAt:      time.Unix(0, r.CreatedAt).UTC(),
	}
	if r.Settings != nil {
		room.Settings = domain.RoomSettings{
			Private:    r.Settings.Private,
			InviteOnly: r.Settings.InviteOnly,
			MaxMembers: int(r.Settings.MaxMembers),
		}
	}
	return room
}

func fromMessage(m domain.Message) *pb.Message {
	msg := &pb.Message{
		Id:        m.ID,
		RoomId:    m.RoomID,
		SenderId:  m.SenderID,
		Type:      string(m.Type),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UnixNano(),
		Deleted:   m.Deleted,
		DeletedBy: m.DeletedBy,
	}
	if m.Attachment != nil {
		msg.Attachment = &pb.Attachment{
			Name:     m.Attachment.Name,
			MimeType: m.Attachment.MimeType,
			Size:     m.Attachment.Size,
		}
	}
	if !m.EditedAt.IsZero() {
		msg.EditedAt = m.EditedAt.UnixNano()
	}
	if !m.DeletedAt.IsZero() {
		msg.DeletedAt = m.DeletedAt.UnixNano()
	}
	for _, e := range m.EditHistory {
		msg.EditHistory = append(msg.EditHistory, &pb.EditRecord{
			Content:  e.Content,
			EditedAt: e.EditedAt.UnixNano(),
		})
	}
	if len(m.Reactions) > 0 {
		msg.Reactions = make(map[string]*pb.UserSet, len(m.Reactions))
		for emoji, users := range m.Reactions {
			msg.Reactions[emoji] = &pb.UserSet{UserIds: users}
		}
	}
	if len(m.ReadBy) > 0 {
		msg.ReadBy = make(map[string]int64, len(m.ReadBy))
		for userID, at := range m.ReadBy {
			msg.ReadBy[userID] = at.UnixNano()
		}
	}
	return msg
}

func toMessage(m *pb.Message) domain.Message {
	msg := domain.Message{
		ID:        m.Id,
		RoomID:    m.RoomId,
		SenderID:  m.SenderId,
		Type:      domain.MessageType(m.Type),
		Content:   m.Content,
		CreatedAt: time.Unix(0, m.CreatedAt).UTC(),
		Deleted:   m.Deleted,
		DeletedBy: m.DeletedBy,
	}
	if m.Attachment != nil {
		msg.Attachment = &domain.Attachment{
			Name:     m.Attachment.Name,
			MimeType: m.Attachment.MimeType,
			Size:     m.Attachment.Size,
		}
	}
	if m.EditedAt != 0 {
		msg.EditedAt = time.Unix(0, m.EditedAt).UTC()
	}
	if m.DeletedAt != 0 {
		msg.DeletedAt = time.Unix(0, m.DeletedAt).UTC()
	}
	for _, e := range m.EditHistory {
		msg.EditHistory = append(msg.EditHistory, domain.EditRecord{
			Content:  e.Content,
			EditedAt: time.Unix(0, e.EditedAt).UTC(),
		})
	}
	if len(m.Reactions) > 0 {
		msg.Reactions = make(map[string][]string, len(m.Reactions))
		for emoji, set := range m.Reactions {
			msg.Reactions[emoji] = set.UserIds
		}
	}
	if len(m.ReadBy) > 0 {
		msg.ReadBy = make(map[string]time.Time, len(m.ReadBy))
		for userID, at := range m.ReadBy {
			msg.ReadBy[userID] = time.Unix(0, at).UTC()
		}
	}
	return msg
}
