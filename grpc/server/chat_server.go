package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	pb "chat-hub/proto/chat"
	"chat-hub/runtime"
	"chat-hub/services"
	"chat-hub/sink"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log                  *slog.Logger
	messageService       services.IMessageService
	roomService          services.IRoomService
	orchestrator         *runtime.Orchestrator
	connectionBufferSize int
}

func NewChatServer(log *slog.Logger, messageService services.IMessageService,
	roomService services.IRoomService, orchestrator *runtime.Orchestrator,
	connectionBufferSize int) *ChatServer {
	return &ChatServer{
		log:                  log,
		messageService:       messageService,
		roomService:          roomService,
		orchestrator:         orchestrator,
		connectionBufferSize: connectionBufferSize,
	}
}

// Connect establishes the long-lived event stream for one session.
// It registers a dedicated sink with the orchestrator and blocks until
// the client disconnects. Cleanup runs via deferred unregistration so a
// dropped connection can never leak a registry entry.
func (s *ChatServer) Connect(_ *pb.ConnectRequest, stream pb.ChatService_ConnectServer) error {
	userID := auth.UserIDFromContext(stream.Context())
	if userID == "" {
		return errors.MapToGRPCError(errors.ErrUnauthenticated)
	}

	sess := domain.Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		ConnectedAt: time.Now().UTC(),
	}
	session := sink.NewSession(s.connectionBufferSize)

	s.orchestrator.RegisterSession(sess, session)
	defer s.orchestrator.UnregisterSession(sess)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info("Client disconnected", "user_id", userID, "session_id", sess.ID)
			return nil
		case evt := <-session.Events:
			wireEvent := toServerEvent(evt)
			if wireEvent == nil {
				continue
			}
			if err := stream.Send(wireEvent); err != nil {
				s.log.Error("Failed to push event to stream",
					"user_id", userID,
					"session_id", sess.ID,
					"error", err)
				return err
			}
		}
	}
}

// SendMessage persists and fans out a message. The reply carries the
// stored form; other members learn about it through their streams.
func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageReply, error) {
	cmd := services.SendMessageCommand{
		SenderID: auth.UserIDFromContext(ctx),
		RoomID:   req.GetRoomId(),
		Type:     domain.MessageType(req.GetType()),
		Content:  req.GetContent(),
	}
	if req.GetAttachment() != nil {
		cmd.Attachment = &domain.Attachment{
			Name:     req.GetAttachment().GetName(),
			MimeType: req.GetAttachment().GetMimeType(),
			Size:     req.GetAttachment().GetSize(),
		}
	}

	msg, err := s.messageService.SendMessage(ctx, cmd)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageReply{Message: toChatMessage(msg)}, nil
}

func (s *ChatServer) EditMessage(ctx context.Context, req *pb.EditMessageRequest) (*pb.MessageReply, error) {
	msg, err := s.messageService.EditMessage(auth.UserIDFromContext(ctx), req.GetMessageId(), req.GetContent())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageReply{Message: toChatMessage(msg)}, nil
}

func (s *ChatServer) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*pb.Ack, error) {
	if err := s.messageService.DeleteMessage(auth.UserIDFromContext(ctx), req.GetMessageId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) AddReaction(ctx context.Context, req *pb.ReactionRequest) (*pb.Ack, error) {
	_, err := s.messageService.AddReaction(auth.UserIDFromContext(ctx), req.GetMessageId(), req.GetEmoji())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) RemoveReaction(ctx context.Context, req *pb.ReactionRequest) (*pb.Ack, error) {
	_, err := s.messageService.RemoveReaction(auth.UserIDFromContext(ctx), req.GetMessageId(), req.GetEmoji())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

// MarkRead advances the caller's watermark and replies with the unread
// count that remains.
func (s *ChatServer) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.UnreadReply, error) {
	userID := auth.UserIDFromContext(ctx)
	if _, err := s.messageService.MarkRead(userID, req.GetRoomId(), req.GetMessageIds()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return s.unreadReply(userID, req.GetRoomId())
}

func (s *ChatServer) SetTyping(ctx context.Context, req *pb.TypingRequest) (*pb.Ack, error) {
	if err := s.messageService.SetTyping(auth.UserIDFromContext(ctx), req.GetRoomId(), req.GetTyping()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) UpdateStatus(ctx context.Context, req *pb.UpdateStatusRequest) (*pb.Ack, error) {
	status, ok := domain.ParseStatus(req.GetStatus())
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrInvalidStatus)
	}
	if err := s.orchestrator.SetStatus(auth.UserIDFromContext(ctx), status); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) CreateRoom(ctx context.Context, req *pb.CreateRoomRequest) (*pb.RoomReply, error) {
	roomType, ok := domain.ParseRoomType(req.GetType())
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrInvalidInput)
	}

	room, err := s.roomService.CreateRoom(services.CreateRoomCommand{
		CreatorID: auth.UserIDFromContext(ctx),
		Type:      roomType,
		Name:      req.GetName(),
		MemberIDs: req.GetMemberIds(),
		Settings: domain.RoomSettings{
			Private:    req.GetPrivate(),
			InviteOnly: req.GetInviteOnly(),
			MaxMembers: int(req.GetMaxMembers()),
		},
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RoomReply{Room: toChatRoom(room)}, nil
}

func (s *ChatServer) JoinRoom(ctx context.Context, req *pb.RoomRequest) (*pb.RoomReply, error) {
	room, err := s.roomService.JoinRoom(auth.UserIDFromContext(ctx), req.GetRoomId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RoomReply{Room: toChatRoom(room)}, nil
}

func (s *ChatServer) LeaveRoom(ctx context.Context, req *pb.RoomRequest) (*pb.Ack, error) {
	if err := s.roomService.LeaveRoom(auth.UserIDFromContext(ctx), req.GetRoomId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) InviteMember(ctx context.Context, req *pb.MemberRequest) (*pb.Ack, error) {
	_, err := s.roomService.InviteMember(auth.UserIDFromContext(ctx), req.GetRoomId(), req.GetUserId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) RemoveMember(ctx context.Context, req *pb.MemberRequest) (*pb.Ack, error) {
	_, err := s.roomService.RemoveMember(auth.UserIDFromContext(ctx), req.GetRoomId(), req.GetUserId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) UpdateMemberRole(ctx context.Context, req *pb.UpdateRoleRequest) (*pb.Ack, error) {
	role, ok := domain.ParseRole(req.GetRole())
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrInvalidInput)
	}
	_, err := s.roomService.UpdateMemberRole(auth.UserIDFromContext(ctx), req.GetRoomId(), req.GetUserId(), role)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

func (s *ChatServer) GetRoom(ctx context.Context, req *pb.RoomRequest) (*pb.RoomReply, error) {
	room, err := s.roomService.GetRoom(auth.UserIDFromContext(ctx), req.GetRoomId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RoomReply{Room: toChatRoom(room)}, nil
}

func (s *ChatServer) ListRooms(ctx context.Context, req *pb.ListRoomsRequest) (*pb.ListRoomsReply, error) {
	rooms, total, err := s.roomService.ListRooms(auth.UserIDFromContext(ctx), int(req.GetPage()), int(req.GetLimit()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListRoomsReply{
		Rooms: lo.Map(rooms, func(room domain.Room, _ int) *pb.ChatRoom { return toChatRoom(room) }),
		Total: total,
	}, nil
}

func (s *ChatServer) GetRoomMessages(ctx context.Context, req *pb.GetRoomMessagesRequest) (*pb.MessagesReply, error) {
	messages, total, err := s.messageService.ListMessages(auth.UserIDFromContext(ctx), req.GetRoomId(), int(req.GetPage()), int(req.GetLimit()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessagesReply{
		Messages: lo.Map(messages, func(msg domain.Message, _ int) *pb.ChatMessage { return toChatMessage(msg) }),
		Total:    total,
	}, nil
}

func (s *ChatServer) SearchMessages(ctx context.Context, req *pb.SearchMessagesRequest) (*pb.MessagesReply, error) {
	messages, total, err := s.messageService.SearchMessages(ctx, auth.UserIDFromContext(ctx),
		req.GetRoomId(), req.GetQuery(), int(req.GetPage()), int(req.GetLimit()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessagesReply{
		Messages: lo.Map(messages, func(msg domain.Message, _ int) *pb.ChatMessage { return toChatMessage(msg) }),
		Total:    int64(total),
	}, nil
}

// UnreadCount reports the unread tally for one room, or the sum across
// every room when room_id is empty.
func (s *ChatServer) UnreadCount(ctx context.Context, req *pb.UnreadCountRequest) (*pb.UnreadReply, error) {
	return s.unreadReply(auth.UserIDFromContext(ctx), req.GetRoomId())
}

func (s *ChatServer) unreadReply(userID, roomID string) (*pb.UnreadReply, error) {
	counts, err := s.messageService.UnreadCounts(userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	if roomID == "" {
		total := lo.SumBy(counts, func(c services.UnreadCount) int64 { return c.Count })
		return &pb.UnreadReply{Unread: total}, nil
	}

	for _, c := range counts {
		if c.RoomID == roomID {
			return &pb.UnreadReply{RoomId: roomID, Unread: c.Count}, nil
		}
	}
	return nil, errors.MapToGRPCError(errors.ErrRoomNotFound)
}
