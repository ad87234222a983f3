package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	pbaccount "chat-hub/proto/account"
	pbchat "chat-hub/proto/chat"
)

type ChatSuite struct {
	BaseGrpcSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, new(ChatSuite))
}

// Test_Full_Conversation_Flow drives a conversation between two fresh
// accounts: register, direct room, message, reaction, read, unread.
func (s *ChatSuite) Test_Full_Conversation_Flow() {
	stamp := time.Now().UnixNano()
	aliceName := fmt.Sprintf("alice%d", stamp%1_000_000_000)
	bobName := fmt.Sprintf("bob%d", stamp%1_000_000_000)
	password := "EndToEndPass123!"

	var aliceToken, aliceID, bobToken, bobID string

	s.WithAuth("Register participants", func(ctx context.Context, client pbaccount.AuthServiceClient) {
		resp, err := client.Register(ctx, &pbaccount.RegisterRequest{
			Username: aliceName, Password: password, DisplayName: "Alice",
		})
		s.Require().NoError(err)
		aliceToken, aliceID = resp.Token, resp.UserId

		resp, err = client.Register(ctx, &pbaccount.RegisterRequest{
			Username: bobName, Password: password, DisplayName: "Bob",
		})
		s.Require().NoError(err)
		bobToken, bobID = resp.Token, resp.UserId

		s.Require().NotEmpty(aliceToken)
		s.Require().NotEmpty(bobToken)
	})

	var roomID, messageID string

	s.WithChat("Alice opens a direct room and writes", aliceToken, func(ctx context.Context, client pbchat.ChatServiceClient) {
		room, err := client.CreateRoom(ctx, &pbchat.CreateRoomRequest{
			Type:      "direct",
			MemberIds: []string{bobID},
		})
		s.Require().NoError(err)
		roomID = room.Room.Id

		// Creating the same pair again must return the same room.
		again, err := client.CreateRoom(ctx, &pbchat.CreateRoomRequest{
			Type:      "direct",
			MemberIds: []string{bobID},
		})
		s.Require().NoError(err)
		s.Require().Equal(roomID, again.Room.Id)

		msg, err := client.SendMessage(ctx, &pbchat.SendMessageRequest{
			RoomId:  roomID,
			Content: "hello from the e2e suite",
		})
		s.Require().NoError(err)
		messageID = msg.Message.Id
		s.Require().Equal(aliceID, msg.Message.SenderId)
	})

	s.WithChat("Bob reacts and reads", bobToken, func(ctx context.Context, client pbchat.ChatServiceClient) {
		unread, err := client.UnreadCount(ctx, &pbchat.UnreadCountRequest{RoomId: roomID})
		s.Require().NoError(err)
		s.Require().Equal(int64(1), unread.Unread)

		_, err = client.AddReaction(ctx, &pbchat.ReactionRequest{MessageId: messageID, Emoji: "👍"})
		s.Require().NoError(err)

		after, err := client.MarkRead(ctx, &pbchat.MarkReadRequest{
			RoomId:     roomID,
			MessageIds: []string{messageID},
		})
		s.Require().NoError(err)
		s.Require().Equal(int64(0), after.Unread)

		messages, err := client.GetRoomMessages(ctx, &pbchat.GetRoomMessagesRequest{RoomId: roomID})
		s.Require().NoError(err)
		s.Require().NotEmpty(messages.Messages)
	})
}
