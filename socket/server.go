package socket

import (
	"context"
	"time"

	"flare_server/models"
	"flare_server/services"

	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

// NewSocketServer initializes the Socket.IO server. Clients authenticate a
// connection by emitting "register" with their user id; registered
// connections receive new_match notifications and relayed chat messages.
// Messages are only accepted from a participant of the match and only
// toward the other participant.
func NewSocketServer(registry *Registry, chatService *services.ChatService, matchService *services.MatchService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		zap.L().Info("socket connected", zap.String("connId", s.ID()))
		return nil
	})

	server.OnEvent("/", "register", func(s socketio.Conn, userID string) {
		if userID == "" {
			zap.L().Warn("register with empty userId", zap.String("connId", s.ID()))
			return
		}
		s.SetContext(userID)
		s.Join("user:" + userID)
		registry.Register(userID, s)
		zap.L().Info("socket registered",
			zap.String("connId", s.ID()),
			zap.String("userId", userID))
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, msg models.Message) {
		senderID, _ := s.Context().(string)
		if senderID == "" {
			zap.L().Warn("sendMessage from unregistered connection", zap.String("connId", s.ID()))
			return
		}
		if msg.MatchID == "" || msg.ReceiverID == "" || msg.Content == "" {
			zap.L().Warn("sendMessage with missing fields", zap.String("userId", senderID))
			return
		}

		match, err := matchService.GetMatchForUser(context.Background(), msg.MatchID, senderID)
		if err != nil {
			zap.L().Warn("sendMessage outside sender's matches",
				zap.String("userId", senderID),
				zap.String("matchId", msg.MatchID),
				zap.Error(err))
			return
		}
		if match.OtherUser(senderID) != msg.ReceiverID {
			zap.L().Warn("sendMessage to a receiver outside the match",
				zap.String("userId", senderID),
				zap.String("matchId", msg.MatchID))
			return
		}

		msg.SenderID = senderID
		msg.MessageID = uuid.NewString()
		msg.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		msg.IsUnread = true

		if err := chatService.SendMessage(context.Background(), msg); err != nil {
			zap.L().Error("failed to persist message",
				zap.String("matchId", msg.MatchID),
				zap.Error(err))
			return
		}

		server.BroadcastToRoom("/", "user:"+msg.ReceiverID, "receiveMessage", msg)
		s.Emit("messageSent", msg)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		zap.L().Warn("socket error", zap.Error(err))
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if userID, _ := s.Context().(string); userID != "" {
			registry.Unregister(userID, s.ID())
		}
		zap.L().Info("socket disconnected",
			zap.String("connId", s.ID()),
			zap.String("reason", reason))
	})

	return server
}
