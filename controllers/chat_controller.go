package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"flare_server/middleware"
	"flare_server/models"
	"flare_server/services"
	"flare_server/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// MessageStore is the chat persistence surface. ChatService implements it.
type MessageStore interface {
	SendMessage(ctx context.Context, message models.Message) error
	GetMessagesByMatchID(ctx context.Context, matchID string, limit int) ([]models.Message, error)
	MarkMessagesAsRead(ctx context.Context, matchID, userID string) error
}

// MatchRoster resolves a match for one of its participants, failing with
// ErrMatchNotFound for outsiders. MatchService implements it.
type MatchRoster interface {
	GetMatchForUser(ctx context.Context, matchID, userID string) (*models.Match, error)
}

// ChatController handles chat message history and sending over HTTP. Every
// operation verifies the caller is a participant of the match first.
type ChatController struct {
	Chat    MessageStore
	Matches MatchRoster
}

// NewChatController creates a new ChatController instance
func NewChatController(chat MessageStore, matches MatchRoster) *ChatController {
	return &ChatController{Chat: chat, Matches: matches}
}

// requireParticipant resolves the match for the caller, writing the error
// response itself when the caller is not part of it.
func (cc *ChatController) requireParticipant(w http.ResponseWriter, r *http.Request, matchID, userID string) (*models.Match, bool) {
	match, err := cc.Matches.GetMatchForUser(r.Context(), matchID, userID)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			utils.WriteError(w, http.StatusForbidden, "You are not part of this match")
			return nil, false
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return match, true
}

// GetMessages fetches messages for a match the caller belongs to, newest
// first.
func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	matchID := mux.Vars(r)["matchId"]
	if matchID == "" {
		utils.WriteError(w, http.StatusBadRequest, "matchId is required")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	if _, ok := cc.requireParticipant(w, r, matchID, userID); !ok {
		return
	}

	messages, err := cc.Chat.GetMessagesByMatchID(r.Context(), matchID, limit)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(messages),
		"data":    messages,
	})
}

// SendMessage stores a new message authored by the caller. The receiver
// must be the caller's counterpart in the match.
func (cc *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var request struct {
		MatchID    string `json:"matchId"`
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.MatchID == "" || request.ReceiverID == "" || request.Content == "" {
		utils.WriteError(w, http.StatusBadRequest, "matchId, receiverId and content are required")
		return
	}

	match, ok := cc.requireParticipant(w, r, request.MatchID, userID)
	if !ok {
		return
	}
	if match.OtherUser(userID) != request.ReceiverID {
		utils.WriteError(w, http.StatusBadRequest, "receiverId is not part of this match")
		return
	}

	message := models.Message{
		MatchID:    request.MatchID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		MessageID:  uuid.NewString(),
		SenderID:   userID,
		ReceiverID: request.ReceiverID,
		Content:    request.Content,
	}

	if err := cc.Chat.SendMessage(r.Context(), message); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    message,
	})
}

// MarkRead marks the caller's received messages in a match as read.
func (cc *ChatController) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	matchID := mux.Vars(r)["matchId"]
	if matchID == "" {
		utils.WriteError(w, http.StatusBadRequest, "matchId is required")
		return
	}

	if _, ok := cc.requireParticipant(w, r, matchID, userID); !ok {
		return
	}

	if err := cc.Chat.MarkMessagesAsRead(r.Context(), matchID, userID); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Messages marked as read",
	})
}
