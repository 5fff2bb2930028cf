package services

import (
	"context"

	"flare_server/models"

	"go.uber.org/zap"
)

// EventNewMatch is the realtime event emitted to both parties of a new match.
const EventNewMatch = "new_match"

// Connection is the minimal surface of a live realtime connection.
type Connection interface {
	Emit(event string, args ...interface{})
}

// ConnectionRegistry resolves a user's active realtime connection, if any.
// The socket package provides the in-process implementation; injecting it
// here keeps the notifier testable and lets a distributed registry slot in
// for multi-instance deployments.
type ConnectionRegistry interface {
	Lookup(userID string) (Connection, bool)
}

// NotificationService pushes match events to live connections. Delivery is
// best-effort and at-most-once: a participant without an active connection
// is silently skipped, nothing is queued or retried.
type NotificationService struct {
	Registry ConnectionRegistry
	Users    UserDirectory
}

// NotifyMatch emits a new_match event to each participant that has a live
// connection, carrying the match id and a summary of the other participant.
func (ns *NotificationService) NotifyMatch(ctx context.Context, match *models.Match, userAID, userBID string) {
	ns.notifyOne(ctx, match, userAID, userBID)
	ns.notifyOne(ctx, match, userBID, userAID)
}

func (ns *NotificationService) notifyOne(ctx context.Context, match *models.Match, recipientID, otherID string) {
	conn, ok := ns.Registry.Lookup(recipientID)
	if !ok {
		return
	}

	other, err := ns.Users.GetUserProfile(ctx, otherID)
	if err != nil {
		zap.L().Warn("match notification skipped",
			zap.String("matchId", match.MatchID),
			zap.String("recipient", recipientID),
			zap.Error(err))
		return
	}

	conn.Emit(EventNewMatch, models.MatchNotification{
		MatchID: match.MatchID,
		User:    other.Summary(),
	})
}
