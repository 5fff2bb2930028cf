package services

import (
	"context"
	"fmt"

	"flare_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ChatService stores and retrieves chat messages for a match.
type ChatService struct {
	Dynamo *DynamoService
}

// SendMessage stores a new message. New messages start unread.
func (cs *ChatService) SendMessage(ctx context.Context, message models.Message) error {
	message.IsUnread = true

	if err := cs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// GetMessagesByMatchID fetches up to limit messages for a match, newest
// first. A limit of 0 fetches everything. The query runs in descending
// sort-key order so the server-side limit keeps the newest messages.
func (cs *ChatService) GetMessagesByMatchID(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := cs.Dynamo.QueryItemsDescending(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}

// MarkMessagesAsRead marks the messages the user received in a match as
// read. Individual update failures are logged and skipped.
func (cs *ChatService) MarkMessagesAsRead(ctx context.Context, matchID, userID string) error {
	messages, err := cs.GetMessagesByMatchID(ctx, matchID, 0)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if msg.SenderID == userID || !msg.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: msg.MatchID},
			"createdAt": &types.AttributeValueMemberS{Value: msg.CreatedAt},
		}
		updateExpression := "SET isUnread = :read"
		values := map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: false},
		}

		if _, err := cs.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, values, nil); err != nil {
			zap.L().Warn("failed to mark message as read",
				zap.String("matchId", matchID),
				zap.String("messageId", msg.MessageID),
				zap.Error(err))
		}
	}
	return nil
}
