package models

// Message is a chat message within a match.
type Message struct {
	MatchID    string `dynamodbav:"matchId" json:"matchId"`     // Partition Key
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"` // Sort Key
	MessageID  string `dynamodbav:"messageId" json:"messageId"`
	SenderID   string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID string `dynamodbav:"receiverId" json:"receiverId"`
	Content    string `dynamodbav:"content" json:"content"`
	IsUnread   bool   `dynamodbav:"isUnread" json:"isUnread"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
