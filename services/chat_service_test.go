package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDynamoHTTP answers every DynamoDB request with a canned JSON body and
// records the serialized request for inspection.
type stubDynamoHTTP struct {
	requests [][]byte
	response string
}

func (c *stubDynamoHTTP) Do(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	c.requests = append(c.requests, body)

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.0"}},
		Body:       io.NopCloser(strings.NewReader(c.response)),
	}, nil
}

func newStubbedChatService(response string) (*ChatService, *stubDynamoHTTP) {
	stub := &stubDynamoHTTP{response: response}
	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		BaseEndpoint:     aws.String("http://dynamodb.test"),
		HTTPClient:       stub,
		RetryMaxAttempts: 1,
	})
	return &ChatService{Dynamo: &DynamoService{Client: client}}, stub
}

func TestGetMessagesByMatchIDQueriesNewestFirst(t *testing.T) {
	// Two items in the descending order the server returns them in.
	chat, stub := newStubbedChatService(`{
		"Count": 2,
		"ScannedCount": 2,
		"Items": [
			{"matchId": {"S": "m1"}, "createdAt": {"S": "2026-08-29T10:00:02Z"}, "messageId": {"S": "msg-2"}, "senderId": {"S": "alice"}, "receiverId": {"S": "bob"}, "content": {"S": "newer"}, "isUnread": {"BOOL": true}},
			{"matchId": {"S": "m1"}, "createdAt": {"S": "2026-08-29T10:00:01Z"}, "messageId": {"S": "msg-1"}, "senderId": {"S": "bob"}, "receiverId": {"S": "alice"}, "content": {"S": "older"}, "isUnread": {"BOOL": false}}
		]
	}`)

	messages, err := chat.GetMessagesByMatchID(context.Background(), "m1", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-2", messages[0].MessageID)
	assert.Equal(t, "msg-1", messages[1].MessageID)

	// The server applies Limit before any client-side ordering could, so the
	// query itself must run descending for a limited read to keep the newest
	// messages.
	require.Len(t, stub.requests, 1)
	var query struct {
		TableName        string `json:"TableName"`
		Limit            int    `json:"Limit"`
		ScanIndexForward *bool  `json:"ScanIndexForward"`
	}
	require.NoError(t, json.Unmarshal(stub.requests[0], &query))
	assert.Equal(t, "Messages", query.TableName)
	assert.Equal(t, 2, query.Limit)
	require.NotNil(t, query.ScanIndexForward)
	assert.False(t, *query.ScanIndexForward)
}

func TestGetMessagesByMatchIDUnlimited(t *testing.T) {
	chat, stub := newStubbedChatService(`{"Count": 0, "ScannedCount": 0, "Items": []}`)

	messages, err := chat.GetMessagesByMatchID(context.Background(), "m1", 0)
	require.NoError(t, err)
	assert.Empty(t, messages)

	require.Len(t, stub.requests, 1)
	var query map[string]interface{}
	require.NoError(t, json.Unmarshal(stub.requests[0], &query))
	assert.NotContains(t, query, "Limit")
}
