package models

// Match records a mutual like between two users. PairID is the
// order-independent key for the pair, so a conditional put on it guarantees
// at most one match per pair regardless of which side's swipe landed last.
type Match struct {
	PairID    string   `dynamodbav:"pairId" json:"-"` // Partition Key
	MatchID   string   `dynamodbav:"matchId" json:"matchId"`
	UserA     string   `dynamodbav:"userA" json:"-"` // lexicographically smaller id
	UserB     string   `dynamodbav:"userB" json:"-"`
	Users     []string `dynamodbav:"users" json:"users"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
}

// PairKey returns the canonical order-independent key for two user ids.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}

// NewMatch builds a match for the given pair with ids stored in canonical
// order.
func NewMatch(matchID, a, b, createdAt string) Match {
	if b < a {
		a, b = b, a
	}
	return Match{
		PairID:    a + "#" + b,
		MatchID:   matchID,
		UserA:     a,
		UserB:     b,
		Users:     []string{a, b},
		CreatedAt: createdAt,
	}
}

// OtherUser returns the counterpart of userID in the match, or "" when
// userID is not a participant.
func (m *Match) OtherUser(userID string) string {
	switch userID {
	case m.UserA:
		return m.UserB
	case m.UserB:
		return m.UserA
	}
	return ""
}

// MatchWithProfile pairs a match with the counterpart's profile summary for
// list responses.
type MatchWithProfile struct {
	MatchID   string      `json:"matchId"`
	CreatedAt string      `json:"createdAt"`
	User      UserSummary `json:"user"`
}

// MatchNotification is the payload of the realtime new_match event.
type MatchNotification struct {
	MatchID string      `json:"matchId"`
	User    UserSummary `json:"user"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSIs used to list a user's matches from either side of the pair
const (
	MatchUserAIndex = "userA-index"
	MatchUserBIndex = "userB-index"
)
