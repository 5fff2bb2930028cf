package models

// Swipe directions
const (
	DirectionLike      = "like"
	DirectionDislike   = "dislike"
	DirectionSuperlike = "superlike"
)

// ValidDirection reports whether d is one of the accepted swipe directions.
func ValidDirection(d string) bool {
	switch d {
	case DirectionLike, DirectionDislike, DirectionSuperlike:
		return true
	}
	return false
}

// IsLike reports whether a direction counts toward a match.
func IsLike(d string) bool {
	return d == DirectionLike || d == DirectionSuperlike
}

// Swipe is one user's immutable decision about another. At most one swipe
// exists per ordered (swiper, swipee) pair; the table's composite key plus a
// conditional put enforce that.
type Swipe struct {
	SwiperID  string `dynamodbav:"swiperId" json:"swiperId"` // Partition Key
	SwipeeID  string `dynamodbav:"swipeeId" json:"swipeeId"` // Sort Key
	Direction string `dynamodbav:"direction" json:"direction"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipesTable is the DynamoDB table name for the swipe ledger
const SwipesTable = "Swipes"
