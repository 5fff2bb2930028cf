package services

import (
	"context"
	"fmt"
	"time"

	"flare_server/models"

	"github.com/google/uuid"
)

// SwipeStore persists the append-only swipe ledger. SwipeLedgerService
// implements it.
type SwipeStore interface {
	// CreateSwipe fails with ErrAlreadySwiped on a duplicate ordered pair.
	CreateSwipe(ctx context.Context, swipe models.Swipe) error
	// GetSwipe returns (nil, nil) when the pair has no swipe.
	GetSwipe(ctx context.Context, swiperID, swipeeID string) (*models.Swipe, error)
}

// MatchStore persists matches under an order-independent pair constraint.
// MatchService implements it.
type MatchStore interface {
	// CreateMatch returns the already-existing match instead of failing
	// when the pair has one.
	CreateMatch(ctx context.Context, match models.Match) (*models.Match, error)
}

// MatchNotifier delivers best-effort match events. NotificationService
// implements it.
type MatchNotifier interface {
	NotifyMatch(ctx context.Context, match *models.Match, userAID, userBID string)
}

// SwipeService records swipes and detects matches. The swipe write and the
// reciprocal check are two separate storage operations with no transaction
// between them; the unordered-pair constraint in the match store is what
// makes concurrent reciprocal swipes converge on a single match.
type SwipeService struct {
	Swipes   SwipeStore
	Matches  MatchStore
	Notifier MatchNotifier

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// RecordSwipe appends the swiper's decision and, for a like or superlike,
// performs the reciprocal lookup. On a mutual like it creates the match and
// notifies both parties. The returned match is nil when no reciprocity
// exists yet — that is the normal non-match outcome, not an error.
func (ss *SwipeService) RecordSwipe(ctx context.Context, swiperID, swipeeID, direction string) (*models.Swipe, *models.Match, error) {
	if !models.ValidDirection(direction) {
		return nil, nil, ErrInvalidDirection
	}
	if swiperID == "" || swipeeID == "" || swiperID == swipeeID {
		return nil, nil, fmt.Errorf("swiper and swipee must be distinct users: %w", ErrValidation)
	}

	swipe := models.Swipe{
		SwiperID:  swiperID,
		SwipeeID:  swipeeID,
		Direction: direction,
		CreatedAt: ss.now().Format(time.RFC3339),
	}
	if err := ss.Swipes.CreateSwipe(ctx, swipe); err != nil {
		return nil, nil, err
	}

	if !models.IsLike(direction) {
		return &swipe, nil, nil
	}

	reciprocal, err := ss.Swipes.GetSwipe(ctx, swipeeID, swiperID)
	if err != nil {
		return nil, nil, fmt.Errorf("reciprocal lookup failed: %w", err)
	}
	if reciprocal == nil || !models.IsLike(reciprocal.Direction) {
		return &swipe, nil, nil
	}

	match, err := ss.Matches.CreateMatch(ctx, models.NewMatch(
		uuid.NewString(), swiperID, swipeeID, ss.now().Format(time.RFC3339),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create match: %w", err)
	}

	if ss.Notifier != nil {
		ss.Notifier.NotifyMatch(ctx, match, swiperID, swipeeID)
	}

	return &swipe, match, nil
}

func (ss *SwipeService) now() time.Time {
	if ss.Now != nil {
		return ss.Now().UTC()
	}
	return time.Now().UTC()
}
