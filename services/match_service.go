package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flare_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// MatchService owns the match table: creation under the unordered-pair
// constraint and per-user listing.
type MatchService struct {
	Dynamo *DynamoService
	Users  UserDirectory
}

// CreateMatch writes the match guarded by the pair key. If both sides of a
// reciprocal pair race, the loser fetches and returns the winner's match —
// the pair ends up with exactly one match either way.
func (ms *MatchService) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	err := ms.Dynamo.PutItemIfNotExists(ctx, models.MatchesTable, match, "attribute_not_exists(pairId)")
	if errors.Is(err, ErrConditionFailed) {
		zap.L().Info("match already exists for pair", zap.String("pairId", match.PairID))
		return ms.GetMatchByPair(ctx, match.PairID)
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMatchByPair retrieves a match by its canonical pair key.
func (ms *MatchService) GetMatchByPair(ctx context.Context, pairID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetCurrentMatches lists the user's matches, newest first, each enriched
// with the counterpart's profile summary. Counterparts whose profile can no
// longer be fetched are skipped.
func (ms *MatchService) GetCurrentMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	matches, err := ms.listMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.MatchWithProfile, 0, len(matches))
	for i := range matches {
		otherID := matches[i].OtherUser(userID)
		other, err := ms.Users.GetUserProfile(ctx, otherID)
		if err != nil {
			zap.L().Warn("skipping match with unfetchable counterpart",
				zap.String("matchId", matches[i].MatchID), zap.Error(err))
			continue
		}
		enriched = append(enriched, models.MatchWithProfile{
			MatchID:   matches[i].MatchID,
			CreatedAt: matches[i].CreatedAt,
			User:      other.Summary(),
		})
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].CreatedAt > enriched[j].CreatedAt
	})
	return enriched, nil
}

// GetMatchForUser returns the match only when userID is one of its
// participants; otherwise ErrMatchNotFound. Chat access control hangs off
// this lookup.
func (ms *MatchService) GetMatchForUser(ctx context.Context, matchID, userID string) (*models.Match, error) {
	matches, err := ms.listMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].MatchID == matchID {
			return &matches[i], nil
		}
	}
	return nil, ErrMatchNotFound
}

// listMatches queries both sides of the pair: the user may be stored as
// either userA or userB depending on id order.
func (ms *MatchService) listMatches(ctx context.Context, userID string) ([]models.Match, error) {
	var all []models.Match
	for _, side := range []struct {
		index string
		attr  string
	}{
		{models.MatchUserAIndex, "userA"},
		{models.MatchUserBIndex, "userB"},
	} {
		keyCondition := fmt.Sprintf("%s = :userId", side.attr)
		values := map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}

		items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, side.index, keyCondition, values, nil, 0)
		if err != nil {
			return nil, err
		}

		var matches []models.Match
		if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
		}
		all = append(all, matches...)
	}
	return all, nil
}
