package services

import (
	"context"
	"errors"
	"fmt"

	"flare_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SwipeLedgerService is the DynamoDB-backed append-only swipe ledger. The
// composite (swiperId, swipeeId) key plus a conditional put make duplicate
// swipes impossible at the storage layer, which is what keeps concurrent
// identical requests from both racing to success.
type SwipeLedgerService struct {
	Dynamo *DynamoService
}

// CreateSwipe appends a swipe. Returns ErrAlreadySwiped when the ordered
// pair already has one; swipes are never overwritten.
func (sls *SwipeLedgerService) CreateSwipe(ctx context.Context, swipe models.Swipe) error {
	err := sls.Dynamo.PutItemIfNotExists(ctx, models.SwipesTable, swipe,
		"attribute_not_exists(swiperId) AND attribute_not_exists(swipeeId)")
	if errors.Is(err, ErrConditionFailed) {
		return ErrAlreadySwiped
	}
	return err
}

// GetSwipe returns the swipe for the ordered pair, or (nil, nil) when the
// swiper has not acted on the swipee.
func (sls *SwipeLedgerService) GetSwipe(ctx context.Context, swiperID, swipeeID string) (*models.Swipe, error) {
	key := map[string]types.AttributeValue{
		"swiperId": &types.AttributeValueMemberS{Value: swiperID},
		"swipeeId": &types.AttributeValueMemberS{Value: swipeeID},
	}

	item, err := sls.Dynamo.GetItem(ctx, models.SwipesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return &swipe, nil
}

// ListSwipedUserIDs returns every user the swiper has already acted on,
// regardless of direction.
func (sls *SwipeLedgerService) ListSwipedUserIDs(ctx context.Context, swiperID string) ([]string, error) {
	keyCondition := "swiperId = :swiperId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":swiperId": &types.AttributeValueMemberS{Value: swiperID},
	}

	items, err := sls.Dynamo.QueryItems(ctx, models.SwipesTable, keyCondition, expressionAttributeValues, nil, 0)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if attr, ok := item["swipeeId"].(*types.AttributeValueMemberS); ok {
			ids = append(ids, attr.Value)
		}
	}
	return ids, nil
}
