package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flare_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileService is the DynamoDB-backed user directory.
type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile adds a new user profile. Fails with ErrConditionFailed if
// the user id is already taken.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) error {
	err := ups.Dynamo.PutItemIfNotExists(ctx, models.UserProfilesTable, profile, "attribute_not_exists(userId)")
	if err != nil {
		return fmt.Errorf("failed to add user profile: %w", err)
	}
	return nil
}

// GetUserProfile retrieves a user profile by ID. Returns ErrUserNotFound
// when no such user exists.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// GetUserProfileByEmail looks a profile up through the email GSI. Returns
// (nil, nil) when the email is unknown, so callers can distinguish "absent"
// from a storage failure.
func (ups *UserProfileService) GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	keyCondition := "emailId = :emailId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":emailId": &types.AttributeValueMemberS{Value: strings.ToLower(emailID)},
	}

	items, err := ups.Dynamo.QueryItemsWithIndex(ctx, models.UserProfilesTable, models.EmailIndex, keyCondition, expressionAttributeValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// ScanActiveProfiles returns every active profile. Discovery filters the
// result in application code; a fleet this size has no need for a
// per-attribute index.
func (ups *UserProfileService) ScanActiveProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable,
		"isActive = :active",
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
		nil,
		&profiles,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan active profiles: %w", err)
	}
	return profiles, nil
}

// maxBioLength caps the profile bio.
const maxBioLength = 500

// GeoPointPatch is a location update. Both coordinates must be given; a
// pointer pair distinguishes an omitted coordinate from a real zero.
type GeoPointPatch struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// ProfileUpdate is the set of profile fields a user may change. Nil fields
// are left untouched. Identity, credential, and bookkeeping fields are
// deliberately absent.
type ProfileUpdate struct {
	Name        *string             `json:"name"`
	Bio         *string             `json:"bio"`
	Photos      []string            `json:"photos"`
	Interests   []string            `json:"interests"`
	Location    *GeoPointPatch      `json:"location"`
	Preferences *models.Preferences `json:"preferences"`
	IsActive    *bool               `json:"isActive"`
}

func validPreference(p string) bool {
	switch p {
	case models.PreferenceMale, models.PreferenceFemale, models.PreferenceBoth:
		return true
	}
	return false
}

// Validate checks every present field against the profile constraints.
func (pu ProfileUpdate) Validate() error {
	if pu.Name != nil && strings.TrimSpace(*pu.Name) == "" {
		return fmt.Errorf("name cannot be empty: %w", ErrValidation)
	}
	if pu.Bio != nil && len(*pu.Bio) > maxBioLength {
		return fmt.Errorf("bio cannot exceed %d characters: %w", maxBioLength, ErrValidation)
	}
	if pu.Location != nil {
		if pu.Location.Longitude == nil || pu.Location.Latitude == nil {
			return fmt.Errorf("location requires both longitude and latitude: %w", ErrValidation)
		}
		if *pu.Location.Longitude < -180 || *pu.Location.Longitude > 180 {
			return fmt.Errorf("longitude out of range: %w", ErrValidation)
		}
		if *pu.Location.Latitude < -90 || *pu.Location.Latitude > 90 {
			return fmt.Errorf("latitude out of range: %w", ErrValidation)
		}
	}
	if pu.Preferences != nil {
		prefs := pu.Preferences
		if !validPreference(prefs.GenderPreference) {
			return fmt.Errorf("invalid gender preference %q: %w", prefs.GenderPreference, ErrValidation)
		}
		if prefs.MinAge < 18 {
			return fmt.Errorf("minAge must be at least 18: %w", ErrValidation)
		}
		if prefs.MaxAge < prefs.MinAge {
			return fmt.Errorf("maxAge cannot be below minAge: %w", ErrValidation)
		}
		if prefs.MaxDistance <= 0 {
			return fmt.Errorf("maxDistance must be positive: %w", ErrValidation)
		}
	}
	return nil
}

// fields maps the present fields to their attribute names and values.
func (pu ProfileUpdate) fields() map[string]interface{} {
	updates := make(map[string]interface{})
	if pu.Name != nil {
		updates["name"] = strings.TrimSpace(*pu.Name)
	}
	if pu.Bio != nil {
		updates["bio"] = *pu.Bio
	}
	if pu.Photos != nil {
		updates["photos"] = pu.Photos
	}
	if pu.Interests != nil {
		updates["interests"] = pu.Interests
	}
	if pu.Location != nil {
		updates["location"] = models.GeoPoint{
			Longitude: *pu.Location.Longitude,
			Latitude:  *pu.Location.Latitude,
		}
	}
	if pu.Preferences != nil {
		updates["preferences"] = *pu.Preferences
	}
	if pu.IsActive != nil {
		updates["isActive"] = *pu.IsActive
	}
	return updates
}

// UpdateUserProfile validates and applies a partial update, returning the
// new state of the profile. Values are marshalled individually so nested
// attributes (location, preferences) update as whole objects.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.UserProfile, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	updates := update.fields()
	if len(updates) == 0 {
		return nil, fmt.Errorf("no updates given: %w", ErrValidation)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue, len(updates))
	expressionAttributeNames := make(map[string]string, len(updates))

	for k, v := range updates {
		marshaled, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for '%s': %w", k, err)
		}
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","
		expressionAttributeValues[placeholder] = marshaled
		expressionAttributeNames[attributeName] = k
	}
	updateExpression = strings.TrimSuffix(updateExpression, ",")

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// TouchLastActive records the time of the user's latest authenticated call.
func (ups *UserProfileService) TouchLastActive(ctx context.Context, userID string, at time.Time) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	values := map[string]types.AttributeValue{
		":lastActive": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
	}

	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, "SET lastActive = :lastActive", key, values, nil)
	return err
}

// DeleteUserProfile removes a user profile from DynamoDB
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}
