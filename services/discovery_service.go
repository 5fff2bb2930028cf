package services

import (
	"context"
	"fmt"
	"sort"

	"flare_server/models"
	"flare_server/utils"
)

// UserDirectory is the slice of the user store that discovery and match
// enrichment read. UserProfileService implements it.
type UserDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ScanActiveProfiles(ctx context.Context) ([]models.UserProfile, error)
}

// SwipeLedger exposes a requester's swipe history for candidate exclusion.
// SwipeLedgerService implements it.
type SwipeLedger interface {
	ListSwipedUserIDs(ctx context.Context, swiperID string) ([]string, error)
}

// maxCandidates bounds the size of a discovery page.
const maxCandidates = 20

// DiscoveryService produces the candidate list for a user: everyone who
// passes the requester's preference, activity, exclusion, and distance
// filters.
type DiscoveryService struct {
	Users  UserDirectory
	Swipes SwipeLedger
}

// GetCandidates returns up to maxCandidates profiles the requester may swipe
// on, annotated with the distance in kilometers where both sides share a
// location. Read-only.
func (ds *DiscoveryService) GetCandidates(ctx context.Context, userID string) ([]models.Candidate, error) {
	user, err := ds.Users.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	swipedIDs, err := ds.Swipes.ListSwipedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swiped users: %w", err)
	}
	excluded := make(map[string]struct{}, len(swipedIDs)+1)
	excluded[userID] = struct{}{}
	for _, id := range swipedIDs {
		excluded[id] = struct{}{}
	}

	profiles, err := ds.Users.ScanActiveProfiles(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []models.Candidate
	for i := range profiles {
		profile := &profiles[i]

		if _, skip := excluded[profile.UserID]; skip {
			continue
		}
		if !profile.IsActive {
			continue
		}
		if profile.Age < user.Preferences.MinAge || profile.Age > user.Preferences.MaxAge {
			continue
		}
		if !genderAllowed(user.Preferences.GenderPreference, profile.Gender) {
			continue
		}

		var distanceKm *float64
		if user.Location != nil {
			// With a shared location, discovery is distance-bounded;
			// profiles that never shared one are not reachable.
			if profile.Location == nil {
				continue
			}
			km := utils.CalculateDistance(
				user.Location.Latitude, user.Location.Longitude,
				profile.Location.Latitude, profile.Location.Longitude,
			)
			if km > user.Preferences.MaxDistance {
				continue
			}
			rounded := utils.RoundDistance(km)
			distanceKm = &rounded
		}

		candidates = append(candidates, models.NewCandidate(profile, distanceKm))
	}

	if user.Location != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			return *candidates[i].DistanceKm < *candidates[j].DistanceKm
		})
	} else {
		// No geo ordering available; sort by id so pages are deterministic.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].UserID < candidates[j].UserID
		})
	}

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates, nil
}

func genderAllowed(preference, gender string) bool {
	return preference == models.PreferenceBoth || preference == gender
}
