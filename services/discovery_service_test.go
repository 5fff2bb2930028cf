package services

import (
	"context"
	"fmt"
	"testing"

	"flare_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeProfile(id string, age int, gender string) models.UserProfile {
	return models.UserProfile{
		UserID:      id,
		Name:        "user " + id,
		Age:         age,
		Gender:      gender,
		Preferences: models.DefaultPreferences(),
		IsActive:    true,
	}
}

func locatedProfile(id string, age int, gender string, lat, lon float64) models.UserProfile {
	p := activeProfile(id, age, gender)
	p.Location = &models.GeoPoint{Latitude: lat, Longitude: lon}
	return p
}

func TestGetCandidatesUnknownRequester(t *testing.T) {
	svc := &DiscoveryService{Users: newFakeDirectory(), Swipes: newFakeLedger()}

	_, err := svc.GetCandidates(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCandidatesInactiveRequester(t *testing.T) {
	requester := activeProfile("a", 30, models.GenderFemale)
	requester.IsActive = false
	svc := &DiscoveryService{Users: newFakeDirectory(requester), Swipes: newFakeLedger()}

	_, err := svc.GetCandidates(context.Background(), "a")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCandidatesFiltersAgeGenderAndActivity(t *testing.T) {
	requester := activeProfile("a", 30, models.GenderFemale)
	requester.Preferences = models.Preferences{MinAge: 25, MaxAge: 35, GenderPreference: models.PreferenceMale, MaxDistance: 50}

	tooYoung := activeProfile("young", 24, models.GenderMale)
	tooOld := activeProfile("old", 36, models.GenderMale)
	wrongGender := activeProfile("wrong-gender", 30, models.GenderFemale)
	inactive := activeProfile("inactive", 30, models.GenderMale)
	inactive.IsActive = false
	eligible := activeProfile("eligible", 30, models.GenderMale)

	svc := &DiscoveryService{
		Users:  newFakeDirectory(requester, tooYoung, tooOld, wrongGender, inactive, eligible),
		Swipes: newFakeLedger(),
	}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "eligible", candidates[0].UserID)
	assert.Nil(t, candidates[0].DistanceKm)
}

func TestGetCandidatesExcludesSelfAndSwiped(t *testing.T) {
	requester := activeProfile("a", 30, models.GenderFemale)
	liked := activeProfile("liked", 30, models.GenderMale)
	disliked := activeProfile("disliked", 30, models.GenderMale)
	fresh := activeProfile("fresh", 30, models.GenderMale)

	ledger := newFakeLedger()
	require.NoError(t, ledger.CreateSwipe(context.Background(), models.Swipe{SwiperID: "a", SwipeeID: "liked", Direction: models.DirectionLike}))
	require.NoError(t, ledger.CreateSwipe(context.Background(), models.Swipe{SwiperID: "a", SwipeeID: "disliked", Direction: models.DirectionDislike}))

	svc := &DiscoveryService{Users: newFakeDirectory(requester, liked, disliked, fresh), Swipes: ledger}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "fresh", candidates[0].UserID)
}

func TestGetCandidatesDistanceFilterAndAnnotation(t *testing.T) {
	requester := locatedProfile("a", 30, models.GenderFemale, 0, 0)
	requester.Preferences.MaxDistance = 100

	// 0.5 degrees of longitude on the equator, about 55.6 km away.
	near := locatedProfile("near", 30, models.GenderMale, 0, 0.5)
	// About 222 km away, beyond the 100 km preference.
	far := locatedProfile("far", 30, models.GenderMale, 0, 2)
	// No shared location: unreachable while the requester filters by distance.
	hidden := activeProfile("hidden", 30, models.GenderMale)

	svc := &DiscoveryService{Users: newFakeDirectory(requester, near, far, hidden), Swipes: newFakeLedger()}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "near", candidates[0].UserID)
	require.NotNil(t, candidates[0].DistanceKm)
	assert.InDelta(t, 55.6, *candidates[0].DistanceKm, 0.11)
}

func TestGetCandidatesSortedByDistance(t *testing.T) {
	requester := locatedProfile("a", 30, models.GenderFemale, 0, 0)
	requester.Preferences.MaxDistance = 500

	profiles := []models.UserProfile{
		requester,
		locatedProfile("far", 30, models.GenderMale, 0, 3),
		locatedProfile("near", 30, models.GenderMale, 0, 0.5),
		locatedProfile("mid", 30, models.GenderMale, 0, 1.5),
	}

	svc := &DiscoveryService{Users: newFakeDirectory(profiles...), Swipes: newFakeLedger()}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, []string{"near", "mid", "far"}, []string{candidates[0].UserID, candidates[1].UserID, candidates[2].UserID})
}

func TestGetCandidatesDeterministicOrderWithoutLocation(t *testing.T) {
	requester := activeProfile("a", 30, models.GenderFemale)
	svc := &DiscoveryService{
		Users: newFakeDirectory(
			requester,
			activeProfile("c", 30, models.GenderMale),
			activeProfile("b", 30, models.GenderMale),
			activeProfile("d", 30, models.GenderMale),
		),
		Swipes: newFakeLedger(),
	}

	for i := 0; i < 5; i++ {
		candidates, err := svc.GetCandidates(context.Background(), "a")
		require.NoError(t, err)
		require.Len(t, candidates, 3)
		assert.Equal(t, "b", candidates[0].UserID)
		assert.Equal(t, "c", candidates[1].UserID)
		assert.Equal(t, "d", candidates[2].UserID)
	}
}

func TestGetCandidatesCappedAtTwenty(t *testing.T) {
	profiles := []models.UserProfile{activeProfile("a", 30, models.GenderFemale)}
	for i := 0; i < 30; i++ {
		profiles = append(profiles, activeProfile(fmt.Sprintf("candidate-%02d", i), 30, models.GenderMale))
	}

	svc := &DiscoveryService{Users: newFakeDirectory(profiles...), Swipes: newFakeLedger()}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, candidates, 20)
}

func TestGetCandidatesBothPreferenceMatchesAnyGender(t *testing.T) {
	requester := activeProfile("a", 30, models.GenderOther)

	svc := &DiscoveryService{
		Users: newFakeDirectory(
			requester,
			activeProfile("m", 30, models.GenderMale),
			activeProfile("f", 30, models.GenderFemale),
			activeProfile("o", 30, models.GenderOther),
		),
		Swipes: newFakeLedger(),
	}

	candidates, err := svc.GetCandidates(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}
