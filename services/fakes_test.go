package services

import (
	"context"
	"strings"
	"sync"

	"flare_server/models"
)

// In-memory fakes for the store interfaces, shared by the service tests.
// They mirror the storage-layer contracts, including the uniqueness
// behavior of the conditional puts.

type fakeDirectory struct {
	profiles map[string]models.UserProfile
}

func newFakeDirectory(profiles ...models.UserProfile) *fakeDirectory {
	fd := &fakeDirectory{profiles: make(map[string]models.UserProfile)}
	for _, p := range profiles {
		fd.profiles[p.UserID] = p
	}
	return fd
}

func (fd *fakeDirectory) GetUserProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	p, ok := fd.profiles[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	cpy := p
	return &cpy, nil
}

func (fd *fakeDirectory) ScanActiveProfiles(context.Context) ([]models.UserProfile, error) {
	var out []models.UserProfile
	for _, p := range fd.profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (fd *fakeDirectory) GetUserProfileByEmail(_ context.Context, emailID string) (*models.UserProfile, error) {
	for _, p := range fd.profiles {
		if p.EmailID == strings.ToLower(emailID) {
			cpy := p
			return &cpy, nil
		}
	}
	return nil, nil
}

func (fd *fakeDirectory) AddUserProfile(_ context.Context, profile models.UserProfile) error {
	if _, exists := fd.profiles[profile.UserID]; exists {
		return ErrConditionFailed
	}
	fd.profiles[profile.UserID] = profile
	return nil
}

type fakeLedger struct {
	swipes map[string]models.Swipe
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{swipes: make(map[string]models.Swipe)}
}

func ledgerKey(swiperID, swipeeID string) string {
	return swiperID + "|" + swipeeID
}

func (fl *fakeLedger) CreateSwipe(_ context.Context, swipe models.Swipe) error {
	key := ledgerKey(swipe.SwiperID, swipe.SwipeeID)
	if _, exists := fl.swipes[key]; exists {
		return ErrAlreadySwiped
	}
	fl.swipes[key] = swipe
	return nil
}

func (fl *fakeLedger) GetSwipe(_ context.Context, swiperID, swipeeID string) (*models.Swipe, error) {
	s, ok := fl.swipes[ledgerKey(swiperID, swipeeID)]
	if !ok {
		return nil, nil
	}
	cpy := s
	return &cpy, nil
}

func (fl *fakeLedger) ListSwipedUserIDs(_ context.Context, swiperID string) ([]string, error) {
	var ids []string
	for _, s := range fl.swipes {
		if s.SwiperID == swiperID {
			ids = append(ids, s.SwipeeID)
		}
	}
	return ids, nil
}

type fakeMatchStore struct {
	byPair  map[string]models.Match
	creates int
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{byPair: make(map[string]models.Match)}
}

func (fm *fakeMatchStore) CreateMatch(_ context.Context, match models.Match) (*models.Match, error) {
	if existing, ok := fm.byPair[match.PairID]; ok {
		cpy := existing
		return &cpy, nil
	}
	fm.byPair[match.PairID] = match
	fm.creates++
	cpy := match
	return &cpy, nil
}

type fakeConn struct {
	mu     sync.Mutex
	events []fakeEvent
}

type fakeEvent struct {
	name    string
	payload interface{}
}

func (fc *fakeConn) Emit(event string, args ...interface{}) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	var payload interface{}
	if len(args) > 0 {
		payload = args[0]
	}
	fc.events = append(fc.events, fakeEvent{name: event, payload: payload})
}

type fakeRegistry struct {
	conns map[string]*fakeConn
}

func newFakeRegistry(userIDs ...string) *fakeRegistry {
	fr := &fakeRegistry{conns: make(map[string]*fakeConn)}
	for _, id := range userIDs {
		fr.conns[id] = &fakeConn{}
	}
	return fr
}

func (fr *fakeRegistry) Lookup(userID string) (Connection, bool) {
	conn, ok := fr.conns[userID]
	if !ok {
		return nil, false
	}
	return conn, true
}
