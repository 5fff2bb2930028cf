package models

// Candidate is the discovery view of a profile: a read-only projection plus
// the computed distance. It is a separate type on purpose — the stored
// profile is never mutated to carry response-only fields.
type Candidate struct {
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Bio        string    `json:"bio,omitempty"`
	Photos     []string  `json:"photos,omitempty"`
	Interests  []string  `json:"interests,omitempty"`
	Location   *GeoPoint `json:"location,omitempty"`
	DistanceKm *float64  `json:"distance,omitempty"`
}

// NewCandidate projects a profile into its discovery view. distanceKm may be
// nil when either side has no shared location.
func NewCandidate(p *UserProfile, distanceKm *float64) Candidate {
	return Candidate{
		UserID:     p.UserID,
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		Bio:        p.Bio,
		Photos:     p.Photos,
		Interests:  p.Interests,
		Location:   p.Location,
		DistanceKm: distanceKm,
	}
}
