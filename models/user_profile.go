package models

// Profile gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Gender preference values; PreferenceBoth matches any profile gender.
const (
	PreferenceMale   = "male"
	PreferenceFemale = "female"
	PreferenceBoth   = "both"
)

// GeoPoint is a user's shared location. A nil *GeoPoint means the user has
// not shared one; (0, 0) is a real coordinate and must not double as an
// "absent" marker.
type GeoPoint struct {
	Longitude float64 `dynamodbav:"longitude" json:"longitude"`
	Latitude  float64 `dynamodbav:"latitude" json:"latitude"`
}

// Preferences control which profiles discovery may return to the user.
// Age bounds are inclusive; MaxDistance is in kilometers.
type Preferences struct {
	MinAge           int     `dynamodbav:"minAge" json:"minAge"`
	MaxAge           int     `dynamodbav:"maxAge" json:"maxAge"`
	GenderPreference string  `dynamodbav:"genderPreference" json:"genderPreference"`
	MaxDistance      float64 `dynamodbav:"maxDistance" json:"maxDistance"`
}

// DefaultPreferences are applied at registration until the user edits them.
func DefaultPreferences() Preferences {
	return Preferences{
		MinAge:           18,
		MaxAge:           100,
		GenderPreference: PreferenceBoth,
		MaxDistance:      50,
	}
}

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string      `dynamodbav:"userId" json:"userId"`   // Partition Key
	EmailID     string      `dynamodbav:"emailId" json:"emailId"` // Indexed via GSI
	Password    string      `dynamodbav:"password" json:"-"`      // bcrypt hash, never serialized
	Name        string      `dynamodbav:"name" json:"name"`
	Age         int         `dynamodbav:"age" json:"age"`
	Gender      string      `dynamodbav:"gender" json:"gender"`
	Bio         string      `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Photos      []string    `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	Interests   []string    `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Location    *GeoPoint   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Preferences Preferences `dynamodbav:"preferences" json:"preferences"`
	IsActive    bool        `dynamodbav:"isActive" json:"isActive"`
	LastActive  string      `dynamodbav:"lastActive,omitempty" json:"lastActive,omitempty"`
	CreatedAt   string      `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UserSummary is the minimal projection shared with a matched counterpart.
type UserSummary struct {
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Photos []string `json:"photos,omitempty"`
}

// Summary returns the projection of the profile used in match payloads.
func (p *UserProfile) Summary() UserSummary {
	return UserSummary{UserID: p.UserID, Name: p.Name, Photos: p.Photos}
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// EmailIndex is the GSI used to look up profiles by email
const EmailIndex = "email-index"
