package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flare_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserAccountStore is the slice of the user directory auth needs.
// UserProfileService implements it.
type UserAccountStore interface {
	GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error)
	AddUserProfile(ctx context.Context, profile models.UserProfile) error
}

// AuthService handles registration and login. Passwords are stored as
// bcrypt hashes; sessions are stateless HS256 JWTs whose subject is the
// user id.
type AuthService struct {
	Users      UserAccountStore
	SigningKey []byte
	TokenTTL   time.Duration
}

// RegisterInput carries the fields required to open an account.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

func validGender(g string) bool {
	switch g {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}

// Register creates a new active account with default preferences and
// returns a session token alongside the stored profile.
func (as *AuthService) Register(ctx context.Context, input RegisterInput) (string, *models.UserProfile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return "", nil, fmt.Errorf("email, password and name are required: %w", ErrValidation)
	}
	if input.Age < 18 {
		return "", nil, fmt.Errorf("users must be 18 or older: %w", ErrValidation)
	}
	if !validGender(input.Gender) {
		return "", nil, fmt.Errorf("unknown gender %q: %w", input.Gender, ErrValidation)
	}

	existing, err := as.Users.GetUserProfileByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.UserProfile{
		UserID:      uuid.NewString(),
		EmailID:     email,
		Password:    string(hash),
		Name:        strings.TrimSpace(input.Name),
		Age:         input.Age,
		Gender:      input.Gender,
		Preferences: models.DefaultPreferences(),
		IsActive:    true,
		LastActive:  now,
		CreatedAt:   now,
	}

	if err := as.Users.AddUserProfile(ctx, profile); err != nil {
		return "", nil, err
	}

	token, err := as.issueToken(profile.UserID)
	if err != nil {
		return "", nil, err
	}
	return token, &profile, nil
}

// Login verifies the credentials and returns a fresh session token. An
// unknown email and a wrong password produce the same error.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	user, err := as.Users.GetUserProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.issueToken(user.UserID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (as *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.SigningKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
