package services

import (
	"context"
	"testing"
	"time"

	"flare_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users UserAccountStore) *AuthService {
	return &AuthService{
		Users:      users,
		SigningKey: []byte("test-signing-key"),
		TokenTTL:   time.Hour,
	}
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Email:    "Ada@Example.com",
		Password: "hunter22",
		Name:     "Ada",
		Age:      29,
		Gender:   models.GenderFemale,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeDirectory()
	svc := newAuthService(users)

	token, profile, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", profile.EmailID)
	assert.True(t, profile.IsActive)
	assert.Equal(t, models.DefaultPreferences(), profile.Preferences)
	assert.NotEqual(t, "hunter22", profile.Password, "password must be stored hashed")

	// The issued token carries the user id as subject.
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-signing-key"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, profile.UserID, claims.Subject)

	loginToken, loggedIn, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, profile.UserID, loggedIn.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeDirectory())

	_, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsMinors(t *testing.T) {
	svc := newAuthService(newFakeDirectory())

	input := validRegistration()
	input.Age = 17
	_, _, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterRejectsUnknownGender(t *testing.T) {
	svc := newAuthService(newFakeDirectory())

	input := validRegistration()
	input.Gender = "robot"
	_, _, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeDirectory())

	_, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeDirectory())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
