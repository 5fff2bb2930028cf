package services

import "errors"

// Sentinel errors shared across services. Controllers map these onto the
// HTTP error taxonomy with errors.Is.
var (
	// ErrItemNotFound is returned by storage reads that found nothing.
	ErrItemNotFound = errors.New("item not found")

	// ErrConditionFailed is returned when a conditional write loses to an
	// already-existing item.
	ErrConditionFailed = errors.New("conditional write failed")

	// ErrMatchNotFound is returned when a match id does not exist or the
	// requesting user is not one of its participants.
	ErrMatchNotFound = errors.New("match not found")

	// ErrUserNotFound is returned when a user id or email resolves to no
	// active account.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadySwiped is returned on a duplicate swipe for the same
	// ordered (swiper, swipee) pair.
	ErrAlreadySwiped = errors.New("already swiped on this user")

	// ErrInvalidDirection is returned for a swipe direction outside
	// like/dislike/superlike.
	ErrInvalidDirection = errors.New("invalid swipe direction")

	// ErrValidation is returned for malformed input the storage layer
	// should never see.
	ErrValidation = errors.New("validation error")

	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
