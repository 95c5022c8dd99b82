package service

import "errors"

var (
	// ErrCurrentPasswordRequired is returned by UpdateProfile when a new
	// password is supplied without the current one. The request never
	// leaves the client.
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")

	// ErrEmailAlreadyRegistered is returned by Register when the backend
	// rejects the email as taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidLoginCredentials is returned by Login when the backend
	// rejects the email/password combination.
	ErrInvalidLoginCredentials = errors.New("invalid email or password")

	// ErrSessionExpired is returned when an authenticated call fails
	// because the stored credential is no longer accepted.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrDeckNotFound is returned when an operation targets a deck the
	// backend does not know (or that belongs to another user).
	ErrDeckNotFound = errors.New("deck not found")

	// ErrIncorrectPassword is returned by UpdateProfile when the backend
	// rejects the supplied current password.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrEmailAlreadyVerified is returned by ResendVerification when the
	// address needs no further confirmation.
	ErrEmailAlreadyVerified = errors.New("email already verified")
)
