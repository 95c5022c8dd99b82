// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// FlashAI client services.
//
// All Msg* constants are the human-readable message strings the backend puts
// into its error response bodies. The service layer matches normalized error
// messages against them to recognise well-known failures; keeping them in one
// place ensures consistent matching throughout the client.
package app

const (
	// MsgEmailAlreadyRegistered is returned by POST /auth/register when an
	// account with the same email already exists.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidEmailOrPassword is returned by POST /auth/login when the
	// supplied email/password combination does not match any account.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgNotAuthenticated is returned by authenticated endpoints when the
	// Authorization header is missing or malformed.
	MsgNotAuthenticated = "Not authenticated"

	// MsgCouldNotValidateCredentials is returned by authenticated
	// endpoints when the token is expired or fails verification.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgDeckNotFound is returned when a deck id does not exist or belongs
	// to another user.
	MsgDeckNotFound = "Deck not found"

	// MsgIncorrectPassword is returned by PUT /users/me when the supplied
	// current password does not match the stored one.
	MsgIncorrectPassword = "Incorrect password"

	// MsgInvalidOrExpiredToken is returned by POST /auth/reset-password
	// and GET /auth/verify-email when the emailed token is stale.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgEmailAlreadyVerified is returned by POST /auth/resend-verification
	// when the address needs no further verification.
	MsgEmailAlreadyVerified = "Email already verified"
)
