package models

import "time"

// UserProfile is the account record returned by GET /users/me.
// It is replaced wholesale on every successful profile fetch or update and
// cleared when the session ends.
type UserProfile struct {
	// ID is the server-assigned account identifier.
	ID string `json:"id"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// Name is the display name of the user. May be empty for accounts
	// created through Google sign-in.
	Name string `json:"name"`

	// IsVerified reports whether the email address has been confirmed.
	IsVerified bool `json:"is_verified"`

	// HasPassword reports whether the account has a local password set.
	// Google-only accounts have none until the user creates one.
	HasPassword bool `json:"has_password"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest carries the Google identity credential for
// POST /auth/google.
type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

// UpdateProfileRequest is the partial-update payload for PUT /users/me.
// CurrentPassword must accompany Password whenever a new password is set;
// the client enforces this before the request is sent.
type UpdateProfileRequest struct {
	Name            string `json:"name,omitempty"`
	Password        string `json:"password,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
}

// ForgotPasswordRequest is the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
