// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// FlashAI backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are normalized into [*APIError] values by mapHTTPError so
// that callers always receive a single displayable message, and can still use
// [errors.Is] against the sentinels in errors.go (e.g. [ErrUnauthorized] for
// 401, [ErrNotFound] for 404). Transport-level failures map to
// [ErrServerUnreachable].
package adapter

import (
	"context"

	"github.com/haneefojay/flashai-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the FlashAI
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the values defined
// in this package.
type ServerAdapter interface {
	// SetCredential stores the credential that will be attached, verbatim,
	// as the Authorization header of all subsequent authenticated
	// requests. The login-style calls invoke it automatically.
	SetCredential(credential models.Credential)

	// ClearCredential drops the in-memory credential. Subsequent requests
	// are sent unauthenticated. Safe to call when no credential is set.
	ClearCredential()

	// Credential returns the exact header value currently attached to
	// authenticated requests, or an empty string if none is set.
	Credential() string

	// Register creates a new account via POST /auth/register. On success
	// the returned token pair is stored via SetCredential.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates via POST /auth/login. On success the returned
	// token pair is stored via SetCredential.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// LoginWithGoogle exchanges a Google identity credential via
	// POST /auth/google. On success the returned token pair is stored via
	// SetCredential.
	LoginWithGoogle(ctx context.Context, credential string) (models.AuthResponse, error)

	// ForgotPassword requests a password-reset email for the address.
	ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error)

	// ResetPassword sets a new password using a reset token from email.
	ResetPassword(ctx context.Context, token, password string) (models.MessageResponse, error)

	// VerifyEmail confirms an email address using the token from the
	// verification link. The backend answers with either JSON or an HTML
	// page depending on its mode; both are accepted and reduced to a
	// message string.
	VerifyEmail(ctx context.Context, token string) (models.MessageResponse, error)

	// ResendVerification asks the backend to send a fresh verification
	// email to the address.
	ResendVerification(ctx context.Context, email string) (models.MessageResponse, error)

	// GetProfile fetches the authenticated user's profile (GET /users/me).
	GetProfile(ctx context.Context) (models.UserProfile, error)

	// UpdateProfile applies a partial profile update (PUT /users/me) and
	// returns the new canonical profile.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.UserProfile, error)

	// DeleteAccount removes the account (DELETE /users/me). On success the
	// in-memory credential is cleared.
	DeleteAccount(ctx context.Context) error

	// ListDecks returns all decks owned by the authenticated user.
	ListDecks(ctx context.Context) ([]models.Deck, error)

	// GetDeck fetches a single deck by id.
	GetDeck(ctx context.Context, deckID string) (models.Deck, error)

	// CreateDeck creates a deck and returns the server-assigned record.
	CreateDeck(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error)

	// UpdateDeck applies a partial update (name and/or description) and
	// returns the updated record.
	UpdateDeck(ctx context.Context, deckID string, req models.UpdateDeckRequest) (models.Deck, error)

	// DeleteDeck removes a deck and all its cards.
	DeleteDeck(ctx context.Context, deckID string) error

	// ExportDeckPDF downloads the deck rendered as a PDF and returns the
	// raw bytes.
	ExportDeckPDF(ctx context.Context, deckID string) ([]byte, error)

	// ShareDeck creates (or returns) the public share link for a deck.
	ShareDeck(ctx context.Context, deckID string) (models.DeckShareResponse, error)

	// GetSharedDeck fetches a publicly shared deck. No auth header is
	// sent: the endpoint is public.
	GetSharedDeck(ctx context.Context, shareID string) (models.Deck, error)

	// GenerateFlashcards generates cards from raw text
	// (POST /flashcards/generate). A 2xx response without a well-formed
	// cards array is rejected with [ErrInvalidResponse].
	GenerateFlashcards(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error)

	// UploadFileForFlashcards generates cards from an uploaded document
	// (POST /flashcards/upload, multipart). fileName is the name reported
	// to the backend; content is the file body. A 2xx response without a
	// well-formed cards array is rejected with [ErrInvalidResponse].
	UploadFileForFlashcards(ctx context.Context, fileName string, content []byte, opts models.GenerateOptions) (models.GenerateResponse, error)

	// GetFlashcards lists the cards of one deck.
	GetFlashcards(ctx context.Context, deckID string) ([]models.Flashcard, error)

	// GetSharedFlashcards lists the cards of a publicly shared deck.
	// No auth header is sent.
	GetSharedFlashcards(ctx context.Context, shareID string) ([]models.Flashcard, error)

	// HealthCheck probes GET /health without authentication.
	HealthCheck(ctx context.Context) (models.HealthResponse, error)
}
