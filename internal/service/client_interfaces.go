package service

import (
	"context"
	"time"

	"github.com/haneefojay/flashai-client/models"
)

// ClientSessionService defines the client-side contract for the user session:
// restoring a persisted credential on startup, the login-style flows, profile
// management, and the secondary auth flows (password reset, email
// verification). It is the sole writer of the persisted credential.
type ClientSessionService interface {
	// Restore attempts to resume the previous session from the local
	// store. It loads the persisted credential, hands it to the adapter,
	// and validates it by fetching the profile. Returns true if a session
	// was restored. A missing or rejected credential is not an error:
	// the client simply starts logged out (a rejected credential is also
	// deleted from the store).
	Restore(ctx context.Context) bool

	// Register creates a new account and opens a session: the returned
	// credential is persisted and the profile fetched.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login opens a session with email and password. The returned
	// credential is persisted and the profile fetched.
	Login(ctx context.Context, req models.LoginRequest) error

	// LoginWithGoogle opens a session from a Google identity credential.
	LoginWithGoogle(ctx context.Context, googleCredential string) error

	// Logout ends the session: the persisted credential is deleted, the
	// adapter credential cleared, and the state reset. Local failures are
	// logged but do not keep the user logged in.
	Logout(ctx context.Context) error

	// UpdateProfile applies a partial profile update. Setting a new
	// password without the current one fails locally with
	// [ErrCurrentPasswordRequired] before any request is sent.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error

	// DeleteAccount removes the account on the backend, then tears the
	// local session down like Logout.
	DeleteAccount(ctx context.Context) error

	// ForgotPassword requests a password-reset email.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword sets a new password using an emailed reset token.
	ResetPassword(ctx context.Context, token, password string) (string, error)

	// VerifyEmail confirms the email address using an emailed token.
	VerifyEmail(ctx context.Context, token string) (string, error)

	// ResendVerification requests a fresh verification email.
	ResendVerification(ctx context.Context, email string) (string, error)

	// State returns a snapshot of the current session state.
	State() SessionState
}

// ClientDecksService is a state container over the user's deck collection.
// It keeps an ordered in-memory cache that is mutated in place on
// create/update/delete instead of re-fetching the whole list.
type ClientDecksService interface {
	// Fetch loads the full deck list from the backend and replaces the
	// cache.
	Fetch(ctx context.Context) error

	// Create creates a deck and appends the server-returned record to the
	// cache.
	Create(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error)

	// Update applies a partial update and replaces the cached deck with
	// the same id.
	Update(ctx context.Context, deckID string, req models.UpdateDeckRequest) (models.Deck, error)

	// Delete removes a deck on the backend and filters it out of the
	// cache.
	Delete(ctx context.Context, deckID string) error

	// ExportPDF downloads the deck as a PDF and writes it to
	// deck-<id>.pdf under the configured export directory. Returns the
	// written file path.
	ExportPDF(ctx context.Context, deckID string) (string, error)

	// Share creates (or returns) the deck's public share link.
	Share(ctx context.Context, deckID string) (string, error)

	// Shared fetches a publicly shared deck. It does not touch the cache.
	Shared(ctx context.Context, shareID string) (models.Deck, error)

	// State returns a snapshot of the current deck state.
	State() DecksState
}

// ClientFlashcardsService is a state container over card generation and
// retrieval. Generation results are ephemeral: starting a new generation
// resets the previous cards and summary.
type ClientFlashcardsService interface {
	// Generate produces cards from raw text. Blank text and an
	// out-of-bounds count fail locally before any request is sent.
	Generate(ctx context.Context, req models.GenerateRequest) error

	// GenerateFromFile reads the local file at path and produces cards
	// from its contents via the upload endpoint.
	GenerateFromFile(ctx context.Context, path string, opts models.GenerateOptions) error

	// List fetches the cards of one deck.
	List(ctx context.Context, deckID string) ([]models.Flashcard, error)

	// Shared fetches the cards of a publicly shared deck.
	Shared(ctx context.Context, shareID string) ([]models.Flashcard, error)

	// State returns a snapshot of the current generation state.
	State() FlashcardsState
}

// ClientHealthService reports backend availability.
type ClientHealthService interface {
	// Check probes the backend health endpoint once and records the
	// outcome.
	Check(ctx context.Context) error

	// State returns a snapshot of the last known backend health.
	State() HealthState
}

// ClientHealthJob defines the contract for a background worker that
// periodically re-checks backend health.
type ClientHealthJob interface {
	// Start launches the background polling goroutine. It checks every
	// interval, defaulting to 30 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
