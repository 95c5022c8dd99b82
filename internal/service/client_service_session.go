// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/store"
	"github.com/haneefojay/flashai-client/internal/utils"
	"github.com/haneefojay/flashai-client/models"
)

// SessionState is an observable snapshot of the user session. Exactly one of
// a fresh Profile or Err is meaningful after an action settles; starting a
// new action clears the previous error.
type SessionState struct {
	// Loading reports an in-flight session action.
	Loading bool

	// Authenticated reports whether a session is open.
	Authenticated bool

	// Profile is the last fetched account record. Zero when logged out.
	Profile models.UserProfile

	// TokenExpiresAt is the access token's exp claim, decoded without
	// verification for display only. Zero when the token carries none.
	// The backend stays the sole authority on token validity.
	TokenExpiresAt time.Time

	// Err is the failure of the most recent action, nil on success.
	Err error
}

type clientSessionService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu    sync.Mutex
	state SessionState
}

// NewClientSessionService constructs the session service. It is the only
// component that writes the persisted credential; the adapter merely holds an
// in-memory copy for the Authorization header.
func NewClientSessionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

// Restore implements [ClientSessionService]. Loading is observably true for
// the whole attempt and flips back exactly once when it settles. Failures
// are logged, never surfaced: any failure discards the stored credential and
// the client simply starts logged out.
func (s *clientSessionService) Restore(ctx context.Context) bool {
	s.begin()

	raw, err := s.sessions.GetCredential(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCredentialNotFound) {
			s.logger.Err(err).Str("func", "clientSessionService.Restore").Msg("failed to load persisted credential")
		}
		s.settle(nil)
		return false
	}

	credential, err := models.ParseCredential(raw)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Restore").Msg("persisted credential is malformed, discarding")
		s.discardCredential(ctx)
		s.settle(nil)
		return false
	}

	expiry := credentialExpiry(credential)

	s.adapter.SetCredential(credential)

	profile, err := s.adapter.GetProfile(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Restore").Msg("persisted credential rejected, discarding")
		s.adapter.ClearCredential()
		s.discardCredential(ctx)
		s.settle(nil)
		return false
	}

	s.mu.Lock()
	s.state = SessionState{Authenticated: true, Profile: profile, TokenExpiresAt: expiry}
	s.mu.Unlock()

	return true
}

// Register implements [ClientSessionService].
func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.openSession(ctx, func() (models.AuthResponse, error) {
		return s.adapter.Register(ctx, req)
	})
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, req models.LoginRequest) error {
	return s.openSession(ctx, func() (models.AuthResponse, error) {
		return s.adapter.Login(ctx, req)
	})
}

// LoginWithGoogle implements [ClientSessionService].
func (s *clientSessionService) LoginWithGoogle(ctx context.Context, googleCredential string) error {
	return s.openSession(ctx, func() (models.AuthResponse, error) {
		return s.adapter.LoginWithGoogle(ctx, googleCredential)
	})
}

// openSession runs one of the login-style adapter calls, persists the
// returned credential, and fetches the profile. The adapter has already
// stored the credential in memory by the time the call returns.
func (s *clientSessionService) openSession(ctx context.Context, authenticate func() (models.AuthResponse, error)) error {
	s.begin()

	auth, err := authenticate()
	if err != nil {
		return s.settle(mapAdapterError(err))
	}

	if err = s.sessions.SaveCredential(ctx, auth.Credential().String()); err != nil {
		// The session is still usable for this run; only resumption on
		// the next start is lost.
		s.logger.Err(err).Str("func", "clientSessionService.openSession").Msg("failed to persist credential")
	}

	profile, err := s.adapter.GetProfile(ctx)
	if err != nil {
		return s.settle(mapAdapterError(err))
	}

	s.mu.Lock()
	s.state = SessionState{Authenticated: true, Profile: profile, TokenExpiresAt: credentialExpiry(auth.Credential())}
	s.mu.Unlock()

	return nil
}

// Logout implements [ClientSessionService].
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.adapter.ClearCredential()
	s.discardCredential(ctx)

	s.mu.Lock()
	s.state = SessionState{}
	s.mu.Unlock()

	return nil
}

// UpdateProfile implements [ClientSessionService].
func (s *clientSessionService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if req.Password != "" && req.CurrentPassword == "" {
		s.mu.Lock()
		s.state.Err = ErrCurrentPasswordRequired
		s.mu.Unlock()
		return ErrCurrentPasswordRequired
	}

	s.begin()

	profile, err := s.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return s.settle(mapAdapterError(err))
	}

	s.mu.Lock()
	s.state = SessionState{Authenticated: true, Profile: profile, TokenExpiresAt: s.state.TokenExpiresAt}
	s.mu.Unlock()

	return nil
}

// DeleteAccount implements [ClientSessionService].
func (s *clientSessionService) DeleteAccount(ctx context.Context) error {
	s.begin()

	if err := s.adapter.DeleteAccount(ctx); err != nil {
		return s.settle(mapAdapterError(err))
	}

	s.discardCredential(ctx)

	s.mu.Lock()
	s.state = SessionState{}
	s.mu.Unlock()

	return nil
}

// ForgotPassword implements [ClientSessionService].
func (s *clientSessionService) ForgotPassword(ctx context.Context, email string) (string, error) {
	msg, err := s.adapter.ForgotPassword(ctx, email)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg.Message, nil
}

// ResetPassword implements [ClientSessionService].
func (s *clientSessionService) ResetPassword(ctx context.Context, token, password string) (string, error) {
	msg, err := s.adapter.ResetPassword(ctx, token, password)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg.Message, nil
}

// VerifyEmail implements [ClientSessionService].
func (s *clientSessionService) VerifyEmail(ctx context.Context, token string) (string, error) {
	msg, err := s.adapter.VerifyEmail(ctx, token)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg.Message, nil
}

// ResendVerification implements [ClientSessionService].
func (s *clientSessionService) ResendVerification(ctx context.Context, email string) (string, error) {
	msg, err := s.adapter.ResendVerification(ctx, email)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg.Message, nil
}

// State implements [ClientSessionService].
func (s *clientSessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *clientSessionService) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = nil
	s.mu.Unlock()
}

func (s *clientSessionService) settle(err error) error {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = err
	s.mu.Unlock()
	return err
}

// credentialExpiry reads the access token's exp claim for display in the
// session state. Opaque non-JWT tokens yield a zero time.
func credentialExpiry(credential models.Credential) time.Time {
	expiry, err := utils.TokenExpiry(credential.AccessToken)
	if err != nil {
		return time.Time{}
	}
	return expiry
}

// discardCredential removes the persisted credential, logging (not
// returning) failures: a stale row only matters on the next startup, where
// Restore validates it again anyway.
func (s *clientSessionService) discardCredential(ctx context.Context) {
	if err := s.sessions.DeleteCredential(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.discardCredential").Msg("failed to delete persisted credential")
	}
}
