// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneefojay/flashai-client/internal/config"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func authed(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := newTestAdapter(t, serverURL)
	a.SetCredential(models.Credential{TokenType: "bearer", AccessToken: "token-123"})
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"scheme kept", "http://127.0.0.1:8000", "http://127.0.0.1:8000"},
		{"scheme added", "127.0.0.1:8000", "http://127.0.0.1:8000"},
		{"trailing slash trimmed", "https://api.flashai.dev/", "https://api.flashai.dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{AccessToken: "abc", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "abc", got.AccessToken)
	assert.Equal(t, "bearer abc", a.Credential())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"detail": "Email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Email already registered")
	assert.Empty(t, a.Credential())
}

func TestLogin_Success_PreservesTokenType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{AccessToken: "xyz", TokenType: "Token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	// The scheme from the backend is used as-is, never rewritten to Bearer.
	assert.Equal(t, "Token xyz", a.Credential())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "Invalid email or password")
}

func TestLogin_MissingTokenPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"access_token": "abc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Empty(t, a.Credential())
}

func TestLoginWithGoogle_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/google", r.URL.Path)

		var body models.GoogleLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google-id-token", body.Credential)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{AccessToken: "g", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginWithGoogle(context.Background(), "google-id-token")

	require.NoError(t, err)
	assert.Equal(t, "bearer g", a.Credential())
}

func TestLogin_ServerUnreachable(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1") // nothing listens here

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ── Password / email flows ──────────────────────────────────────────────────

func TestForgotPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/forgot-password", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Reset email sent"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ForgotPassword(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Reset email sent", got.Message)
}

func TestResetPassword_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Invalid or expired token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ResetPassword(context.Background(), "expired", "newpass")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualError(t, err, "Invalid or expired token")
}

func TestVerifyEmail_JSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-email", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Verified"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyEmail(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Verified", got.Message)
}

func TestVerifyEmail_HTMLResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Email verified!</body></html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyEmail(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, emailVerifiedMessage, got.Message)
}

func TestResendVerification_EmailInQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/resend-verification", r.URL.Path)
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Verification email sent"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ResendVerification(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Verification email sent", got.Message)
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestGetProfile_SendsCredentialVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "bearer token-123", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserProfile{ID: "u1", Email: "alice@example.com"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL) // no credential set
	_, err := a.GetProfile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body models.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice B", body.Name)

		writeJSON(t, w, http.StatusOK, models.UserProfile{ID: "u1", Name: "Alice B"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.UpdateProfile(context.Background(), models.UpdateProfileRequest{Name: "Alice B"})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
}

func TestDeleteAccount_ClearsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.Empty(t, a.Credential())
}

func TestDeleteAccount_Failure_KeepsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{"detail": "Forbidden"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	err := a.DeleteAccount(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotEmpty(t, a.Credential())
}

// ── Decks ───────────────────────────────────────────────────────────────────

func TestListDecks_Success(t *testing.T) {
	want := []models.Deck{{ID: "d1", Name: "Biology"}, {ID: "d2", Name: "History"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/decks", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.ListDecks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetDeck_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Deck not found"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	_, err := a.GetDeck(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Deck not found")
}

func TestCreateDeck_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decks", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.Deck{ID: "d3", Name: "Chemistry"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.CreateDeck(context.Background(), models.CreateDeckRequest{Name: "Chemistry"})

	require.NoError(t, err)
	assert.Equal(t, "d3", got.ID)
}

func TestUpdateDeck_PartialBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/decks/d1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Renamed", body["name"])
		assert.NotContains(t, body, "description")

		writeJSON(t, w, http.StatusOK, models.Deck{ID: "d1", Name: "Renamed"})
	}))
	defer srv.Close()

	name := "Renamed"
	a := authed(t, srv.URL)
	got, err := a.UpdateDeck(context.Background(), "d1", models.UpdateDeckRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDeleteDeck_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/decks/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	require.NoError(t, a.DeleteDeck(context.Background(), "d1"))
}

func TestExportDeckPDF_ReturnsRawBody(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/decks/d1/export", r.URL.Path)
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.ExportDeckPDF(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestShareDeck_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decks/d1/share", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.DeckShareResponse{ShareURL: "https://flashai.dev/share/abc"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.ShareDeck(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "https://flashai.dev/share/abc", got.ShareURL)
}

func TestGetSharedDeck_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/decks/share/abc", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.Deck{ID: "d1", Name: "Biology"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL) // credential set, but the public call must not send it
	got, err := a.GetSharedDeck(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "Biology", got.Name)
}

// ── Flashcards ──────────────────────────────────────────────────────────────

func TestGenerateFlashcards_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flashcards/generate", r.URL.Path)

		var body models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mitochondria", body.Text)

		writeJSON(t, w, http.StatusOK, models.GenerateResponse{
			Cards:   []models.Flashcard{{ID: "c1", Question: "What is the powerhouse of the cell?"}},
			Summary: "Cell biology basics",
		})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.GenerateFlashcards(context.Background(), models.GenerateRequest{Text: "mitochondria"})

	require.NoError(t, err)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, "Cell biology basics", got.Summary)
}

func TestGenerateFlashcards_MissingCardsArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"summary": "no cards here"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	_, err := a.GenerateFlashcards(context.Background(), models.GenerateRequest{Text: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGenerateFlashcards_CardsNotAnArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"cards": "oops"})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	_, err := a.GenerateFlashcards(context.Background(), models.GenerateRequest{Text: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUploadFileForFlashcards_MultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flashcards/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "notes.pdf", header.Filename)

		assert.Equal(t, "5", r.FormValue("count"))
		assert.Equal(t, "multiple_choice", r.FormValue("question_mode"))
		assert.Empty(t, r.FormValue("deck_id"))

		writeJSON(t, w, http.StatusOK, models.GenerateResponse{Cards: []models.Flashcard{{ID: "c1"}}})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.UploadFileForFlashcards(context.Background(), "notes.pdf", []byte("file body"), models.GenerateOptions{
		Count:        5,
		QuestionMode: models.QuestionModeMultipleChoice,
	})

	require.NoError(t, err)
	require.Len(t, got.Cards, 1)
}

func TestGetFlashcards_Success(t *testing.T) {
	want := []models.Flashcard{{ID: "c1", Question: "Q1", DeckID: "d1"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flashcards/d1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.GetFlashcards(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetSharedFlashcards_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flashcards/share/abc", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Flashcard{{ID: "c1"}})
	}))
	defer srv.Close()

	a := authed(t, srv.URL)
	got, err := a.GetSharedFlashcards(context.Background(), "abc")

	require.NoError(t, err)
	require.Len(t, got, 1)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealthCheck_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "healthy"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.HealthCheck(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Healthy())
}

func TestHealthCheck_Unreachable(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.HealthCheck(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}
