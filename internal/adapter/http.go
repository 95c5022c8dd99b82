// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/haneefojay/flashai-client/internal/config"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/utils"
	"github.com/haneefojay/flashai-client/models"
)

// emailVerifiedMessage stands in for the backend's HTML verification page
// when the endpoint answers in browser mode instead of JSON.
const emailVerifiedMessage = "Email verified successfully"

type httpServerAdapter struct {
	client *utils.HTTPClient

	credential string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredential implements [ServerAdapter]. It stores the credential's
// joined form for use as the Authorization header of all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetCredential(credential models.Credential) {
	h.credential = credential.String()
}

// ClearCredential implements [ServerAdapter].
func (h *httpServerAdapter) ClearCredential() {
	h.credential = ""
}

// Credential implements [ServerAdapter]. It returns the exact Authorization
// header value currently held by the adapter, or an empty string if none has
// been set.
func (h *httpServerAdapter) Credential() string {
	return h.credential
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register and stores the returned token pair via SetCredential.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.loginStyleCall(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs the email/password payload to
// POST /auth/login and stores the returned token pair via SetCredential.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.loginStyleCall(ctx, "/auth/login", req)
}

// LoginWithGoogle implements [ServerAdapter]. It POSTs the Google identity
// credential to POST /auth/google and stores the returned token pair via
// SetCredential.
func (h *httpServerAdapter) LoginWithGoogle(ctx context.Context, credential string) (models.AuthResponse, error) {
	return h.loginStyleCall(ctx, "/auth/google", models.GoogleLoginRequest{Credential: credential})
}

func (h *httpServerAdapter) loginStyleCall(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.AccessToken == "" || auth.TokenType == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: missing token pair", ErrInvalidResponse)
	}

	h.SetCredential(auth.Credential())
	return auth, nil
}

// ForgotPassword implements [ServerAdapter]. It POSTs the address to
// POST /auth/forgot-password.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	return h.messageCall(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.ForgotPasswordRequest{Email: email}).
			Post("/auth/forgot-password")
	}, "forgot password")
}

// ResetPassword implements [ServerAdapter]. It POSTs the reset token and the
// new password to POST /auth/reset-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, token, password string) (models.MessageResponse, error) {
	return h.messageCall(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.ResetPasswordRequest{Token: token, Password: password}).
			Post("/auth/reset-password")
	}, "reset password")
}

// VerifyEmail implements [ServerAdapter]. It GETs
// GET /auth/verify-email?token=... . The endpoint serves an HTML page when
// opened from a browser link and JSON otherwise; an HTML 2xx body is reduced
// to a fixed success message, a JSON body is decoded as usual.
func (h *httpServerAdapter) VerifyEmail(ctx context.Context, token string) (models.MessageResponse, error) {
	resp, err := h.request(ctx).
		SetQueryParam("token", token).
		Get("/auth/verify-email")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("verify email request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	if strings.Contains(resp.Header().Get("Content-Type"), "text/html") {
		return models.MessageResponse{Message: emailVerifiedMessage}, nil
	}

	var msg models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &msg); err != nil {
		return models.MessageResponse{}, fmt.Errorf("decode verify email response: %w", err)
	}
	return msg, nil
}

// ResendVerification implements [ServerAdapter]. It POSTs to
// POST /auth/resend-verification?email=... (the address travels in the query
// string, not the body).
func (h *httpServerAdapter) ResendVerification(ctx context.Context, email string) (models.MessageResponse, error) {
	return h.messageCall(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("email", email).
			Post("/auth/resend-verification")
	}, "resend verification")
}

func (h *httpServerAdapter) messageCall(ctx context.Context, send func(*resty.Request) (*resty.Response, error), op string) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := send(h.request(ctx).SetResult(&msg))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("%s request: %w", op, mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// GetProfile implements [ServerAdapter]. It GETs GET /users/me. Requires a
// credential to be set.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/users/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the partial update to
// PUT /users/me and returns the updated profile. Requires a credential.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Put("/users/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update profile request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// DeleteAccount implements [ServerAdapter]. It sends DELETE /users/me and
// clears the in-memory credential on success.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/users/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.ClearCredential()
	return nil
}

// ListDecks implements [ServerAdapter]. It GETs GET /decks and decodes the
// deck array. Requires a credential.
func (h *httpServerAdapter) ListDecks(ctx context.Context) ([]models.Deck, error) {
	resp, err := h.authedRequest(ctx).Get("/decks")
	if err != nil {
		return nil, fmt.Errorf("list decks request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var decks []models.Deck
	if err = json.Unmarshal(resp.Body(), &decks); err != nil {
		return nil, fmt.Errorf("decode decks response: %w", err)
	}

	return decks, nil
}

// GetDeck implements [ServerAdapter]. It GETs GET /decks/{id}.
// Requires a credential.
func (h *httpServerAdapter) GetDeck(ctx context.Context, deckID string) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.authedRequest(ctx).
		SetResult(&deck).
		Get("/decks/" + url.PathEscape(deckID))
	if err != nil {
		return models.Deck{}, fmt.Errorf("get deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// CreateDeck implements [ServerAdapter]. It POSTs the new deck to
// POST /decks and returns the server-assigned record. Requires a credential.
func (h *httpServerAdapter) CreateDeck(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&deck).
		Post("/decks")
	if err != nil {
		return models.Deck{}, fmt.Errorf("create deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// UpdateDeck implements [ServerAdapter]. It PUTs the partial update to
// PUT /decks/{id} and returns the updated record. Requires a credential.
func (h *httpServerAdapter) UpdateDeck(ctx context.Context, deckID string, req models.UpdateDeckRequest) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&deck).
		Put("/decks/" + url.PathEscape(deckID))
	if err != nil {
		return models.Deck{}, fmt.Errorf("update deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// DeleteDeck implements [ServerAdapter]. It sends DELETE /decks/{id}.
// Requires a credential.
func (h *httpServerAdapter) DeleteDeck(ctx context.Context, deckID string) error {
	resp, err := h.authedRequest(ctx).Delete("/decks/" + url.PathEscape(deckID))
	if err != nil {
		return fmt.Errorf("delete deck request: %w", mapTransportError(err))
	}

	return mapHTTPError(resp)
}

// ExportDeckPDF implements [ServerAdapter]. It GETs
// GET /decks/{id}/export?format=pdf and returns the raw PDF bytes.
// Requires a credential.
func (h *httpServerAdapter) ExportDeckPDF(ctx context.Context, deckID string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("format", "pdf").
		Get("/decks/" + url.PathEscape(deckID) + "/export")
	if err != nil {
		return nil, fmt.Errorf("export deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ShareDeck implements [ServerAdapter]. It POSTs to POST /decks/{id}/share
// and returns the public share link. Requires a credential.
func (h *httpServerAdapter) ShareDeck(ctx context.Context, deckID string) (models.DeckShareResponse, error) {
	var share models.DeckShareResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&share).
		Post("/decks/" + url.PathEscape(deckID) + "/share")
	if err != nil {
		return models.DeckShareResponse{}, fmt.Errorf("share deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeckShareResponse{}, err
	}

	return share, nil
}

// GetSharedDeck implements [ServerAdapter]. It GETs the public endpoint
// GET /decks/share/{shareId} without an Authorization header.
func (h *httpServerAdapter) GetSharedDeck(ctx context.Context, shareID string) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.request(ctx).
		SetResult(&deck).
		Get("/decks/share/" + url.PathEscape(shareID))
	if err != nil {
		return models.Deck{}, fmt.Errorf("get shared deck request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// GenerateFlashcards implements [ServerAdapter]. It POSTs the generation
// request to POST /flashcards/generate. The 2xx body must contain a cards
// array; anything else is rejected with [ErrInvalidResponse]. Requires a
// credential.
func (h *httpServerAdapter) GenerateFlashcards(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/flashcards/generate")
	if err != nil {
		return models.GenerateResponse{}, fmt.Errorf("generate flashcards request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GenerateResponse{}, err
	}

	return decodeGenerateResponse(resp.Body())
}

// UploadFileForFlashcards implements [ServerAdapter]. It uploads the
// document as a multipart form to POST /flashcards/upload with the optional
// generation parameters as plain form fields. The 2xx body must contain a
// cards array. Requires a credential.
func (h *httpServerAdapter) UploadFileForFlashcards(ctx context.Context, fileName string, content []byte, opts models.GenerateOptions) (models.GenerateResponse, error) {
	req := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(content))

	if opts.Count != 0 {
		req.SetFormData(map[string]string{"count": strconv.Itoa(opts.Count)})
	}
	if opts.QuestionMode != "" {
		req.SetFormData(map[string]string{"question_mode": string(opts.QuestionMode)})
	}
	if opts.Difficulty != "" {
		req.SetFormData(map[string]string{"difficulty": string(opts.Difficulty)})
	}
	if opts.DeckID != "" {
		req.SetFormData(map[string]string{"deck_id": opts.DeckID})
	}

	resp, err := req.Post("/flashcards/upload")
	if err != nil {
		return models.GenerateResponse{}, fmt.Errorf("upload flashcards request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GenerateResponse{}, err
	}

	return decodeGenerateResponse(resp.Body())
}

// GetFlashcards implements [ServerAdapter]. It GETs GET /flashcards/{deckId}
// and decodes the card array. Requires a credential.
func (h *httpServerAdapter) GetFlashcards(ctx context.Context, deckID string) ([]models.Flashcard, error) {
	resp, err := h.authedRequest(ctx).Get("/flashcards/" + url.PathEscape(deckID))
	if err != nil {
		return nil, fmt.Errorf("get flashcards request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err = json.Unmarshal(resp.Body(), &cards); err != nil {
		return nil, fmt.Errorf("decode flashcards response: %w", err)
	}

	return cards, nil
}

// GetSharedFlashcards implements [ServerAdapter]. It GETs the public
// endpoint GET /flashcards/share/{shareId} without an Authorization header.
func (h *httpServerAdapter) GetSharedFlashcards(ctx context.Context, shareID string) ([]models.Flashcard, error) {
	resp, err := h.request(ctx).Get("/flashcards/share/" + url.PathEscape(shareID))
	if err != nil {
		return nil, fmt.Errorf("get shared flashcards request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err = json.Unmarshal(resp.Body(), &cards); err != nil {
		return nil, fmt.Errorf("decode shared flashcards response: %w", err)
	}

	return cards, nil
}

// HealthCheck implements [ServerAdapter]. It probes GET /health without
// authentication.
func (h *httpServerAdapter) HealthCheck(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.request(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health check request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// request starts an unauthenticated request carrying the per-request
// correlation id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
}

// authedRequest starts a request carrying the stored credential verbatim as
// the Authorization header. The header is omitted entirely when no
// credential is set: the backend's 401 is more informative than a malformed
// header.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if credential := h.Credential(); credential != "" {
		req.SetHeader("Authorization", credential)
	}
	return req
}

// decodeGenerateResponse enforces the generation contract: a 2xx body must
// hold a JSON object with a `cards` array. A missing or malformed array maps
// to [ErrInvalidResponse].
func decodeGenerateResponse(body []byte) (models.GenerateResponse, error) {
	var probe struct {
		Cards   json.RawMessage `json:"cards"`
		Summary string          `json:"summary"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return models.GenerateResponse{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	cardsJSON := bytes.TrimSpace(probe.Cards)
	if len(cardsJSON) == 0 || cardsJSON[0] != '[' {
		return models.GenerateResponse{}, fmt.Errorf("%w: missing cards array", ErrInvalidResponse)
	}

	var cards []models.Flashcard
	if err := json.Unmarshal(cardsJSON, &cards); err != nil {
		return models.GenerateResponse{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return models.GenerateResponse{Cards: cards, Summary: probe.Summary}, nil
}
