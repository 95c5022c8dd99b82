package models

// AuthResponse is returned by the three login-style endpoints
// (register, login, Google sign-in).
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credential joins the token type and access token into the credential the
// client stores and sends verbatim as the Authorization header.
func (a AuthResponse) Credential() Credential {
	return Credential{TokenType: a.TokenType, AccessToken: a.AccessToken}
}

// MessageResponse is the generic `{message}` body returned by several
// auth endpoints (forgot/reset password, verify email, resend verification).
type MessageResponse struct {
	Message string `json:"message"`
}

// GenerateResponse is returned by the generation endpoints. A well-formed
// response always carries a Cards slice; a 2xx body without one is treated
// as a backend contract violation by the adapter.
type GenerateResponse struct {
	Cards   []Flashcard `json:"cards"`
	Summary string      `json:"summary,omitempty"`
}

// HealthResponse is returned by the unauthenticated GET /health probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy interprets the probe result: the backend reports either "ok" or
// "healthy" depending on its version, anything else counts as unhealthy.
func (h HealthResponse) Healthy() bool {
	return h.Status == "ok" || h.Status == "healthy"
}
