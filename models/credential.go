package models

import (
	"errors"
	"strings"
)

// ErrInvalidCredential is returned by [ParseCredential] when the raw value
// does not contain both a scheme and a token.
var ErrInvalidCredential = errors.New("invalid credential format")

// Credential is the bearer credential issued by the FlashAI backend.
//
// The backend returns the scheme and the token separately (token_type and
// access_token); the client joins them with a single space and uses the
// joined string verbatim as the Authorization header value. The scheme is
// whatever the backend sent (typically "bearer") and is never rewritten.
type Credential struct {
	// TokenType is the authorization scheme as returned by the backend,
	// e.g. "bearer".
	TokenType string `json:"token_type"`

	// AccessToken is the opaque token string.
	AccessToken string `json:"access_token"`
}

// String returns the exact Authorization header value: token type and token
// joined with one space. It implements [fmt.Stringer].
func (c Credential) String() string {
	return c.TokenType + " " + c.AccessToken
}

// IsZero reports whether the credential is empty.
func (c Credential) IsZero() bool {
	return c.TokenType == "" && c.AccessToken == ""
}

// ParseCredential splits a stored credential string back into its scheme and
// token parts. The split happens on the first space only, so the token may
// itself contain spaces (it does not in practice, but the round trip must be
// exact). Returns [ErrInvalidCredential] if either part is empty.
func ParseCredential(raw string) (Credential, error) {
	scheme, token, found := strings.Cut(raw, " ")
	if !found || scheme == "" || token == "" {
		return Credential{}, ErrInvalidCredential
	}

	return Credential{TokenType: scheme, AccessToken: token}, nil
}
