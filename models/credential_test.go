package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_String(t *testing.T) {
	c := Credential{TokenType: "bearer", AccessToken: "abc.def.ghi"}
	assert.Equal(t, "bearer abc.def.ghi", c.String())
}

func TestCredential_String_PreservesScheme(t *testing.T) {
	c := Credential{TokenType: "Token", AccessToken: "xyz"}
	assert.Equal(t, "Token xyz", c.String())
}

func TestParseCredential_RoundTrip(t *testing.T) {
	original := Credential{TokenType: "bearer", AccessToken: "abc.def.ghi"}

	parsed, err := ParseCredential(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseCredential_TokenWithSpaces(t *testing.T) {
	parsed, err := ParseCredential("bearer part one two")
	require.NoError(t, err)
	assert.Equal(t, "bearer", parsed.TokenType)
	assert.Equal(t, "part one two", parsed.AccessToken)
}

func TestParseCredential_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "no space", raw: "bearertoken"},
		{name: "empty scheme", raw: " token"},
		{name: "empty token", raw: "bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCredential(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidCredential)
		})
	}
}

func TestCredential_IsZero(t *testing.T) {
	assert.True(t, Credential{}.IsZero())
	assert.False(t, Credential{TokenType: "bearer", AccessToken: "t"}.IsZero())
}

func TestAuthResponse_Credential(t *testing.T) {
	resp := AuthResponse{AccessToken: "tok", TokenType: "bearer"}
	assert.Equal(t, Credential{TokenType: "bearer", AccessToken: "tok"}, resp.Credential())
}
