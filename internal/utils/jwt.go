package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes tokenString as a JWT without verifying its signature
// and returns the expiry time from the "exp" claim.
//
// The access token issued by the FlashAI backend is opaque to the client and
// is never validated locally; this helper exists purely for display (the
// session state carries the expiry and the profile view renders it). The
// backend remains the sole authority on token validity.
//
// Returns an error if the string is not a JWT or carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}
