package tui

import (
	"errors"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrServerUnreachable):
		return "Server is unreachable, check your connection"
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrInvalidLoginCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return "This email is already registered"
	case errors.Is(err, service.ErrEmailAlreadyVerified):
		return "This email is already verified"
	case errors.Is(err, service.ErrDeckNotFound):
		return "Deck not found, it may have been deleted"
	}

	return err.Error()
}
