// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Messages the backend is known to emit map to dedicated
// sentinels; everything else passes through with its normalized message
// intact so the UI can still display it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractMessage(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailOrPassword:
			return ErrInvalidLoginCredentials
		case app.MsgNotAuthenticated, app.MsgCouldNotValidateCredentials:
			return ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyRegistered {
			return ErrEmailAlreadyRegistered
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgDeckNotFound {
			return ErrDeckNotFound
		}

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgIncorrectPassword:
			return ErrIncorrectPassword
		case app.MsgEmailAlreadyVerified:
			return ErrEmailAlreadyVerified
		}
	}

	return err
}

// extractMessage pulls the normalized message out of an [*adapter.APIError],
// falling back to the plain error text.
func extractMessage(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
