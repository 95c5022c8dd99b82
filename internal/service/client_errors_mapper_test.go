// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/app"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "401 invalid credentials",
			in:   &adapter.APIError{StatusCode: 401, Message: app.MsgInvalidEmailOrPassword},
			want: ErrInvalidLoginCredentials,
		},
		{
			name: "401 not authenticated",
			in:   &adapter.APIError{StatusCode: 401, Message: app.MsgNotAuthenticated},
			want: ErrSessionExpired,
		},
		{
			name: "401 could not validate",
			in:   &adapter.APIError{StatusCode: 401, Message: app.MsgCouldNotValidateCredentials},
			want: ErrSessionExpired,
		},
		{
			name: "409 email taken",
			in:   &adapter.APIError{StatusCode: 409, Message: app.MsgEmailAlreadyRegistered},
			want: ErrEmailAlreadyRegistered,
		},
		{
			name: "404 deck not found",
			in:   &adapter.APIError{StatusCode: 404, Message: app.MsgDeckNotFound},
			want: ErrDeckNotFound,
		},
		{
			name: "400 incorrect password",
			in:   &adapter.APIError{StatusCode: 400, Message: app.MsgIncorrectPassword},
			want: ErrIncorrectPassword,
		},
		{
			name: "400 email already verified",
			in:   &adapter.APIError{StatusCode: 400, Message: app.MsgEmailAlreadyVerified},
			want: ErrEmailAlreadyVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapAdapterError(tt.in))
		})
	}
}

func TestMapAdapterError_UnknownMessagesPassThrough(t *testing.T) {
	in := &adapter.APIError{StatusCode: 404, Message: "Flashcard not found"}
	out := mapAdapterError(in)

	// The normalized message survives for display.
	assert.Equal(t, in, out)
	assert.ErrorIs(t, out, adapter.ErrNotFound)
}

func TestMapAdapterError_TransportErrorsPassThrough(t *testing.T) {
	assert.ErrorIs(t, mapAdapterError(adapter.ErrServerUnreachable), adapter.ErrServerUnreachable)

	plain := errors.New("context canceled")
	assert.Equal(t, plain, mapAdapterError(plain))
}
