// Package store implements the client's local persistence layer: a small
// SQLite database holding the persisted session credential.
package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the session credential between program runs.
// There is exactly one credential slot, addressed by a fixed key; saving
// overwrites any previous value.
type SessionRepository interface {
	// SaveCredential stores (or replaces) the persisted credential.
	SaveCredential(ctx context.Context, credential string) error

	// GetCredential returns the persisted credential, or
	// [ErrCredentialNotFound] if no session has been saved.
	GetCredential(ctx context.Context) (string, error)

	// DeleteCredential removes the persisted credential. Deleting a
	// credential that does not exist is not an error.
	DeleteCredential(ctx context.Context) error
}
