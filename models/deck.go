package models

import "time"

// Deck is a named collection of flashcards. The record is fully server-owned;
// the client keeps an ordered local cache of decks that is mutated
// optimistically on create/update/delete.
type Deck struct {
	// ID is the server-assigned deck identifier.
	ID string `json:"id"`

	// Name is the user-chosen deck title.
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	// Summary is an optional AI-generated summary of the source material
	// the deck was built from.
	Summary string `json:"summary,omitempty"`

	// CreatedAt and UpdatedAt are server-side timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CardCount is the number of flashcards in the deck. Zero is valid.
	CardCount int `json:"card_count"`
}

// CreateDeckRequest is the payload for POST /decks.
type CreateDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateDeckRequest is the partial-update payload for PUT /decks/{id}.
// Nil fields are omitted from the request body and left unchanged.
type UpdateDeckRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeckShareResponse is returned by POST /decks/{id}/share.
type DeckShareResponse struct {
	// ShareURL is the public link under which the deck can be read
	// without authentication.
	ShareURL string `json:"share_url"`
}
