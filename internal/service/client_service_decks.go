// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/models"
)

// DecksState is an observable snapshot of the deck cache.
type DecksState struct {
	// Loading reports an in-flight deck action.
	Loading bool

	// Decks is the ordered cached deck list.
	Decks []models.Deck

	// Err is the failure of the most recent action, nil on success.
	Err error
}

type clientDecksService struct {
	adapter   adapter.ServerAdapter
	exportDir string
	logger    *logger.Logger

	mu    sync.Mutex
	state DecksState
}

// NewClientDecksService constructs the deck service. exportDir is where
// ExportPDF writes downloaded files.
func NewClientDecksService(serverAdapter adapter.ServerAdapter, exportDir string, logger *logger.Logger) ClientDecksService {
	return &clientDecksService{adapter: serverAdapter, exportDir: exportDir, logger: logger}
}

// Fetch implements [ClientDecksService]. The cache is replaced wholesale.
func (d *clientDecksService) Fetch(ctx context.Context) error {
	d.begin()

	decks, err := d.adapter.ListDecks(ctx)
	if err != nil {
		return d.settle(mapAdapterError(err))
	}

	d.mu.Lock()
	d.state = DecksState{Decks: decks}
	d.mu.Unlock()

	return nil
}

// Create implements [ClientDecksService]. The server-returned record is
// appended to the cache, preserving list order without a re-fetch.
func (d *clientDecksService) Create(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error) {
	d.begin()

	deck, err := d.adapter.CreateDeck(ctx, req)
	if err != nil {
		return models.Deck{}, d.settle(mapAdapterError(err))
	}

	d.mu.Lock()
	d.state.Loading = false
	d.state.Decks = append(d.state.Decks, deck)
	d.mu.Unlock()

	return deck, nil
}

// Update implements [ClientDecksService]. The cached deck with the same id
// is replaced by the server-returned record.
func (d *clientDecksService) Update(ctx context.Context, deckID string, req models.UpdateDeckRequest) (models.Deck, error) {
	d.begin()

	deck, err := d.adapter.UpdateDeck(ctx, deckID, req)
	if err != nil {
		return models.Deck{}, d.settle(mapAdapterError(err))
	}

	d.mu.Lock()
	d.state.Loading = false
	for i := range d.state.Decks {
		if d.state.Decks[i].ID == deck.ID {
			d.state.Decks[i] = deck
			break
		}
	}
	d.mu.Unlock()

	return deck, nil
}

// Delete implements [ClientDecksService]. The deleted deck is filtered out
// of the cache.
func (d *clientDecksService) Delete(ctx context.Context, deckID string) error {
	d.begin()

	if err := d.adapter.DeleteDeck(ctx, deckID); err != nil {
		return d.settle(mapAdapterError(err))
	}

	d.mu.Lock()
	d.state.Loading = false
	kept := d.state.Decks[:0]
	for _, deck := range d.state.Decks {
		if deck.ID != deckID {
			kept = append(kept, deck)
		}
	}
	d.state.Decks = kept
	d.mu.Unlock()

	return nil
}

// ExportPDF implements [ClientDecksService]. The file lands at
// <exportDir>/deck-<id>.pdf; an existing file is overwritten.
func (d *clientDecksService) ExportPDF(ctx context.Context, deckID string) (string, error) {
	pdf, err := d.adapter.ExportDeckPDF(ctx, deckID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	path := filepath.Join(d.exportDir, fmt.Sprintf("deck-%s.pdf", deckID))
	if err = os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write exported deck: %w", err)
	}

	d.logger.Info().Str("path", path).Str("deck_id", deckID).Msg("deck exported")
	return path, nil
}

// Share implements [ClientDecksService].
func (d *clientDecksService) Share(ctx context.Context, deckID string) (string, error) {
	share, err := d.adapter.ShareDeck(ctx, deckID)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return share.ShareURL, nil
}

// Shared implements [ClientDecksService].
func (d *clientDecksService) Shared(ctx context.Context, shareID string) (models.Deck, error) {
	deck, err := d.adapter.GetSharedDeck(ctx, shareID)
	if err != nil {
		return models.Deck{}, mapAdapterError(err)
	}
	return deck, nil
}

// State implements [ClientDecksService]. The returned slice is a copy; the
// caller may range over it while actions mutate the cache.
func (d *clientDecksService) State() DecksState {
	d.mu.Lock()
	defer d.mu.Unlock()

	snapshot := d.state
	snapshot.Decks = make([]models.Deck, len(d.state.Decks))
	copy(snapshot.Decks, d.state.Decks)
	return snapshot
}

func (d *clientDecksService) begin() {
	d.mu.Lock()
	d.state.Loading = true
	d.state.Err = nil
	d.mu.Unlock()
}

func (d *clientDecksService) settle(err error) error {
	d.mu.Lock()
	d.state.Loading = false
	d.state.Err = err
	d.mu.Unlock()
	return err
}
