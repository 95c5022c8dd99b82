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

// FlashcardsState is an observable snapshot of the latest generation.
type FlashcardsState struct {
	// Generating reports an in-flight generation.
	Generating bool

	// Cards holds the result of the most recent successful generation.
	Cards []models.Flashcard

	// Summary is the AI summary accompanying the generation, if any.
	Summary string

	// Err is the failure of the most recent generation, nil on success.
	Err error
}

type clientFlashcardsService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu    sync.Mutex
	state FlashcardsState
}

// NewClientFlashcardsService constructs the flashcard service.
func NewClientFlashcardsService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientFlashcardsService {
	return &clientFlashcardsService{adapter: serverAdapter, logger: logger}
}

// Generate implements [ClientFlashcardsService]. Local validation failures
// are recorded in the state and returned without touching the network.
func (f *clientFlashcardsService) Generate(ctx context.Context, req models.GenerateRequest) error {
	if err := req.Validate(); err != nil {
		f.mu.Lock()
		f.state.Err = err
		f.mu.Unlock()
		return err
	}

	f.begin()

	result, err := f.adapter.GenerateFlashcards(ctx, req)
	if err != nil {
		return f.settle(mapAdapterError(err))
	}

	f.mu.Lock()
	f.state = FlashcardsState{Cards: result.Cards, Summary: result.Summary}
	f.mu.Unlock()

	return nil
}

// GenerateFromFile implements [ClientFlashcardsService]. The file is read
// into memory and shipped as a multipart upload.
func (f *clientFlashcardsService) GenerateFromFile(ctx context.Context, path string, opts models.GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		f.mu.Lock()
		f.state.Err = err
		f.mu.Unlock()
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read upload file: %w", err)
		f.mu.Lock()
		f.state.Err = err
		f.mu.Unlock()
		return err
	}

	f.begin()

	result, err := f.adapter.UploadFileForFlashcards(ctx, filepath.Base(path), content, opts)
	if err != nil {
		return f.settle(mapAdapterError(err))
	}

	f.mu.Lock()
	f.state = FlashcardsState{Cards: result.Cards, Summary: result.Summary}
	f.mu.Unlock()

	return nil
}

// List implements [ClientFlashcardsService].
func (f *clientFlashcardsService) List(ctx context.Context, deckID string) ([]models.Flashcard, error) {
	cards, err := f.adapter.GetFlashcards(ctx, deckID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return cards, nil
}

// Shared implements [ClientFlashcardsService].
func (f *clientFlashcardsService) Shared(ctx context.Context, shareID string) ([]models.Flashcard, error) {
	cards, err := f.adapter.GetSharedFlashcards(ctx, shareID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return cards, nil
}

// State implements [ClientFlashcardsService].
func (f *clientFlashcardsService) State() FlashcardsState {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := f.state
	snapshot.Cards = make([]models.Flashcard, len(f.state.Cards))
	copy(snapshot.Cards, f.state.Cards)
	return snapshot
}

// begin marks a generation as in flight and resets the previous result:
// stale cards from an earlier generation must never be shown alongside a new
// run's outcome.
func (f *clientFlashcardsService) begin() {
	f.mu.Lock()
	f.state = FlashcardsState{Generating: true}
	f.mu.Unlock()
}

func (f *clientFlashcardsService) settle(err error) error {
	f.mu.Lock()
	f.state.Generating = false
	f.state.Err = err
	f.mu.Unlock()
	return err
}
