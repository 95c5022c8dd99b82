// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/app"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/mock"
	"github.com/haneefojay/flashai-client/models"
)

func newTestDecksSvc(t *testing.T, ctrl *gomock.Controller) (*clientDecksService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientDecksService(mockAdapter, t.TempDir(), logger.Nop()).(*clientDecksService)
	return svc, mockAdapter
}

func TestDecksFetch_ReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "old"}}

	fetched := []models.Deck{{ID: "d1", Name: "Biology"}, {ID: "d2", Name: "History"}}
	mockAdapter.EXPECT().ListDecks(ctx).Return(fetched, nil)

	require.NoError(t, svc.Fetch(ctx))

	state := svc.State()
	assert.Equal(t, fetched, state.Decks)
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
}

func TestDecksFetch_Error_KeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "d1"}}

	mockAdapter.EXPECT().ListDecks(ctx).Return(nil, adapter.ErrServerUnreachable)

	err := svc.Fetch(ctx)

	require.Error(t, err)
	state := svc.State()
	assert.Len(t, state.Decks, 1)
	assert.ErrorIs(t, state.Err, adapter.ErrServerUnreachable)
}

func TestDecksCreate_AppendsToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "d1"}}

	created := models.Deck{ID: "d2", Name: "Chemistry"}
	mockAdapter.EXPECT().CreateDeck(ctx, models.CreateDeckRequest{Name: "Chemistry"}).Return(created, nil)

	got, err := svc.Create(ctx, models.CreateDeckRequest{Name: "Chemistry"})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	decks := svc.State().Decks
	require.Len(t, decks, 2)
	assert.Equal(t, "d2", decks[1].ID)
}

func TestDecksUpdate_ReplacesById(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "d1", Name: "Old"}, {ID: "d2", Name: "Other"}}

	name := "New"
	updated := models.Deck{ID: "d1", Name: "New"}
	mockAdapter.EXPECT().UpdateDeck(ctx, "d1", models.UpdateDeckRequest{Name: &name}).Return(updated, nil)

	got, err := svc.Update(ctx, "d1", models.UpdateDeckRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	decks := svc.State().Decks
	require.Len(t, decks, 2)
	assert.Equal(t, "New", decks[0].Name)
	assert.Equal(t, "Other", decks[1].Name)
}

func TestDecksDelete_FiltersById(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}

	mockAdapter.EXPECT().DeleteDeck(ctx, "d2").Return(nil)

	require.NoError(t, svc.Delete(ctx, "d2"))

	decks := svc.State().Decks
	require.Len(t, decks, 2)
	assert.Equal(t, "d1", decks[0].ID)
	assert.Equal(t, "d3", decks[1].ID)
}

func TestDecksDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteDeck(ctx, "missing").
		Return(&adapter.APIError{StatusCode: 404, Message: app.MsgDeckNotFound})

	err := svc.Delete(ctx, "missing")

	require.ErrorIs(t, err, ErrDeckNotFound)
}

func TestDecksExportPDF_WritesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	pdf := []byte("%PDF-1.7 fake")
	mockAdapter.EXPECT().ExportDeckPDF(ctx, "d1").Return(pdf, nil)

	path, err := svc.ExportPDF(ctx, "d1")

	require.NoError(t, err)
	assert.Equal(t, "deck-d1.pdf", filepath.Base(path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdf, written)
}

func TestDecksShare_ReturnsURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ShareDeck(ctx, "d1").
		Return(models.DeckShareResponse{ShareURL: "https://flashai.dev/share/abc"}, nil)

	url, err := svc.Share(ctx, "d1")

	require.NoError(t, err)
	assert.Equal(t, "https://flashai.dev/share/abc", url)
}

func TestDecksShared_DoesNotTouchCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDecksSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Decks = []models.Deck{{ID: "mine"}}

	mockAdapter.EXPECT().GetSharedDeck(ctx, "abc").Return(models.Deck{ID: "theirs"}, nil)

	deck, err := svc.Shared(ctx, "abc")

	require.NoError(t, err)
	assert.Equal(t, "theirs", deck.ID)
	require.Len(t, svc.State().Decks, 1)
	assert.Equal(t, "mine", svc.State().Decks[0].ID)
}

func TestDecksState_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDecksSvc(t, ctrl)
	svc.state.Decks = []models.Deck{{ID: "d1", Name: "Biology"}}

	snapshot := svc.State()
	snapshot.Decks[0].Name = "Mutated"

	assert.Equal(t, "Biology", svc.State().Decks[0].Name)
}
