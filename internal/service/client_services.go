package service

import (
	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/config"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/store"
)

// ClientServices groups all client-side services into a single value that
// can be passed around the UI layer.
type ClientServices struct {
	SessionService    ClientSessionService
	DecksService      ClientDecksService
	FlashcardsService ClientFlashcardsService
	HealthService     ClientHealthService
	HealthJob         ClientHealthJob
}

// NewClientServices wires the service layer: each service shares the one
// server adapter, and the session service additionally owns the persisted
// credential repository.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages.SessionRepository, serverAdapter, log)
	decksSvc := NewClientDecksService(serverAdapter, appCfg.ExportDir, log)
	cardsSvc := NewClientFlashcardsService(serverAdapter, log)
	healthSvc := NewClientHealthService(serverAdapter, log)

	return &ClientServices{
		SessionService:    sessionSvc,
		DecksService:      decksSvc,
		FlashcardsService: cardsSvc,
		HealthService:     healthSvc,
		HealthJob:         NewClientHealthJob(healthSvc),
	}
}
