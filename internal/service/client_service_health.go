// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/logger"
)

// HealthState is the last known backend availability.
type HealthState struct {
	// Checking reports an in-flight probe.
	Checking bool

	// Healthy is the verdict of the last completed probe.
	Healthy bool

	// Status and Message echo the backend's health payload.
	Status  string
	Message string

	// CheckedAt is when the last probe completed.
	CheckedAt time.Time

	// Err is the failure of the last probe, nil on success.
	Err error
}

type clientHealthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu    sync.Mutex
	state HealthState
}

// NewClientHealthService constructs the health service.
func NewClientHealthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHealthService {
	return &clientHealthService{adapter: serverAdapter, logger: logger}
}

// Check implements [ClientHealthService]. An unreachable or erroring backend
// records an unhealthy state rather than only an error: the status bar shows
// one verdict either way.
func (h *clientHealthService) Check(ctx context.Context) error {
	h.mu.Lock()
	h.state.Checking = true
	h.state.Err = nil
	h.mu.Unlock()

	health, err := h.adapter.HealthCheck(ctx)
	now := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Checking = false
	h.state.CheckedAt = now

	if err != nil {
		h.state.Healthy = false
		h.state.Status = ""
		h.state.Message = ""
		h.state.Err = err
		h.logger.Debug().Err(err).Msg("health check failed")
		return err
	}

	h.state.Healthy = health.Healthy()
	h.state.Status = health.Status
	h.state.Message = health.Message
	return nil
}

// State implements [ClientHealthService].
func (h *clientHealthService) State() HealthState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
