// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/haneefojay/flashai-client/internal/adapter"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/mock"
	"github.com/haneefojay/flashai-client/models"
)

func newTestHealthSvc(t *testing.T, ctrl *gomock.Controller) (*clientHealthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientHealthService(mockAdapter, logger.Nop()).(*clientHealthService)
	return svc, mockAdapter
}

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestHealthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().HealthCheck(ctx).Return(models.HealthResponse{Status: "ok"}, nil)

	require.NoError(t, svc.Check(ctx))

	state := svc.State()
	assert.True(t, state.Healthy)
	assert.Equal(t, "ok", state.Status)
	assert.False(t, state.CheckedAt.IsZero())
	assert.NoError(t, state.Err)
}

func TestHealthCheck_AlternateHealthyStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestHealthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().HealthCheck(ctx).Return(models.HealthResponse{Status: "healthy"}, nil)

	require.NoError(t, svc.Check(ctx))
	assert.True(t, svc.State().Healthy)
}

func TestHealthCheck_UnknownStatusIsUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestHealthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().HealthCheck(ctx).Return(models.HealthResponse{Status: "degraded", Message: "db down"}, nil)

	require.NoError(t, svc.Check(ctx))

	state := svc.State()
	assert.False(t, state.Healthy)
	assert.Equal(t, "degraded", state.Status)
	assert.Equal(t, "db down", state.Message)
}

func TestHealthCheck_Unreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestHealthSvc(t, ctrl)
	ctx := context.Background()

	svc.state.Healthy = true // previous probe succeeded

	mockAdapter.EXPECT().HealthCheck(ctx).Return(models.HealthResponse{}, adapter.ErrServerUnreachable)

	err := svc.Check(ctx)

	require.Error(t, err)
	state := svc.State()
	assert.False(t, state.Healthy)
	assert.ErrorIs(t, state.Err, adapter.ErrServerUnreachable)
}

// stubHealthService counts Check calls without a real adapter.
type stubHealthService struct {
	checks atomic.Int64
}

func (s *stubHealthService) Check(_ context.Context) error {
	s.checks.Add(1)
	return nil
}

func (s *stubHealthService) State() HealthState { return HealthState{} }

func TestHealthJob_StartPollsAndStops(t *testing.T) {
	stub := &stubHealthService{}
	job := NewClientHealthJob(stub)

	job.Start(context.Background(), 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return stub.checks.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	after := stub.checks.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, after, stub.checks.Load(), "no checks after Stop")
}

func TestHealthJob_RunsImmediateCheckOnStart(t *testing.T) {
	stub := &stubHealthService{}
	job := NewClientHealthJob(stub)

	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	assert.GreaterOrEqual(t, stub.checks.Load(), int64(1))
}

func TestHealthJob_RestartStopsPreviousRun(t *testing.T) {
	stub := &stubHealthService{}
	job := NewClientHealthJob(stub)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond) // replaces the first run
	defer job.Stop()

	require.Eventually(t, func() bool {
		return stub.checks.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestHealthJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewClientHealthJob(&stubHealthService{})
	job.Stop()
}

func TestHealthJob_ContextCancelStopsPolling(t *testing.T) {
	stub := &stubHealthService{}
	job := NewClientHealthJob(stub)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	after := stub.checks.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, after, stub.checks.Load(), "no checks after context cancel")
	job.Stop()
}
