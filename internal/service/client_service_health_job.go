package service

import (
	"context"
	"sync"
	"time"

	"github.com/haneefojay/flashai-client/internal/config"
)

type clientHealthJob struct {
	healthService ClientHealthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHealthJob creates a clientHealthJob that calls
// healthService.Check on a ticker. The job is idle until Start is called.
func NewClientHealthJob(healthService ClientHealthService) ClientHealthJob {
	return &clientHealthJob{healthService: healthService}
}

// Start implements ClientHealthJob. It stops any previously running job,
// runs one immediate check, then launches a background goroutine that checks
// every interval. If interval is zero or negative it defaults to 30 seconds.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientHealthJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultHealthCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	_ = j.healthService.Check(ctx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.healthService.Check(jobCtx)
			}
		}
	}()
}

// Stop implements ClientHealthJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientHealthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
