package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/service"
)

type syncJob struct {
	batch  service.BatchProcessor
	logger *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls batch.ProcessAll on a ticker. The
// job is idle until Start is called.
func NewSyncJob(batch service.BatchProcessor, logger *logger.Logger) SyncJob {
	return &syncJob{
		batch:   batch,
		logger:  logger,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements SyncJob. If interval is zero or negative it defaults to
// config.DefaultSyncInterval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, userID)
			case <-j.trigger:
				j.run(jobCtx, userID)
			}
		}
	}()
}

// Trigger implements SyncJob.
func (j *syncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) run(ctx context.Context, userID string) {
	report, err := j.batch.ProcessAll(ctx, userID)
	if err != nil {
		j.logger.Err(err).
			Str("func", "syncJob.run").
			Str("user_id", userID).
			Msg("resolution pass failed")
		return
	}
	if report.Total > 0 {
		j.logger.Debug().
			Str("func", "syncJob.run").
			Str("user_id", userID).
			Int("resolved", report.Resolved).
			Int("failed", report.Failed).
			Int("skipped", report.Skipped).
			Msg("resolution pass done")
	}
}
