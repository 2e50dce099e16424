// Package workers provides the background triggers of the offsync engine.
//
// A [SyncJob] runs a resolution pass over the pending change queue of one
// user on a fixed interval, and on demand through Trigger (for instance when
// connectivity is regained).
package workers

import (
	"context"
	"time"
)

// SyncJob is a periodic resolution pass that can be started and stopped.
//
// Example usage:
//
//	job := workers.NewSyncJob(services.Batch, logger)
//	job.Start(ctx, "user-1", 5*time.Minute)
//	defer job.Stop()
type SyncJob interface {
	// Start stops a running job, if any, and starts a new one for userID.
	Start(ctx context.Context, userID string, interval time.Duration)
	// Trigger requests an immediate pass. Requests made while a pass is
	// already pending are merged into one.
	Trigger()
	// Stop cancels the job and waits for the running pass to return.
	Stop()
}
