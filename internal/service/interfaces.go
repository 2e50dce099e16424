// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=service

// PendingChangeQueue is the decoded view of the local queue of offline
// mutations. Counters are encrypted and decrypted on the way in and out.
type PendingChangeQueue interface {
	// FetchPending returns the entries of userID oldest first. Entries that
	// cannot be decoded (unknown change type, unreadable counter) are returned
	// separately in quarantined and stay in the store untouched.
	// An error is returned only when the queue itself cannot be read.
	FetchPending(ctx context.Context, userID string) (changes []models.PendingChange, quarantined []models.QuarantinedChange, err error)

	// Get returns the entry for (userID, entityID).
	Get(ctx context.Context, userID, entityID string) (models.PendingChange, error)

	// Upsert queues change, coalescing it into the existing entry for
	// (UserID, EntityID) when there is one. The existing entry keeps its
	// OriginalRevision.
	Upsert(ctx context.Context, change models.PendingChangeUpsert) error

	// Delete removes a single entry by its queue id.
	Delete(ctx context.Context, id string) error

	// DeleteByEntity removes the entry for (userID, entityID), if any.
	DeleteByEntity(ctx context.Context, userID, entityID string) error

	// DeleteAll empties the queue of userID.
	DeleteAll(ctx context.Context, userID string) error

	// Count returns the number of queued entries of userID, quarantined ones
	// included.
	Count(ctx context.Context, userID string) (int, error)
}

// BackupGenerator creates de-identified copies of records on the remote store.
type BackupGenerator interface {
	// CreateBackup decrypts record, renames it after timestamp and creates it
	// on the remote store as a brand-new record. A non-nil error means no
	// backup exists and the caller must not proceed with a destructive step.
	CreateBackup(ctx context.Context, batch *BatchContext, record models.Record, timestamp time.Time, userID string) error
}

// Resolver reconciles one pending change with the remote store.
type Resolver interface {
	// Resolve applies change and, on success, removes it from the queue.
	// On error the queue entry is left in place.
	Resolve(ctx context.Context, batch *BatchContext, change models.PendingChange) (models.Outcome, error)
}

// BatchProcessor runs one resolution pass over a user's queue.
type BatchProcessor interface {
	// ProcessAll resolves every queued change of userID in FIFO order. Errors
	// of individual items are recorded in the report and do not abort the
	// pass. Errors listing the queue, a locked vault and a cancelled ctx are
	// returned.
	ProcessAll(ctx context.Context, userID string) (models.BatchReport, error)
}

// IDGenerator issues identifiers for new queue entries.
type IDGenerator interface {
	Generate() string
}
