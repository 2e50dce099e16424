// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/store"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

var unresolved = models.Outcome{Kind: models.OutcomeUnresolved}

type conflictResolver struct {
	queue   PendingChangeQueue
	remote  adapter.RemoteStore
	records store.LocalRecordRepository
	backups BackupGenerator
	policy  RevisionPolicy
}

// NewConflictResolver returns the [Resolver] of the resolution pass.
func NewConflictResolver(
	queue PendingChangeQueue,
	remote adapter.RemoteStore,
	records store.LocalRecordRepository,
	backups BackupGenerator,
	policy RevisionPolicy,
) Resolver {
	return &conflictResolver{
		queue:   queue,
		remote:  remote,
		records: records,
		backups: backups,
		policy:  policy,
	}
}

func (r *conflictResolver) Resolve(ctx context.Context, batch *BatchContext, change models.PendingChange) (models.Outcome, error) {
	if change.EntityID == "" {
		return unresolved, ErrMissingEntityID
	}

	switch change.ChangeType {
	case models.ChangeCreate:
		return r.resolveCreate(ctx, change)
	case models.ChangeUpdate:
		return r.resolveUpdate(ctx, batch, change)
	case models.ChangeSoftDelete, models.ChangeHardDelete:
		return r.resolveDelete(ctx, change, change.ChangeType.Permanent())
	default:
		return unresolved, fmt.Errorf("%w: %q", ErrUnsupportedChangeType, change.ChangeType)
	}
}

// resolveCreate pushes a record created offline. The temporary id is dropped
// so that the remote store assigns a real one.
func (r *conflictResolver) resolveCreate(ctx context.Context, change models.PendingChange) (models.Outcome, error) {
	record, err := localRecord(change)
	if err != nil {
		return unresolved, err
	}
	record.ID = ""

	if err = r.pushCreate(ctx, change, record); err != nil {
		return unresolved, err
	}
	if err = r.complete(ctx, change); err != nil {
		return unresolved, err
	}

	return models.Outcome{Kind: models.OutcomeCreated}, nil
}

func (r *conflictResolver) resolveUpdate(ctx context.Context, batch *BatchContext, change models.PendingChange) (models.Outcome, error) {
	local, err := localRecord(change)
	if err != nil {
		return unresolved, err
	}

	remote, err := r.remote.GetRecord(ctx, change.EntityID)
	if errors.Is(err, adapter.ErrNotFound) {
		// deleted remotely while offline: bring the edited record back
		local.ID = change.EntityID
		if err = r.pushCreate(ctx, change, local); err != nil {
			return unresolved, err
		}
		if err = r.complete(ctx, change); err != nil {
			return unresolved, err
		}
		return models.Outcome{Kind: models.OutcomeRemoteNotFound}, nil
	}
	if err != nil {
		return unresolved, fmt.Errorf("fetch remote record: %w", err)
	}

	outcome := r.policy.Classify(change, remote)

	switch {
	case outcome.Kind == models.OutcomeHardConflict && outcome.Winner == models.RemoteWins:
		if err = r.backups.CreateBackup(ctx, batch, local, change.LocalTimestamp(), change.UserID); err != nil {
			return unresolved, fmt.Errorf("backup local version: %w", err)
		}
		if err = r.records.WriteRecord(ctx, change.UserID, remote); err != nil {
			return unresolved, fmt.Errorf("overwrite local cache: %w", err)
		}

	case outcome.Kind == models.OutcomeHardConflict, outcome.Kind == models.OutcomeSoftConflict:
		if err = r.backups.CreateBackup(ctx, batch, remote, remote.RevisionDate, change.UserID); err != nil {
			return unresolved, fmt.Errorf("backup remote version: %w", err)
		}
		if err = r.pushUpdate(ctx, change, local, remote); err != nil {
			return unresolved, err
		}

	default:
		if err = r.pushUpdate(ctx, change, local, remote); err != nil {
			return unresolved, err
		}
	}

	if err = r.complete(ctx, change); err != nil {
		return unresolved, err
	}
	return outcome, nil
}

// resolveDelete handles soft and hard deletes; permanent picks the remote call.
func (r *conflictResolver) resolveDelete(ctx context.Context, change models.PendingChange, permanent bool) (models.Outcome, error) {
	remote, err := r.remote.GetRecord(ctx, change.EntityID)
	if errors.Is(err, adapter.ErrNotFound) {
		if err = r.records.DeleteRecord(ctx, change.UserID, change.EntityID); err != nil {
			return unresolved, fmt.Errorf("delete local copy: %w", err)
		}
		if err = r.complete(ctx, change); err != nil {
			return unresolved, err
		}
		return models.Outcome{Kind: models.OutcomeRemoteNotFound}, nil
	}
	if err != nil {
		return unresolved, fmt.Errorf("fetch remote record: %w", err)
	}

	if HasConflict(change.OriginalRevision, remote.RevisionDate) {
		// the record changed remotely; surface it again instead of deleting
		if err = r.records.WriteRecord(ctx, change.UserID, remote); err != nil {
			return unresolved, fmt.Errorf("overwrite local cache: %w", err)
		}
		if err = r.complete(ctx, change); err != nil {
			return unresolved, err
		}
		return models.Outcome{Kind: models.OutcomeHardConflict, Winner: models.RemoteWins}, nil
	}

	if permanent {
		if err = r.remote.HardDeleteRecord(ctx, change.EntityID); err != nil {
			return unresolved, fmt.Errorf("hard delete on remote: %w", err)
		}
		if err = r.records.DeleteRecord(ctx, change.UserID, change.EntityID); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "conflictResolver.resolveDelete").
				Msg("failed to drop local copy of hard-deleted record")
		}
	} else {
		if err = r.remote.SoftDeleteRecord(ctx, change.EntityID); err != nil {
			return unresolved, fmt.Errorf("soft delete on remote: %w", err)
		}
	}

	if err = r.complete(ctx, change); err != nil {
		return unresolved, err
	}
	return models.Outcome{Kind: models.OutcomeNoConflict}, nil
}

// pushCreate creates record remotely and moves the local copy from the
// entity id to the id assigned by the remote store. Once the remote create
// succeeded, local cache failures are only logged: retrying would duplicate it.
func (r *conflictResolver) pushCreate(ctx context.Context, change models.PendingChange, record models.Record) error {
	log := logger.FromContext(ctx)

	created, err := r.remote.CreateRecord(ctx, record, change.UserID)
	if err != nil {
		return fmt.Errorf("create on remote: %w", err)
	}

	if err = r.records.WriteRecord(ctx, change.UserID, created); err != nil {
		log.Warn().Err(err).
			Str("func", "conflictResolver.pushCreate").
			Str("id", created.ID).
			Msg("failed to cache created record")
	}

	if created.ID != change.EntityID {
		if err = r.records.DeleteRecord(ctx, change.UserID, change.EntityID); err != nil {
			log.Warn().Err(err).
				Str("func", "conflictResolver.pushCreate").
				Msg("failed to drop local copy under temporary id")
		}
	}

	return nil
}

// pushUpdate sends the offline version, based on the current remote revision.
func (r *conflictResolver) pushUpdate(ctx context.Context, change models.PendingChange, local, remote models.Record) error {
	local.ID = change.EntityID
	local.RevisionDate = remote.RevisionDate

	if _, err := r.remote.UpdateRecord(ctx, local, change.UserID); err != nil {
		return fmt.Errorf("update on remote: %w", err)
	}
	return nil
}

// complete removes the resolved entry from the queue.
func (r *conflictResolver) complete(ctx context.Context, change models.PendingChange) error {
	if err := r.queue.Delete(ctx, change.ID); err != nil {
		return fmt.Errorf("delete pending change: %w", err)
	}
	return nil
}

func localRecord(change models.PendingChange) (models.Record, error) {
	if len(change.Payload) == 0 {
		return models.Record{}, ErrMissingPayload
	}
	record, err := models.DecodeRecordPayload(change.Payload)
	if err != nil {
		return models.Record{}, err
	}
	return record, nil
}
