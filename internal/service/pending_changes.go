package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/store"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/validators"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type pendingChangeQueue struct {
	repo      store.PendingChangeRepository
	counter   crypto.CounterCipher
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewPendingChangeQueue returns a [PendingChangeQueue] over repo that keeps
// the offline password change counter sealed with counter.
func NewPendingChangeQueue(repo store.PendingChangeRepository, counter crypto.CounterCipher, ids IDGenerator, logger *logger.Logger) PendingChangeQueue {
	return &pendingChangeQueue{
		repo:      repo,
		counter:   counter,
		ids:       ids,
		validator: validators.NewPendingChangeValidator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (q *pendingChangeQueue) FetchPending(ctx context.Context, userID string) ([]models.PendingChange, []models.QuarantinedChange, error) {
	rows, err := q.repo.FetchPending(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var (
		changes     = make([]models.PendingChange, 0, len(rows))
		quarantined []models.QuarantinedChange
	)
	for _, row := range rows {
		change, err := q.decode(row)
		if err != nil {
			quarantined = append(quarantined, models.QuarantinedChange{
				ID:       row.ID,
				EntityID: row.EntityID,
				Reason:   err,
			})
			continue
		}
		changes = append(changes, change)
	}

	return changes, quarantined, nil
}

func (q *pendingChangeQueue) Get(ctx context.Context, userID, entityID string) (models.PendingChange, error) {
	row, err := q.repo.GetByEntity(ctx, userID, entityID)
	if err != nil {
		return models.PendingChange{}, err
	}
	return q.decode(row)
}

func (q *pendingChangeQueue) Upsert(ctx context.Context, change models.PendingChangeUpsert) error {
	if err := q.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("invalid pending change: %w", err)
	}

	count, err := q.counter.Encrypt(change.OfflinePasswordChangeCount)
	if err != nil {
		return fmt.Errorf("encrypt password change count: %w", err)
	}

	original := change.OriginalRevision
	if change.ChangeType == models.ChangeCreate {
		original = models.NoRevision()
	}

	now := q.now()
	row := models.StoredPendingChange{
		ID:               q.ids.Generate(),
		EntityID:         change.EntityID,
		UserID:           change.UserID,
		ChangeTypeRaw:    change.ChangeType.String(),
		Payload:          change.Payload,
		OriginalRevision: original.Ptr(),
		CreatedAt:        &now,
		UpdatedAt:        &now,
		EncryptedCount:   count,
	}

	if err = q.repo.Upsert(ctx, row); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "pendingChangeQueue.Upsert").
		Str("user_id", change.UserID).
		Str("entity_id", change.EntityID).
		Str("change_type", change.ChangeType.String()).
		Msg("pending change queued")
	return nil
}

func (q *pendingChangeQueue) Delete(ctx context.Context, id string) error {
	return q.repo.Delete(ctx, id)
}

func (q *pendingChangeQueue) DeleteByEntity(ctx context.Context, userID, entityID string) error {
	return q.repo.DeleteByEntity(ctx, userID, entityID)
}

func (q *pendingChangeQueue) DeleteAll(ctx context.Context, userID string) error {
	return q.repo.DeleteAll(ctx, userID)
}

func (q *pendingChangeQueue) Count(ctx context.Context, userID string) (int, error) {
	return q.repo.Count(ctx, userID)
}

// decode turns a stored row into a PendingChange. A row without a counter
// carries a count of zero.
func (q *pendingChangeQueue) decode(row models.StoredPendingChange) (models.PendingChange, error) {
	changeType, err := models.ParseChangeType(row.ChangeTypeRaw)
	if err != nil {
		return models.PendingChange{}, err
	}

	var count int
	if len(row.EncryptedCount) > 0 {
		if count, err = q.counter.Decrypt(row.EncryptedCount); err != nil {
			return models.PendingChange{}, fmt.Errorf("decrypt password change count: %w", err)
		}
	}

	return models.PendingChange{
		ID:                         row.ID,
		EntityID:                   row.EntityID,
		UserID:                     row.UserID,
		ChangeType:                 changeType,
		Payload:                    row.Payload,
		OriginalRevision:           models.RevisionFromPtr(row.OriginalRevision),
		CreatedAt:                  row.CreatedAt,
		UpdatedAt:                  row.UpdatedAt,
		OfflinePasswordChangeCount: count,
	}, nil
}
