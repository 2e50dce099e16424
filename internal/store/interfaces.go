package store

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingChangeRepository is the low-level local queue of offline mutations.
// Rows are returned as persisted: raw change type, encrypted counter.
type PendingChangeRepository interface {
	// FetchPending returns every entry of userID ordered by created_at, oldest first.
	FetchPending(ctx context.Context, userID string) ([]models.StoredPendingChange, error)
	// GetByEntity returns the entry for (userID, entityID) or [ErrPendingChangeNotFound].
	GetByEntity(ctx context.Context, userID, entityID string) (models.StoredPendingChange, error)
	// Upsert inserts row, or coalesces it into the existing entry for
	// (UserID, EntityID). An existing entry keeps its id, created_at and
	// original_revision.
	Upsert(ctx context.Context, row models.StoredPendingChange) error
	Delete(ctx context.Context, id string) error
	DeleteByEntity(ctx context.Context, userID, entityID string) error
	DeleteAll(ctx context.Context, userID string) error
	Count(ctx context.Context, userID string) (int, error)
}

// LocalRecordRepository is the local cache of encrypted vault records.
type LocalRecordRepository interface {
	// WriteRecord inserts or replaces record under (userID, record.ID).
	WriteRecord(ctx context.Context, userID string, record models.Record) error
	// GetRecord returns the cached record or [ErrRecordNotFound].
	GetRecord(ctx context.Context, userID, id string) (models.Record, error)
	// DeleteRecord removes the cached record. Deleting a missing record is not an error.
	DeleteRecord(ctx context.Context, userID, id string) error
}
