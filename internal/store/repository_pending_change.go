// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type pendingChangeRepository struct {
	*DB
	logger *logger.Logger
}

// NewPendingChangeRepository returns a sqlite-backed [PendingChangeRepository].
func NewPendingChangeRepository(db *DB, logger *logger.Logger) PendingChangeRepository {
	return &pendingChangeRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPendingChange(row rowScanner) (models.StoredPendingChange, error) {
	var (
		item             models.StoredPendingChange
		originalRevision sql.NullTime
		createdAt        sql.NullTime
		updatedAt        sql.NullTime
	)

	err := row.Scan(
		&item.ID,
		&item.EntityID,
		&item.UserID,
		&item.ChangeTypeRaw,
		&item.Payload,
		&originalRevision,
		&createdAt,
		&updatedAt,
		&item.EncryptedCount,
	)
	if err != nil {
		return models.StoredPendingChange{}, err
	}

	item.OriginalRevision = nullTimePtr(originalRevision)
	item.CreatedAt = nullTimePtr(createdAt)
	item.UpdatedAt = nullTimePtr(updatedAt)
	return item, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (r *pendingChangeRepository) FetchPending(ctx context.Context, userID string) ([]models.StoredPendingChange, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFetchPendingQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "pendingChangeRepository.FetchPending").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingChangeRepository.FetchPending").
			Str("user_id", userID).
			Msg("failed to execute query for pending changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.StoredPendingChange
	for rows.Next() {
		item, scanErr := scanPendingChange(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingChangeRepository.FetchPending").
				Str("user_id", userID).
				Msg("failed to scan pending change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingChangeRepository.FetchPending").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *pendingChangeRepository) GetByEntity(ctx context.Context, userID, entityID string) (models.StoredPendingChange, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPendingByEntityQuery(userID, entityID)
	if err != nil {
		log.Err(err).Str("func", "pendingChangeRepository.GetByEntity").Msg("failed to build query")
		return models.StoredPendingChange{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanPendingChange(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredPendingChange{}, ErrPendingChangeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "pendingChangeRepository.GetByEntity").
			Str("user_id", userID).
			Str("entity_id", entityID).
			Msg("failed to scan pending change row")
		return models.StoredPendingChange{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *pendingChangeRepository) Upsert(ctx context.Context, row models.StoredPendingChange) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPendingQuery(row)
	if err != nil {
		log.Err(err).Str("func", "pendingChangeRepository.Upsert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingChangeRepository.Upsert").
			Str("user_id", row.UserID).
			Str("entity_id", row.EntityID).
			Str("change_type", row.ChangeTypeRaw).
			Msg("failed to execute upsert for pending change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingChangeRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeletePendingQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.exec(ctx, "pendingChangeRepository.Delete", query, args)
}

func (r *pendingChangeRepository) DeleteByEntity(ctx context.Context, userID, entityID string) error {
	query, args, err := buildDeletePendingByEntityQuery(userID, entityID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.exec(ctx, "pendingChangeRepository.DeleteByEntity", query, args)
}

func (r *pendingChangeRepository) DeleteAll(ctx context.Context, userID string) error {
	query, args, err := buildDeleteAllPendingQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.exec(ctx, "pendingChangeRepository.DeleteAll", query, args)
}

func (r *pendingChangeRepository) Count(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPendingQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "pendingChangeRepository.Count").
			Str("user_id", userID).
			Msg("failed to count pending changes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *pendingChangeRepository) exec(ctx context.Context, fn, query string, args []any) error {
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Interface("args", args).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
