package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository returns a sqlite-backed [LocalRecordRepository].
// Records are stored as JSON, still encrypted.
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) WriteRecord(ctx context.Context, userID string, record models.Record) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := buildWriteRecordQuery(userID, record, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.WriteRecord").
			Str("user_id", userID).
			Str("id", record.ID).
			Msg("failed to write local record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localRecordRepository) GetRecord(ctx context.Context, userID, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(userID, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.GetRecord").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to scan local record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var record models.Record
	if err = json.Unmarshal(data, &record); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	return record, nil
}

func (l *localRecordRepository) DeleteRecord(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.DeleteRecord").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to delete local record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
