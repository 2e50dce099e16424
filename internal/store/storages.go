package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
)

// Storages groups the local repositories used by the sync engine.
type Storages struct {
	// PendingChanges is the queue of offline mutations.
	PendingChanges PendingChangeRepository

	// Records is the local cache of encrypted vault records.
	Records LocalRecordRepository

	db *DB
}

// NewStorages initialises the local storage layer:
//  1. Opens the sqlite database at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires both repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		PendingChanges: NewPendingChangeRepository(db, logger),
		Records:        NewLocalRecordRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
