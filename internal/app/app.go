package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/service"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/store"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/workers"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// ErrMissingUserKey is returned by NewApp when no vault key is configured.
var ErrMissingUserKey = errors.New("user key is not configured")

type App struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	vault    crypto.VaultCrypto
	queue    service.PendingChangeQueue
	batch    service.BatchProcessor
	syncJob  workers.SyncJob
	logger   *logger.Logger
}

// NewApp opens every dependency described by cfg. The caller owns the
// returned App and must Close it.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	if cfg.App.UserKey == "" {
		return nil, ErrMissingUserKey
	}

	vault := crypto.NewVaultCrypto()
	if err := vault.SetUserKey(cfg.App.UserID, cfg.App.UserKey); err != nil {
		return nil, fmt.Errorf("unlock vault: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, log)
	if err != nil {
		vault.Lock()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		vault.Lock()
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	svcs := service.NewServices(storages, remote, vault, cfg.Resolver, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		vault:    vault,
		queue:    svcs.Queue,
		batch:    svcs.Batch,
		syncJob:  workers.NewSyncJob(svcs.Batch, log),
		logger:   log,
	}, nil
}

// ProcessOnce runs a single resolution pass over the configured user's queue.
func (a *App) ProcessOnce(ctx context.Context) (models.BatchReport, error) {
	return a.batch.ProcessAll(a.logger.WithContext(ctx), a.cfg.App.UserID)
}

// Watch starts the periodic sync job, requests an immediate pass and blocks
// until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	a.logger.Info().
		Str("user_id", a.cfg.App.UserID).
		Dur("interval", a.cfg.Workers.SyncInterval).
		Msg("watching pending changes")

	a.syncJob.Start(a.logger.WithContext(ctx), a.cfg.App.UserID, a.cfg.Workers.SyncInterval)
	defer a.syncJob.Stop()
	a.syncJob.Trigger()

	<-ctx.Done()
	a.logger.Info().Msg("watch stopped")
	return nil
}

// PendingCount returns the number of queued changes of the configured user.
func (a *App) PendingCount(ctx context.Context) (int, error) {
	return a.queue.Count(a.logger.WithContext(ctx), a.cfg.App.UserID)
}

// PendingList returns the decodable queued changes and the quarantined ones.
func (a *App) PendingList(ctx context.Context) ([]models.PendingChange, []models.QuarantinedChange, error) {
	return a.queue.FetchPending(a.logger.WithContext(ctx), a.cfg.App.UserID)
}

// PendingClear empties the configured user's queue. Queued edits are lost.
func (a *App) PendingClear(ctx context.Context) error {
	return a.queue.DeleteAll(a.logger.WithContext(ctx), a.cfg.App.UserID)
}

// Close stops the sync job, locks the vault and releases the database.
func (a *App) Close() error {
	a.syncJob.Stop()
	a.vault.Lock()
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
