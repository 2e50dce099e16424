package service

import (
	"github.com/MKhiriev/go-pass-keeper-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/store"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/utils"
)

// Services groups the components of the offline sync engine.
type Services struct {
	Queue    PendingChangeQueue
	Backups  BackupGenerator
	Resolver Resolver
	Batch    BatchProcessor
}

// NewServices wires the engine on top of the local storages, the remote
// store and the unlocked vault.
func NewServices(storages *store.Storages, remote adapter.RemoteStore, vault crypto.VaultCrypto, cfg config.Resolver, logger *logger.Logger) *Services {
	queue := NewPendingChangeQueue(storages.PendingChanges, crypto.NewCounterCipher(vault), utils.NewUUIDGenerator(), logger)
	backups := NewBackupGenerator(remote, vault, cfg, logger)
	resolver := NewConflictResolver(queue, remote, storages.Records, backups, NewRevisionPolicy(cfg.SoftConflictThreshold))

	return &Services{
		Queue:    queue,
		Backups:  backups,
		Resolver: resolver,
		Batch:    NewBatchProcessor(queue, resolver, vault, logger),
	}
}
