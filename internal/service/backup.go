// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// backupTimestampLayout renders the backup suffix, always in UTC.
const backupTimestampLayout = "2006-01-02 150405"

type backupGenerator struct {
	remote adapter.RemoteStore
	vault  crypto.VaultCrypto

	placement  config.BackupPlacement
	folderName string

	logger *logger.Logger
}

// NewBackupGenerator returns a [BackupGenerator] that places backups according
// to cfg.BackupPlacement.
func NewBackupGenerator(remote adapter.RemoteStore, vault crypto.VaultCrypto, cfg config.Resolver, logger *logger.Logger) BackupGenerator {
	placement := cfg.BackupPlacement
	if placement == "" {
		placement = config.PlacementConflictFolder
	}
	folderName := cfg.ConflictFolderName
	if folderName == "" {
		folderName = config.DefaultConflictFolderName
	}

	return &backupGenerator{
		remote:     remote,
		vault:      vault,
		placement:  placement,
		folderName: folderName,
		logger:     logger,
	}
}

// BackupName returns the name given to the backup of a record called name.
func BackupName(name string, timestamp time.Time) string {
	return name + " – " + timestamp.UTC().Format(backupTimestampLayout)
}

func (b *backupGenerator) CreateBackup(ctx context.Context, batch *BatchContext, record models.Record, timestamp time.Time, userID string) error {
	log := logger.FromContext(ctx)

	view, err := b.vault.Decrypt(record)
	if err != nil {
		return fmt.Errorf("decrypt record for backup: %w", err)
	}

	folderID, err := b.destinationFolder(ctx, batch, view)
	if err != nil {
		return err
	}

	backup := view.AsBackup(BackupName(view.Name, timestamp), folderID)

	encrypted, encryptedFor, err := b.vault.Encrypt(backup)
	if err != nil {
		return fmt.Errorf("encrypt backup: %w", err)
	}

	created, err := b.remote.CreateRecord(ctx, encrypted, encryptedFor)
	if err != nil {
		return fmt.Errorf("create backup on remote: %w", err)
	}

	log.Info().
		Str("func", "backupGenerator.CreateBackup").
		Str("user_id", userID).
		Str("source_id", record.ID).
		Str("backup_id", created.ID).
		Msg("backup created")
	return nil
}

// destinationFolder returns the folder a backup of view goes into.
func (b *backupGenerator) destinationFolder(ctx context.Context, batch *BatchContext, view models.RecordView) (*string, error) {
	if b.placement == config.PlacementInPlace {
		return view.FolderID, nil
	}

	id, err := b.conflictFolder(ctx, batch)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// conflictFolder looks the backup folder up by its decrypted name and creates
// it when missing. The id is cached in batch.
func (b *backupGenerator) conflictFolder(ctx context.Context, batch *BatchContext) (string, error) {
	if id, ok := batch.ConflictFolderID(); ok {
		return id, nil
	}

	folders, err := b.remote.ListFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("list folders: %w", err)
	}

	for _, folder := range folders {
		name, err := b.vault.DecryptFolderName(folder)
		if err != nil {
			return "", fmt.Errorf("decrypt folder %s: %w", folder.ID, err)
		}
		if name == b.folderName && folder.ID != "" {
			batch.SetConflictFolderID(folder.ID)
			return folder.ID, nil
		}
	}

	encryptedName, err := b.vault.EncryptFolderName(b.folderName)
	if err != nil {
		return "", fmt.Errorf("encrypt folder name: %w", err)
	}

	created, err := b.remote.CreateFolder(ctx, models.Folder{Name: encryptedName})
	if err != nil {
		return "", fmt.Errorf("create backup folder: %w", err)
	}
	if created.ID == "" {
		return "", ErrMissingFolderID
	}

	logger.FromContext(ctx).Info().
		Str("func", "backupGenerator.conflictFolder").
		Str("folder_id", created.ID).
		Msg("backup folder created")

	batch.SetConflictFolderID(created.ID)
	return created.ID, nil
}
