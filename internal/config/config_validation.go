// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] is usable before
// anything is opened.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.UserID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Resolver.SoftConflictThreshold < 1 {
		return ErrInvalidResolverConfigs
	}
	switch cfg.Resolver.BackupPlacement {
	case PlacementConflictFolder:
		if cfg.Resolver.ConflictFolderName == "" {
			return ErrInvalidResolverConfigs
		}
	case PlacementInPlace:
	default:
		return ErrInvalidResolverConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
