// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// BackupPlacement selects where backups of superseded record versions land.
type BackupPlacement string

const (
	// PlacementConflictFolder puts every backup into one dedicated folder.
	PlacementConflictFolder BackupPlacement = "conflict_folder"
	// PlacementInPlace keeps a backup next to the original, in its folder.
	PlacementInPlace BackupPlacement = "in_place"
)

// Default values applied before any other source.
const (
	DefaultDSN                   = "offsync.db"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultSyncInterval          = 5 * time.Minute
	DefaultSoftConflictThreshold = 4
	DefaultConflictFolderName    = "Offline Sync Conflicts"
)

// StructuredConfig is the top-level configuration container for the offsync
// engine. It aggregates all sub-configurations and is populated by merging
// defaults, an optional JSON file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App identifies the user whose queue is processed and carries the
	// unlocked vault key.
	App App `envPrefix:"APP_"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote vault API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Resolver tunes conflict resolution.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// Workers holds configuration for the periodic resolution trigger.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the OFFSYNC_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the identity and key material of the current user.
type App struct {
	// UserID is the owner of the processed queue.
	// Env: OFFSYNC_APP_USER_ID
	UserID string `env:"USER_ID"`

	// UserKey is the base64-encoded 256-bit vault key. Must be kept
	// confidential; it is never read from flags.
	// Env: OFFSYNC_APP_USER_KEY
	UserKey string `env:"USER_KEY"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database file path (or ":memory:").
	// Env: OFFSYNC_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the remote vault HTTP API.
type Adapter struct {
	// HTTPAddress is the remote vault address, "host:port" or a full base URL.
	// Env: OFFSYNC_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: OFFSYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer JWT sent with every request.
	// Env: OFFSYNC_ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Resolver tunes the conflict resolver.
type Resolver struct {
	// SoftConflictThreshold is the number of offline password changes at
	// which an unconflicted update is still backed up before pushing.
	// Env: OFFSYNC_RESOLVER_SOFT_CONFLICT_THRESHOLD
	SoftConflictThreshold int `env:"SOFT_CONFLICT_THRESHOLD"`

	// BackupPlacement is one of "conflict_folder" or "in_place".
	// Env: OFFSYNC_RESOLVER_BACKUP_PLACEMENT
	BackupPlacement BackupPlacement `env:"BACKUP_PLACEMENT"`

	// ConflictFolderName is the plaintext name of the backup folder used with
	// PlacementConflictFolder.
	// Env: OFFSYNC_RESOLVER_CONFLICT_FOLDER_NAME
	ConflictFolderName string `env:"CONFLICT_FOLDER_NAME"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the period of the watch-mode resolution pass.
	// Env: OFFSYNC_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Defaults returns the configuration every other source is merged onto.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Resolver: Resolver{
			SoftConflictThreshold: DefaultSoftConflictThreshold,
			BackupPlacement:       PlacementConflictFolder,
			ConflictFolderName:    DefaultConflictFolderName,
		},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags (flags may be nil)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
