// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the remote vault.
//
// The primary abstraction is [RemoteStore], which decouples the resolver from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the authoritative vault as seen by the resolver. Every
// method needs a valid bearer token.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// GetRecord fetches the current version of a record. A record that does
	// not exist (or no longer exists) yields [ErrNotFound].
	GetRecord(ctx context.Context, id string) (models.Record, error)

	// CreateRecord creates record as a new entity and returns it as stored,
	// with the identifier assigned by the remote store. encryptedFor is the
	// id of the user the record was encrypted for.
	CreateRecord(ctx context.Context, record models.Record, encryptedFor string) (models.Record, error)

	// UpdateRecord replaces record.ID with record and returns the stored version.
	UpdateRecord(ctx context.Context, record models.Record, encryptedFor string) (models.Record, error)

	// SoftDeleteRecord moves a record to the trash.
	SoftDeleteRecord(ctx context.Context, id string) error

	// HardDeleteRecord removes a record permanently.
	HardDeleteRecord(ctx context.Context, id string) error

	// ListFolders returns every folder of the current user.
	ListFolders(ctx context.Context) ([]models.Folder, error)

	// CreateFolder creates folder and returns it with its assigned id.
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
}
