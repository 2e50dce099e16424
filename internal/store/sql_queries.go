// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

const (
	pendingChangesTable = "pending_changes"
	recordsTable        = "records"
)

// psql is the statement builder for the local sqlite database.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var pendingChangeColumns = []string{
	"id",
	"entity_id",
	"user_id",
	"change_type",
	"payload",
	"original_revision",
	"created_at",
	"updated_at",
	"password_change_count",
}

// coalescePendingChange is the upsert conflict clause. id, user_id,
// created_at and original_revision are never updated once written.
const coalescePendingChange = `ON CONFLICT (user_id, entity_id) DO UPDATE SET
	change_type           = excluded.change_type,
	payload               = excluded.payload,
	password_change_count = excluded.password_change_count,
	updated_at            = excluded.updated_at`

func buildFetchPendingQuery(userID string) (string, []any, error) {
	return psql.
		Select(pendingChangeColumns...).
		From(pendingChangesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetPendingByEntityQuery(userID, entityID string) (string, []any, error) {
	return psql.
		Select(pendingChangeColumns...).
		From(pendingChangesTable).
		Where(sq.Eq{"user_id": userID, "entity_id": entityID}).
		Limit(1).
		ToSql()
}

func buildUpsertPendingQuery(row models.StoredPendingChange) (string, []any, error) {
	return psql.
		Insert(pendingChangesTable).
		Columns(pendingChangeColumns...).
		Values(
			row.ID,
			row.EntityID,
			row.UserID,
			row.ChangeTypeRaw,
			row.Payload,
			row.OriginalRevision,
			row.CreatedAt,
			row.UpdatedAt,
			row.EncryptedCount,
		).
		Suffix(coalescePendingChange).
		ToSql()
}

func buildDeletePendingQuery(id string) (string, []any, error) {
	return psql.
		Delete(pendingChangesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeletePendingByEntityQuery(userID, entityID string) (string, []any, error) {
	return psql.
		Delete(pendingChangesTable).
		Where(sq.Eq{"user_id": userID, "entity_id": entityID}).
		ToSql()
}

func buildDeleteAllPendingQuery(userID string) (string, []any, error) {
	return psql.
		Delete(pendingChangesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildCountPendingQuery(userID string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(pendingChangesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildWriteRecordQuery(userID string, record models.Record, data []byte) (string, []any, error) {
	return psql.
		Insert(recordsTable).
		Columns("user_id", "id", "data", "revision_date").
		Values(userID, record.ID, data, record.RevisionDate).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
	data          = excluded.data,
	revision_date = excluded.revision_date`).
		ToSql()
}

func buildGetRecordQuery(userID, id string) (string, []any, error) {
	return psql.
		Select("data").
		From(recordsTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func buildDeleteRecordQuery(userID, id string) (string, []any, error) {
	return psql.
		Delete(recordsTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}
