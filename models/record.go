// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyPayload is returned by [DecodeRecordPayload] for a zero-length payload.
var ErrEmptyPayload = errors.New("empty record payload")

// RecordType defines how the decrypted Data of a record must be interpreted.
type RecordType int

const (
	// RecordLogin is a username/password credential.
	RecordLogin RecordType = 1
	// RecordSecureNote is free-form text.
	RecordSecureNote RecordType = 2
	// RecordCard is payment card information.
	RecordCard RecordType = 3
	// RecordIdentity is personal identity information.
	RecordIdentity RecordType = 4
)

// Field is a custom field attached to a record.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	// Hidden marks values that must be masked in UI.
	Hidden bool `json:"hidden"`
}

// PasswordHistoryEntry is one previous password of a login record.
type PasswordHistoryEntry struct {
	Password     string    `json:"password"`
	LastUsedDate time.Time `json:"last_used_date"`
}

// Attachment is a file attached to a record. Attachments are never copied
// into backups.
type Attachment struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
}

// Record is a vault item as stored on the remote store and in the local
// cache. Name, Notes, Data, field values and password history entries are
// encrypted with the record's own item key; Key holds that item key wrapped
// by the user's vault key.
type Record struct {
	ID              string                 `json:"id,omitempty"`
	FolderID        *string                `json:"folder_id,omitempty"`
	Key             *string                `json:"key,omitempty"`
	Type            RecordType             `json:"type"`
	Name            string                 `json:"name"`
	Notes           *string                `json:"notes,omitempty"`
	Data            string                 `json:"data"`
	Favorite        bool                   `json:"favorite"`
	Fields          []Field                `json:"fields,omitempty"`
	PasswordHistory []PasswordHistoryEntry `json:"password_history,omitempty"`
	Attachments     []Attachment           `json:"attachments,omitempty"`
	CreationDate    time.Time              `json:"creation_date"`
	RevisionDate    time.Time              `json:"revision_date"`
	DeletedDate     *time.Time             `json:"deleted_date,omitempty"`
}

// RecordView is the decrypted projection of a [Record].
type RecordView struct {
	ID              *string
	FolderID        *string
	Key             *string
	Type            RecordType
	Name            string
	Notes           *string
	Data            string
	Favorite        bool
	Fields          []Field
	PasswordHistory []PasswordHistoryEntry
	Attachments     []Attachment
	CreationDate    time.Time
	RevisionDate    time.Time
	DeletedDate     *time.Time
}

// AsBackup returns a copy of v meant to be created as a brand-new record:
// no identity, no item key (a fresh one is generated on encryption), no
// attachments, the given name and folder. Content, custom fields and
// password history are carried over as they are.
func (v RecordView) AsBackup(name string, folderID *string) RecordView {
	backup := v
	backup.ID = nil
	backup.Key = nil
	backup.Attachments = nil
	backup.Name = name
	backup.FolderID = folderID
	backup.Fields = append([]Field(nil), v.Fields...)
	backup.PasswordHistory = append([]PasswordHistoryEntry(nil), v.PasswordHistory...)
	return backup
}

// Folder is a remote container for records. Name is encrypted with the
// user's vault key.
type Folder struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revision_date"`
}

// EncodeRecordPayload serialises r into the byte form kept in
// PendingChange.Payload.
func EncodeRecordPayload(r Record) ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode record payload: %w", err)
	}
	return payload, nil
}

// DecodeRecordPayload parses a PendingChange.Payload back into a [Record].
func DecodeRecordPayload(payload []byte) (Record, error) {
	if len(payload) == 0 {
		return Record{}, ErrEmptyPayload
	}

	var r Record
	if err := json.Unmarshal(payload, &r); err != nil {
		return Record{}, fmt.Errorf("decode record payload: %w", err)
	}
	return r, nil
}
