// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownChangeType is returned by [ParseChangeType] when a persisted change
// type does not match any known [ChangeType] value.
var ErrUnknownChangeType = errors.New("unknown pending change type")

// ChangeType is the kind of mutation that was queued while offline.
// The string value is what gets persisted in the local queue.
type ChangeType string

const (
	// ChangeCreate is a record created offline. Its EntityID is a temporary
	// client-generated identifier until the remote store assigns a real one.
	ChangeCreate ChangeType = "create"

	// ChangeUpdate is an edit of an existing record.
	ChangeUpdate ChangeType = "update"

	// ChangeSoftDelete moves an existing record to the trash.
	ChangeSoftDelete ChangeType = "softDelete"

	// ChangeHardDelete permanently removes an existing record.
	ChangeHardDelete ChangeType = "hardDelete"
)

// ParseChangeType converts a persisted raw value into a [ChangeType].
// Unrecognised values are rejected with [ErrUnknownChangeType]; they are
// never reinterpreted as an update.
func ParseChangeType(raw string) (ChangeType, error) {
	switch ct := ChangeType(raw); ct {
	case ChangeCreate, ChangeUpdate, ChangeSoftDelete, ChangeHardDelete:
		return ct, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChangeType, raw)
	}
}

// IsDeletion reports whether the change is a soft or hard delete.
func (c ChangeType) IsDeletion() bool {
	return c == ChangeSoftDelete || c == ChangeHardDelete
}

// Permanent reports whether a deletion is permanent. It is false for every
// non-delete change type.
func (c ChangeType) Permanent() bool {
	return c == ChangeHardDelete
}

// String implements fmt.Stringer.
func (c ChangeType) String() string {
	return string(c)
}

// Revision is an optional remote revision timestamp.
//
// The zero value is "absent". A Revision is either absent (a record created
// offline has never been seen by the remote store) or set to the revision the
// user started editing from.
type Revision struct {
	at  time.Time
	set bool
}

// NoRevision returns an absent Revision.
func NoRevision() Revision {
	return Revision{}
}

// RevisionAt returns a Revision set to t.
func RevisionAt(t time.Time) Revision {
	return Revision{at: t, set: true}
}

// RevisionFromPtr returns RevisionAt(*t), or an absent Revision when t is nil.
func RevisionFromPtr(t *time.Time) Revision {
	if t == nil {
		return NoRevision()
	}
	return RevisionAt(*t)
}

// Get returns the timestamp and whether it is set.
func (r Revision) Get() (time.Time, bool) {
	return r.at, r.set
}

// IsSet reports whether the revision is present.
func (r Revision) IsSet() bool {
	return r.set
}

// Ptr returns a pointer to the timestamp, or nil when absent.
func (r Revision) Ptr() *time.Time {
	if !r.set {
		return nil
	}
	t := r.at
	return &t
}

// PendingChange is a local mutation queued while offline, awaiting
// reconciliation with the remote store. There is at most one PendingChange per
// (UserID, EntityID).
type PendingChange struct {
	// ID is the opaque identifier of the queue entry itself.
	ID string

	// EntityID is the identifier of the affected record. For ChangeCreate it
	// is a temporary client identifier.
	EntityID string

	// UserID is the owner of the change.
	UserID string

	// ChangeType is the queued mutation kind.
	ChangeType ChangeType

	// Payload is the JSON-encoded encrypted [Record] snapshot taken at edit
	// time. Required for create and update.
	Payload []byte

	// OriginalRevision is the remote revision the first offline edit started
	// from. It is written once when the entry is created and never replaced
	// by later coalesced edits.
	OriginalRevision Revision

	// CreatedAt is when the entry was first queued.
	CreatedAt *time.Time

	// UpdatedAt is refreshed on every coalesced edit.
	UpdatedAt *time.Time

	// OfflinePasswordChangeCount counts credential changes accumulated across
	// coalesced offline edits. Stored encrypted at rest.
	OfflinePasswordChangeCount int
}

// LocalTimestamp returns the time of the latest local edit: UpdatedAt when
// set, otherwise CreatedAt, otherwise the zero time.
func (p PendingChange) LocalTimestamp() time.Time {
	if p.UpdatedAt != nil {
		return *p.UpdatedAt
	}
	if p.CreatedAt != nil {
		return *p.CreatedAt
	}
	return time.Time{}
}

// PendingChangeUpsert is the input of the queue upsert used by the editing
// flow. OriginalRevision only takes effect when no entry exists yet for
// (UserID, EntityID).
type PendingChangeUpsert struct {
	EntityID                   string
	UserID                     string
	ChangeType                 ChangeType
	Payload                    []byte
	OriginalRevision           Revision
	OfflinePasswordChangeCount int
}

// StoredPendingChange is a PendingChange row as persisted by the local store:
// the change type is kept raw and the counter is still encrypted.
type StoredPendingChange struct {
	ID               string
	EntityID         string
	UserID           string
	ChangeTypeRaw    string
	Payload          []byte
	OriginalRevision *time.Time
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
	EncryptedCount   []byte
}

// TableName returns the name of the local table holding pending changes.
func (StoredPendingChange) TableName() string {
	return "pending_changes"
}

// QuarantinedChange is a persisted pending change that could not be decoded
// (unknown change type, unreadable counter). It stays in the queue untouched.
type QuarantinedChange struct {
	ID       string
	EntityID string
	Reason   error
}
