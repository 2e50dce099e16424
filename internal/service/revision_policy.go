// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// HasConflict reports whether the remote record moved since the offline edit
// started. An absent original revision never conflicts.
func HasConflict(original models.Revision, current time.Time) bool {
	at, ok := original.Get()
	return ok && !at.Equal(current)
}

// HasSoftConflict reports whether count reached threshold.
func HasSoftConflict(count, threshold int) bool {
	return count >= threshold
}

// LocalWins is the hard-conflict tie-break. Equal timestamps go to the remote side.
func LocalWins(local, remote time.Time) bool {
	return local.After(remote)
}

// RevisionPolicy classifies an update against the current remote record.
type RevisionPolicy struct {
	SoftConflictThreshold int
}

// NewRevisionPolicy returns a RevisionPolicy with the given soft-conflict
// threshold.
func NewRevisionPolicy(softConflictThreshold int) RevisionPolicy {
	return RevisionPolicy{SoftConflictThreshold: softConflictThreshold}
}

// Classify returns the outcome of applying change on top of remote. A hard
// conflict takes precedence over a soft one.
func (p RevisionPolicy) Classify(change models.PendingChange, remote models.Record) models.Outcome {
	if HasConflict(change.OriginalRevision, remote.RevisionDate) {
		winner := models.RemoteWins
		if LocalWins(change.LocalTimestamp(), remote.RevisionDate) {
			winner = models.LocalWins
		}
		return models.Outcome{Kind: models.OutcomeHardConflict, Winner: winner}
	}

	if HasSoftConflict(change.OfflinePasswordChangeCount, p.SoftConflictThreshold) {
		return models.Outcome{Kind: models.OutcomeSoftConflict}
	}

	return models.Outcome{Kind: models.OutcomeNoConflict}
}
