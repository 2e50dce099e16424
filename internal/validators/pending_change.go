// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// Field names accepted by [PendingChangeValidator].
const (
	FieldEntityID            = "entity_id"
	FieldUserID              = "user_id"
	FieldChangeType          = "change_type"
	FieldPayload             = "payload"
	FieldPasswordChangeCount = "password_change_count"
)

// maxPasswordChangeCount is the largest counter the at-rest encoding holds.
const maxPasswordChangeCount = math.MaxInt16

// PendingChangeValidator validates [models.PendingChangeUpsert] values.
type PendingChangeValidator struct{}

func NewPendingChangeValidator() Validator {
	return &PendingChangeValidator{}
}

func (v *PendingChangeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PendingChangeUpsert:
		return v.validateUpsert(ctx, value, fields...)
	case *models.PendingChangeUpsert:
		return v.validateUpsert(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PendingChangeValidator) validateUpsert(_ context.Context, change models.PendingChangeUpsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityID, FieldUserID, FieldChangeType, FieldPayload, FieldPasswordChangeCount}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityID:
			if change.EntityID == "" {
				return ErrInvalidEntityID
			}
		case FieldUserID:
			if change.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldChangeType:
			if _, err := models.ParseChangeType(string(change.ChangeType)); err != nil {
				return err
			}
		case FieldPayload:
			// deletions act on the remote record by id only
			if change.ChangeType.IsDeletion() {
				continue
			}
			if len(change.Payload) == 0 {
				return ErrMissingPayload
			}
			if _, err := models.DecodeRecordPayload(change.Payload); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
			}
		case FieldPasswordChangeCount:
			if change.OfflinePasswordChangeCount < 0 || change.OfflinePasswordChangeCount > maxPasswordChangeCount {
				return ErrInvalidPasswordChangeCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
