// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/mock"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type resolverDeps struct {
	queue   *MockPendingChangeQueue
	remote  *mock.MockRemoteStore
	records *mock.MockLocalRecordRepository
	backups *MockBackupGenerator
}

func newTestResolver(t *testing.T) (Resolver, resolverDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := resolverDeps{
		queue:   NewMockPendingChangeQueue(ctrl),
		remote:  mock.NewMockRemoteStore(ctrl),
		records: mock.NewMockLocalRecordRepository(ctrl),
		backups: NewMockBackupGenerator(ctrl),
	}
	r := NewConflictResolver(deps.queue, deps.remote, deps.records, deps.backups, NewRevisionPolicy(4))
	return r, deps
}

func payload(t *testing.T, r models.Record) []byte {
	t.Helper()
	p, err := models.EncodeRecordPayload(r)
	require.NoError(t, err)
	return p
}

// updateChange is an update of "e-1" that started from revision t0 and was
// last edited at updatedAt.
func updateChange(t *testing.T, updatedAt time.Time, count int) (models.PendingChange, models.Record) {
	t.Helper()
	local := models.Record{ID: "e-1", Name: "enc-local", Data: "enc-local-data", RevisionDate: t0}
	created := t0.Add(-time.Hour)
	return models.PendingChange{
		ID:                         "pc-1",
		EntityID:                   "e-1",
		UserID:                     "user-1",
		ChangeType:                 models.ChangeUpdate,
		Payload:                    payload(t, local),
		OriginalRevision:           models.RevisionAt(t0),
		CreatedAt:                  &created,
		UpdatedAt:                  &updatedAt,
		OfflinePasswordChangeCount: count,
	}, local
}

func TestResolve_MalformedEntries(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	_, err := r.Resolve(ctx, NewBatchContext(), models.PendingChange{ID: "pc-1", ChangeType: models.ChangeUpdate})
	require.ErrorIs(t, err, ErrMissingEntityID)

	_, err = r.Resolve(ctx, NewBatchContext(), models.PendingChange{ID: "pc-1", EntityID: "e-1", ChangeType: models.ChangeCreate})
	require.ErrorIs(t, err, ErrMissingPayload)

	_, err = r.Resolve(ctx, NewBatchContext(), models.PendingChange{ID: "pc-1", EntityID: "e-1", ChangeType: models.ChangeUpdate})
	require.ErrorIs(t, err, ErrMissingPayload)

	outcome, err := r.Resolve(ctx, NewBatchContext(), models.PendingChange{ID: "pc-1", EntityID: "e-1", ChangeType: "archive"})
	require.ErrorIs(t, err, ErrUnsupportedChangeType)
	assert.Equal(t, models.OutcomeUnresolved, outcome.Kind)
}

func TestResolve_Create(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	change := models.PendingChange{
		ID: "pc-1", EntityID: "tmp-1", UserID: "user-1", ChangeType: models.ChangeCreate,
		Payload: payload(t, models.Record{ID: "tmp-1", Name: "enc"}),
	}
	created := models.Record{ID: "srv-1", Name: "enc", RevisionDate: t0}

	gomock.InOrder(
		deps.remote.EXPECT().CreateRecord(ctx, models.Record{Name: "enc"}, "user-1").Return(created, nil),
		deps.records.EXPECT().WriteRecord(ctx, "user-1", created).Return(nil),
		deps.records.EXPECT().DeleteRecord(ctx, "user-1", "tmp-1").Return(nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, NewBatchContext(), change)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, outcome.Kind)
}

func TestResolve_Create_CacheFailureStillCompletes(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	change := models.PendingChange{
		ID: "pc-1", EntityID: "tmp-1", UserID: "user-1", ChangeType: models.ChangeCreate,
		Payload: payload(t, models.Record{Name: "enc"}),
	}

	deps.remote.EXPECT().CreateRecord(ctx, gomock.Any(), "user-1").Return(models.Record{ID: "srv-1"}, nil)
	deps.records.EXPECT().WriteRecord(ctx, "user-1", gomock.Any()).Return(errors.New("disk full"))
	deps.records.EXPECT().DeleteRecord(ctx, "user-1", "tmp-1").Return(nil)
	deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil)

	_, err := r.Resolve(ctx, NewBatchContext(), change)
	require.NoError(t, err)
}

func TestResolve_Create_RemoteFailureKeepsEntry(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	change := models.PendingChange{
		ID: "pc-1", EntityID: "tmp-1", UserID: "user-1", ChangeType: models.ChangeCreate,
		Payload: payload(t, models.Record{Name: "enc"}),
	}
	deps.remote.EXPECT().CreateRecord(ctx, gomock.Any(), "user-1").Return(models.Record{}, adapter.ErrInternalServerError)

	_, err := r.Resolve(ctx, NewBatchContext(), change)
	require.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestResolve_Update_NoConflict(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	change, local := updateChange(t, at(time.Hour), 3)
	remote := models.Record{ID: "e-1", Name: "enc-remote", RevisionDate: t0}

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(remote, nil)
	deps.remote.EXPECT().UpdateRecord(ctx, gomock.Any(), "user-1").DoAndReturn(
		func(_ context.Context, pushed models.Record, _ string) (models.Record, error) {
			assert.Equal(t, "e-1", pushed.ID)
			assert.Equal(t, local.Name, pushed.Name)
			assert.True(t, pushed.RevisionDate.Equal(remote.RevisionDate))
			return pushed, nil
		}).Times(1)
	deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil).Times(1)

	outcome, err := r.Resolve(ctx, NewBatchContext(), change)
	require.NoError(t, err)
	assert.Equal(t, models.Outcome{Kind: models.OutcomeNoConflict}, outcome)
}

func TestResolve_Update_SoftConflict(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	batch := NewBatchContext()
	change, _ := updateChange(t, at(time.Hour), 4)
	remote := models.Record{ID: "e-1", Name: "enc-remote", RevisionDate: t0}

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(remote, nil)
	gomock.InOrder(
		deps.backups.EXPECT().CreateBackup(ctx, batch, remote, t0, "user-1").Return(nil),
		deps.remote.EXPECT().UpdateRecord(ctx, gomock.Any(), "user-1").Return(models.Record{}, nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, batch, change)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSoftConflict, outcome.Kind)
}

func TestResolve_Update_LocalWins(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	batch := NewBatchContext()
	change, _ := updateChange(t, at(2*time.Hour), 0)
	remote := models.Record{ID: "e-1", Name: "enc-remote", RevisionDate: at(time.Hour)}

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(remote, nil)
	gomock.InOrder(
		deps.backups.EXPECT().CreateBackup(ctx, batch, remote, remote.RevisionDate, "user-1").Return(nil),
		deps.remote.EXPECT().UpdateRecord(ctx, gomock.Any(), "user-1").Return(models.Record{}, nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, batch, change)
	require.NoError(t, err)
	assert.Equal(t, models.Outcome{Kind: models.OutcomeHardConflict, Winner: models.LocalWins}, outcome)
}

func TestResolve_Update_RemoteWins(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	batch := NewBatchContext()
	// equal timestamps resolve to the remote side
	change, local := updateChange(t, at(time.Hour), 0)
	remote := models.Record{ID: "e-1", Name: "enc-remote", RevisionDate: at(time.Hour)}

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(remote, nil)
	gomock.InOrder(
		deps.backups.EXPECT().CreateBackup(ctx, batch, local, at(time.Hour), "user-1").Return(nil),
		deps.records.EXPECT().WriteRecord(ctx, "user-1", remote).Return(nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, batch, change)
	require.NoError(t, err)
	assert.Equal(t, models.Outcome{Kind: models.OutcomeHardConflict, Winner: models.RemoteWins}, outcome)
}

func TestResolve_Update_BackupFailureAborts(t *testing.T) {
	boom := errors.New("backup failed")

	tests := []struct {
		name      string
		updatedAt time.Time
		count     int
		remoteRev time.Time
	}{
		{name: "soft conflict", updatedAt: at(time.Hour), count: 4, remoteRev: t0},
		{name: "local wins", updatedAt: at(2 * time.Hour), remoteRev: at(time.Hour)},
		{name: "remote wins", updatedAt: at(time.Minute), remoteRev: at(time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, deps := newTestResolver(t)
			ctx := context.Background()
			change, _ := updateChange(t, tt.updatedAt, tt.count)

			deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{ID: "e-1", RevisionDate: tt.remoteRev}, nil)
			deps.backups.EXPECT().CreateBackup(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "user-1").Return(boom)
			// no push, no cache overwrite and no queue deletion are expected

			outcome, err := r.Resolve(ctx, NewBatchContext(), change)
			require.ErrorIs(t, err, boom)
			assert.Equal(t, models.OutcomeUnresolved, outcome.Kind)
		})
	}
}

func TestResolve_Update_RemoteNotFound(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	change, local := updateChange(t, at(time.Hour), 9)

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{}, fmt.Errorf("%w: gone", adapter.ErrNotFound))
	gomock.InOrder(
		deps.remote.EXPECT().CreateRecord(ctx, local, "user-1").Return(local, nil),
		deps.records.EXPECT().WriteRecord(ctx, "user-1", local).Return(nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, NewBatchContext(), change)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRemoteNotFound, outcome.Kind)
}

func TestResolve_Update_FetchFailureKeepsEntry(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	change, _ := updateChange(t, at(time.Hour), 0)

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{}, adapter.ErrBadGateway)

	_, err := r.Resolve(ctx, NewBatchContext(), change)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestResolve_Update_QueueDeleteFailure(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()
	change, _ := updateChange(t, at(time.Hour), 0)
	boom := errors.New("locked")

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{ID: "e-1", RevisionDate: t0}, nil)
	deps.remote.EXPECT().UpdateRecord(ctx, gomock.Any(), "user-1").Return(models.Record{}, nil)
	deps.queue.EXPECT().Delete(ctx, "pc-1").Return(boom)

	_, err := r.Resolve(ctx, NewBatchContext(), change)
	require.ErrorIs(t, err, boom)
}

func deleteChange(changeType models.ChangeType) models.PendingChange {
	return models.PendingChange{
		ID:               "pc-1",
		EntityID:         "e-1",
		UserID:           "user-1",
		ChangeType:       changeType,
		OriginalRevision: models.RevisionAt(t0),
	}
}

func TestResolve_Delete_RemoteNotFound(t *testing.T) {
	for _, ct := range []models.ChangeType{models.ChangeSoftDelete, models.ChangeHardDelete} {
		t.Run(ct.String(), func(t *testing.T) {
			r, deps := newTestResolver(t)
			ctx := context.Background()

			deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{}, adapter.ErrNotFound)
			gomock.InOrder(
				deps.records.EXPECT().DeleteRecord(ctx, "user-1", "e-1").Return(nil),
				deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
			)

			outcome, err := r.Resolve(ctx, NewBatchContext(), deleteChange(ct))
			require.NoError(t, err)
			assert.Equal(t, models.OutcomeRemoteNotFound, outcome.Kind)
		})
	}
}

func TestResolve_Delete_RevisionMismatch(t *testing.T) {
	for _, ct := range []models.ChangeType{models.ChangeSoftDelete, models.ChangeHardDelete} {
		t.Run(ct.String(), func(t *testing.T) {
			r, deps := newTestResolver(t)
			ctx := context.Background()
			remote := models.Record{ID: "e-1", Name: "enc-remote", RevisionDate: at(time.Hour)}

			deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(remote, nil)
			gomock.InOrder(
				deps.records.EXPECT().WriteRecord(ctx, "user-1", remote).Return(nil),
				deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
			)

			outcome, err := r.Resolve(ctx, NewBatchContext(), deleteChange(ct))
			require.NoError(t, err)
			assert.Equal(t, models.Outcome{Kind: models.OutcomeHardConflict, Winner: models.RemoteWins}, outcome)
		})
	}
}

func TestResolve_SoftDelete(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{ID: "e-1", RevisionDate: t0}, nil)
	gomock.InOrder(
		deps.remote.EXPECT().SoftDeleteRecord(ctx, "e-1").Return(nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, NewBatchContext(), deleteChange(models.ChangeSoftDelete))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNoConflict, outcome.Kind)
}

func TestResolve_HardDelete(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{ID: "e-1", RevisionDate: t0}, nil)
	gomock.InOrder(
		deps.remote.EXPECT().HardDeleteRecord(ctx, "e-1").Return(nil),
		deps.records.EXPECT().DeleteRecord(ctx, "user-1", "e-1").Return(nil),
		deps.queue.EXPECT().Delete(ctx, "pc-1").Return(nil),
	)

	outcome, err := r.Resolve(ctx, NewBatchContext(), deleteChange(models.ChangeHardDelete))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNoConflict, outcome.Kind)
}

func TestResolve_Delete_RemoteFailureKeepsEntry(t *testing.T) {
	r, deps := newTestResolver(t)
	ctx := context.Background()

	deps.remote.EXPECT().GetRecord(ctx, "e-1").Return(models.Record{ID: "e-1", RevisionDate: t0}, nil)
	deps.remote.EXPECT().HardDeleteRecord(ctx, "e-1").Return(adapter.ErrForbidden)

	_, err := r.Resolve(ctx, NewBatchContext(), deleteChange(models.ChangeHardDelete))
	require.ErrorIs(t, err, adapter.ErrForbidden)
}
