package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type fakeRuntime struct {
	report      models.BatchReport
	processErr  error
	count       int
	changes     []models.PendingChange
	quarantined []models.QuarantinedChange

	watched bool
	cleared bool
	closed  bool
}

func (f *fakeRuntime) ProcessOnce(context.Context) (models.BatchReport, error) {
	return f.report, f.processErr
}
func (f *fakeRuntime) Watch(context.Context) error {
	f.watched = true
	return nil
}
func (f *fakeRuntime) PendingCount(context.Context) (int, error) {
	return f.count, nil
}
func (f *fakeRuntime) PendingList(context.Context) ([]models.PendingChange, []models.QuarantinedChange, error) {
	return f.changes, f.quarantined, nil
}
func (f *fakeRuntime) PendingClear(context.Context) error {
	f.cleared = true
	return nil
}
func (f *fakeRuntime) Close() error {
	f.closed = true
	return nil
}

var baseArgs = []string{"-u", "user-1", "-a", "127.0.0.1:8080", "-d", ":memory:", "--log-level", "error"}

func runRoot(t *testing.T, rt *fakeRuntime, args ...string) (string, *config.StructuredConfig, error) {
	t.Helper()

	var gotCfg *config.StructuredConfig
	c := &cli{
		newApp: func(_ context.Context, cfg *config.StructuredConfig, _ *logger.Logger) (runtime, error) {
			gotCfg = cfg
			return rt, nil
		},
	}
	root := c.rootCmd(models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), gotCfg, err
}

func mustTime(t *testing.T, raw string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	return ts
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runRoot(t, &fakeRuntime{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", out)
}

func TestProcessCmd(t *testing.T) {
	rt := &fakeRuntime{report: models.BatchReport{
		UserID:   "user-1",
		Total:    1,
		Resolved: 1,
		Items: []models.ItemResult{{
			PendingChangeID: "pc-1",
			EntityID:        "rec-1",
			ChangeType:      models.ChangeUpdate,
			Outcome:         models.Outcome{Kind: models.OutcomeSoftConflict},
		}},
	}}

	out, cfg, err := runRoot(t, rt, append([]string{"process", "--soft-conflict-threshold", "6"}, baseArgs...)...)
	require.NoError(t, err)
	assert.True(t, rt.closed)
	assert.False(t, rt.watched)
	assert.Contains(t, out, "user user-1: 1 total, 1 resolved, 0 failed, 0 skipped")
	assert.Contains(t, out, "soft_conflict")

	require.NotNil(t, cfg)
	assert.Equal(t, "user-1", cfg.App.UserID)
	assert.Equal(t, 6, cfg.Resolver.SoftConflictThreshold)
	assert.Equal(t, config.PlacementConflictFolder, cfg.Resolver.BackupPlacement)
}

func TestProcessCmd_FailedItems(t *testing.T) {
	rt := &fakeRuntime{report: models.BatchReport{
		UserID: "user-1",
		Total:  1,
		Failed: 1,
		Items: []models.ItemResult{{
			EntityID:   "rec-1",
			ChangeType: models.ChangeUpdate,
			Err:        errors.New("remote unavailable"),
		}},
	}}

	out, _, err := runRoot(t, rt, append([]string{"process"}, baseArgs...)...)
	require.Error(t, err)
	assert.Contains(t, out, "remote unavailable")
	assert.True(t, rt.closed)
}

func TestProcessCmd_Watch(t *testing.T) {
	rt := &fakeRuntime{}

	_, _, err := runRoot(t, rt, append([]string{"process", "--watch"}, baseArgs...)...)
	require.NoError(t, err)
	assert.True(t, rt.watched)
}

func TestProcessCmd_InvalidConfig(t *testing.T) {
	rt := &fakeRuntime{}

	_, cfg, err := runRoot(t, rt, "process", "-a", "127.0.0.1:8080", "--backup-placement", "nowhere", "-u", "user-1")
	require.ErrorIs(t, err, config.ErrInvalidResolverConfigs)
	assert.Nil(t, cfg)
}

func TestProcessCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := runRoot(t, &fakeRuntime{}, append([]string{"process"}, append(baseArgs, "--log-level", "loud")...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestPendingCmds(t *testing.T) {
	orig := models.RevisionAt(mustTime(t, "2026-05-01T12:00:00Z"))
	updated := mustTime(t, "2026-05-02T08:30:00Z")
	rt := &fakeRuntime{
		count: 2,
		changes: []models.PendingChange{{
			ID:                         "pc-1",
			EntityID:                   "rec-1",
			ChangeType:                 models.ChangeUpdate,
			OriginalRevision:           orig,
			UpdatedAt:                  &updated,
			OfflinePasswordChangeCount: 3,
		}},
		quarantined: []models.QuarantinedChange{{
			ID:       "pc-2",
			EntityID: "rec-2",
			Reason:   models.ErrUnknownChangeType,
		}},
	}

	out, _, err := runRoot(t, rt, append([]string{"pending", "count"}, baseArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = runRoot(t, rt, append([]string{"pending", "list"}, baseArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "pc-1")
	assert.Contains(t, out, "2026-05-01T12:00:00Z")
	assert.Contains(t, out, "2026-05-02T08:30:00Z")
	assert.Contains(t, out, "1 quarantined")
	assert.Contains(t, out, "pc-2 (entity rec-2)")
}

func TestPendingClear_RequiresConfirmation(t *testing.T) {
	rt := &fakeRuntime{}

	_, cfg, err := runRoot(t, rt, append([]string{"pending", "clear"}, baseArgs...)...)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.False(t, rt.cleared)

	_, _, err = runRoot(t, rt, append([]string{"pending", "clear", "--yes"}, baseArgs...)...)
	require.NoError(t, err)
	assert.True(t, rt.cleared)
}
