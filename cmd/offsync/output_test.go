package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

func TestPrintReport_Plain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	printReport(&buf, models.BatchReport{
		UserID: "user-1", Total: 2, Resolved: 1, Failed: 1,
		Items: []models.ItemResult{
			{EntityID: "rec-1", ChangeType: models.ChangeUpdate, Outcome: models.Outcome{Kind: models.OutcomeHardConflict, Winner: models.LocalWins}},
			{EntityID: "rec-2", ChangeType: models.ChangeCreate, Err: errors.New("boom")},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "user user-1: 2 total, 1 resolved, 1 failed, 0 skipped\n")
	assert.Contains(t, out, "hard_conflict_local_wins")
	assert.Contains(t, out, "unresolved")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, models.BatchReport{UserID: "user-1"})
	assert.Equal(t, "user user-1: 0 total, 0 resolved, 0 failed, 0 skipped\n", buf.String())
}

func TestOutcomeLabel_Colored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	label := outcomeLabel(models.ItemResult{Outcome: models.Outcome{Kind: models.OutcomeSoftConflict}})
	assert.Equal(t, "\x1b[33msoft_conflict\x1b[0m", label)
}
