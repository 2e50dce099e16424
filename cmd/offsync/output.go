package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

var (
	conflictColor = color.New(color.FgYellow)
	failureColor  = color.New(color.FgRed)
	okColor       = color.New(color.FgGreen)
)

// outcomeLabel colours conflicts and failures. Output is left plain when
// stdout is not a terminal.
func outcomeLabel(item models.ItemResult) string {
	label := item.Outcome.String()
	switch {
	case item.Err != nil:
		return failureColor.Sprint(label)
	case item.Outcome.Kind == models.OutcomeHardConflict, item.Outcome.Kind == models.OutcomeSoftConflict:
		return conflictColor.Sprint(label)
	default:
		return okColor.Sprint(label)
	}
}

func printReport(w io.Writer, report models.BatchReport) {
	fmt.Fprintf(w, "user %s: %d total, %d resolved, %d failed, %d skipped\n",
		report.UserID, report.Total, report.Resolved, report.Failed, report.Skipped)
	if len(report.Items) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tCHANGE\tOUTCOME\tERROR")
	for _, item := range report.Items {
		errText := "-"
		if item.Err != nil {
			errText = failureColor.Sprint(item.Err.Error())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.EntityID, item.ChangeType, outcomeLabel(item), errText)
	}
	tw.Flush()
}

func printPending(w io.Writer, changes []models.PendingChange, quarantined []models.QuarantinedChange) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tENTITY\tCHANGE\tORIGINAL REVISION\tUPDATED\tPASSWORD CHANGES")
	for _, ch := range changes {
		original := "-"
		if at, ok := ch.OriginalRevision.Get(); ok {
			original = at.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			ch.ID, ch.EntityID, ch.ChangeType, original,
			ch.LocalTimestamp().UTC().Format(time.RFC3339), ch.OfflinePasswordChangeCount)
	}
	tw.Flush()

	if len(quarantined) == 0 {
		return
	}
	conflictColor.Fprintf(w, "\n%d quarantined:\n", len(quarantined))
	for _, q := range quarantined {
		fmt.Fprintf(w, "  %s (entity %s): %v\n", q.ID, q.EntityID, q.Reason)
	}
}
