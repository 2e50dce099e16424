package models

// OutcomeKind is the resolution class computed for a single pending change.
type OutcomeKind int

const (
	// OutcomeUnresolved means the pending change was not resolved (an error
	// occurred before a decision could be made).
	OutcomeUnresolved OutcomeKind = iota
	// OutcomeNoConflict means the remote record did not move since the edit
	// started and no precaution was needed.
	OutcomeNoConflict
	// OutcomeHardConflict means the remote revision differs from the one the
	// offline edit started from.
	OutcomeHardConflict
	// OutcomeSoftConflict means the remote record did not move, but enough
	// sensitive fields changed offline to warrant a backup before pushing.
	OutcomeSoftConflict
	// OutcomeRemoteNotFound means the remote record no longer exists.
	OutcomeRemoteNotFound
	// OutcomeCreated means a record created offline was pushed.
	OutcomeCreated
)

// Winner is the side kept by a hard-conflict tie-break.
type Winner int

const (
	// NoWinner is set on every outcome except a hard conflict.
	NoWinner Winner = iota
	// LocalWins keeps the offline edit and backs up the remote version.
	LocalWins
	// RemoteWins keeps the remote version and backs up the offline edit.
	RemoteWins
)

// Outcome is the tagged resolution result of one pending change. Winner is
// only meaningful for OutcomeHardConflict.
type Outcome struct {
	Kind   OutcomeKind
	Winner Winner
}

// String returns a short label used in logs and CLI output.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeNoConflict:
		return "no_conflict"
	case OutcomeHardConflict:
		if o.Winner == LocalWins {
			return "hard_conflict_local_wins"
		}
		return "hard_conflict_remote_wins"
	case OutcomeSoftConflict:
		return "soft_conflict"
	case OutcomeRemoteNotFound:
		return "remote_not_found"
	case OutcomeCreated:
		return "created"
	default:
		return "unresolved"
	}
}

// ItemResult is the per-entry line of a [BatchReport].
type ItemResult struct {
	PendingChangeID string
	EntityID        string
	ChangeType      ChangeType
	Outcome         Outcome
	Err             error
}

// BatchReport summarises one resolution pass over a user's queue.
type BatchReport struct {
	UserID string
	// Total is the number of entries read from the queue, quarantined ones
	// included.
	Total    int
	Resolved int
	Failed   int
	// Skipped counts quarantined entries that were left in the queue.
	Skipped int
	Items   []ItemResult
}
