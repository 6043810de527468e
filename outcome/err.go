package outcome

import "errors"

// OutcomeError taxonomy (§7). ErrTransportFailure is transient — the caller
// retries at the next epoch. ErrAmbiguous (neither outcome reaches quorum
// after the event is final) keeps the signal PENDING rather than erroring.
var (
	// ErrTransportFailure signifies the external result source failed.
	ErrTransportFailure = errors.New("outcome: transport failure")

	// ErrNoData signifies the source returned no data for the event.
	ErrNoData = errors.New("outcome: no data")

	// ErrAmbiguous signifies no outcome has reached quorum.
	ErrAmbiguous = errors.New("outcome: ambiguous, no quorum reached")
)
