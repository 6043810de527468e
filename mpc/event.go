package mpc

import "fmt"

// GateEvent describes the outcome of handling one contribution, mirroring
// the teacher's ShareEvent enum (renproject-mpc/open/event.go) adapted to
// this protocol's gate.
type GateEvent uint8

const (
	// ContributionAdded signifies a valid contribution was accepted into
	// the current gate, but the session has not yet reached threshold.
	ContributionAdded = GateEvent(iota)

	// GateDecided signifies this contribution was the one that brought the
	// session to threshold; the session has now decided availability.
	GateDecided

	// DuplicateContributor signifies the contribution's X repeats one
	// already recorded for this gate; it is discarded without aborting the
	// session.
	DuplicateContributor

	// OutOfRange signifies a contribution field element fell outside
	// [0, field.Prime); discarded without aborting the session.
	OutOfRange

	// AlreadyDecided signifies the session had already reached Decided or
	// Expired; the contribution is ignored.
	AlreadyDecided
)

// String implements fmt.Stringer.
func (e GateEvent) String() string {
	switch e {
	case ContributionAdded:
		return "ContributionAdded"
	case GateDecided:
		return "GateDecided"
	case DuplicateContributor:
		return "DuplicateContributor"
	case OutOfRange:
		return "OutOfRange"
	case AlreadyDecided:
		return "AlreadyDecided"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}

// SessionState is the per-session state machine position (§4.4).
type SessionState uint8

const (
	// Open signifies the session is collecting contributions.
	Open = SessionState(iota)

	// ReadyToDecide signifies threshold contributions have been collected
	// and a decision is available. Session never reports this state: the
	// Contribute call that reaches threshold moves it straight to Decided.
	ReadyToDecide

	// Decided signifies the session has produced a final Result.
	Decided

	// Expired signifies the session timed out before reaching threshold;
	// it resolves to Available=false.
	Expired
)

func (s SessionState) String() string {
	switch s {
	case Open:
		return "Open"
	case ReadyToDecide:
		return "ReadyToDecide"
	case Decided:
		return "Decided"
	case Expired:
		return "Expired"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}
