package mpc

import "errors"

// MPCError taxonomy (§7). DuplicateContributor, OutOfRange, and
// DuplicateSession are user-visible protocol errors. A session that times
// out resolves to an Unavailable result in the PurchaseOrchestrator rather
// than an error. InsufficientContributions is reported by the orchestrator
// as an Error of kind KindInsufficientValidators when a session is still
// short of threshold after every peer has answered or failed.
var (
	// ErrDuplicateContributor signifies two contributions in the same gate
	// shared an evaluation point.
	ErrDuplicateContributor = errors.New("mpc: duplicate contributor")

	// ErrOutOfRange signifies a contribution's field element fell outside
	// [0, field.Prime).
	ErrOutOfRange = errors.New("mpc: contribution out of range")

	// ErrDuplicateSession signifies a session ID collision in the session
	// table.
	ErrDuplicateSession = errors.New("mpc: duplicate session")

	// ErrInsufficientContributions signifies fewer than the threshold (7)
	// valid contributions were available when a decision was requested.
	ErrInsufficientContributions = errors.New("mpc: insufficient contributions")

	// ErrSessionTimeout signifies a session exceeded MPC_PEER_TIMEOUT
	// without reaching ReadyToDecide.
	ErrSessionTimeout = errors.New("mpc: session timeout")

	// ErrUnknownSession signifies an operation referenced a session ID the
	// table does not hold (evicted or never created).
	ErrUnknownSession = errors.New("mpc: unknown session")
)
