package sharestore

import "errors"

// ErrUnknownSignal is the ShareStoreError taxonomy member (§7) for a signal
// ID with no stored record. No Store method returns it: an unknown signal
// for Get or Release is reported via a boolean, and a duplicate Store is a
// log-only no-op, not an error. purchase.Orchestrator returns it when it
// cannot collect enough key shares.
var ErrUnknownSignal = errors.New("sharestore: unknown signal")

// ErrEmptySignalID signifies Store was called with an empty signal_id,
// which violates the "opaque non-empty identifier" invariant (§3).
var ErrEmptySignalID = errors.New("sharestore: signal_id must not be empty")

// ErrShareIndexOutOfRange signifies a share whose X is not in {1..10} was
// passed to Store (§3 invariant: share.x in {1..10}).
var ErrShareIndexOutOfRange = errors.New("sharestore: share.x must be in [1, 10]")
