package mpc

import (
	"sync"
	"time"

	"github.com/Djinn-Inc/djinn-sub001/field"
)

// Session is one gate's state machine: Open -> Decided once threshold
// contributions arrive, or Open -> Expired after the timeout (§4.4). It
// does not pause in ReadyToDecide; the decision is made in the same call
// that reaches threshold. A Session is safe for concurrent use; its lock
// never spans I/O (§5).
type Session struct {
	mu sync.Mutex

	id        string
	gateIdx   int
	available map[int]struct{}
	threshold int
	deadline  time.Time

	state         SessionState
	contributions []Contribution
	seenX         map[string]struct{}
	result        Result
}

// NewSession constructs a Session in the Open state, deciding availability
// against available once threshold valid contributions are collected, or
// resolving to Expired (Available=false) after timeout.
func NewSession(sessionID string, gateIdx int, available map[int]struct{}, threshold int, timeout time.Duration, now time.Time) *Session {
	return &Session{
		id:        sessionID,
		gateIdx:   gateIdx,
		available: available,
		threshold: threshold,
		deadline:  now.Add(timeout),
		state:     Open,
		seenX:     make(map[string]struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the session's current state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Contribute handles one incoming contribution, returning the GateEvent
// describing the transition. The aggregator accepts contributions in
// arrival order; the eventual decision depends only on the set of
// (x_i, c_i) pairs, not the order they arrived in (§5).
func (s *Session) Contribute(c Contribution, now time.Time) (GateEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Decided || s.state == Expired {
		return AlreadyDecided, nil
	}
	if now.After(s.deadline) {
		s.state = Expired
		s.result = Result{Available: false, ParticipatingValidators: len(s.contributions)}
		return AlreadyDecided, nil
	}

	if !field.InRange(c.X.BigInt()) || !field.InRange(c.Value.BigInt()) {
		return OutOfRange, ErrOutOfRange
	}

	key := c.X.BigInt().String()
	if _, dup := s.seenX[key]; dup {
		return DuplicateContributor, ErrDuplicateContributor
	}
	s.seenX[key] = struct{}{}
	s.contributions = append(s.contributions, c)

	if len(s.contributions) < s.threshold {
		return ContributionAdded, nil
	}

	s.state = Decided
	s.result = CheckAvailability(s.contributions, s.threshold)
	return GateDecided, nil
}

// CheckExpiry transitions an Open session whose deadline has passed to
// Expired (Available=false), and reports whether it did so. Callers (e.g. a
// sweeping goroutine) use this to reclaim sessions that never reached
// threshold without requiring another Contribute call.
func (s *Session) CheckExpiry(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Open || !now.After(s.deadline) {
		return false
	}
	s.state = Expired
	s.result = Result{Available: false, ParticipatingValidators: len(s.contributions)}
	return true
}

// Result returns the session's current state and decision. Before
// threshold is reached or the session expires, Result is the zero value
// and state is Open.
func (s *Session) Result() (Result, SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.state
}
