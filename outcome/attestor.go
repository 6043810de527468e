package outcome

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ResultSource fetches a sporting event's result from an external source.
// The concrete implementation (The-Odds-API client, etc.) is an out-of-scope
// collaborator (§1); this interface is the boundary the Attestor consumes.
type ResultSource interface {
	FetchScores(ctx context.Context, eventID, sport string) (EventResult, error)
}

// Attestor manages outcome attestation and quorum consensus for signals
// (C5). It is safe for concurrent use.
type Attestor struct {
	mu           sync.RWMutex
	attestations map[string][]OutcomeAttestation
	source       ResultSource
	log          *zap.Logger
}

// New constructs an Attestor. source may be nil if this validator never
// calls FetchEventResult directly (e.g. in tests that construct
// EventResult values by hand). log may be nil for a no-op logger.
func New(source ResultSource, log *zap.Logger) *Attestor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Attestor{
		attestations: make(map[string][]OutcomeAttestation),
		source:       source,
		log:          log,
	}
}

// FetchEventResult queries the external source for eventID's result.
// Transport errors are recoverable: the returned EventResult has
// Status=StatusError and err wraps ErrTransportFailure; the caller is
// expected to retry at the next epoch rather than treat this as fatal.
func (a *Attestor) FetchEventResult(ctx context.Context, eventID, sport string) (EventResult, error) {
	result, err := a.source.FetchScores(ctx, eventID, sport)
	if err != nil {
		a.log.Error("sports_api_error", zap.String("event_id", eventID), zap.Error(err))
		return EventResult{EventID: eventID, Status: StatusError}, wrapTransport(err)
	}
	return result, nil
}

// Attest appends an attestation to signalID's per-signal list. Policy is
// first-write-wins per (signal_id, validator_hotkey): a subsequent call by
// the same hotkey for the same signal is ignored and the original
// attestation is returned, protecting against a validator stuffing votes.
func (a *Attestor) Attest(signalID, validatorHotkey string, o Outcome, result EventResult, at time.Time) OutcomeAttestation {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.attestations[signalID] {
		if existing.ValidatorHotkey == validatorHotkey {
			a.log.Info("outcome_attestation_ignored",
				zap.String("signal_id", signalID),
				zap.String("validator_hotkey", validatorHotkey))
			return existing
		}
	}

	attestation := OutcomeAttestation{
		SignalID:        signalID,
		ValidatorHotkey: validatorHotkey,
		Outcome:         o,
		EventResult:     result,
		Timestamp:       at,
	}
	a.attestations[signalID] = append(a.attestations[signalID], attestation)
	a.log.Info("outcome_attested",
		zap.String("signal_id", signalID),
		zap.String("outcome", o.String()))
	return attestation
}

// CheckConsensus counts votes per outcome for signalID and returns the
// outcome whose count reaches the quorum threshold
// floor(totalValidators * quorum) + 1, or ok=false if none has (§4.5, §8
// S7). Ties are impossible at strict majority above 2/3.
func (a *Attestor) CheckConsensus(signalID string, totalValidators int, quorum float64) (Outcome, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	attestations := a.attestations[signalID]
	if len(attestations) == 0 {
		return Pending, false
	}

	threshold := int(math.Floor(float64(totalValidators)*quorum)) + 1

	votes := make(map[Outcome]int)
	for _, att := range attestations {
		votes[att.Outcome]++
	}
	for o, count := range votes {
		if count >= threshold {
			a.log.Info("consensus_reached",
				zap.String("signal_id", signalID),
				zap.String("outcome", o.String()),
				zap.Int("votes", count),
				zap.Int("threshold", threshold))
			return o, true
		}
	}
	return Pending, false
}

// Attestations returns a read-only copy of the attestations recorded for
// signalID, for introspection and tests.
func (a *Attestor) Attestations(signalID string) []OutcomeAttestation {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]OutcomeAttestation, len(a.attestations[signalID]))
	copy(out, a.attestations[signalID])
	return out
}

func wrapTransport(err error) error {
	return &transportWrapError{cause: err}
}

type transportWrapError struct {
	cause error
}

func (e *transportWrapError) Error() string {
	return "outcome: transport failure: " + e.cause.Error()
}

func (e *transportWrapError) Unwrap() error {
	return ErrTransportFailure
}
