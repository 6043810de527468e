// Package scorer implements MinerScorer/EpochLoop (C7): the per-epoch
// miner weighting hook and the ticker-driven loop that drives it against a
// chain (§4.7).
package scorer

import "sync"

// UID identifies a miner on the subnet.
type UID uint16

// counters accumulates one miner's per-epoch activity (§4.7).
type counters struct {
	healthChecks    int
	healthResponses int
	linesChecked    int
	proofsSubmitted int
	agreements      int
	challenges      int
}

// Scorer is MinerScorer (C7): it accumulates per-miner counters across an
// epoch and emits a normalized weight vector. It is safe for concurrent
// use — EpochLoop calls RecordHealthCheck from its concurrent health-ping
// goroutines and ComputeWeights from the loop itself.
type Scorer struct {
	mu     sync.Mutex
	miners map[UID]*counters
}

// New constructs an empty Scorer.
func New() *Scorer {
	return &Scorer{miners: make(map[UID]*counters)}
}

func (s *Scorer) entry(uid UID) *counters {
	c, ok := s.miners[uid]
	if !ok {
		c = &counters{}
		s.miners[uid] = c
	}
	return c
}

// RecordHealthCheck records one health-ping outcome for uid.
func (s *Scorer) RecordHealthCheck(uid UID, responded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.entry(uid)
	c.healthChecks++
	if responded {
		c.healthResponses++
	}
}

// RecordLineChecked records that uid was queried for a purchase-availability
// line during the epoch.
func (s *Scorer) RecordLineChecked(uid UID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(uid).linesChecked++
}

// RecordProofSubmitted records that uid submitted a proof during the epoch.
func (s *Scorer) RecordProofSubmitted(uid UID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(uid).proofsSubmitted++
}

// RecordChallengeResult records uid's agreement (or not) with a ground-truth
// challenge line's known availability.
func (s *Scorer) RecordChallengeResult(uid UID, agreed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.entry(uid)
	c.challenges++
	if agreed {
		c.agreements++
	}
}

// ComputeWeights emits a weight vector summing to 1 across every miner the
// Scorer has seen this epoch. During an inactive epoch (isActive=false) —
// no signals were processed — every known miner gets a uniform baseline
// weight rather than an activity-derived score, since activity counters
// are meaningless with no signals to act on.
func (s *Scorer) ComputeWeights(isActive bool) map[UID]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.miners) == 0 {
		return map[UID]float64{}
	}

	if !isActive {
		uniform := 1.0 / float64(len(s.miners))
		out := make(map[UID]float64, len(s.miners))
		for uid := range s.miners {
			out[uid] = uniform
		}
		return out
	}

	raw := make(map[UID]float64, len(s.miners))
	var total float64
	for uid, c := range s.miners {
		score := activityScore(c)
		raw[uid] = score
		total += score
	}

	out := make(map[UID]float64, len(s.miners))
	if total == 0 {
		uniform := 1.0 / float64(len(s.miners))
		for uid := range s.miners {
			out[uid] = uniform
		}
		return out
	}
	for uid, score := range raw {
		out[uid] = score / total
	}
	return out
}

// activityScore combines health responsiveness, volume of lines checked
// and proofs submitted, and challenge-line agreement into one weight.
// Health responsiveness gates the score to zero: an unresponsive miner
// earns no weight regardless of other activity.
func activityScore(c *counters) float64 {
	if c.healthChecks == 0 {
		return 0
	}
	responsiveness := float64(c.healthResponses) / float64(c.healthChecks)
	if responsiveness == 0 {
		return 0
	}

	agreement := 1.0
	if c.challenges > 0 {
		agreement = float64(c.agreements) / float64(c.challenges)
	}

	volume := float64(c.linesChecked + c.proofsSubmitted)
	return responsiveness * agreement * (1 + volume)
}

// Reset clears all accumulated counters, e.g. at the start of a new epoch.
func (s *Scorer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.miners = make(map[UID]*counters)
}
