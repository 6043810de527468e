package mpc

import "github.com/Djinn-Inc/djinn-sub001/field"

// Result is the outcome of aggregating a gate's contributions.
type Result struct {
	Available               bool
	ParticipatingValidators int
}

// CheckAvailability aggregates contributions for a single gate and decides
// membership (§4.4 step 5, §8 properties 4–5):
//
//	H := sum_i c_i mod p
//	available iff H == 0 AND len(contributions) >= threshold
//
// Fewer than threshold contributions always yield Available=false,
// regardless of the sum (a safety bias toward "unavailable").
//
// Note (§9 Open Question 1, preserved as specified): h(z) = f(z)*g(z) can
// have degree up to (k-1)+|A| <= 16, but with exactly threshold=7
// contributors the sum computed here is the degree-6 interpolation of
// {(x_i, y_i*g_i)} at 0, which equals h(0) only when deg(h) <= 6. This is
// the source's behavior and is preserved rather than corrected.
func CheckAvailability(contributions []Contribution, threshold int) Result {
	n := len(contributions)
	if n < threshold {
		return Result{Available: false, ParticipatingValidators: n}
	}

	var sum field.Element
	for _, c := range contributions {
		sum = field.Add(sum, c.Value)
	}
	return Result{Available: sum.IsZero(), ParticipatingValidators: n}
}
