// Package mpc implements the distributed set-membership protocol (§4.4):
// validators, each holding a share of a secret real index r in {1..10},
// jointly decide whether r lies in a publicly agreed availability set A,
// without reconstructing r.
package mpc

import (
	"github.com/Djinn-Inc/djinn-sub001/field"
	"github.com/Djinn-Inc/djinn-sub001/shamir"
)

// Contribution is one validator's published value in a gate:
//
//	c_i = lambda_i(0) * y_i * g(x_i) mod p
//
// where lambda_i(0) is the Lagrange basis coefficient at 0 for the
// participating x-set, g is the public gate polynomial for the availability
// set A, and (x_i, y_i) is the validator's index share. Bound to SessionID
// and GateIdx for disambiguation across concurrent sessions.
type Contribution struct {
	SessionID string
	GateIdx   int
	X         field.Element
	Value     field.Element
}

// GatePoly evaluates g(z) = Prod_{a in A} (z - a) at z, the public gate
// polynomial whose root set is the availability set A (§4.4 step 1).
// g(r) == 0 iff r is in A.
func GatePoly(available map[int]struct{}, z field.Element) field.Element {
	out := field.NewElementFromUint64(1)
	for a := range available {
		term := field.Sub(z, field.NewElementFromUint64(uint64(a)))
		out = field.Mul(out, term)
	}
	return out
}

// ComputeLocalContribution computes a validator's contribution to a gate
// deciding membership in available, given the evaluation points of every
// validator participating in this gate (needed for the Lagrange basis at
// 0). share must be one of the shares at those points.
//
// Publishing the result does not reveal y_i: g is public, and a single y_i
// is uniformly random outside what the adversary already holds via its own
// shares (§4.4 step 4).
func ComputeLocalContribution(
	sessionID string,
	gateIdx int,
	share shamir.Share,
	participatingXs []field.Element,
	available map[int]struct{},
) Contribution {
	idx := indexOf(participatingXs, share.X)
	lambda := shamir.LagrangeCoefficientAtZero(participatingXs, idx)
	g := GatePoly(available, share.X)

	value := field.Mul(lambda, field.Mul(share.Y, g))
	return Contribution{
		SessionID: sessionID,
		GateIdx:   gateIdx,
		X:         share.X,
		Value:     value,
	}
}

func indexOf(xs []field.Element, x field.Element) int {
	for i, v := range xs {
		if v.Equal(x) {
			return i
		}
	}
	panic("mpc: share X not found in participating set")
}
