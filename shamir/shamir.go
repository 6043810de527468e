// Package shamir implements Shamir secret sharing over the BN254 scalar
// field: splitting a secret into n shares with threshold k, and
// reconstructing it (or any polynomial evaluation built the same way) via
// Lagrange interpolation at zero.
package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"

	"github.com/Djinn-Inc/djinn-sub001/field"
)

// SignalTotalShares and SignalThreshold are the protocol's fixed Shamir
// parameters (§6): n=10, k=7. They are part of the protocol and must not be
// varied per call.
const (
	SignalTotalShares = 10
	SignalThreshold   = 7
)

// Split produces n shares of secret with reconstruction threshold k.
//
// Preconditions: 0 <= secret < field.Prime, 1 <= k <= n <= p-1. Coefficients
// a_1..a_{k-1} are sampled uniformly from [0, field.Prime) using a
// cryptographically strong source; a_0 = secret. Returns ErrSecretOutOfRange
// if secret >= field.Prime, or ErrBadParams if n < k or k < 1.
func Split(secret *big.Int, n, k int) (Shares, error) {
	if !field.InRange(secret) {
		return nil, &Error{Kind: ErrSecretOutOfRange, Msg: fmt.Sprintf("secret must be < %s", field.Prime)}
	}
	if k < 1 || n < k {
		return nil, &Error{Kind: ErrBadParams, Msg: fmt.Sprintf("need 1 <= k <= n, got k=%d n=%d", k, n)}
	}

	coeffs := make([]field.Element, k)
	coeffs[0] = field.NewElement(secret)
	for i := 1; i < k; i++ {
		r, err := randFieldElement()
		if err != nil {
			return nil, fmt.Errorf("shamir: sampling coefficient: %w", err)
		}
		coeffs[i] = r
	}

	shares := make(Shares, n)
	for i := 1; i <= n; i++ {
		x := field.NewElementFromUint64(uint64(i))
		shares[i-1] = NewShare(x, evalPoly(coeffs, x))
	}
	// Guarantee ascending-X ordering (§4.2) rather than relying on the loop
	// above happening to produce it.
	return sortedByX(shares), nil
}

// Reconstruct computes f(0) from a set of shares of the same polynomial,
// via Lagrange interpolation. Any set of >= k distinct-X shares yields the
// secret; callers with fewer than k shares receive a well-defined but
// effectively random field element — detecting under-threshold
// reconstruction is out of scope by design, to preserve secrecy.
func Reconstruct(shares Shares) *big.Int {
	xs := make([]field.Element, len(shares))
	for i, s := range shares {
		xs[i] = s.X
	}

	var acc field.Element
	for i, s := range shares {
		lambda := LagrangeCoefficientAtZero(xs, i)
		acc = field.Add(acc, field.Mul(s.Y, lambda))
	}
	return acc.BigInt()
}

// LagrangeCoefficientAtZero computes lambda_i(0), the Lagrange basis
// coefficient for the i-th point in xs evaluated at 0:
//
//	lambda_i(0) = Prod_{j != i} (-x_j) / (x_i - x_j)
//
// Exported for reuse by the mpc package, which needs the same basis
// coefficients to weight per-validator contributions (§4.4).
func LagrangeCoefficientAtZero(xs []field.Element, i int) field.Element {
	num := field.NewElementFromUint64(1)
	den := field.NewElementFromUint64(1)
	for j := range xs {
		if j == i {
			continue
		}
		num = field.Mul(num, field.Neg(xs[j]))
		den = field.Mul(den, field.Sub(xs[i], xs[j]))
	}
	denInv, err := field.Inv(den)
	if err != nil {
		// Only possible if xs contains a duplicate X, which callers must
		// have already rejected.
		panic(fmt.Sprintf("shamir: duplicate evaluation point in %v: %v", xs, err))
	}
	return field.Mul(num, denInv)
}

// GenerateSignalIndexShares wraps Split with n=10, k=7 to share a signal's
// real index (1..10) among the ten decoys. Fails with ErrIndexOutOfRange if
// realIndex is not in {1..10}.
func GenerateSignalIndexShares(realIndex int) (Shares, error) {
	if realIndex < 1 || realIndex > 10 {
		return nil, &Error{Kind: ErrIndexOutOfRange, Msg: fmt.Sprintf("index must be in [1, 10], got %d", realIndex)}
	}
	return Split(big.NewInt(int64(realIndex)), SignalTotalShares, SignalThreshold)
}

// UniqueXs reports whether no two shares have the same X (§8 property 3).
// It does not check that the X values are exactly {1..n}.
func UniqueXs(shares Shares) bool {
	seen := make(map[string]struct{}, len(shares))
	for _, s := range shares {
		key := s.X.BigInt().String()
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// sortedByX returns a copy of shares ordered by ascending X, matching the
// ordering Split returns (§4.2 tie-break and ordering).
func sortedByX(shares Shares) Shares {
	out := make(Shares, len(shares))
	copy(out, shares)
	sort.Slice(out, func(i, j int) bool {
		return out[i].X.BigInt().Cmp(out[j].X.BigInt()) < 0
	})
	return out
}

func evalPoly(coeffs []field.Element, x field.Element) field.Element {
	// Horner's method: avoids recomputing x^j from scratch per term.
	var acc field.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x), coeffs[i])
	}
	return acc
}

func randFieldElement() (field.Element, error) {
	v, err := rand.Int(rand.Reader, field.Prime)
	if err != nil {
		return field.Element{}, err
	}
	return field.NewElement(v), nil
}
