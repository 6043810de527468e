// Package field implements modular arithmetic over the BN254 scalar field.
//
// The prime is shared with the protocol's ZK circuits, so shares computed
// here are directly usable downstream without re-encoding.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Prime is the BN254 scalar field modulus.
var Prime = fr.Modulus()

// Element is a field element in canonical representative form, i.e. an
// integer in [0, Prime). The zero value is the additive identity.
type Element struct {
	inner fr.Element
}

// NewElement reduces v mod Prime and returns the canonical representative.
func NewElement(v *big.Int) Element {
	var e Element
	e.inner.SetBigInt(v)
	return e
}

// NewElementFromUint64 builds an Element from a small non-negative integer.
func NewElementFromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// BigInt returns the canonical representative of e as a big.Int in [0, Prime).
func (e Element) BigInt() *big.Int {
	var out big.Int
	e.inner.BigInt(&out)
	return &out
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// Equal reports whether e and other represent the same field element.
func (e Element) Equal(other Element) bool {
	return e.inner.Equal(&other.inner)
}

// Add returns a + b mod Prime.
func Add(a, b Element) Element {
	var out Element
	out.inner.Add(&a.inner, &b.inner)
	return out
}

// Sub returns a - b mod Prime.
func Sub(a, b Element) Element {
	var out Element
	out.inner.Sub(&a.inner, &b.inner)
	return out
}

// Mul returns a * b mod Prime.
func Mul(a, b Element) Element {
	var out Element
	out.inner.Mul(&a.inner, &b.inner)
	return out
}

// Neg returns -a mod Prime.
func Neg(a Element) Element {
	var out Element
	out.inner.Neg(&a.inner)
	return out
}

// Pow returns a^k mod Prime.
func Pow(a Element, k uint64) Element {
	var out Element
	var exp big.Int
	exp.SetUint64(k)
	out.inner.Exp(a.inner, &exp)
	return out
}

// Inv returns the multiplicative inverse of a mod Prime.
// It returns ErrNoInverse wrapped in a FieldError if a is zero.
func Inv(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, &Error{Kind: ErrNoInverse}
	}
	var out Element
	out.inner.Inverse(&a.inner)
	return out, nil
}

// InRange reports whether v already lies in [0, Prime) without reducing it.
func InRange(v *big.Int) bool {
	if v.Sign() < 0 {
		return false
	}
	return v.Cmp(Prime) < 0
}
