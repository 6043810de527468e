package shamir

import (
	"fmt"
	"math/big"

	"github.com/renproject/surge"

	"github.com/Djinn-Inc/djinn-sub001/field"
)

// Share is an immutable evaluation (x, f(x)) of a secret polynomial f over
// the BN254 scalar field. Two shares with equal X but different Y come from
// different polynomials and must never be mixed.
type Share struct {
	X field.Element
	Y field.Element
}

// NewShare constructs a Share from its evaluation point and value.
func NewShare(x, y field.Element) Share {
	return Share{X: x, Y: y}
}

// IndexEq reports whether two shares have the same evaluation point.
func (s Share) IndexEq(other Share) bool {
	return s.X.Equal(other.X)
}

// String implements fmt.Stringer for debugging.
func (s Share) String() string {
	return fmt.Sprintf("Share(x=%s, y=%s)", s.X.BigInt(), s.Y.BigInt())
}

// Shares is an ordered collection of Share. Split returns these ordered by
// ascending X; callers reconstructing from a subset may pass it in any
// order since interpolation is commutative.
type Shares []Share

// elementSize is the width of a canonical BN254 field element on the wire:
// a big-endian 32-byte representative, matching §6's hex encoding once
// hex-wrapped by the transport layer.
const elementSize = 32

// SizeHint implements surge.SizeHinter.
func (s Share) SizeHint() int {
	return 2 * elementSize
}

// Marshal implements surge.Marshaler.
func (s Share) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := marshalElement(s.X, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling x: %w", err)
	}
	buf, rem, err = marshalElement(s.Y, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling y: %w", err)
	}
	return buf, rem, nil
}

// Unmarshal implements surge.Unmarshaler.
func (s *Share) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	x, buf, rem, err := unmarshalElement(buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling x: %w", err)
	}
	y, buf, rem, err := unmarshalElement(buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling y: %w", err)
	}
	s.X, s.Y = x, y
	return buf, rem, nil
}

func marshalElement(e field.Element, buf []byte, rem int) ([]byte, int, error) {
	if rem < elementSize || len(buf) < elementSize {
		return buf, rem, surge.ErrMaxBytesExceeded
	}
	e.BigInt().FillBytes(buf[:elementSize])
	return buf[elementSize:], rem - elementSize, nil
}

func unmarshalElement(buf []byte, rem int) (field.Element, []byte, int, error) {
	if rem < elementSize || len(buf) < elementSize {
		return field.Element{}, buf, rem, surge.ErrMaxBytesExceeded
	}
	v := new(big.Int).SetBytes(buf[:elementSize])
	return field.NewElement(v), buf[elementSize:], rem - elementSize, nil
}
