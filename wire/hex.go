// Package wire defines the request/response shapes exposed by the thin
// HTTP transport layer that consumes the core (§6). The core itself does
// not define routes; these types are the agreed wire contract and the
// hex-encoding helpers for field elements on that wire.
package wire

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/Djinn-Inc/djinn-sub001/field"
)

// EncodeFieldElement renders e as lowercase hex of its canonical
// big-endian representative, without a "0x" prefix (§6 Field encoding).
func EncodeFieldElement(e field.Element) string {
	b := e.BigInt().Bytes()
	if len(b) == 0 {
		return "00"
	}
	return hex.EncodeToString(b)
}

// DecodeFieldElement parses a hex string, optionally "0x"-prefixed, into a
// field.Element. It rejects values outside [0, Prime).
func DecodeFieldElement(s string) (field.Element, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return field.Element{}, fmt.Errorf("wire: empty field element")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return field.Element{}, fmt.Errorf("wire: invalid hex field element: %w", err)
	}
	v := new(big.Int).SetBytes(raw)
	if !field.InRange(v) {
		return field.Element{}, fmt.Errorf("wire: field element out of range")
	}
	return field.NewElement(v), nil
}
