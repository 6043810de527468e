package shamir

import "fmt"

// Kind enumerates the distinguishable ShamirError conditions (§7).
// ShamirError is request-scoped and is expected to surface as a 4xx at the
// transport layer rather than propagate as a bug.
type Kind uint8

const (
	// ErrSecretOutOfRange signifies Split was asked to share a secret not in
	// [0, field.Prime).
	ErrSecretOutOfRange = Kind(iota)

	// ErrBadParams signifies n < k or k < 1 was supplied to Split.
	ErrBadParams

	// ErrIndexOutOfRange signifies GenerateSignalIndexShares was asked to
	// share a real index outside {1..10}.
	ErrIndexOutOfRange
)

func (k Kind) String() string {
	switch k {
	case ErrSecretOutOfRange:
		return "secret_out_of_range"
	case ErrBadParams:
		return "bad_params"
	case ErrIndexOutOfRange:
		return "index_out_of_range"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Error is the ShamirError taxonomy member.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("shamir: %s", e.Kind)
	}
	return fmt.Sprintf("shamir: %s: %s", e.Kind, e.Msg)
}
