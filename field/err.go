package field

import "fmt"

// Kind enumerates the distinguishable FieldError conditions.
type Kind uint8

const (
	// ErrNoInverse signifies that the multiplicative inverse of zero was
	// requested.
	ErrNoInverse = Kind(iota)

	// ErrOutOfRange signifies that a value outside [0, Prime) was supplied
	// where a canonical representative was required.
	ErrOutOfRange
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case ErrNoInverse:
		return "no_inverse"
	case ErrOutOfRange:
		return "out_of_range"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Error is the FieldError taxonomy member (§7): always programmer/bug
// indicating, and expected to propagate up rather than be handled locally.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("field: %s", e.Kind)
}
