package dual

import "errors"

// Sentinel errors for dual-number operations.
//
// Callers branch on semantics with errors.Is; implementations attach
// call-site context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrDomain indicates an argument outside the valid domain of an
	// operation: division by a zero-valued operand, Log of a non-positive
	// real, Asin/Acos outside [-1,1] on the real line, Pow of a negative
	// real base with a non-integer exponent, Sqrt of a negative real.
	ErrDomain = errors.New("dual: argument outside function domain")

	// ErrUnsupported indicates an operand kind outside the closed variant
	// set (Const, *Dual, *Hyper), or a combination with no defined
	// semantics, such as mixing *Dual and *Hyper in one operation.
	ErrUnsupported = errors.New("dual: unsupported operand kind")
)
