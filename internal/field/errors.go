package field

import "errors"

// Validation failures surfaced by the numeric layer. All of them are local
// to a single call; nothing is retried or recovered internally.
var (
	// ErrShapeMismatch reports two arrays that were expected to align
	// element-wise but have different dimensions.
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrDomainViolation reports values outside the domain a conversion
	// assumes, such as reconstruction angles outside [0, pi].
	ErrDomainViolation = errors.New("field: value outside valid domain")

	// ErrDegenerateInput reports a zero-size array passed to an operation
	// that needs at least one element, such as the quadrant split.
	ErrDegenerateInput = errors.New("field: degenerate zero-size input")
)
