package engine

import "errors"

// Error kinds returned by Engine operations. Callers should match against
// these with errors.Is; the engine always wraps them via
// github.com/pkg/errors before returning, adding the column or dimension
// as context for ErrNoPivot and ErrAllocation.
var (
	// ErrAllocation is returned when an engine cannot be constructed for the
	// requested dimension.
	ErrAllocation = errors.New("engine: allocation failed")

	// ErrNoPivot is returned by factorization when a column has no
	// candidate pivot larger than the configured tolerance. The basis is
	// numerically singular.
	ErrNoPivot = errors.New("engine: no pivot available")

	// ErrCantInvert is returned by InvertB0 when the eta chain is
	// non-empty.
	ErrCantInvert = errors.New("engine: cannot invert basis while etas are pending")
)
