package array

import "github.com/pkg/errors"

// Error kinds raised by array operations. All are local, synchronous
// failures reported at the point of detection; a failed operation
// produces no output and mutates no operand.
//
// Out-of-range coordinate access is intentionally not pre-validated
// everywhere: operations documented as relying on the container's native
// bounds check panic instead of returning ErrIndex.
var (
	// ErrShape reports incompatible shapes for join, broadcast,
	// element-wise arithmetic, dot products or equality preconditions.
	ErrShape = errors.New("incompatible shape")

	// ErrIndex reports an out-of-range coordinate where the operation
	// bounds-checks explicitly.
	ErrIndex = errors.New("index out of range")

	// ErrUpdate reports insufficient indices supplied to a multi-level set.
	ErrUpdate = errors.New("insufficient indices")

	// ErrValidation reports a non-rectangular structure detected by
	// explicit validation.
	ErrValidation = errors.New("non-rectangular structure")
)
