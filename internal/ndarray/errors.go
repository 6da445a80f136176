package ndarray

import "github.com/pkg/errors"

// Error kinds surfaced by the engine. Callers match with errors.Is; every
// wrapped failure carries the offending shapes, axis, or index in its message.
var (
	// ErrInvalidShape reports a shape that is empty or contains a
	// non-positive dimension.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrShapeMismatch reports operand shapes that are structurally
	// incompatible for a non-broadcasting requirement (concatenation,
	// stacking, nested-sequence parsing, dot operand lengths).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrSizeMismatch reports a total element count that does not match,
	// e.g. on reshape.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrBroadcast reports two shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("shapes not compatible for broadcasting")

	// ErrAxisOutOfBounds reports an axis outside its valid range.
	ErrAxisOutOfBounds = errors.New("axis out of bounds")

	// ErrIndexOutOfBounds reports an element index outside its valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidPermutation reports a transpose permutation that is not a
	// bijection over [0, rank).
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrNotDivisible reports an equal-sections split that does not evenly
	// divide the axis.
	ErrNotDivisible = errors.New("axis not evenly divisible")

	// ErrUnsupportedOperands reports a dot product called with an
	// unsupported rank combination.
	ErrUnsupportedOperands = errors.New("unsupported operands")

	// ErrInvalidArgument reports a parameter outside its documented domain,
	// e.g. an arange step of zero or linspace num < 2.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidElement reports a nested-sequence leaf that is not numeric.
	ErrInvalidElement = errors.New("invalid element")
)
