package ndarray

import "github.com/pkg/errors"

// FromNested builds an Array from a dynamically typed host value: a numeric
// scalar, a flat sequence, or a nested sequence-of-sequences. The variant is
// resolved once here; the numeric core never re-inspects dynamic typing.
//
// Shape is inferred from nesting depth and per-level length. Sibling
// sub-sequences of different lengths fail with ErrShapeMismatch; a
// non-numeric leaf fails with ErrInvalidElement.
func FromNested(value any) (*Array, error) {
	if v, ok := toFloat(value); ok {
		return FromSlice([]float64{v}, Shape{1})
	}

	shape, err := inferShape(value)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, shape.NumElements())
	data, err = flattenInto(data, value, shape, 0)
	if err != nil {
		return nil, err
	}
	return FromSlice(data, shape)
}

// ToNested reconstructs the nested structure of an Array: a []float64 for a
// rank-1 array, otherwise a []any nesting one level per axis. Inverse of
// FromNested for any well-formed nested numeric sequence.
func ToNested(a *Array) any {
	return nestedAt(a.data, a.shape)
}

func nestedAt(data []float64, shape Shape) any {
	if len(shape) == 1 {
		out := make([]float64, shape[0])
		copy(out, data)
		return out
	}
	stride := Shape(shape[1:]).NumElements()
	out := make([]any, shape[0])
	for i := range out {
		out[i] = nestedAt(data[i*stride:(i+1)*stride], shape[1:])
	}
	return out
}

// inferShape descends the first child at every level to determine the shape.
func inferShape(value any) (Shape, error) {
	seq, ok := children(value)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidElement, "not a numeric sequence: %T", value)
	}
	if len(seq) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "empty sequence")
	}
	if _, leaf := toFloat(seq[0]); leaf {
		return Shape{len(seq)}, nil
	}
	sub, err := inferShape(seq[0])
	if err != nil {
		return nil, err
	}
	return append(Shape{len(seq)}, sub...), nil
}

// flattenInto appends the sequence's leaves to data in row-major order,
// validating every level against the inferred shape.
func flattenInto(data []float64, value any, shape Shape, depth int) ([]float64, error) {
	if depth == len(shape) {
		v, ok := toFloat(value)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidElement, "non-numeric leaf: %T", value)
		}
		return append(data, v), nil
	}

	seq, ok := children(value)
	if !ok {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"expected a sequence at depth %d, got %T", depth, value)
	}
	if len(seq) != shape[depth] {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"sibling length %d at depth %d, expected %d", len(seq), depth, shape[depth])
	}
	var err error
	for _, child := range seq {
		data, err = flattenInto(data, child, shape, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// children normalizes the supported sequence forms to []any.
func children(value any) ([]any, bool) {
	switch s := value.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// toFloat converts a numeric leaf to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
