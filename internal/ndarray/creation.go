package ndarray

import (
	"math"

	"github.com/pkg/errors"
)

// Source yields independent uniform draws on [0, 1). *rand.Rand from
// math/rand/v2 satisfies it; hosts inject a seeded source for
// reproducibility.
type Source interface {
	Float64() float64
}

// Zeros creates an Array filled with zeros.
func Zeros(shape Shape) (*Array, error) {
	return New(shape)
}

// Ones creates an Array filled with ones.
func Ones(shape Shape) (*Array, error) {
	return Full(shape, 1)
}

// Full creates an Array filled with a specific value.
func Full(shape Shape, value float64) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Arange creates a 1D Array with values from start toward stop (exclusive)
// in increments of step. The element count is ceil((stop-start)/step).
func Arange(start, stop, step float64) (*Array, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "arange: step must be non-zero")
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"arange: step %v does not advance from %v toward %v", step, start, stop)
	}
	a, err := New(Shape{n})
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = start + float64(i)*step
	}
	return a, nil
}

// Linspace creates a 1D Array of num evenly spaced samples, inclusive of
// both start and stop.
func Linspace(start, stop float64, num int) (*Array, error) {
	if num < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "linspace: num %d must be >= 2", num)
	}
	a, err := New(Shape{num})
	if err != nil {
		return nil, err
	}
	delta := (stop - start) / float64(num-1)
	for i := range a.data {
		a.data[i] = start + float64(i)*delta
	}
	return a, nil
}

// Rand creates an Array with elements drawn independently from the uniform
// distribution on [0, 1).
func Rand(shape Shape, src Source) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = src.Float64()
	}
	return a, nil
}

// Randn creates an Array with elements drawn independently from the
// standard normal distribution, using the Box-Muller transform over paired
// uniform draws. An odd final element comes from a single-sample variant of
// the same transform.
func Randn(shape Shape, src Source) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(a.data); i += 2 {
		u1 := src.Float64()
		u2 := src.Float64()
		r := math.Sqrt(-2.0 * math.Log(1.0-u1))
		a.data[i] = r * math.Cos(2.0*math.Pi*u2)
		if i+1 < len(a.data) {
			a.data[i+1] = r * math.Sin(2.0*math.Pi*u2)
		}
	}
	return a, nil
}
