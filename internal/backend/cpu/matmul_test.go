package cpu

import (
	"errors"
	"testing"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func TestDot_VecVec(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3})
	b, _ := ndarray.FromSlice([]float64{4, 5, 6}, ndarray.Shape{3})

	result, err := backend.Dot(a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !result.Shape().Equal(ndarray.Shape{1}) {
		t.Fatalf("shape = %v, want [1]", result.Shape())
	}
	if result.Data()[0] != 32 {
		t.Errorf("Dot = %v, want 32", result.Data()[0])
	}
}

func TestDot_MatVec(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	v, _ := ndarray.FromSlice([]float64{1, 0, -1}, ndarray.Shape{3})

	result, err := backend.Dot(a, v)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !result.Shape().Equal(ndarray.Shape{2}) {
		t.Fatalf("shape = %v, want [2]", result.Shape())
	}
	want := []float64{-2, -2}
	for i, got := range result.Data() {
		if got != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestDot_MatMat(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	b, _ := ndarray.FromSlice([]float64{7, 8, 9, 10, 11, 12}, ndarray.Shape{3, 2})

	result, err := backend.Dot(a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !result.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", result.Shape())
	}
	want := []float64{58, 64, 139, 154}
	for i, got := range result.Data() {
		if got != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestDot_Identity(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	eye, _ := ndarray.FromSlice([]float64{1, 0, 0, 1}, ndarray.Shape{2, 2})

	result, err := backend.Dot(a, eye)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !result.Equal(a) {
		t.Error("A x I must equal A")
	}
}

func TestDot_ShapeMismatch(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3})
	b, _ := ndarray.FromSlice([]float64{1, 2}, ndarray.Shape{2})
	if _, err := backend.Dot(a, b); !errors.Is(err, ndarray.ErrShapeMismatch) {
		t.Errorf("vector lengths: error = %v, want ErrShapeMismatch", err)
	}

	m, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	n, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	if _, err := backend.Dot(m, n); !errors.Is(err, ndarray.ErrShapeMismatch) {
		t.Errorf("inner dims: error = %v, want ErrShapeMismatch", err)
	}
	if _, err := backend.Dot(m, b); !errors.Is(err, ndarray.ErrShapeMismatch) {
		t.Errorf("mat-vec inner dim: error = %v, want ErrShapeMismatch", err)
	}
}

func TestDot_UnsupportedOperands(t *testing.T) {
	backend := New()

	data := make([]float64, 8)
	cube, _ := ndarray.FromSlice(data, ndarray.Shape{2, 2, 2})
	vec, _ := ndarray.FromSlice([]float64{1, 2}, ndarray.Shape{2})

	if _, err := backend.Dot(cube, vec); !errors.Is(err, ndarray.ErrUnsupportedOperands) {
		t.Errorf("3-D operand: error = %v, want ErrUnsupportedOperands", err)
	}
	if _, err := backend.Dot(vec, cube); !errors.Is(err, ndarray.ErrUnsupportedOperands) {
		t.Errorf("1-D x 3-D: error = %v, want ErrUnsupportedOperands", err)
	}
}
