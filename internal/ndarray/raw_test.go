package ndarray

import (
	"errors"
	"testing"
)

func TestNewInvariant(t *testing.T) {
	shapes := []Shape{{1}, {4}, {2, 3}, {2, 3, 4}, {1, 1, 1}}
	for _, shape := range shapes {
		a, err := New(shape)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", shape, err)
		}
		if len(a.Data()) != shape.NumElements() {
			t.Errorf("New(%v): buffer length %d, want %d", shape, len(a.Data()), shape.NumElements())
		}
		for _, v := range a.Data() {
			if v != 0 {
				t.Errorf("New(%v): buffer not zeroed", shape)
				break
			}
		}
	}
}

func TestNewInvalidShape(t *testing.T) {
	if _, err := New(Shape{}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("empty shape: got %v, want ErrInvalidShape", err)
	}
	if _, err := New(Shape{3, 0}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("zero dimension: got %v, want ErrInvalidShape", err)
	}
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if a.Size() != 6 || a.Rank() != 2 {
		t.Errorf("Size=%d Rank=%d, want 6, 2", a.Size(), a.Rank())
	}

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short data: got %v, want ErrSizeMismatch", err)
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []float64{1, 2, 3}
	a, err := FromSlice(data, Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	data[0] = 99
	if a.Data()[0] != 1 {
		t.Error("FromSlice aliased the caller's slice")
	}
}

func TestAt(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	v, err := a.At(1, 2)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if v != 6 {
		t.Errorf("At(1,2) = %v, want 6", v)
	}

	if _, err := a.At(2, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("out-of-range: got %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := a.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("wrong arity: got %v, want ErrIndexOutOfBounds", err)
	}
}

func TestSetCopyOnWrite(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})

	b, err := a.Set(42, 0, 1)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if v, _ := b.At(0, 1); v != 42 {
		t.Errorf("new array element = %v, want 42", v)
	}
	if v, _ := a.At(0, 1); v != 2 {
		t.Errorf("original mutated: element = %v, want 2", v)
	}
}

func TestCloneIndependence(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b := a.Clone()
	b.Data()[0] = 7
	if a.Data()[0] != 1 {
		t.Error("Clone shares the buffer")
	}
	if !b.Shape().Equal(a.Shape()) {
		t.Errorf("Clone shape %v, want %v", b.Shape(), a.Shape())
	}
}

func TestEqualAndAllClose(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	c, _ := FromSlice([]float64{1, 2, 3.0001}, Shape{3})
	d, _ := FromSlice([]float64{1, 2, 3}, Shape{1, 3})

	if !a.Equal(b) {
		t.Error("identical arrays not Equal")
	}
	if a.Equal(c) {
		t.Error("differing arrays Equal")
	}
	if a.Equal(d) {
		t.Error("different shapes Equal")
	}
	if !a.AllClose(c, 1e-3) {
		t.Error("AllClose rejected within tolerance")
	}
	if a.AllClose(c, 1e-6) {
		t.Error("AllClose accepted outside tolerance")
	}
}
