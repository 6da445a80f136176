package cpu

import (
	"math"
	"testing"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func TestNegAbs(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{-1, 0, 2}, ndarray.Shape{3})

	neg, _ := backend.Neg(a)
	abs, _ := backend.Abs(a)

	wantNeg := []float64{1, 0, -2}
	wantAbs := []float64{1, 0, 2}
	for i := range wantNeg {
		if neg.Data()[i] != wantNeg[i] {
			t.Errorf("Neg[%d] = %v, want %v", i, neg.Data()[i], wantNeg[i])
		}
		if abs.Data()[i] != wantAbs[i] {
			t.Errorf("Abs[%d] = %v, want %v", i, abs.Data()[i], wantAbs[i])
		}
	}
}

func TestSqrtLog_DomainPropagation(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{4, -1, 0}, ndarray.Shape{3})

	sqrt, err := backend.Sqrt(a)
	if err != nil {
		t.Fatalf("Sqrt must not fail on domain violations: %v", err)
	}
	if sqrt.Data()[0] != 2 {
		t.Errorf("Sqrt(4) = %v, want 2", sqrt.Data()[0])
	}
	if !math.IsNaN(sqrt.Data()[1]) {
		t.Errorf("Sqrt(-1) = %v, want NaN", sqrt.Data()[1])
	}

	log, err := backend.Log(a)
	if err != nil {
		t.Fatalf("Log must not fail on domain violations: %v", err)
	}
	if !math.IsNaN(log.Data()[1]) {
		t.Errorf("Log(-1) = %v, want NaN", log.Data()[1])
	}
	if !math.IsInf(log.Data()[2], -1) {
		t.Errorf("Log(0) = %v, want -Inf", log.Data()[2])
	}
}

func TestTrigAndHyperbolic(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{0, math.Pi / 2}, ndarray.Shape{2})

	sin, _ := backend.Sin(a)
	cos, _ := backend.Cos(a)
	if math.Abs(sin.Data()[1]-1) > 1e-12 {
		t.Errorf("Sin(pi/2) = %v, want 1", sin.Data()[1])
	}
	if math.Abs(cos.Data()[0]-1) > 1e-12 {
		t.Errorf("Cos(0) = %v, want 1", cos.Data()[0])
	}

	b, _ := ndarray.FromSlice([]float64{0.5}, ndarray.Shape{1})
	tanh, _ := backend.Tanh(b)
	atanh, _ := backend.Atanh(tanh)
	if math.Abs(atanh.Data()[0]-0.5) > 1e-12 {
		t.Errorf("Atanh(Tanh(0.5)) = %v, want 0.5", atanh.Data()[0])
	}

	sinh, _ := backend.Sinh(b)
	asinh, _ := backend.Asinh(sinh)
	if math.Abs(asinh.Data()[0]-0.5) > 1e-12 {
		t.Errorf("Asinh(Sinh(0.5)) = %v, want 0.5", asinh.Data()[0])
	}

	c, _ := ndarray.FromSlice([]float64{1.5}, ndarray.Shape{1})
	cosh, _ := backend.Cosh(c)
	acosh, _ := backend.Acosh(cosh)
	if math.Abs(acosh.Data()[0]-1.5) > 1e-12 {
		t.Errorf("Acosh(Cosh(1.5)) = %v, want 1.5", acosh.Data()[0])
	}

	asin, _ := backend.Asin(b)
	if math.Abs(asin.Data()[0]-math.Asin(0.5)) > 1e-12 {
		t.Errorf("Asin(0.5) = %v", asin.Data()[0])
	}
	acos, _ := backend.Acos(b)
	atan, _ := backend.Atan(b)
	tan, _ := backend.Tan(b)
	if math.Abs(acos.Data()[0]-math.Acos(0.5)) > 1e-12 ||
		math.Abs(atan.Data()[0]-math.Atan(0.5)) > 1e-12 ||
		math.Abs(tan.Data()[0]-math.Tan(0.5)) > 1e-12 {
		t.Error("Acos/Atan/Tan mismatch with math package")
	}

	exp, _ := backend.Exp(b)
	if math.Abs(exp.Data()[0]-math.Exp(0.5)) > 1e-12 {
		t.Errorf("Exp(0.5) = %v", exp.Data()[0])
	}
}

func TestFloorCeilRound(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{1.4, 1.5, -1.5, -1.4}, ndarray.Shape{4})

	floor, _ := backend.Floor(a)
	ceil, _ := backend.Ceil(a)
	round, _ := backend.Round(a)

	wantFloor := []float64{1, 1, -2, -2}
	wantCeil := []float64{2, 2, -1, -1}
	wantRound := []float64{1, 2, -2, -1}
	for i := range wantFloor {
		if floor.Data()[i] != wantFloor[i] {
			t.Errorf("Floor[%d] = %v, want %v", i, floor.Data()[i], wantFloor[i])
		}
		if ceil.Data()[i] != wantCeil[i] {
			t.Errorf("Ceil[%d] = %v, want %v", i, ceil.Data()[i], wantCeil[i])
		}
		if round.Data()[i] != wantRound[i] {
			t.Errorf("Round[%d] = %v, want %v", i, round.Data()[i], wantRound[i])
		}
	}
}

func TestSign_Exact(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{-3.7, 0, 0.001, math.Copysign(0, -1)}, ndarray.Shape{4})
	result, err := backend.Sign(a)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	want := []float64{-1, 0, 1, 0}
	for i, v := range result.Data() {
		if v != want[i] {
			t.Errorf("Sign[%d] = %v, want exactly %v", i, v, want[i])
		}
	}
}

func TestSign_NaN(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{math.NaN()}, ndarray.Shape{1})
	result, _ := backend.Sign(a)
	if !math.IsNaN(result.Data()[0]) {
		t.Errorf("Sign(NaN) = %v, want NaN", result.Data()[0])
	}
}

func TestClip(t *testing.T) {
	backend := New()

	a, _ := ndarray.FromSlice([]float64{-5, 0, 5, 10}, ndarray.Shape{4})
	result, err := backend.Clip(a, 0, 5)
	if err != nil {
		t.Fatalf("Clip failed: %v", err)
	}
	want := []float64{0, 0, 5, 5}
	for i, v := range result.Data() {
		if v != want[i] {
			t.Errorf("Clip[%d] = %v, want %v", i, v, want[i])
		}
	}
}
