package calc

import (
	"errors"
	"math"
	"testing"
)

func TestOperations(t *testing.T) {
	cases := []struct {
		name string
		op   func(a, b float64) (float64, error)
		a, b float64
		want float64
	}{
		{"add", Add, 2, 3, 5},
		{"add negative", Add, -2, 3, 1},
		{"add zero", Add, 0, 5, 5},
		{"subtract", Subtract, 10, 4, 6},
		{"subtract zero", Subtract, 7, 0, 7},
		{"multiply", Multiply, 6, 7, 42},
		{"multiply by zero", Multiply, 9, 0, 0},
		{"divide", Divide, 9, 3, 3},
		{"divide zero numerator", Divide, 0, 5, 0},
		{"divide fractional", Divide, 1, 4, 0.25},
	}
	for _, tc := range cases {
		got, err := tc.op(tc.a, tc.b)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAddCommutes(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {-3.5, 7.25}, {0.1, 0.2}}
	for _, p := range pairs {
		ab, err := Add(p[0], p[1])
		if err != nil {
			t.Fatalf("Add(%v, %v): %v", p[0], p[1], err)
		}
		ba, err := Add(p[1], p[0])
		if err != nil {
			t.Fatalf("Add(%v, %v): %v", p[1], p[0], err)
		}
		if ab != ba {
			t.Fatalf("Add(%v, %v) != Add(%v, %v): %v vs %v", p[0], p[1], p[1], p[0], ab, ba)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	if _, err := Divide(5, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := Divide(0, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero for 0/0, got %v", err)
	}
}

func TestNaNOperandRejected(t *testing.T) {
	nan := math.NaN()
	ops := map[string]func(a, b float64) (float64, error){
		"add": Add, "subtract": Subtract, "multiply": Multiply, "divide": Divide,
	}
	for name, op := range ops {
		if _, err := op(nan, 1); !errors.Is(err, ErrInvalidOperand) {
			t.Fatalf("%s(NaN, 1): expected ErrInvalidOperand, got %v", name, err)
		}
		if _, err := op(1, nan); !errors.Is(err, ErrInvalidOperand) {
			t.Fatalf("%s(1, NaN): expected ErrInvalidOperand, got %v", name, err)
		}
	}
}
