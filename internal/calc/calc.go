// Package calc provides basic float64 arithmetic with operand validation.
package calc

import (
	"errors"
	"math"
)

var (
	// ErrInvalidOperand reports an operand that is not a usable number.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

func validate(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) {
		return ErrInvalidOperand
	}
	return nil
}

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns a - b.
func Subtract(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns a * b.
func Multiply(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns a / b. The divisor must be non-zero.
func Divide(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
