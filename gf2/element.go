package gf2

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotIntegral is returned when a float value cannot be read as an integer.
	ErrNotIntegral = errors.New("gf2: value is not an integer")

	// ErrZeroInverse is returned when the multiplicative inverse of Zero is requested.
	ErrZeroInverse = errors.New("gf2: zero has no inverse")
)

// Element is a value of GF(2). Only the lowest bit is ever set.
type Element uint8

// Field constants.
const (
	Zero Element = 0
	One  Element = 1
)

// New reduces an integer into GF(2). Negative values reduce like their
// absolute value, so New(-3) == One.
func New(v int) Element {
	return Element(v & 1)
}

// FromBool maps false→Zero, true→One.
func FromBool(b bool) Element {
	if b {
		return One
	}

	return Zero
}

// FromFloat reduces an integral float64 into GF(2).
// NaN, ±Inf and values with a fractional part yield ErrNotIntegral.
func FromFloat(v float64) (Element, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return Zero, fmt.Errorf("FromFloat(%v): %w", v, ErrNotIntegral)
	}
	// math.Mod keeps the sign of v; Abs folds -1 onto 1.
	if math.Abs(math.Mod(v, 2)) == 1 {
		return One, nil
	}

	return Zero, nil
}

// Add returns e + o (XOR).
func (e Element) Add(o Element) Element { return (e ^ o) & 1 }

// Sub returns e - o, which equals e + o in characteristic 2.
func (e Element) Sub(o Element) Element { return e.Add(o) }

// Mul returns e · o (AND).
func (e Element) Mul(o Element) Element { return (e & o) & 1 }

// Neg returns -e, which is e itself.
func (e Element) Neg() Element { return e & 1 }

// Inv returns the multiplicative inverse. Only One is invertible.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Zero, ErrZeroInverse
	}

	return One, nil
}

// AddInt returns e + v reduced into the field.
func (e Element) AddInt(v int) Element { return New(int(e) + v) }

// IntAdd returns v + e reduced into the field.
func IntAdd(v int, e Element) Element { return New(v + int(e)) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e&1 == 0 }

// Int returns e as 0 or 1.
func (e Element) Int() int { return int(e & 1) }

// Float returns e as 0.0 or 1.0, the form consumed by dense matrices.
func (e Element) Float() float64 { return float64(e & 1) }

// String implements fmt.Stringer.
func (e Element) String() string {
	if e.IsZero() {
		return "0"
	}

	return "1"
}

// Sum folds a sequence of elements with XOR. The empty sum is Zero.
func Sum(xs ...Element) Element {
	var acc Element
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Dot returns Σ a[i]·b[i] over GF(2). Lengths must match.
func Dot(a, b []Element) (Element, error) {
	if len(a) != len(b) {
		return Zero, fmt.Errorf("Dot: len %d != %d", len(a), len(b))
	}
	var acc Element
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc, nil
}
