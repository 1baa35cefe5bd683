// Package gf2 implements the two-element field GF(2) = {0, 1}.
//
// What:
//
//   - Element: a scalar constrained to {0,1}.
//   - Addition is XOR, multiplication is AND, subtraction equals addition and
//     every element is its own additive inverse.
//   - Every constructor reduces its input modulo 2, so an Element that exists
//     is always a valid field value.
//
// Why:
//
//   - Boundary operators of a simplicial complex are computed with mod-2
//     coefficients; no sign tracking is needed because 1 + 1 = 0.
//   - Integer or float arithmetic over incidence entries must be folded back
//     into the field before it reaches a rank routine.
//
// Operand order:
//
//	Go has no operator overloading, so the two mixed orderings of addition are
//	exposed as separate entry points: Element.AddInt (element + value) and
//	IntAdd (value + element). Both reduce the result.
//
// Errors:
//
//   - ErrNotIntegral   a float input was NaN, ±Inf or had a fractional part
//   - ErrZeroInverse   Inv was called on Zero
package gf2
