// Package alu implements the P8 scalar operations: the four arithmetic
// operations, negation, absolute value, reciprocal and total ordering.
// Every operation is O(1): a single table probe into the tables package,
// or a signed-byte comparison for Compare.
package alu

import "github.com/sarchlab/posit8/tables"

// Add returns the P8 sum of a and b.
func Add(a, b byte) byte {
	return tables.Get().Add[a][b]
}

// Sub returns the P8 difference a - b.
func Sub(a, b byte) byte {
	return tables.Get().Sub[a][b]
}

// Mul returns the P8 product of a and b.
func Mul(a, b byte) byte {
	return tables.Get().Mul[a][b]
}

// Div returns the P8 quotient a / b. A zero divisor yields NaR.
func Div(a, b byte) byte {
	return tables.Get().Div[a][b]
}

// Neg returns -p. Neg(0x00) is 0x00 and Neg(0x80) is 0x80.
func Neg(p byte) byte {
	return tables.Get().Neg[p]
}

// Abs returns |p|. Abs(0x80) is 0x80.
func Abs(p byte) byte {
	return tables.Get().Abs[p]
}

// Recip returns 1/p. Recip(0x00) and Recip(0x80) are both 0x80.
func Recip(p byte) byte {
	return tables.Get().Recip[p]
}

// Compare returns -1, 0 or +1 according to whether a is less than, equal
// to, or greater than b. It returns 0 if either operand is NaR, which
// means Compare is not a total order over the full P8 domain: NaR
// compares equal to everything, including itself. This mirrors the
// reference implementation's behavior; callers who need a genuine total
// order (e.g. to sort a NaR-containing slice) must filter NaR out first.
//
// The P8 code points, read as signed 8-bit two's-complement integers,
// are order-preserving with respect to decoded value on every non-NaR
// octet, so a direct signed-byte comparison is exact.
func Compare(a, b byte) int {
	if a == 0x80 || b == 0x80 {
		return 0
	}
	ai, bi := int8(a), int8(b)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}
