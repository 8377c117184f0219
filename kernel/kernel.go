// Package kernel implements the wide-accumulation P8 vector and matrix
// kernels: elementwise add, dot product and dense matrix multiply. All
// three accumulate in binary64 and encode back to P8 only at the sink,
// which avoids the double-rounding a pure-P8 accumulation path would
// suffer. Buffers are flat, row-major, caller-owned, and every kernel
// validates its argument lengths against the dimensions it was given
// before writing anything.
package kernel

import (
	"github.com/sarchlab/posit8/codec"
	"github.com/sarchlab/posit8/tables"
)

// ValidateVectorDims checks that a, b and out all share the same length,
// returning a *DimensionMismatchError naming the first buffer that
// disagrees with a.
func ValidateVectorDims(a, b, out []byte) error {
	if len(b) != len(a) {
		return &DimensionMismatchError{Arg: "b", Expected: len(a), Actual: len(b)}
	}
	if len(out) != len(a) {
		return &DimensionMismatchError{Arg: "out", Expected: len(a), Actual: len(out)}
	}
	return nil
}

// ValidateMatmulDims checks a, b and c against the m*k, k*n and m*n
// lengths a matmul of the given dimensions requires.
func ValidateMatmulDims(a, b, c []byte, m, k, n int) error {
	if len(a) != m*k {
		return &DimensionMismatchError{Arg: "a", Expected: m * k, Actual: len(a)}
	}
	if len(b) != k*n {
		return &DimensionMismatchError{Arg: "b", Expected: k * n, Actual: len(b)}
	}
	if len(c) != m*n {
		return &DimensionMismatchError{Arg: "c", Expected: m * n, Actual: len(c)}
	}
	return nil
}

// AddVector computes out[i] = a[i] + b[i] for every element, failing
// without writing anything if the three buffers' lengths disagree.
func AddVector(a, b, out []byte) error {
	if err := ValidateVectorDims(a, b, out); err != nil {
		return err
	}

	t := tables.Get()
	for i := range a {
		out[i] = t.Add[a[i]][b[i]]
	}
	return nil
}

// DotProduct returns the dot product of two equal-length P8 vectors,
// decoding each pair through the shared decode table and accumulating
// the products in binary64. This is the wide-accumulation path: no
// intermediate result is ever re-encoded to P8.
func DotProduct(a, b []byte) (float64, error) {
	if len(b) != len(a) {
		return 0, &DimensionMismatchError{Arg: "b", Expected: len(a), Actual: len(b)}
	}

	t := tables.Get()
	var sum float64
	for i := range a {
		sum += t.ToDouble[a[i]] * t.ToDouble[b[i]]
	}
	return sum, nil
}

// DotProductNarrow computes a dot product entirely in P8, re-encoding
// after every multiply and every add instead of accumulating in
// binary64. It is provided for comparison against DotProduct and is
// explicitly lower-accuracy: every multiply-add pays a fresh rounding,
// so the double-rounding DotProduct avoids accumulates here.
func DotProductNarrow(a, b []byte) (byte, error) {
	if len(b) != len(a) {
		return 0, &DimensionMismatchError{Arg: "b", Expected: len(a), Actual: len(b)}
	}

	t := tables.Get()
	acc := codec.Zero
	for i := range a {
		product := t.Mul[a[i]][b[i]]
		acc = t.Add[acc][product]
	}
	return acc, nil
}

// Matmul computes C = A*B for A: m x k, B: k x n, C: m x n, all stored
// flat and row-major. Every output element's k-term reduction
// accumulates in binary64 and is encoded back to P8 exactly once, in
// row-major, t-ascending order, so results are bit-for-bit reproducible
// for a given dimensions triple. Argument lengths are validated against
// m, k and n before any element of c is written.
func Matmul(a, b, c []byte, m, k, n int) error {
	if err := ValidateMatmulDims(a, b, c, m, k, n); err != nil {
		return err
	}

	t := tables.Get()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = codec.Encode(DotRow(t, a, b, i, j, k, n))
		}
	}
	return nil
}

// DotRow accumulates the k-term reduction for output element (i, j) in
// binary64. It is exported so the parallel back end can reuse the exact
// same reduction as the sequential Matmul and stay bit-for-bit
// consistent with it.
func DotRow(t *tables.Tables, a, b []byte, i, j, k, n int) float64 {
	var sum float64
	for x := 0; x < k; x++ {
		sum += t.ToDouble[a[i*k+x]] * t.ToDouble[b[x*n+j]]
	}
	return sum
}
