// Package parallel provides a data-parallel back end for the same dense
// matrix-multiply contract kernel.Matmul implements: the m*n output
// elements are partitioned by row across a pool of worker lanes, each
// lane owning a disjoint row range so no two lanes ever write the same
// output element. The only state shared across lanes is the immutable
// *tables.Tables value and the caller's input buffers, both read-only;
// the call suspends until every lane has joined.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/posit8/codec"
	"github.com/sarchlab/posit8/kernel"
	"github.com/sarchlab/posit8/tables"
)

// MatmulParallel computes C = A*B exactly as kernel.Matmul does, but
// distributes the output rows across GOMAXPROCS worker lanes. Each
// output element is produced by the same row-major, t-ascending
// reduction kernel.Matmul uses, so the two back ends are bit-for-bit
// identical on the same inputs; only the scheduling differs.
func MatmulParallel(a, b, c []byte, m, k, n int) error {
	if err := kernel.ValidateMatmulDims(a, b, c, m, k, n); err != nil {
		return err
	}
	if m == 0 || n == 0 {
		return nil
	}

	t := tables.Get()

	lanes := runtime.GOMAXPROCS(0)
	if lanes > m {
		lanes = m
	}
	if lanes < 1 {
		lanes = 1
	}
	rowsPerLane := (m + lanes - 1) / lanes

	g, _ := errgroup.WithContext(context.Background())
	for lane := 0; lane < lanes; lane++ {
		start := lane * rowsPerLane
		end := start + rowsPerLane
		if end > m {
			end = m
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				for j := 0; j < n; j++ {
					c[i*n+j] = codec.Encode(kernel.DotRow(t, a, b, i, j, k, n))
				}
			}
			return nil
		})
	}

	return g.Wait()
}
