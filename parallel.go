package gemmbench

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas/gonum"
)

// vec runs the innermost row updates of GEMMParallel. Its Saxpy dispatches
// to the assembly vector kernels where the architecture has them.
var vec gonum.Implementation

// vectorTileRows is the GEMMTiled block walk restricted to the row band
// [i0, i1) of C, with the j loop handed to vec.
func vectorTileRows(a, b, c []float32, i0, i1, n, k, tile int) {
	for j0 := 0; j0 < n; j0 += tile {
		j1 := min(j0+tile, n)
		width := j1 - j0
		for p0 := 0; p0 < k; p0 += tile {
			p1 := min(p0+tile, k)
			for i := i0; i < i1; i++ {
				cSeg := c[i*n+j0 : i*n+j1]
				for p := p0; p < p1; p++ {
					vec.Saxpy(width, a[i*k+p], b[p*n+j0:p*n+j1], 1, cSeg, 1)
				}
			}
		}
	}
}

// GEMMParallel (o3) is GEMMTiled with two additions: the M-blocks are split
// into contiguous ranges, one per worker, and the stride-1 row update runs
// on SIMD lanes.
//
// The worker count is runtime.GOMAXPROCS(0). Each worker writes only the
// rows of C inside its own M-blocks while A and B are only read, so no
// locking is needed. GEMMParallel returns once every worker is done.
func GEMMParallel(a, b, c []float32, m, n, k, tile int) {
	if m <= 0 || n <= 0 || k <= 0 {
		return
	}
	tile = max(tile, 1)

	numBlocks := (m + tile - 1) / tile
	numWorkers := min(runtime.GOMAXPROCS(0), numBlocks)
	blocksPerWorker := (numBlocks + numWorkers - 1) / numWorkers

	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		startBlock := w * blocksPerWorker
		endBlock := min(startBlock+blocksPerWorker, numBlocks)
		if startBlock >= endBlock {
			break
		}
		g.Go(func() error {
			for blk := startBlock; blk < endBlock; blk++ {
				i0 := blk * tile
				vectorTileRows(a, b, c, i0, min(i0+tile, m), n, k, tile)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}
