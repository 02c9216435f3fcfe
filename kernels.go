package gemmbench

// Kernel computes C += A×B where A is m×k, B is k×n and C is m×n, all flat
// row-major. Kernels never allocate and never check buffer lengths: slices
// shorter than the dimensions imply are a caller bug.
type Kernel func(a, b, c []float32, m, n, k int)

// GEMMNaive (o0) walks the output column by column (j, i, k). B is read with
// stride n in the innermost loop, which makes this the locality floor.
func GEMMNaive(a, b, c []float32, m, n, k int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

// GEMMReordered (o1) uses the i, k, j order: the innermost loop streams one
// row of B into one row of C with stride 1.
func GEMMReordered(a, b, c []float32, m, n, k int) {
	for i := 0; i < m; i++ {
		cRow := c[i*n : i*n+n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bRow := b[p*n : p*n+n]
			for j := range cRow {
				cRow[j] += aip * bRow[j]
			}
		}
	}
}

// GEMMTiled (o2) blocks the (m, n, k) space into cubes of edge tile and
// runs the i, k, j order inside each cube. Block bounds are clamped to the
// matrix, so dimensions need not be multiples of tile.
func GEMMTiled(a, b, c []float32, m, n, k, tile int) {
	tile = max(tile, 1)
	for i0 := 0; i0 < m; i0 += tile {
		i1 := min(i0+tile, m)
		for j0 := 0; j0 < n; j0 += tile {
			j1 := min(j0+tile, n)
			for p0 := 0; p0 < k; p0 += tile {
				p1 := min(p0+tile, k)
				for i := i0; i < i1; i++ {
					cSeg := c[i*n+j0 : i*n+j1]
					for p := p0; p < p1; p++ {
						aip := a[i*k+p]
						bSeg := b[p*n+j0 : p*n+j1]
						for j := range cSeg {
							cSeg[j] += aip * bSeg[j]
						}
					}
				}
			}
		}
	}
}

// Tiled binds a tile size to a tiled kernel such as GEMMTiled or
// GEMMParallel.
func Tiled(kernel func(a, b, c []float32, m, n, k, tile int), tile int) Kernel {
	return func(a, b, c []float32, m, n, k int) {
		kernel(a, b, c, m, n, k, tile)
	}
}

// Variant is a named kernel, as listed in the benchmark output.
type Variant struct {
	Name string
	Run  Kernel
}

// Variants returns the four kernels in optimization order, with the tiled
// ones bound to cfg.TileSize.
func Variants(cfg Config) []Variant {
	return []Variant{
		{Name: "gemm_cpu_o0", Run: GEMMNaive},
		{Name: "gemm_cpu_o1", Run: GEMMReordered},
		{Name: "gemm_cpu_o2", Run: Tiled(GEMMTiled, cfg.TileSize)},
		{Name: "gemm_cpu_o3", Run: Tiled(GEMMParallel, cfg.TileSize)},
	}
}
