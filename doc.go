// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gemmbench compares successive optimizations of single-precision
// dense matrix multiplication (C += A×B) on one CPU.
//
// Four kernels are provided, from slowest to fastest:
//   - GEMMNaive (o0): j-i-k loop order, a poor-locality baseline
//   - GEMMReordered (o1): i-k-j loop order, stride-1 innermost access
//   - GEMMTiled (o2): cubic cache blocking over the (M, N, K) space
//   - GEMMParallel (o3): tiled, with M-blocks forked across cores and the
//     innermost row update executed on vector lanes
//
// All matrices are flat row-major float32 slices. Element (i, j) of an R×C
// matrix lives at index i*C+j. Dimensions travel alongside the buffers and
// are never stored with them. Kernels accumulate into C, so C must be zeroed
// before any call whose result is compared.
//
// Before timing, each kernel is validated against a Fixture whose expected
// output is computed by an independent BLAS. A failed check is reported and
// benchmarking continues.
package gemmbench
