// Package gemmbench reference fixture for verification
package gemmbench

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Reference fixture dimensions. None is a multiple of DefaultTileSize, so the
// tiled kernels exercise their boundary clamping during the check.
const (
	RefM = 96
	RefN = 80
	RefK = 72

	refSeed uint64 = 20240917
)

// Fixture is a read-only reference problem: small A and B and the expected
// C = A×B computed by an independent BLAS. It is built once, used only to
// validate kernels, and never reused for timing.
type Fixture struct {
	m, n, k  int
	a, b     []float32
	expected []float32
	tol      ToleranceConfig
}

// NewFixture builds the default RefM×RefN×RefK fixture from seeded inputs.
func NewFixture(tol ToleranceConfig) *Fixture {
	a := GenerateMatrixFloat32(RefM, RefK, refSeed)
	b := GenerateMatrixFloat32(RefK, RefN, refSeed+1)
	return &Fixture{
		m: RefM, n: RefN, k: RefK,
		a: a, b: b,
		expected: referenceGEMM(a, b, RefM, RefN, RefK),
		tol:      tol,
	}
}

// NewFixtureFrom builds a fixture from caller-supplied A (m×k) and B (k×n).
// The slices are copied.
func NewFixtureFrom(a, b []float32, m, n, k int, tol ToleranceConfig) (*Fixture, error) {
	if m < 1 || n < 1 || k < 1 {
		return nil, errors.Errorf("fixture dimensions must be positive, got M=%d N=%d K=%d", m, n, k)
	}
	if len(a) != m*k {
		return nil, errors.Errorf("fixture A has %d elements, want M*K=%d", len(a), m*k)
	}
	if len(b) != k*n {
		return nil, errors.Errorf("fixture B has %d elements, want K*N=%d", len(b), k*n)
	}
	a = append([]float32(nil), a...)
	b = append([]float32(nil), b...)
	return &Fixture{
		m: m, n: n, k: k,
		a: a, b: b,
		expected: referenceGEMM(a, b, m, n, k),
		tol:      tol,
	}, nil
}

// referenceGEMM computes A×B with gonum's Sgemm.
func referenceGEMM(a, b []float32, m, n, k int) []float32 {
	c := make([]float32, m*n)
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Data: a, Stride: k},
		blas32.General{Rows: k, Cols: n, Data: b, Stride: n},
		0,
		blas32.General{Rows: m, Cols: n, Data: c, Stride: n})
	return c
}

// Dims returns M, N and K.
func (f *Fixture) Dims() (m, n, k int) {
	return f.m, f.n, f.k
}

// Expected returns a copy of the expected M×N result.
func (f *Fixture) Expected() []float32 {
	return append([]float32(nil), f.expected...)
}

// Verify compares candidate against the expected result element by element.
func (f *Fixture) Verify(candidate []float32) VerificationResult {
	return VerifyFloat32Array(f.expected, candidate, f.tol)
}

// CheckRef reports whether candidate matches the expected result within the
// fixture's tolerance.
func (f *Fixture) CheckRef(candidate []float32) bool {
	return f.Verify(candidate).Passed()
}

// CheckKernel runs kernel once on the fixture inputs with a freshly zeroed C
// and returns the detailed comparison.
func CheckKernel(kernel Kernel, f *Fixture) VerificationResult {
	c := make([]float32, f.m*f.n)
	kernel(f.a, f.b, c, f.m, f.n, f.k)
	return f.Verify(c)
}

// RunCorrectnessCheck reports whether kernel reproduces the fixture's
// expected result.
func RunCorrectnessCheck(kernel Kernel, f *Fixture) bool {
	return CheckKernel(kernel, f).Passed()
}
