package gemmbench

// GenerateFloat32 generates deterministic float32 data in [0, 1) using a
// linear congruential generator (LCG), so runs are reproducible.
//
// Example:
//
//	data := GenerateFloat32(1024, 12345)
func GenerateFloat32(size int, seed uint64) []float32 {
	data := make([]float32, size)
	FillFloat32(data, seed)
	return data
}

// FillFloat32 overwrites data with the sequence GenerateFloat32 would return.
func FillFloat32(data []float32, seed uint64) {
	rng := seed
	for i := range data {
		rng = rng*6364136223846793005 + 1442695040888963407 // Knuth's MMIX LCG
		// The top 24 bits fill a float32 mantissa exactly.
		data[i] = float32(rng>>40) / (1 << 24)
	}
}

// GenerateFloat32Range generates deterministic float32 data in [lo, hi).
func GenerateFloat32Range(size int, seed uint64, lo, hi float32) []float32 {
	data := GenerateFloat32(size, seed)
	scale := hi - lo
	for i := range data {
		data[i] = data[i]*scale + lo
	}
	return data
}

// GenerateMatrixFloat32 generates a deterministic rows×cols row-major matrix
// with values in [-1, 1).
func GenerateMatrixFloat32(rows, cols int, seed uint64) []float32 {
	return GenerateFloat32Range(rows*cols, seed, -1, 1)
}

// Zero clears buf. Kernels accumulate into C, so it has to be zeroed before
// every run whose result matters.
func Zero(buf []float32) {
	clear(buf)
}

// Inputs are the benchmark operands: A is M×K, B is K×N and C is M×N, all
// row-major. They are allocated once and reused by every kernel.
type Inputs struct {
	M, N, K int
	A, B, C []float32
}

// NewInputs allocates the operands and fills A and B with seeded values in
// [-1, 1). C starts zeroed.
func NewInputs(m, n, k int, seed uint64) *Inputs {
	return &Inputs{
		M: m, N: n, K: k,
		A: GenerateMatrixFloat32(m, k, seed),
		B: GenerateMatrixFloat32(k, n, seed+1),
		C: make([]float32, m*n),
	}
}

// Bytes is the memory held by the three operands.
func (in *Inputs) Bytes() uint64 {
	return uint64(len(in.A)+len(in.B)+len(in.C)) * 4
}

// FLOPs is the number of floating-point operations of one multiplication.
func (in *Inputs) FLOPs() float64 {
	return 2 * float64(in.M) * float64(in.N) * float64(in.K)
}
