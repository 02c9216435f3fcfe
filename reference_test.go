package gemmbench

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureExpectedMatchesDefinition(t *testing.T) {
	f := NewFixture(RelaxedTolerance())
	m, n, k := f.Dims()
	require.Equal(t, []int{RefM, RefN, RefK}, []int{m, n, k})
	for _, d := range []int{m, n, k} {
		assert.NotZero(t, d%DefaultTileSize, "fixture dimensions should not be tile multiples")
	}

	want := definitionGEMM(f.a, f.b, m, n, k)
	requireClose(t, want, f.Expected())
	assert.True(t, f.CheckRef(want))
}

func TestFixtureIsReadOnly(t *testing.T) {
	f := NewFixture(RelaxedTolerance())
	expected := f.Expected()
	expected[0] += 100
	assert.NotEqual(t, expected[0], f.Expected()[0])

	a := []float32{1, 2, 3, 4}
	f2 := must.M1(NewFixtureFrom(a, []float32{5, 6, 7, 8}, 2, 2, 2, DefaultTolerance()))
	a[0] = 100
	assert.Equal(t, []float32{19, 22, 43, 50}, f2.Expected())
}

func TestFixtureScenarios(t *testing.T) {
	tests := []struct {
		name    string
		m, n, k int
		a, b    []float32
		want    []float32
	}{
		{"2x2x2", 2, 2, 2, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}, []float32{19, 22, 43, 50}},
		{"1x1x5", 1, 1, 5, []float32{1, 2, 3, 4, 5}, []float32{1, 1, 1, 1, 1}, []float32{15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := must.M1(NewFixtureFrom(tt.a, tt.b, tt.m, tt.n, tt.k, DefaultTolerance()))
			assert.Equal(t, tt.want, f.Expected())
			for _, v := range Variants(DefaultConfig()) {
				assert.True(t, RunCorrectnessCheck(v.Run, f), v.Name)
			}
		})
	}
}

func TestNewFixtureFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		m, n, k int
		a, b    []float32
	}{
		{"zero M", 0, 1, 1, nil, []float32{1}},
		{"short A", 2, 2, 2, []float32{1, 2, 3}, []float32{1, 2, 3, 4}},
		{"short B", 2, 2, 2, []float32{1, 2, 3, 4}, []float32{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFixtureFrom(tt.a, tt.b, tt.m, tt.n, tt.k, DefaultTolerance())
			assert.Error(t, err)
		})
	}
}

func TestCheckRefRejectsPerturbedResult(t *testing.T) {
	f := NewFixture(RelaxedTolerance())
	got := f.Expected()
	require.True(t, f.CheckRef(got))

	got[RefN+3] += 0.5
	assert.False(t, f.CheckRef(got))
	result := f.Verify(got)
	assert.Equal(t, 1, result.NumErrors)
	assert.Equal(t, RefN+3, result.FirstError)

	assert.False(t, f.CheckRef(got[:10]), "short candidate must fail")
}

func TestRunCorrectnessCheck(t *testing.T) {
	f := NewFixture(RelaxedTolerance())
	for _, v := range Variants(DefaultConfig()) {
		assert.True(t, RunCorrectnessCheck(v.Run, f), v.Name)
	}

	// Skips the last K column, a typical off-by-one.
	broken := func(a, b, c []float32, m, n, k int) {
		for i := 0; i < m; i++ {
			for p := 0; p < k-1; p++ {
				for j := 0; j < n; j++ {
					c[i*n+j] += a[i*k+p] * b[p*n+j]
				}
			}
		}
	}
	assert.False(t, RunCorrectnessCheck(broken, f))
}

func TestCheckKernelUsesFreshOutput(t *testing.T) {
	f := NewFixture(RelaxedTolerance())
	var outputs [][]float32
	spy := func(a, b, c []float32, m, n, k int) {
		assert.Equal(t, make([]float32, m*n), c, "C must start zeroed")
		GEMMReordered(a, b, c, m, n, k)
		outputs = append(outputs, c)
	}
	assert.True(t, RunCorrectnessCheck(spy, f))
	assert.True(t, RunCorrectnessCheck(spy, f))
	require.Len(t, outputs, 2)
	assert.NotSame(t, &outputs[0][0], &outputs[1][0])
}
