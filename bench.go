package gemmbench

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ParseDims parses the M, N and K positional arguments (program name already
// stripped). Arguments past the third are ignored.
func ParseDims(args []string) (m, n, k int, err error) {
	if len(args) < 3 {
		return 0, 0, 0, NewUsageError("ParseDims",
			fmt.Sprintf("expected 3 dimensions, got %d", len(args)), nil)
	}
	var dims [3]int
	for i, name := range []string{"M", "N", "K"} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, 0, 0, NewUsageError("ParseDims", name+" is not an integer", err)
		}
		if v < 1 {
			return 0, 0, 0, NewUsageError("ParseDims",
				fmt.Sprintf("%s must be positive, got %d", name, v), nil)
		}
		dims[i] = v
	}
	return dims[0], dims[1], dims[2], nil
}

// Warmup runs kernel runs times on in without timing it. C is zeroed first.
func Warmup(kernel Kernel, in *Inputs, runs int) {
	Zero(in.C)
	for i := 0; i < runs; i++ {
		kernel(in.A, in.B, in.C, in.M, in.N, in.K)
	}
}

// MeasureMeanLatency runs kernel repeats times on in, zeroing C before each
// run outside the timed region, and returns the mean wall-clock time.
func MeasureMeanLatency(kernel Kernel, in *Inputs, repeats int) time.Duration {
	if repeats < 1 {
		return 0
	}
	var total time.Duration
	for r := 0; r < repeats; r++ {
		Zero(in.C)
		start := time.Now()
		kernel(in.A, in.B, in.C, in.M, in.N, in.K)
		elapsed := time.Since(start)
		klog.V(1).Infof("run %d/%d took %s", r+1, repeats, elapsed)
		total += elapsed
	}
	return total / time.Duration(repeats)
}

// Report is the outcome of one kernel variant.
type Report struct {
	Name        string
	CheckPassed bool
	Mean        time.Duration

	flops float64
}

// FLOPSPerSecond returns the throughput implied by Mean.
func (r Report) FLOPSPerSecond() float64 {
	if r.Mean <= 0 {
		return 0
	}
	return r.flops / r.Mean.Seconds()
}

// Throughput formats FLOPSPerSecond, e.g. "12.5 GFLOP/s".
func (r Report) Throughput() string {
	return humanize.SIWithDigits(r.FLOPSPerSecond(), 1, "FLOP/s")
}

// Milliseconds returns Mean in fractional milliseconds.
func (r Report) Milliseconds() float64 {
	return float64(r.Mean) / float64(time.Millisecond)
}

// Driver validates every kernel variant against the reference fixture and
// then times each of them on random inputs.
type Driver struct {
	cfg      Config
	variants []Variant
	stdout   io.Writer
	stderr   io.Writer
}

// NewDriver returns a Driver over Variants(cfg) that writes progress and
// timings to stdout and check failures to stderr.
func NewDriver(cfg Config, stdout, stderr io.Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{
		cfg:      cfg,
		variants: Variants(cfg),
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

// WithVariants replaces the benchmarked kernels.
func (d *Driver) WithVariants(variants ...Variant) *Driver {
	d.variants = variants
	return d
}

// Check validates every variant against a fresh reference fixture. A failure
// is reported on stderr and does not stop the others. The returned slice
// holds one entry per variant.
func (d *Driver) Check() []bool {
	fixture := NewFixture(d.cfg.Tolerance)
	passed := make([]bool, len(d.variants))
	for i, v := range d.variants {
		fmt.Fprintf(d.stdout, "checking %s\n", v.Name)
		result := CheckKernel(v.Run, fixture)
		passed[i] = result.Passed()
		if !passed[i] {
			fmt.Fprintf(d.stderr, "%s: check ref failed!\n", v.Name)
			klog.Warning(NewCheckError(v.Name, result))
		}
	}
	return passed
}

// Time benchmarks every variant on in: Config.WarmupRuns untimed passes,
// then the mean of Config.NumRuns timed runs.
func (d *Driver) Time(in *Inputs) []Report {
	reports := make([]Report, len(d.variants))
	for i, v := range d.variants {
		Warmup(v.Run, in, d.cfg.WarmupRuns)
		mean := MeasureMeanLatency(v.Run, in, d.cfg.NumRuns)
		reports[i] = Report{Name: v.Name, Mean: mean, flops: in.FLOPs()}
		fmt.Fprintf(d.stdout, "Time taken for GEMM (CPU,%s): %gms\n", v.Name, reports[i].Milliseconds())
		klog.V(1).Infof("%s: %s", v.Name, reports[i].Throughput())
	}
	return reports
}

// Run allocates the M×K, K×N and M×N operands, checks every variant and
// then times them. Correctness failures are reported but never abort the
// run: Report.CheckPassed carries the outcome.
func (d *Driver) Run(m, n, k int) ([]Report, error) {
	if m < 1 || n < 1 || k < 1 {
		return nil, errors.WithStack(NewUsageError("Run",
			fmt.Sprintf("dimensions must be positive, got M=%d N=%d K=%d", m, n, k), nil))
	}
	in := NewInputs(m, n, k, d.cfg.Seed)
	fmt.Fprintf(d.stdout, "GEMM M=%d N=%d K=%d, %s of operands, %s FLOP per run\n",
		m, n, k, humanize.Bytes(in.Bytes()), humanize.Comma(int64(in.FLOPs())))
	features := DetectCPUFeatures()
	fmt.Fprintf(d.stdout, "CPU: %s (%d float32 lanes), GOMAXPROCS=%d, tile=%d\n",
		features, features.VectorWidth(), runtime.GOMAXPROCS(0), d.cfg.TileSize)

	passed := d.Check()
	reports := d.Time(in)
	for i := range reports {
		reports[i].CheckPassed = passed[i]
	}
	return reports, nil
}
