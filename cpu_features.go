package gemmbench

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the vector instruction set extensions that matter for
// the innermost GEMM loop.
type CPUFeatures struct {
	HasSSE4     bool
	HasAVX      bool
	HasAVX2     bool
	HasFMA      bool
	HasAVX512F  bool // Foundation
	HasAVX512VL bool // Vector Length
	HasASIMD    bool // arm64 NEON
	HasSVE      bool
}

// DetectCPUFeatures reads the features of the running CPU.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		HasSSE4:     cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:      cpu.X86.HasAVX,
		HasAVX2:     cpu.X86.HasAVX2,
		HasFMA:      cpu.X86.HasFMA,
		HasAVX512F:  cpu.X86.HasAVX512F,
		HasAVX512VL: cpu.X86.HasAVX512VL,
		HasASIMD:    cpu.ARM64.HasASIMD,
		HasSVE:      cpu.ARM64.HasSVE,
	}
}

// Names lists the detected features.
func (f CPUFeatures) Names() []string {
	var names []string
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"SSE4", f.HasSSE4},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"FMA", f.HasFMA},
		{"AVX512F", f.HasAVX512F},
		{"AVX512VL", f.HasAVX512VL},
		{"ASIMD", f.HasASIMD},
		{"SVE", f.HasSVE},
	} {
		if feat.ok {
			names = append(names, feat.name)
		}
	}
	return names
}

// VectorWidth returns the widest float32 lane count the CPU offers, or 1.
func (f CPUFeatures) VectorWidth() int {
	switch {
	case f.HasAVX512F:
		return 16
	case f.HasAVX2, f.HasAVX:
		return 8
	case f.HasSSE4, f.HasASIMD:
		return 4
	}
	return 1
}

// String describes the CPU for the benchmark banner.
func (f CPUFeatures) String() string {
	names := f.Names()
	if len(names) == 0 {
		return runtime.GOARCH + ", no SIMD extensions detected"
	}
	return runtime.GOARCH + ", " + strings.Join(names, ", ")
}
