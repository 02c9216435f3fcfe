// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gemmbench checks and times the naive, loop-reordered, tiled and
// tiled+parallel GEMM kernels on random M×K and K×N matrices.
//
// Usage:
//
//	gemmbench <M> <N> <K>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/LynnColeArt/gemmbench"
)

func main() {
	defer klog.Flush()
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	m, n, k, err := gemmbench.ParseDims(args[1:])
	if err != nil {
		fmt.Fprintf(stdout, "Usage: %s <M> <N> <K>\n", filepath.Base(args[0]))
		klog.V(1).Infof("%v", err)
		return 1
	}

	driver, err := gemmbench.NewDriver(gemmbench.DefaultConfig(), stdout, stderr)
	if err != nil {
		klog.Errorf("Failed to configure benchmark: %+v", err)
		return 1
	}
	if _, err := driver.Run(m, n, k); err != nil {
		klog.Errorf("Benchmark failed: %+v", err)
		return 1
	}
	return 0
}
