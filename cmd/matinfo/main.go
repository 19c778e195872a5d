// Command matinfo prints the hardware capability record the engine uses for
// kernel selection, and optionally times the kernels on a square problem.
//
// Usage:
//
//	matinfo [-bench] [-n size]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/westfall/matprod"
)

func main() {
	bench := flag.Bool("bench", false, "time each kernel on an n×n problem")
	n := flag.Int("n", 256, "problem size for -bench")
	flag.Parse()

	caps := matprod.Detect()
	fmt.Println("matprod capability probe")
	fmt.Println("========================")
	fmt.Printf("vendor BLAS:       %v\n", caps.HasVendorBlas)
	fmt.Printf("OpenCL:            %v\n", caps.HasOpenCL)
	fmt.Printf("GPU:               %v\n", caps.HasGPU)
	fmt.Printf("threads:           %d\n", caps.ThreadCount)
	fmt.Printf("SIMD tier:         %d\n", caps.SIMDTier)
	fmt.Printf("est GFLOPS small:  %.1f\n", caps.EstGFLOPSSmall)
	fmt.Printf("est GFLOPS medium: %.1f\n", caps.EstGFLOPSMedium)
	fmt.Printf("est GFLOPS large:  %.1f\n", caps.EstGFLOPSLarge)

	choice := matprod.Select(*n, *n, *n, caps)
	fmt.Printf("\nselector choice for %d×%d×%d: %s\n", *n, *n, *n, choice)

	if !*bench {
		return
	}

	a := randomMatrix(*n, *n)
	b := randomMatrix(*n, *n)
	variants := []matprod.KernelVariant{
		matprod.NaiveVariant,
		matprod.BlockedVariant(0),
		matprod.VendorVariant,
	}

	fmt.Println()
	for _, v := range variants {
		start := time.Now()
		if _, err := matprod.Multiply(a, b, v); err != nil {
			fmt.Printf("%-12s error: %v\n", v, err)
			continue
		}
		elapsed := time.Since(start)
		ops := 2 * float64(*n) * float64(*n) * float64(*n)
		fmt.Printf("%-12s %10v  %7.2f GFLOPS\n", v, elapsed, ops/elapsed.Seconds()/1e9)
	}
}

func randomMatrix(rows, cols int) *matprod.Matrix {
	m := matprod.NewMatrix(rows, cols, matprod.RowMajor)
	for i := range m.Data {
		m.Data[i] = rand.Float64()
	}
	return m
}
