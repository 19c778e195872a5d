package matprod

import (
	"runtime"
	"sync"
)

// SIMD tiers, coarsest useful classification of vector hardware
const (
	SIMDTierNone   = 0
	SIMDTierSSE2   = 1 // SSE2 on x86, NEON on arm64
	SIMDTierAVX    = 2
	SIMDTierAVX2   = 3
	SIMDTierAVX512 = 4
)

// Capability is an immutable snapshot of coarse hardware facts. The GFLOPS
// fields are static heuristic estimates keyed by platform class, not
// measurements; they are advisory inputs to the backend selector and never
// affect correctness.
type Capability struct {
	HasVendorBlas bool
	HasOpenCL     bool
	HasGPU        bool
	ThreadCount   int
	SIMDTier      int

	EstGFLOPSSmall  float64
	EstGFLOPSMedium float64
	EstGFLOPSLarge  float64
}

// The cached record is guarded so that concurrent first calls to Detect run
// the probe at most once.
var (
	capMu     sync.Mutex
	capReady  bool
	capCached Capability
)

// Detect returns the process-wide capability record, running detection on
// first use. The record is computed at most once; the facts it encodes (CPU,
// library presence) do not change within a process lifetime. Safe to call
// from multiple goroutines.
func Detect() Capability {
	capMu.Lock()
	defer capMu.Unlock()
	if !capReady {
		capCached = probe()
		capReady = true
	}
	return capCached
}

// ForceRedetect discards the cached record and runs detection again. Only
// callers that know the environment changed (essentially tests) need this.
func ForceRedetect() Capability {
	capMu.Lock()
	defer capMu.Unlock()
	capCached = probe()
	capReady = true
	return capCached
}

// probe gathers the hardware facts. It never fails: any fact that cannot be
// determined falls back to a conservative default (8 threads, no SIMD, no
// vendor BLAS).
func probe() Capability {
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = DefaultThreadCount
	}

	c := Capability{
		HasVendorBlas: vendorBlasLinked,
		HasOpenCL:     false, // no OpenCL path in this engine
		HasGPU:        false, // GPU backends are stubs
		ThreadCount:   threads,
		SIMDTier:      simdTier(),
	}
	c.EstGFLOPSSmall, c.EstGFLOPSMedium, c.EstGFLOPSLarge = estimateGFLOPS(c.HasVendorBlas)
	return c
}

// estimateGFLOPS returns static throughput estimates for small, medium and
// large problems, keyed by coarse platform class. The Apple figures come
// from M1 Pro benchmarks; the rest are deliberately round and pessimistic.
func estimateGFLOPS(hasVendorBlas bool) (small, medium, large float64) {
	if !hasVendorBlas {
		// Pure-Go fallback: no accelerated path, so the large tier is no
		// better than the medium one.
		return 10, 20, 20
	}
	switch {
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return 26, 143, 397
	case runtime.GOOS == "darwin":
		return 18, 95, 320
	default:
		return 15, 80, 90
	}
}
