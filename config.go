// Package matprod configuration constants
package matprod

// Kernel tuning parameters
const (
	// DefaultBlockSize is the tile edge used by the blocked kernel when the
	// caller does not override it (tuned for typical L1/L2 data caches with
	// float64 elements).
	DefaultBlockSize = 64

	// SmallBlockSize is the tile edge the selector picks for small problems,
	// where the fixed overhead of large tiles dominates.
	SmallBlockSize = 8
)

// Backend selector thresholds. Sizes compare against max(m, k, n).
const (
	// SmallSizeThreshold is the boundary below which the selector uses the
	// small-tile blocked kernel.
	SmallSizeThreshold = 200

	// VendorSizeThreshold is the boundary at or above which delegating to a
	// vendor BLAS pays for the call and copy overhead.
	VendorSizeThreshold = 500
)

// Capability probe defaults, used when a hardware fact cannot be determined
const (
	// DefaultThreadCount is assumed when the thread count query fails.
	DefaultThreadCount = 8
)
