//go:build arm64

package matprod

import (
	"golang.org/x/sys/cpu"
)

// simdTier reports NEON (ASIMD) as the SSE2-equivalent tier. The ordinal
// scale is x86-shaped; arm64 never reports the AVX tiers.
func simdTier() int {
	if cpu.ARM64.HasASIMD {
		return SIMDTierSSE2
	}
	return SIMDTierNone
}
