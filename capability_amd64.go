//go:build amd64

package matprod

import (
	"golang.org/x/sys/cpu"
)

// simdTier classifies the x86 vector extensions into the coarse ordinal the
// capability record carries. The AVX2 tier additionally requires FMA, which
// is what a multiply kernel would actually use.
func simdTier() int {
	switch {
	case cpu.X86.HasAVX512F:
		return SIMDTierAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return SIMDTierAVX2
	case cpu.X86.HasAVX:
		return SIMDTierAVX
	default:
		// SSE2 is part of the amd64 baseline.
		return SIMDTierSSE2
	}
}
