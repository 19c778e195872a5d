//go:build !amd64 && !arm64

package matprod

func simdTier() int {
	return SIMDTierNone
}
