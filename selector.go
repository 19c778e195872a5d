package matprod

// Select chooses a concrete kernel for an m×k by k×n product. It is a pure
// function of the dimensions and the capability record: no randomness, no
// timing feedback, so the same inputs always yield the same decision. The
// size policy keys on max(m, k, n) against the named thresholds in
// config.go:
//
//   - vendor BLAS present and size >= VendorSizeThreshold: delegate; the
//     call and layout-copy overhead is amortized at that scale.
//   - size < SmallSizeThreshold: blocked kernel with SmallBlockSize tiles.
//     Small problems go to the small-tile blocked kernel rather than the
//     naive one; the naive kernel stays available as the reference oracle
//     and by explicit request.
//   - otherwise: blocked kernel with DefaultBlockSize tiles.
//
// The returned variant is always concrete, never Auto.
func Select(m, k, n int, caps Capability) KernelVariant {
	size := max(m, k, n)
	switch {
	case caps.HasVendorBlas && size >= VendorSizeThreshold:
		return VendorVariant
	case size < SmallSizeThreshold:
		return BlockedVariant(SmallBlockSize)
	default:
		return BlockedVariant(DefaultBlockSize)
	}
}
