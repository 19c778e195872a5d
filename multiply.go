package matprod

// Multiply computes C = A·B using the requested kernel variant. The Auto
// variant resolves through Select against the cached capability record
// before any kernel runs. Dimensions are validated here uniformly, before
// any computation, so every variant (including Auto) reports the same
// dimension error.
//
// Variant availability policy: an explicit VendorBlas request on a platform
// without a vendor BLAS transparently degrades to the blocked kernel with
// the default tile size. That is the engine's single fallback rule; nothing
// else falls back. UnsupportedVariantError is returned only for variant
// kinds outside the closed set.
//
// The engine holds no mutable shared state beyond the capability cache, so
// concurrent Multiply calls on disjoint buffers need no synchronization.
func Multiply(a, b *Matrix, variant KernelVariant) (*Matrix, error) {
	if err := checkDims("Multiply", a, b); err != nil {
		return nil, err
	}

	v := variant
	if v.Kind == Auto {
		v = Select(a.Rows, a.Cols, b.Cols, Detect())
	}

	switch v.Kind {
	case Naive:
		return MultiplyNaive(a, b)
	case Blocked:
		return MultiplyBlocked(a, b, v.BlockSize)
	case VendorBlas:
		if !Detect().HasVendorBlas {
			return MultiplyBlocked(a, b, DefaultBlockSize)
		}
		return MultiplyVendor(a, b)
	default:
		return nil, NewUnsupportedVariantError("Multiply", v)
	}
}

// MatMul is shorthand for Multiply with automatic kernel selection.
func MatMul(a, b *Matrix) (*Matrix, error) {
	return Multiply(a, b, AutoVariant)
}
