package matprod

import "fmt"

// VariantKind enumerates the multiplication kernels the engine knows about.
type VariantKind int

const (
	// Auto defers the choice to the backend selector. It is resolved before
	// any kernel runs and is never itself a kernel.
	Auto VariantKind = iota
	// Naive is the triple-loop reference kernel.
	Naive
	// Blocked is the cache-blocked (tiled) kernel.
	Blocked
	// VendorBlas delegates to the registered BLAS implementation.
	VendorBlas
)

// String returns the kind name
func (k VariantKind) String() string {
	switch k {
	case Auto:
		return "Auto"
	case Naive:
		return "Naive"
	case Blocked:
		return "Blocked"
	case VendorBlas:
		return "VendorBlas"
	default:
		return fmt.Sprintf("VariantKind(%d)", int(k))
	}
}

// KernelVariant selects a multiplication kernel. BlockSize is meaningful
// only for Blocked; zero means DefaultBlockSize. Block size is a
// performance knob only — every positive value produces the same result
// within floating-point reassociation tolerance.
type KernelVariant struct {
	Kind      VariantKind
	BlockSize int
}

// Convenience variants for the kinds that carry no parameters.
var (
	AutoVariant   = KernelVariant{Kind: Auto}
	NaiveVariant  = KernelVariant{Kind: Naive}
	VendorVariant = KernelVariant{Kind: VendorBlas}
)

// BlockedVariant returns the blocked kernel with the given tile edge.
// blockSize <= 0 selects DefaultBlockSize.
func BlockedVariant(blockSize int) KernelVariant {
	return KernelVariant{Kind: Blocked, BlockSize: blockSize}
}

// String returns a readable variant description
func (v KernelVariant) String() string {
	if v.Kind == Blocked {
		bs := v.BlockSize
		if bs <= 0 {
			bs = DefaultBlockSize
		}
		return fmt.Sprintf("Blocked(%d)", bs)
	}
	return v.Kind.String()
}
