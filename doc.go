// Package matprod computes dense float64 matrix products (C = A·B),
// selecting among several kernels depending on operand size and detected
// hardware capability.
//
// Three kernels are provided:
//   - a naive triple-loop kernel, which defines the reference summation
//     order and serves as the correctness oracle,
//   - a cache-blocked (tiled) kernel with a tunable block size,
//   - a delegate into the BLAS implementation registered with gonum's
//     blas64 package, which is the system BLAS (Accelerate, OpenBLAS, MKL)
//     when built with the vendorblas tag and gonum's pure-Go implementation
//     otherwise.
//
// Callers normally go through Multiply with the Auto variant and let the
// backend selector pick a kernel from the operand dimensions and the cached
// capability record:
//
//	a := matprod.NewMatrix(m, k, matprod.RowMajor)
//	b := matprod.NewMatrix(k, n, matprod.RowMajor)
//	// ... fill a.Data, b.Data ...
//	c, err := matprod.Multiply(a, b, matprod.AutoVariant)
//
// Every buffer carries an explicit memory layout tag. The engine accepts
// row-major and column-major operands in any combination; layout
// translation for the BLAS call convention happens in one place, inside the
// vendor delegate.
package matprod
