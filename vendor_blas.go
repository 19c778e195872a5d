package matprod

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MultiplyVendor computes C = A·B by delegating to the BLAS implementation
// registered with gonum's blas64 package: the system BLAS in vendorblas
// builds, gonum's pure-Go implementation otherwise.
//
// The dgemm interface fixes one memory convention: row-major buffers with
// explicit leading dimensions, NoTrans on both operands. This is the one
// place in the engine where layouts are translated — column-major operands
// are copied into temporary row-major buffers before the call rather than
// passing mismatched strides. The temporaries are scoped to this call and
// never retained; there are no early returns between their creation and the
// dgemm call, so no exit path can leak a partially used buffer. The
// summation order inside the delegate is not under this engine's control,
// so agreement with MultiplyNaive is to reassociation tolerance only.
func MultiplyVendor(a, b *Matrix) (*Matrix, error) {
	if err := checkDims("MultiplyVendor", a, b); err != nil {
		return nil, err
	}
	m, k, n := a.Rows, a.Cols, b.Cols
	c := NewMatrix(m, n, RowMajor)
	if m == 0 || n == 0 {
		return c, nil
	}
	if k == 0 {
		// dgemm requires lda >= 1; an empty inner dimension is just a zero
		// product.
		return c, nil
	}

	ad := rowMajorData(a)
	bd := rowMajorData(b)

	blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans,
		m, n, k,
		1.0, ad, k,
		bd, n,
		0.0, c.Data, n)

	return c, nil
}

// rowMajorData returns the matrix's backing slice when it is already
// row-major, or a temporary row-major copy otherwise. The copy is the only
// layout transposition in the engine.
func rowMajorData(m *Matrix) []float64 {
	if m.Layout == RowMajor {
		return m.Data
	}
	tmp := make([]float64, len(m.Data))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			tmp[i*m.Cols+j] = m.Data[i+j*m.Rows]
		}
	}
	return tmp
}
