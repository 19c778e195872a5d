package matprod

// MultiplyNaive computes C = A·B with the classic triple loop:
// C[i,j] = Σ A[i,l]*B[l,j], accumulated in strict ascending l order. That
// order defines the reference summation the other kernels are allowed to
// deviate from by reassociation only, which makes this kernel the
// correctness oracle for the engine. O(m·n·k) time, no memory beyond the
// output. The result is row-major.
func MultiplyNaive(a, b *Matrix) (*Matrix, error) {
	if err := checkDims("MultiplyNaive", a, b); err != nil {
		return nil, err
	}
	m, k, n := a.Rows, a.Cols, b.Cols
	c := NewMatrix(m, n, RowMajor)

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for l := 0; l < k; l++ {
				sum += a.At(i, l) * b.At(l, j)
			}
			c.Data[i*n+j] = sum
		}
	}
	return c, nil
}
