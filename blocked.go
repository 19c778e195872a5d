package matprod

// MultiplyBlocked computes C = A·B with cache blocking: the i, j and l
// ranges are partitioned into tiles of blockSize so the working set of the
// inner loops stays cache-resident. blockSize <= 0 selects
// DefaultBlockSize; any positive value produces the same result within
// reassociation tolerance, so the parameter is a performance knob only.
//
// The tile loops accumulate partial dot products into C across successive
// l-tiles, which is why the output must start zeroed (NewMatrix guarantees
// that). Tail tiles clamp to the true bounds. The summation grouping is
// tile-major rather than strictly linear, so exact bit equality with
// MultiplyNaive is not guaranteed, only tolerance-level agreement.
func MultiplyBlocked(a, b *Matrix, blockSize int) (*Matrix, error) {
	if err := checkDims("MultiplyBlocked", a, b); err != nil {
		return nil, err
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	m, k, n := a.Rows, a.Cols, b.Cols
	c := NewMatrix(m, n, RowMajor)

	for ii := 0; ii < m; ii += blockSize {
		iEnd := min(ii+blockSize, m)
		for jj := 0; jj < n; jj += blockSize {
			jEnd := min(jj+blockSize, n)
			for ll := 0; ll < k; ll += blockSize {
				lEnd := min(ll+blockSize, k)
				for i := ii; i < iEnd; i++ {
					for j := jj; j < jEnd; j++ {
						sum := c.Data[i*n+j]
						for l := ll; l < lEnd; l++ {
							sum += a.At(i, l) * b.At(l, j)
						}
						c.Data[i*n+j] = sum
					}
				}
			}
		}
	}
	return c, nil
}
