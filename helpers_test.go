package matprod

import (
	"math/rand"
	"testing"
)

// randMatrix fills a rows×cols matrix with moderately scaled values in
// [-1, 1) so relative-tolerance comparisons stay meaningful.
func randMatrix(rng *rand.Rand, rows, cols int, layout Layout) *Matrix {
	m := NewMatrix(rows, cols, layout)
	for i := range m.Data {
		m.Data[i] = 2*rng.Float64() - 1
	}
	return m
}

// matrixFromRows builds a matrix in the given layout from row slices.
func matrixFromRows(rows [][]float64, layout Layout) *Matrix {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := NewMatrix(r, c, layout)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return m
}

// asLayout returns a copy of m in the requested layout.
func asLayout(m *Matrix, layout Layout) *Matrix {
	out := NewMatrix(m.Rows, m.Cols, layout)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// mustAgree fails the test if got differs from want beyond tolerance.
func mustAgree(t *testing.T, want, got *Matrix, tol ToleranceConfig) {
	t.Helper()
	if want.Rows != got.Rows || want.Cols != got.Cols {
		t.Fatalf("dimension mismatch: want %dx%d, got %dx%d",
			want.Rows, want.Cols, got.Rows, got.Cols)
	}
	report := CompareMatrices(want, got, tol)
	if report.NumMismatches > 0 {
		t.Errorf("%d elements beyond tolerance, first at (%d,%d): max abs err %e, max rel err %e",
			report.NumMismatches, report.FirstRow, report.FirstCol,
			report.MaxAbsError, report.MaxRelError)
	}
}
