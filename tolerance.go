// Package matprod tolerance-based verification for floating-point comparisons
package matprod

import (
	"math"
)

// ToleranceConfig defines tolerance parameters for float64 comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64
}

// DefaultTolerance returns the tolerance appropriate for comparing two
// multiplication kernels that differ only in summation order. The relative
// bound covers double precision accumulation over the inner dimensions this
// engine targets.
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-12,
		RelTol: 1e-9,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	// Exact equality handles ±0
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*tol.RelTol
}

// ParityReport accumulates error statistics from comparing two matrices
type ParityReport struct {
	MaxAbsError   float64
	MaxRelError   float64
	NumMismatches int
	FirstRow      int
	FirstCol      int
}

// CompareMatrices compares got against want element by element and reports
// the worst errors. Dimensions must already match; layouts may differ.
func CompareMatrices(want, got *Matrix, tol ToleranceConfig) ParityReport {
	report := ParityReport{FirstRow: -1, FirstCol: -1}
	for i := 0; i < want.Rows; i++ {
		for j := 0; j < want.Cols; j++ {
			w, g := want.At(i, j), got.At(i, j)
			absErr := math.Abs(w - g)
			if absErr > report.MaxAbsError {
				report.MaxAbsError = absErr
			}
			if w != 0 {
				relErr := absErr / math.Abs(w)
				if relErr > report.MaxRelError {
					report.MaxRelError = relErr
				}
			}
			if !Float64NearEqual(w, g, tol) {
				if report.NumMismatches == 0 {
					report.FirstRow, report.FirstCol = i, j
				}
				report.NumMismatches++
			}
		}
	}
	return report
}
