//go:build !cgo || !vendorblas

package matprod

// Without the vendorblas tag the delegate runs on gonum's pure-Go BLAS.
// Registering it explicitly keeps the two build flavors symmetrical.

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/gonum"
)

const vendorBlasLinked = false

func init() {
	blas64.Use(gonum.Implementation{})
}
