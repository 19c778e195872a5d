//go:build cgo && vendorblas

package matprod

// This file is compiled only with `-tags vendorblas` under cgo. It registers
// the netlib BLAS implementation, which binds to the system BLAS (Accelerate
// on macOS, OpenBLAS or MKL on Linux). The capability probe reports
// HasVendorBlas from this registration.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

const vendorBlasLinked = true

func init() {
	blas64.Use(netlib.Implementation{})
	log.Debug().Msg("vendor BLAS registered (netlib)")
}
