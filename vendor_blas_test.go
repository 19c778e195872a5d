package matprod

import (
	"fmt"
	"math/rand"
	"testing"
)

// TestVendorAgainstNaive checks the delegate against the reference kernel.
// In default builds this exercises gonum's pure-Go dgemm; in vendorblas
// builds it exercises the system BLAS through the same call.
func TestVendorAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	tol := DefaultTolerance()

	sizes := []struct{ m, k, n int }{
		{1, 1, 1},
		{2, 2, 2},
		{17, 23, 19},
		{64, 64, 64},
		{127, 129, 128},
		{256, 200, 180},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%dx%d", size.m, size.k, size.n), func(t *testing.T) {
			a := randMatrix(rng, size.m, size.k, RowMajor)
			b := randMatrix(rng, size.k, size.n, RowMajor)

			want, err := MultiplyNaive(a, b)
			if err != nil {
				t.Fatalf("MultiplyNaive failed: %v", err)
			}
			got, err := MultiplyVendor(a, b)
			if err != nil {
				t.Fatalf("MultiplyVendor failed: %v", err)
			}
			mustAgree(t, want, got, tol)
		})
	}
}

// TestVendorLayoutTranslation drives column-major operands through the
// delegate, which must copy them into the row-major convention the dgemm
// interface fixes rather than passing mismatched strides.
func TestVendorLayoutTranslation(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	tol := DefaultTolerance()

	a := randMatrix(rng, 50, 40, RowMajor)
	b := randMatrix(rng, 40, 60, RowMajor)
	want, err := MultiplyNaive(a, b)
	if err != nil {
		t.Fatalf("MultiplyNaive failed: %v", err)
	}

	layouts := []Layout{RowMajor, ColMajor}
	for _, la := range layouts {
		for _, lb := range layouts {
			t.Run(fmt.Sprintf("A=%s/B=%s", la, lb), func(t *testing.T) {
				aIn := asLayout(a, la)
				bIn := asLayout(b, lb)
				got, err := MultiplyVendor(aIn, bIn)
				if err != nil {
					t.Fatalf("MultiplyVendor failed: %v", err)
				}
				mustAgree(t, want, got, tol)

				// The call must not have mutated the operands.
				for i := range aIn.Data {
					if aIn.Data[i] != asLayout(a, la).Data[i] {
						t.Fatal("operand A mutated by delegate")
					}
				}
			})
		}
	}
}

func TestVendorEmptyInnerDimension(t *testing.T) {
	a := NewMatrix(4, 0, RowMajor)
	b := NewMatrix(0, 3, RowMajor)

	c, err := MultiplyVendor(a, b)
	if err != nil {
		t.Fatalf("MultiplyVendor failed: %v", err)
	}
	if c.Rows != 4 || c.Cols != 3 {
		t.Fatalf("result is %dx%d, want 4x3", c.Rows, c.Cols)
	}
	for i, v := range c.Data {
		if v != 0 {
			t.Errorf("C.Data[%d] = %v, want 0", i, v)
		}
	}
}
