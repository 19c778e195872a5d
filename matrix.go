package matprod

import "fmt"

// Layout describes how a matrix maps (row, col) pairs onto its flat backing
// slice. Both conventions occur at the engine boundary, so every buffer
// carries its layout explicitly rather than assuming one.
type Layout int

const (
	// RowMajor stores each row contiguously: element (i, j) lives at i*cols+j.
	RowMajor Layout = iota
	// ColMajor stores each column contiguously: element (i, j) lives at i+j*rows.
	ColMajor
)

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Matrix is a dense float64 matrix over a flat backing slice. The engine
// never retains a reference to a Matrix after a call returns; the caller
// owns the storage.
type Matrix struct {
	Rows   int
	Cols   int
	Layout Layout
	Data   []float64
}

// NewMatrix allocates a zeroed rows×cols matrix in the given layout.
// It panics if either dimension is negative.
func NewMatrix(rows, cols int, layout Layout) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matprod: negative dimension %dx%d", rows, cols))
	}
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		Layout: layout,
		Data:   make([]float64, rows*cols),
	}
}

// NewMatrixData wraps an existing backing slice as a rows×cols matrix.
// The slice is used directly, not copied.
func NewMatrixData(rows, cols int, layout Layout, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, NewInvalidArgError("NewMatrixData",
			fmt.Sprintf("negative dimension %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		return nil, NewInvalidArgError("NewMatrixData",
			fmt.Sprintf("buffer length %d does not match %dx%d", len(data), rows, cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Layout: layout, Data: data}, nil
}

// Zeros returns a zeroed rows×cols row-major matrix.
func Zeros(rows, cols int) *Matrix {
	return NewMatrix(rows, cols, RowMajor)
}

// Identity returns the n×n identity matrix in row-major layout.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n, RowMajor)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[m.index(i, j)]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[m.index(i, j)] = v
}

func (m *Matrix) index(i, j int) int {
	if m.Layout == ColMajor {
		return i + j*m.Rows
	}
	return i*m.Cols + j
}

// Dims returns the matrix dimensions (rows, cols).
func (m *Matrix) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

// checkDims validates the operand pair for C = A·B. Every kernel and the
// top-level entry point run this before touching any data.
func checkDims(op string, a, b *Matrix) error {
	if a.Cols != b.Rows {
		return NewDimensionError(op, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return nil
}
