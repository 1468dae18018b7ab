package manifold

import (
	"fmt"
	"slices"
	"strings"
)

// Matrix is a dense, row-major matrix with runtime-determined shape.
// It is the canonical stored representation for every fixed-shape
// matrix variant.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a rows x cols matrix from row-major data.
// With no data the matrix is all-zero. Panics if len(data) is neither
// zero nor rows*cols.
func NewMatrix(rows, cols int, data ...float64) Matrix {
	n := rows * cols
	if len(data) == 0 {
		return Matrix{rows: rows, cols: cols, data: make([]float64, n)}
	}
	if len(data) != n {
		panic(fmt.Sprintf("manifold: NewMatrix: %d values for a %dx%d matrix", len(data), rows, cols))
	}
	return Matrix{rows: rows, cols: cols, data: slices.Clone(data)}
}

// TypeID implements Point.
func (m Matrix) TypeID() TypeID { return TypeMatrix }

// Dim implements Point.
func (m Matrix) Dim() int { return m.rows * m.cols }

// Rows implements Shaped.
func (m Matrix) Rows() int { return m.rows }

// Cols implements Shaped.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Data returns the row-major backing slice. Callers must treat it as
// read-only; use Clone to obtain an independent copy.
func (m Matrix) Data() []float64 { return m.data }

// Equals implements Point.
func (m Matrix) Equals(other Point, tol float64) bool {
	o, ok := other.(Matrix)
	if !ok {
		return false
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	return equalsTol(m.data, o.data, tol)
}

// Clone implements Point.
func (m Matrix) Clone() Point {
	return Matrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
