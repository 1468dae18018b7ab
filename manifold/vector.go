package manifold

import (
	"fmt"
	"slices"
	"strings"
)

// Vector is a dense column vector with runtime-determined length.
// It is the canonical stored representation for every fixed-length
// vector variant.
type Vector []float64

// NewVector creates a vector from the given components.
func NewVector(vals ...float64) Vector {
	return slices.Clone(vals)
}

// ZeroVector creates an all-zero vector of length dim.
func ZeroVector(dim int) Vector {
	return make(Vector, dim)
}

// TypeID implements Point.
func (v Vector) TypeID() TypeID { return TypeVector }

// Dim implements Point.
func (v Vector) Dim() int { return len(v) }

// Rows implements Shaped.
func (v Vector) Rows() int { return len(v) }

// Cols implements Shaped. A vector is a single column.
func (v Vector) Cols() int { return 1 }

// At returns the i-th component.
func (v Vector) At(i int) float64 { return v[i] }

// Equals implements Point.
func (v Vector) Equals(other Point, tol float64) bool {
	o, ok := other.(Vector)
	if !ok {
		return false
	}
	return equalsTol(v, o, tol)
}

// Clone implements Point.
func (v Vector) Clone() Point { return slices.Clone(v) }

// String implements fmt.Stringer.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
