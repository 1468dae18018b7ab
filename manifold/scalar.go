package manifold

import "strconv"

// Scalar is a one-dimensional manifold element: a plain double.
type Scalar float64

// TypeID implements Point.
func (s Scalar) TypeID() TypeID { return TypeScalar }

// Dim implements Point.
func (s Scalar) Dim() int { return 1 }

// Equals implements Point.
func (s Scalar) Equals(other Point, tol float64) bool {
	o, ok := other.(Scalar)
	if !ok {
		return false
	}
	d := float64(s - o)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// Clone implements Point.
func (s Scalar) Clone() Point { return s }

// String implements fmt.Stringer.
func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}
