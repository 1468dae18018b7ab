package manifold

import (
	"fmt"
	"slices"
)

// Shape carries a row/column count in the type system. It parameterizes
// Fixed so the dispatcher can recover the requested dimensions from a zero
// value, with the vector case being nothing more than cols == 1.
type Shape interface {
	Dims() (rows, cols int)
}

// Predeclared shapes for the common small vector and matrix sizes.
type (
	// S2x1 is the shape of a 2-vector.
	S2x1 struct{}
	// S3x1 is the shape of a 3-vector.
	S3x1 struct{}
	// S4x1 is the shape of a 4-vector.
	S4x1 struct{}
	// S5x1 is the shape of a 5-vector.
	S5x1 struct{}
	// S6x1 is the shape of a 6-vector.
	S6x1 struct{}
	// S2x2 is the shape of a 2x2 matrix.
	S2x2 struct{}
	// S3x3 is the shape of a 3x3 matrix.
	S3x3 struct{}
)

func (S2x1) Dims() (int, int) { return 2, 1 }
func (S3x1) Dims() (int, int) { return 3, 1 }
func (S4x1) Dims() (int, int) { return 4, 1 }
func (S5x1) Dims() (int, int) { return 5, 1 }
func (S6x1) Dims() (int, int) { return 6, 1 }
func (S2x2) Dims() (int, int) { return 2, 2 }
func (S3x3) Dims() (int, int) { return 3, 3 }

// Fixed is a numeric array whose shape is fixed at compile time through its
// shape parameter. Fixed values are never stored as such: the container
// normalizes them to Vector or Matrix on insert and shape-checks retrievals.
//
// The zero value has the right shape and reads as all-zero data.
type Fixed[S Shape] struct {
	data []float64
}

// Convenience aliases for the predeclared shapes.
type (
	Vec2  = Fixed[S2x1]
	Vec3  = Fixed[S3x1]
	Vec4  = Fixed[S4x1]
	Vec5  = Fixed[S5x1]
	Vec6  = Fixed[S6x1]
	Mat22 = Fixed[S2x2]
	Mat33 = Fixed[S3x3]
)

// NewFixed creates a fixed-shape value from row-major data. With no data the
// value is all-zero. Panics if len(vals) is neither zero nor rows*cols.
func NewFixed[S Shape](vals ...float64) Fixed[S] {
	var s S
	r, c := s.Dims()
	n := r * c
	if len(vals) == 0 {
		return Fixed[S]{data: make([]float64, n)}
	}
	if len(vals) != n {
		panic(fmt.Sprintf("manifold: NewFixed: %d values for a %dx%d array", len(vals), r, c))
	}
	return Fixed[S]{data: slices.Clone(vals)}
}

func (f Fixed[S]) shape() (int, int) {
	var s S
	return s.Dims()
}

// TypeID implements Point. The ID differs from the dynamic Vector/Matrix
// IDs, so a direct identity match against a stored value never succeeds;
// retrieval always goes through the dynamic fallback.
func (f Fixed[S]) TypeID() TypeID {
	r, c := f.shape()
	return FixedTypeID(r, c)
}

// Dim implements Point.
func (f Fixed[S]) Dim() int {
	r, c := f.shape()
	return r * c
}

// Rows implements Shaped.
func (f Fixed[S]) Rows() int {
	r, _ := f.shape()
	return r
}

// Cols implements Shaped.
func (f Fixed[S]) Cols() int {
	_, c := f.shape()
	return c
}

// At returns the i-th element in row-major order.
func (f Fixed[S]) At(i int) float64 {
	if f.data == nil {
		return 0
	}
	return f.data[i]
}

// Data returns a copy of the row-major data.
func (f Fixed[S]) Data() []float64 {
	if f.data == nil {
		return make([]float64, f.Dim())
	}
	return slices.Clone(f.data)
}

// AsDynamic implements FixedShaped.
func (f Fixed[S]) AsDynamic() Point {
	r, c := f.shape()
	if c == 1 {
		return Vector(f.Data())
	}
	return NewMatrix(r, c, f.Data()...)
}

// AssignDynamic implements DynamicAssignable.
func (f *Fixed[S]) AssignDynamic(data []float64) {
	f.data = slices.Clone(data)
}

// Equals implements Point.
func (f Fixed[S]) Equals(other Point, tol float64) bool {
	o, ok := other.(Fixed[S])
	if !ok {
		return false
	}
	return equalsTol(f.Data(), o.Data(), tol)
}

// Clone implements Point.
func (f Fixed[S]) Clone() Point {
	return Fixed[S]{data: f.Data()}
}

// String implements fmt.Stringer.
func (f Fixed[S]) String() string {
	return f.AsDynamic().String()
}
