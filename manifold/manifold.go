package manifold

import "fmt"

// TypeID is the stable runtime identity of a stored element type.
//
// IDs are compared as plain strings (no host reflection), so they must be
// unique per concrete type and stable across builds. Implementations outside
// this package should namespace their IDs to avoid collisions.
type TypeID string

// Predeclared IDs for the element types shipped with this package.
const (
	TypeVector TypeID = "manifold/vector"
	TypeMatrix TypeID = "manifold/matrix"
	TypeScalar TypeID = "manifold/scalar"
	TypeRot2   TypeID = "manifold/rot2"
	TypePoint2 TypeID = "manifold/point2"
)

// FixedTypeID returns the identity of a fixed-shape numeric array.
// It is distinct from the dynamic Vector/Matrix IDs on purpose: fixed
// variants are never stored, only requested.
func FixedTypeID(rows, cols int) TypeID {
	return TypeID(fmt.Sprintf("manifold/fixed[%dx%d]", rows, cols))
}

// Point is the capability every storable manifold element must provide.
//
// The container treats elements opaquely: it never performs manifold
// algebra, it only type-checks, copies, compares and prints them.
type Point interface {
	// TypeID returns the runtime identity used for type checks.
	TypeID() TypeID

	// Dim returns the tangent-space dimensionality of the element.
	Dim() int

	// Equals reports elementwise equality within tolerance tol.
	// Elements of a different runtime type are never equal.
	Equals(other Point, tol float64) bool

	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Point

	fmt.Stringer
}

// Shaped is implemented by numeric-array elements that know their
// runtime row and column counts.
type Shaped interface {
	Rows() int
	Cols() int
}

// FixedShaped marks a numeric-array element whose shape is fixed at compile
// time. Such values are normalized to their dynamic counterpart on insert
// and reconciled against it on retrieval.
type FixedShaped interface {
	Point
	Shaped

	// AsDynamic returns the fully dynamic representation of the element:
	// a Vector when Cols() == 1, a Matrix otherwise. The result shares no
	// backing storage with the receiver.
	AsDynamic() Point
}

// DynamicAssignable is implemented by pointers to fixed-shape types. The
// container uses it to materialize a fixed value from the stored dynamic
// representation once shapes have been validated.
type DynamicAssignable interface {
	// AssignDynamic overwrites the receiver with a copy of data, laid out
	// row-major.
	AssignDynamic(data []float64)
}

// equalsTol reports elementwise |a-b| <= tol for two equally sized slices.
func equalsTol(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}
