package manifold

import (
	"fmt"
	"math"
)

// Rot2 is a planar rotation, stored as an angle in radians normalized to
// (-pi, pi]. It is a non-array manifold element: retrieval never applies
// the numeric-array shape fallback to it.
type Rot2 struct {
	theta float64
}

// NewRot2 creates a rotation from an angle in radians.
func NewRot2(theta float64) Rot2 {
	return Rot2{theta: wrapAngle(theta)}
}

// Theta returns the angle in (-pi, pi].
func (r Rot2) Theta() float64 { return r.theta }

// TypeID implements Point.
func (r Rot2) TypeID() TypeID { return TypeRot2 }

// Dim implements Point.
func (r Rot2) Dim() int { return 1 }

// Equals implements Point. Angles are compared on the circle, so
// rotations by theta and theta + 2*pi are equal.
func (r Rot2) Equals(other Point, tol float64) bool {
	o, ok := other.(Rot2)
	if !ok {
		return false
	}
	return math.Abs(wrapAngle(r.theta-o.theta)) <= tol
}

// Clone implements Point.
func (r Rot2) Clone() Point { return r }

// String implements fmt.Stringer.
func (r Rot2) String() string {
	return fmt.Sprintf("Rot2(%g)", r.theta)
}

// Point2 is a point in the plane.
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a planar point.
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// TypeID implements Point.
func (p Point2) TypeID() TypeID { return TypePoint2 }

// Dim implements Point.
func (p Point2) Dim() int { return 2 }

// Equals implements Point.
func (p Point2) Equals(other Point, tol float64) bool {
	o, ok := other.(Point2)
	if !ok {
		return false
	}
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}

// Clone implements Point.
func (p Point2) Clone() Point { return p }

// String implements fmt.Stringer.
func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// wrapAngle normalizes theta to (-pi, pi].
func wrapAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta > math.Pi {
		theta -= 2 * math.Pi
	} else if theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
