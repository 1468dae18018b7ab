package manifold

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_PointCapability(t *testing.T) {
	v := NewVector(1, 2, 3)

	assert.Equal(t, TypeVector, v.TypeID())
	assert.Equal(t, 3, v.Dim())
	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func TestVector_Equals(t *testing.T) {
	v := NewVector(1, 2, 3)

	assert.True(t, v.Equals(NewVector(1, 2, 3), 1e-9))
	assert.True(t, v.Equals(NewVector(1, 2, 3.0000001), 1e-6))
	assert.False(t, v.Equals(NewVector(1, 2, 4), 1e-9))
	assert.False(t, v.Equals(NewVector(1, 2), 1e-9))

	// Different runtime type never compares equal.
	assert.False(t, v.Equals(NewFixed[S3x1](1, 2, 3), 1e-9))
}

func TestVector_CloneIsIndependent(t *testing.T) {
	v := NewVector(1, 2, 3)
	c := v.Clone().(Vector)

	c[0] = 99
	assert.Equal(t, 1.0, v.At(0))
}

func TestMatrix_PointCapability(t *testing.T) {
	m := NewMatrix(2, 2, 1, 2, 3, 4)

	assert.Equal(t, TypeMatrix, m.TypeID())
	assert.Equal(t, 4, m.Dim())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Equal(t, "[1, 2; 3, 4]", m.String())
}

func TestMatrix_ZeroAndPanics(t *testing.T) {
	z := NewMatrix(2, 3)
	assert.Equal(t, 6, z.Dim())
	assert.Equal(t, 0.0, z.At(1, 2))

	assert.Panics(t, func() { NewMatrix(2, 2, 1, 2, 3) })
}

func TestMatrix_Equals(t *testing.T) {
	m := NewMatrix(2, 2, 1, 2, 3, 4)

	assert.True(t, m.Equals(NewMatrix(2, 2, 1, 2, 3, 4), 1e-9))
	assert.False(t, m.Equals(NewMatrix(2, 2, 1, 2, 3, 5), 1e-9))
	assert.False(t, m.Equals(NewMatrix(4, 1, 1, 2, 3, 4), 1e-9))
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	m := NewMatrix(2, 2, 1, 2, 3, 4)
	c := m.Clone().(Matrix)

	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestFixed_ShapeFromType(t *testing.T) {
	// The zero value knows its shape; no data required.
	var v Vec3
	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())
	assert.Equal(t, FixedTypeID(3, 1), v.TypeID())
	assert.Equal(t, 0.0, v.At(2))

	var m Mat22
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, FixedTypeID(2, 2), m.TypeID())
}

func TestFixed_AsDynamic(t *testing.T) {
	v := NewFixed[S3x1](1, 2, 3)
	dyn := v.AsDynamic()

	vec, ok := dyn.(Vector)
	require.True(t, ok)
	assert.Equal(t, NewVector(1, 2, 3), vec)

	m := NewFixed[S2x2](1, 2, 3, 4)
	mat, ok := m.AsDynamic().(Matrix)
	require.True(t, ok)
	assert.Equal(t, 2, mat.Rows())
	assert.Equal(t, 2, mat.Cols())
	assert.Equal(t, 4.0, mat.At(1, 1))
}

func TestFixed_AsDynamicSharesNothing(t *testing.T) {
	v := NewFixed[S2x1](1, 2)
	vec := v.AsDynamic().(Vector)

	vec[0] = 99
	assert.Equal(t, 1.0, v.At(0))
}

func TestFixed_AssignDynamic(t *testing.T) {
	var v Vec3
	v.AssignDynamic([]float64{4, 5, 6})

	assert.Equal(t, 5.0, v.At(1))
	assert.True(t, v.Equals(NewFixed[S3x1](4, 5, 6), 1e-9))
}

func TestFixed_PanicsOnWrongLength(t *testing.T) {
	assert.Panics(t, func() { NewFixed[S3x1](1, 2) })
}

func TestScalar(t *testing.T) {
	s := Scalar(2.5)

	assert.Equal(t, TypeScalar, s.TypeID())
	assert.Equal(t, 1, s.Dim())
	assert.Equal(t, "2.5", s.String())
	assert.True(t, s.Equals(Scalar(2.5), 1e-9))
	assert.False(t, s.Equals(Scalar(3), 1e-9))
	assert.False(t, s.Equals(NewVector(2.5), 1e-9))
}

func TestRot2_WrapsAngle(t *testing.T) {
	r := NewRot2(3 * math.Pi)

	assert.InDelta(t, math.Pi, r.Theta(), 1e-12)
	assert.True(t, r.Equals(NewRot2(math.Pi), 1e-9))
	assert.True(t, NewRot2(0.1).Equals(NewRot2(0.1+2*math.Pi), 1e-9))
	assert.False(t, NewRot2(0.1).Equals(NewRot2(0.2), 1e-9))
}

func TestPoint2(t *testing.T) {
	p := NewPoint2(1, 2)

	assert.Equal(t, TypePoint2, p.TypeID())
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, "(1, 2)", p.String())
	assert.True(t, p.Equals(NewPoint2(1, 2), 1e-9))
	assert.False(t, p.Equals(NewPoint2(1, 3), 1e-9))
}
