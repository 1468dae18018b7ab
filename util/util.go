// Package util provides helpers for generating test data.
package util

import (
	"math/rand"

	"github.com/hupe1980/varset/manifold"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Vector generates a random vector of the given dimension.
func (r *RNG) Vector(dim int) manifold.Vector {
	v := make(manifold.Vector, dim)
	for i := range v {
		v[i] = r.rand.Float64()
	}
	return v
}

// Vectors generates num random vectors of the given dimension.
func (r *RNG) Vectors(num, dim int) []manifold.Vector {
	vectors := make([]manifold.Vector, num)
	for i := range vectors {
		vectors[i] = r.Vector(dim)
	}
	return vectors
}

// Matrix generates a random rows x cols matrix.
func (r *RNG) Matrix(rows, cols int) manifold.Matrix {
	m := manifold.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, r.rand.Float64())
		}
	}
	return m
}
