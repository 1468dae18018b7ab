// Package keyset implements the ordered key set backing a varset container.
package keyset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a set of uint64 keys backed by a 64-bit Roaring Bitmap.
// Iteration yields keys in ascending order, which is what gives the
// container its deterministic traversal order.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Add adds a key to the set.
func (s *Set) Add(k uint64) {
	s.rb.Add(k)
}

// Remove removes a key from the set.
func (s *Set) Remove(k uint64) {
	s.rb.Remove(k)
}

// Contains checks if a key is in the set.
func (s *Set) Contains(k uint64) bool {
	return s.rb.Contains(k)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of keys in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Clear removes all keys from the set.
func (s *Set) Clear() {
	s.rb = roaring64.New()
}

// Iterator returns an iterator over the set in ascending key order.
func (s *Set) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
