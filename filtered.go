package varset

import (
	"iter"

	"github.com/hupe1980/varset/core"
	"github.com/hupe1980/varset/manifold"
)

// Filtered is a lazy, non-owning view over a container restricted by a key
// predicate and the element type T. The predicate and type test run once
// per traversal step, never eagerly.
//
// A view holds no storage of its own and is invalidated by any mutation of
// the source container.
type Filtered[T manifold.Point] struct {
	src  *Values
	pred func(core.Key) bool
}

// FilterType returns a view over every entry whose key satisfies pred and
// whose stored type is exactly T. A nil pred matches every key. An
// interface T (e.g. manifold.Point) matches every element satisfying it;
// fixed-shape types never match, since only dynamic representations are
// stored.
func FilterType[T manifold.Point](v *Values, pred func(core.Key) bool) Filtered[T] {
	return Filtered[T]{src: v, pred: pred}
}

// Filter returns an unrestricted view over every entry whose key satisfies
// pred.
func (v *Values) Filter(pred func(core.Key) bool) Filtered[manifold.Point] {
	return FilterType[manifold.Point](v, pred)
}

// All yields the matching entries in ascending key order. The yielded
// elements are the stored ones; callers must treat them as read-only.
func (f Filtered[T]) All() iter.Seq2[core.Key, T] {
	return func(yield func(core.Key, T) bool) {
		for j, w := range f.src.allWrappers() {
			if f.pred != nil && !f.pred(j) {
				continue
			}
			t, ok := matches[T](w)
			if !ok {
				continue
			}
			if !yield(j, t) {
				return
			}
		}
	}
}

// Size counts the matching entries. It traverses the view fully on every
// call and is never cached.
func (f Filtered[T]) Size() int {
	n := 0
	for range f.All() {
		n++
	}
	return n
}

// ConstFiltered is the read-only counterpart of Filtered. It wraps an
// already-built traversal, so constructing one from a Filtered view does
// not re-evaluate the predicate.
type ConstFiltered[T manifold.Point] struct {
	seq iter.Seq2[core.Key, T]
}

// NewConstFiltered converts a Filtered view into its read-only counterpart
// by capturing its traversal.
func NewConstFiltered[T manifold.Point](f Filtered[T]) ConstFiltered[T] {
	return ConstFiltered[T]{seq: f.All()}
}

// ConstFilterType returns a read-only view over every entry whose key
// satisfies pred and whose stored type is exactly T.
func ConstFilterType[T manifold.Point](v *Values, pred func(core.Key) bool) ConstFiltered[T] {
	return NewConstFiltered(FilterType[T](v, pred))
}

// All yields the matching entries in ascending key order.
func (f ConstFiltered[T]) All() iter.Seq2[core.Key, T] {
	return f.seq
}

// Size counts the matching entries with a full traversal.
func (f ConstFiltered[T]) Size() int {
	n := 0
	for range f.seq {
		n++
	}
	return n
}

// Keys traverses the view once and returns the matched keys in ascending
// order.
func (f ConstFiltered[T]) Keys() []core.Key {
	var keys []core.Key
	for j := range f.seq {
		keys = append(keys, j)
	}
	return keys
}

// FromFiltered snapshots a view into a new independent container: one
// traversal, inserting a copy of every matched entry under its key. The
// result shares no storage with the source.
func FromFiltered[T manifold.Point](f Filtered[T]) *Values {
	nv := New()
	for j, t := range f.All() {
		// Keys are unique within the source, so Insert cannot fail.
		_ = nv.Insert(j, t)
	}
	return nv
}

// FromConstFiltered snapshots a read-only view into a new independent
// container.
func FromConstFiltered[T manifold.Point](f ConstFiltered[T]) *Values {
	nv := New()
	for j, t := range f.All() {
		_ = nv.Insert(j, t)
	}
	return nv
}
