package varset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/varset/core"
	"github.com/hupe1980/varset/internal/keyset"
	"github.com/hupe1980/varset/manifold"
)

// Values is an ordered, heterogeneous container mapping keys to manifold
// elements. It owns its entries exclusively: inserted values are cloned in,
// retrieved values are cloned out.
//
// Values performs no internal locking; a single logical owner must
// serialize mutation. Any mutation invalidates previously constructed
// iterators and views over the container.
type Values struct {
	entries map[core.Key]wrapper
	keys    *keyset.Set
}

// New creates an empty container.
func New(optFns ...Option) *Values {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	return &Values{
		entries: make(map[core.Key]wrapper, o.capacity),
		keys:    keyset.New(),
	}
}

// Size returns the number of entries.
func (v *Values) Size() int { return len(v.entries) }

// Empty reports whether the container holds no entries.
func (v *Values) Empty() bool { return len(v.entries) == 0 }

// Insert stores val under j. The container keeps its own copy; fixed-shape
// numeric arrays are normalized to their dynamic representation first.
// Inserting an existing key fails with ErrKeyExists and leaves the
// container unchanged.
func (v *Values) Insert(j core.Key, val manifold.Point) error {
	if _, ok := v.entries[j]; ok {
		return &ErrKeyExists{Key: j}
	}
	v.entries[j] = wrapPoint(val)
	v.keys.Add(uint64(j))
	return nil
}

// Update replaces the entry under j outright; the new value's type need not
// match the previous one. Updating an absent key fails with ErrKeyNotFound.
func (v *Values) Update(j core.Key, val manifold.Point) error {
	if _, ok := v.entries[j]; !ok {
		return &ErrKeyNotFound{Op: "update", Key: j}
	}
	v.entries[j] = wrapPoint(val)
	return nil
}

// Erase removes the entry under j. Erasing an absent key fails with
// ErrKeyNotFound.
func (v *Values) Erase(j core.Key) error {
	if _, ok := v.entries[j]; !ok {
		return &ErrKeyNotFound{Op: "erase", Key: j}
	}
	delete(v.entries, j)
	v.keys.Remove(uint64(j))
	return nil
}

// Clear removes all entries.
func (v *Values) Clear() {
	clear(v.entries)
	v.keys.Clear()
}

// AtPoint returns the stored element under j without a type check. The
// returned element is the stored one; callers must treat it as read-only.
func (v *Values) AtPoint(j core.Key) (manifold.Point, error) {
	w, ok := v.entries[j]
	if !ok {
		return nil, &ErrKeyNotFound{Op: "at", Key: j}
	}
	return w.point, nil
}

// Has reports whether j is present, without any type check.
func (v *Values) Has(j core.Key) bool {
	_, ok := v.entries[j]
	return ok
}

// All yields every entry in ascending key order. The yielded elements are
// the stored ones; callers must treat them as read-only.
func (v *Values) All() iter.Seq2[core.Key, manifold.Point] {
	return func(yield func(core.Key, manifold.Point) bool) {
		for k := range v.keys.Iterator() {
			j := core.Key(k)
			if !yield(j, v.entries[j].point) {
				return
			}
		}
	}
}

// allWrappers is the untyped traversal views are built on.
func (v *Values) allWrappers() iter.Seq2[core.Key, wrapper] {
	return func(yield func(core.Key, wrapper) bool) {
		for k := range v.keys.Iterator() {
			j := core.Key(k)
			if !yield(j, v.entries[j]) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (v *Values) Keys() []core.Key {
	keys := make([]core.Key, 0, len(v.entries))
	for k := range v.keys.Iterator() {
		keys = append(keys, core.Key(k))
	}
	return keys
}

// Dim returns the total tangent-space dimensionality of all entries.
func (v *Values) Dim() int {
	dim := 0
	for _, w := range v.entries {
		dim += w.point.Dim()
	}
	return dim
}

// Equals reports whether both containers hold the same keys with elements
// of identical type that compare equal within tol.
func (v *Values) Equals(other *Values, tol float64) bool {
	if v.Size() != other.Size() {
		return false
	}
	for j, w := range v.allWrappers() {
		ow, ok := other.entries[j]
		if !ok || ow.id != w.id || !w.point.Equals(ow.point, tol) {
			return false
		}
	}
	return true
}

// InsertAll inserts every entry of other into v. It stops at the first
// duplicate key with ErrKeyExists; entries inserted before the duplicate
// remain.
func (v *Values) InsertAll(other *Values) error {
	for j, w := range other.allWrappers() {
		if err := v.Insert(j, w.point); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAll replaces the entries of v for every key of other. It stops at
// the first key absent from v with ErrKeyNotFound.
func (v *Values) UpdateAll(other *Values) error {
	for j, w := range other.allWrappers() {
		if err := v.Update(j, w.point); err != nil {
			return err
		}
	}
	return nil
}

// String returns a human-readable dump of the container in key order.
func (v *Values) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Values with %d entries:\n", v.Size())
	for j, p := range v.All() {
		fmt.Fprintf(&sb, "  %s: %s\n", j, p)
	}
	return sb.String()
}

// Print logs every entry at info level, one record per entry. Useful as a
// convergence diagnostic in optimization loops.
func (v *Values) Print(l *Logger, msg string) {
	if l == nil {
		l = NoopLogger()
	}
	l.Info(msg, "size", v.Size(), "dim", v.Dim())
	for j, w := range v.allWrappers() {
		l.Info("entry", "key", j.String(), "type", string(w.id), "value", w.point.String())
	}
}

// At returns a copy of the element under j as T.
//
// An absent key fails with ErrKeyNotFound. A present key goes through
// retrieval reconciliation: requesting a fixed-shape numeric array retrieves
// the stored dynamic element of the same family when the shapes agree
// (ErrShapeMismatch when they do not); any other disagreement fails with
// ErrTypeMismatch.
func At[T manifold.Point](v *Values, j core.Key) (T, error) {
	w, ok := v.entries[j]
	if !ok {
		var zero T
		return zero, &ErrKeyNotFound{Op: "at", Key: j}
	}
	return handle[T](j, w)
}

// Exists returns a pointer to a copy of the element under j as T, or nil
// when j is absent. Unlike At, absence is not an error; a present entry of
// an irreconcilable type still fails with ErrTypeMismatch.
func Exists[T manifold.Point](v *Values, j core.Key) (*T, error) {
	w, ok := v.entries[j]
	if !ok {
		return nil, nil
	}
	val, err := handle[T](j, w)
	if err != nil {
		return nil, err
	}
	return &val, nil
}
