package varset

import (
	"github.com/hupe1980/varset/core"
	"github.com/hupe1980/varset/manifold"
)

// wrapper is the erased storage cell: one exclusively owned element plus
// the type identity captured at insert time. Wrappers are immutable;
// updates replace them outright.
type wrapper struct {
	id    manifold.TypeID
	point manifold.Point
}

// wrapPoint applies the insert-normalization policy: fixed-shape numeric
// arrays are stored as their fully dynamic counterpart, everything else is
// stored unchanged. The wrapper owns a copy of the value in either case.
func wrapPoint(p manifold.Point) wrapper {
	if fs, ok := p.(manifold.FixedShaped); ok {
		dyn := fs.AsDynamic()
		return wrapper{id: dyn.TypeID(), point: dyn}
	}
	cl := p.Clone()
	return wrapper{id: cl.TypeID(), point: cl}
}

// handle applies the retrieval-reconciliation policy for a request of type
// T against the wrapper stored under j:
//
//  1. direct identity match returns a copy;
//  2. a fixed-shape request falls back to the dynamic representation of the
//     same element family (vector when cols is 1, matrix otherwise);
//  3. the fallback's runtime shape must equal the requested one, otherwise
//     the request fails with ErrShapeMismatch.
//
// Non-array types stop after step 1 and fail with ErrTypeMismatch.
func handle[T manifold.Point](j core.Key, w wrapper) (T, error) {
	var zero T

	// T is an interface type: any stored element satisfying it matches.
	if any(zero) == nil {
		t, ok := w.point.Clone().(T)
		if !ok {
			return zero, &ErrTypeMismatch{Key: j, Stored: w.id}
		}
		return t, nil
	}

	want := zero.TypeID()
	if w.id == want {
		if t, ok := w.point.Clone().(T); ok {
			return t, nil
		}
		return zero, &ErrTypeMismatch{Key: j, Stored: w.id, Requested: want}
	}

	fs, ok := any(zero).(manifold.FixedShaped)
	if !ok {
		return zero, &ErrTypeMismatch{Key: j, Stored: w.id, Requested: want}
	}

	// Fixed-shape request: reinterpret the stored element as the dynamic
	// member of the same family.
	m, n := fs.Rows(), fs.Cols()
	var (
		data       []float64
		rows, cols int
	)
	if n == 1 {
		vec, ok := w.point.(manifold.Vector)
		if !ok || w.id != manifold.TypeVector {
			return zero, &ErrTypeMismatch{Key: j, Stored: w.id, Requested: want}
		}
		data, rows, cols = vec, vec.Rows(), 1
	} else {
		mat, ok := w.point.(manifold.Matrix)
		if !ok || w.id != manifold.TypeMatrix {
			return zero, &ErrTypeMismatch{Key: j, Stored: w.id, Requested: want}
		}
		data, rows, cols = mat.Data(), mat.Rows(), mat.Cols()
	}

	if rows != m || cols != n {
		return zero, &ErrShapeMismatch{
			ExpectedRows: m, ExpectedCols: n,
			ActualRows: rows, ActualCols: cols,
		}
	}

	// Single materialization: copy the validated dynamic data straight
	// into the requested fixed type.
	out := zero
	da, ok := any(&out).(manifold.DynamicAssignable)
	if !ok {
		return zero, &ErrTypeMismatch{Key: j, Stored: w.id, Requested: want}
	}
	da.AssignDynamic(data)
	return out, nil
}

// matches applies the view-matching policy: predicate-independent direct
// identity only, with an interface T accepting every stored element that
// satisfies it. Unlike handle it yields the stored element itself, not a
// copy; views are non-owning.
func matches[T manifold.Point](w wrapper) (T, bool) {
	var zero T
	if any(zero) == nil {
		t, ok := w.point.(T)
		return t, ok
	}
	if w.id != zero.TypeID() {
		return zero, false
	}
	t, ok := w.point.(T)
	return t, ok
}
