// Package varset provides a type-safe heterogeneous container for
// manifold-valued optimization variables, as used by nonlinear
// least-squares estimators.
//
// A Values maps opaque integer keys to elements living on arbitrary
// manifolds, stored behind a single erased interface and retrieved with
// full type checking:
//
//	v := varset.New()
//	_ = v.Insert(1, manifold.NewRot2(0.3))
//	_ = v.Insert(2, manifold.NewFixed[manifold.S3x1](1, 2, 3))
//
//	r, err := varset.At[manifold.Rot2](v, 1)     // typed copy
//	x, err := varset.At[manifold.Vector](v, 2)   // fixed 3-vector stored dynamically
//
// # Fixed and dynamic numeric arrays
//
// Numeric arrays may carry their shape in the type system (manifold.Fixed,
// e.g. manifold.Vec3) or at runtime (manifold.Vector, manifold.Matrix).
// Inserting a fixed-shape value stores its dynamic counterpart, so each
// element family has a single stored representation. Requesting a
// fixed-shape type retrieves the stored dynamic value when the runtime
// shape agrees and fails with ErrShapeMismatch when it does not.
//
// # Filtered views
//
// Filter and FilterType build lazy, non-owning views restricted by a key
// predicate and optionally by element type:
//
//	poses := varset.FilterType[manifold.Rot2](v, func(j core.Key) bool {
//		return core.SymbolFromKey(j).Chr() == 'r'
//	})
//	snapshot := varset.FromFiltered(poses) // independent container
//
// Views evaluate their predicate per traversal step and are invalidated by
// any mutation of the source container.
//
// # Concurrency
//
// Values performs no internal locking. It assumes a single logical owner;
// concurrent mutation must be serialized by the caller.
package varset
