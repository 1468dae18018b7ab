// Package manifold defines the value capability stored by varset containers
// and a small set of concrete manifold element types.
//
// Every storable element implements Point: a stable runtime type identity,
// a tolerance-based equality test, deep cloning and a printable form. The
// container never performs manifold algebra; composition, retraction and
// local coordinates belong to the optimization engine consuming it.
//
// Numeric arrays come in two flavors. Vector and Matrix carry their shape at
// runtime and are the only representations a container ever stores. Fixed[S]
// carries its shape in the type system; inserting one stores its dynamic
// counterpart, and requesting one shape-checks the stored dynamic value.
package manifold
