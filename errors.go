package varset

import (
	"fmt"

	"github.com/hupe1980/varset/core"
	"github.com/hupe1980/varset/manifold"
)

// ErrKeyNotFound indicates an operation that requires an existing key was
// given a key the container does not hold.
type ErrKeyNotFound struct {
	// Op is the operation that failed, e.g. "at" or "erase".
	Op  string
	Key core.Key
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("varset: %s: key %s does not exist", e.Op, e.Key)
}

// ErrKeyExists indicates an insert for a key the container already holds.
type ErrKeyExists struct {
	Key core.Key
}

func (e *ErrKeyExists) Error() string {
	return fmt.Sprintf("varset: insert: key %s already exists", e.Key)
}

// ErrTypeMismatch indicates the stored type disagrees with the requested
// type and no fixed/dynamic reconciliation applies.
type ErrTypeMismatch struct {
	Key    core.Key
	Stored manifold.TypeID
	// Requested is empty when the request was for an interface rather than
	// a concrete type.
	Requested manifold.TypeID
}

func (e *ErrTypeMismatch) Error() string {
	if e.Requested == "" {
		return fmt.Sprintf("varset: key %s holds %s, which does not satisfy the requested interface", e.Key, e.Stored)
	}
	return fmt.Sprintf("varset: key %s holds %s, requested %s", e.Key, e.Stored, e.Requested)
}

// ErrShapeMismatch indicates a fixed-shape request matched the stored
// element family but the runtime dimensions disagree.
type ErrShapeMismatch struct {
	ExpectedRows, ExpectedCols int
	ActualRows, ActualCols     int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("varset: no fixed %dx%d match, stored dynamic value is %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}
