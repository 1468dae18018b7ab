package varset_test

import (
	"fmt"

	"github.com/hupe1980/varset"
	"github.com/hupe1980/varset/core"
	"github.com/hupe1980/varset/manifold"
)

// Example demonstrates typed storage and the fixed/dynamic normalization.
func Example() {
	v := varset.New()

	x0 := core.NewSymbol('x', 0).Key()
	r0 := core.NewSymbol('r', 0).Key()

	// A fixed 3-vector is stored as its dynamic counterpart.
	_ = v.Insert(x0, manifold.NewFixed[manifold.S3x1](1, 2, 3))
	_ = v.Insert(r0, manifold.NewRot2(0.5))

	vec, _ := varset.At[manifold.Vector](v, x0)
	fmt.Println(vec)

	// Requesting the wrong fixed shape reports both dimension pairs.
	_, err := varset.At[manifold.Vec4](v, x0)
	fmt.Println(err)
	// Output:
	// [1, 2, 3]
	// varset: no fixed 4x1 match, stored dynamic value is 3x1
}

// Example_filter demonstrates lazy type-filtered views and snapshots.
func Example_filter() {
	v := varset.New()
	for i := uint64(0); i < 3; i++ {
		_ = v.Insert(core.NewSymbol('r', i).Key(), manifold.NewRot2(0.1*float64(i)))
		_ = v.Insert(core.NewSymbol('x', i).Key(), manifold.NewVector(float64(i)))
	}

	rots := varset.FilterType[manifold.Rot2](v, nil)
	fmt.Println("rotations:", rots.Size())

	snap := varset.FromFiltered(rots)
	fmt.Println("snapshot:", snap.Size())
	// Output:
	// rotations: 3
	// snapshot: 3
}
