package sfc_test

import (
	"fmt"

	"github.com/tit-go/geomgraph/sfc"
	"github.com/tit-go/geomgraph/vecmath"
)

// ExampleMortonSort orders four corners of a unit square by Z-curve index.
func ExampleMortonSort() {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(1.0, 0.0), // bottom-right
		vecmath.NewVec(0.0, 0.0), // bottom-left
		vecmath.NewVec(0.0, 1.0), // top-left
		vecmath.NewVec(1.0, 1.0), // top-right
	}
	perm := make([]int, len(points))
	sfc.MortonSort(points, perm)
	fmt.Println(perm)
	// Output:
	// [1 0 2 3]
}
