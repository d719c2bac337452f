package gonumarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/adapter"
	"github.com/katalvlaran/lvnum/adapter/gonumarray"
)

// ExampleNewVector feeds gonum-backed vectors to the adapter.
func ExampleNewVector() {
	a := gonumarray.NewVector([]float64{1, 1})
	b := gonumarray.NewVector([]float64{4, 5})
	d, _ := adapter.EuclideanDistance(a, b)
	fmt.Println(d)
	// Output: 5
}
