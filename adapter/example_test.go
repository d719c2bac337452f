package adapter_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/adapter"
)

// ExampleNormalize scales a vector to unit length.
func ExampleNormalize() {
	u, _ := adapter.Normalize(adapter.Vec{3, 4})
	fmt.Println(u.Values())
	// Output: [0.6 0.8]
}

// ExampleEuclideanDistance measures the distance between two points.
func ExampleEuclideanDistance() {
	d, _ := adapter.EuclideanDistance(adapter.Vec{0, 0}, adapter.Vec{3, 4})
	fmt.Println(d)
	// Output: 5
}
