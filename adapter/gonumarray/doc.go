// Package gonumarray binds gonum's mat types to the adapter.Array
// capability set, so gonum vectors and matrices can be fed to
// adapter.Normalize, adapter.MatrixFromArray and adapter.EuclideanDistance.
//
// Shape checks happen before any gonum call: gonum panics on mismatched
// operands, this package returns the core's sentinel errors instead.
package gonumarray
