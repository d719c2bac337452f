// Package matrixio reads and writes matrices and vectors as YAML, JSON or
// plain text.
//
// Reading goes through gopkg.in/yaml.v3, which also accepts JSON documents.
// Either a bare list or a wrapped mapping is accepted:
//
//	[[1, 2], [3, 4]]
//	matrix:
//	  - [1, 2]
//	  - [3, 4]
//	{"vector": [3, 4]}
//
// Ragged rows surface as matrix.ErrBadShape; anything else that cannot be a
// matrix or vector surfaces as ErrFormat.
package matrixio
