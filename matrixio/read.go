// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/matrix"
)

// ErrFormat is returned when a document is not a recognizable matrix or
// vector (empty input, wrong node kind, missing key, non-numeric items), for
// an unknown output format, and when a value has no encoding in the chosen
// format (NaN or ±Inf in JSON).
var ErrFormat = errors.New("matrixio: unsupported document")

// Document keys for the wrapped form.
const (
	keyMatrix = "matrix"
	keyVector = "vector"
)

// parseRoot decodes the first YAML (or JSON) document of r and returns the
// node holding the payload: the root itself when it is a sequence, or the
// value under key when it is a mapping.
func parseRoot(r io.Reader, key string) (*yaml.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return root, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == key {
				return root.Content[i+1], nil
			}
		}

		return nil, fmt.Errorf("%w: no %q key", ErrFormat, key)
	default:
		return nil, fmt.Errorf("%w: line %d: want a list or a %q mapping", ErrFormat, root.Line, key)
	}
}

// ReadMatrix decodes a matrix from a YAML or JSON document. Both a bare
// nested list and a {"matrix": [[...]]} mapping are accepted.
//
// Errors:
//   - ErrFormat for anything that is not a list of numeric lists.
//   - matrix.ErrBadShape for ragged rows.
func ReadMatrix(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	node, err := parseRoot(r, keyMatrix)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	if err := node.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	m, err := matrix.NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: ReadMatrix: %w", err)
	}

	return m, nil
}

// ReadVector decodes a vector from a YAML or JSON document. Both a bare
// list and a {"vector": [...]} mapping are accepted.
func ReadVector(r io.Reader) ([]float64, error) {
	node, err := parseRoot(r, keyVector)
	if err != nil {
		return nil, err
	}

	var v []float64
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if v == nil {
		v = []float64{}
	}

	return v, nil
}
