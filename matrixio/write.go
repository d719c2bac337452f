// SPDX-License-Identifier: MIT

package matrixio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/matrix"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultPrecision formats floats with the fewest digits that round-trip.
const DefaultPrecision = -1

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrFormat, s)
	}
}

// Writer encodes results in one Format. Precision applies to FormatText only;
// YAML and JSON always carry full precision.
//
// JSON has no literal for NaN or ±Inf, so FormatJSON rejects them with
// ErrFormat naming the offending cell. Text and YAML (.nan, .inf) encode
// them, and ReadMatrix/ReadVector read the YAML form back.
type Writer struct {
	Format    Format
	Precision int
}

// NewWriter returns a Writer with DefaultPrecision.
func NewWriter(f Format) Writer {
	return Writer{Format: f, Precision: DefaultPrecision}
}

// WriteMatrix writes m with the default precision.
func WriteMatrix(w io.Writer, m *matrix.Dense, f Format) error {
	return NewWriter(f).WriteMatrix(w, m)
}

// WriteVector writes v with the default precision.
func WriteVector(w io.Writer, v []float64, f Format) error {
	return NewWriter(f).WriteVector(w, v)
}

// WriteMatrix encodes m. YAML and JSON output use the {"matrix": ...}
// wrapper that ReadMatrix accepts; text output is one bracketed row per line.
func (wr Writer) WriteMatrix(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("matrixio: WriteMatrix: %w", matrix.ErrNilMatrix)
	}
	rows := m.ToRows()

	switch wr.Format {
	case FormatText:
		var sb strings.Builder
		for _, row := range rows {
			sb.WriteString(wr.list(row))
			sb.WriteByte('\n')
		}
		_, err := io.WriteString(w, sb.String())

		return err
	case FormatYAML:
		return writeYAML(w, keyMatrix, rows)
	case FormatJSON:
		for i, row := range rows {
			if j := firstNonFinite(row); j >= 0 {
				return fmt.Errorf("%w: json cannot encode %g at row %d col %d", ErrFormat, row[j], i, j)
			}
		}

		return writeJSON(w, map[string][][]float64{keyMatrix: rows})
	default:
		return fmt.Errorf("%w: unknown format %q", ErrFormat, wr.Format)
	}
}

// WriteVector encodes v, using the {"vector": ...} wrapper for YAML and JSON.
func (wr Writer) WriteVector(w io.Writer, v []float64) error {
	if v == nil {
		v = []float64{}
	}

	switch wr.Format {
	case FormatText:
		_, err := io.WriteString(w, wr.list(v)+"\n")

		return err
	case FormatYAML:
		return writeYAML(w, keyVector, v)
	case FormatJSON:
		if i := firstNonFinite(v); i >= 0 {
			return fmt.Errorf("%w: json cannot encode %g at index %d", ErrFormat, v[i], i)
		}

		return writeJSON(w, map[string][]float64{keyVector: v})
	default:
		return fmt.Errorf("%w: unknown format %q", ErrFormat, wr.Format)
	}
}

// WriteScalar encodes a named scalar result such as a dot product or norm.
func (wr Writer) WriteScalar(w io.Writer, name string, v float64) error {
	switch wr.Format {
	case FormatText:
		_, err := io.WriteString(w, wr.float(v)+"\n")

		return err
	case FormatYAML:
		return writeYAML(w, name, v)
	case FormatJSON:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: json cannot encode %g for %q", ErrFormat, v, name)
		}

		return writeJSON(w, map[string]float64{name: v})
	default:
		return fmt.Errorf("%w: unknown format %q", ErrFormat, wr.Format)
	}
}

func (wr Writer) float(v float64) string {
	return strconv.FormatFloat(v, 'g', wr.Precision, 64)
}

// list renders "[a, b, c]".
func (wr Writer) list(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = wr.float(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// writeYAML encodes {key: value} with every innermost list in flow style,
// so a matrix reads as one "[1, 2]" row per line.
func writeYAML(w io.Writer, key string, value any) error {
	var val yaml.Node
	if err := val.Encode(value); err != nil {
		return fmt.Errorf("matrixio: yaml: %w", err)
	}
	flowLeaves(&val)

	doc := yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&val,
		},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("matrixio: yaml: %w", err)
	}

	return enc.Close()
}

// flowLeaves marks sequences of scalars as flow style.
func flowLeaves(n *yaml.Node) {
	if n.Kind != yaml.SequenceNode {
		return
	}
	leaf := true
	for _, c := range n.Content {
		if c.Kind == yaml.SequenceNode {
			leaf = false
			flowLeaves(c)
		}
	}
	if leaf {
		n.Style = yaml.FlowStyle
	}
}

// firstNonFinite returns the index of the first NaN or ±Inf in v, or -1.
func firstNonFinite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("matrixio: json: %w", err)
	}

	return nil
}
