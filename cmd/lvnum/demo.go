// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/adapter"
	"github.com/katalvlaran/lvnum/matrix"
)

func demoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the vector, matrix and adapter operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	v1 := []float64{1, 2, 3}
	v2 := []float64{4, 5, 6}

	sum, err := matrix.AddVectors(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "v1 + v2 = %v\n", sum)

	dot, err := matrix.Dot(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "v1 · v2 = %g\n", dot)
	fmt.Fprintf(w, "||v1|| = %.3f\n", matrix.Norm(v1))

	m1, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	m2, err := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
	if err != nil {
		return err
	}
	m3, err := matrix.Add(m1, m2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Matrix sum:")
	for _, row := range m3.ToRows() {
		var sb strings.Builder
		for _, x := range row {
			fmt.Fprintf(&sb, "%4.0f ", x)
		}
		fmt.Fprintln(w, sb.String())
	}

	u, err := adapter.Normalize(adapter.Vec{3, 4})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "normalize([3 4]) = %v\n", u.Values())

	d, err := adapter.EuclideanDistance(adapter.Vec{1, 2, 3}, adapter.Vec{4, 6, 3})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "distance([1 2 3], [4 6 3]) = %g\n", d)

	if _, err := adapter.EuclideanDistance(adapter.Vec{1, 2}, adapter.Vec{1, 2, 3}); err != nil {
		fmt.Fprintf(w, "distance([1 2], [1 2 3]) fails: %v\n", err)
	}

	return nil
}
