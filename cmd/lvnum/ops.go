// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/adapter"
	"github.com/katalvlaran/lvnum/adapter/gonumarray"
	"github.com/katalvlaran/lvnum/batch"
	"github.com/katalvlaran/lvnum/matrix"
)

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Elementwise sum of two matrices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := loadMatrix(cmd, args[1])
			if err != nil {
				return err
			}
			sum, err := matrix.Add(x, y)
			if err != nil {
				return err
			}

			return a.out.WriteMatrix(cmd.OutOrStdout(), sum)
		},
	}
}

func scaleCmd(a *app) *cobra.Command {
	var by float64
	cmd := &cobra.Command{
		Use:   "scale M [M...] --by s",
		Short: "Multiply every matrix by a scalar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms := make([]matrix.Matrix, len(args))
			for i, name := range args {
				m, err := loadMatrix(cmd, name)
				if err != nil {
					return err
				}
				ms[i] = m
			}
			out, err := batch.ScaleAll(cmd.Context(), ms, by, a.cfg.BatchOptions()...)
			if err != nil {
				return err
			}
			for _, m := range out {
				if err := a.out.WriteMatrix(cmd.OutOrStdout(), m); err != nil {
					return err
				}
			}
			log.Debug().Int("count", len(out)).Float64("by", by).Msg("scaled")

			return nil
		},
	}
	cmd.Flags().Float64Var(&by, "by", 1, "scale factor")

	return cmd
}

func dotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "Inner product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := loadVectorPair(cmd, args)
			if err != nil {
				return err
			}
			d, err := adapter.Dot(adapter.Vec(x), adapter.Vec(y))
			if err != nil {
				return err
			}

			return a.out.WriteScalar(cmd.OutOrStdout(), "dot", d)
		},
	}
}

func normCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "norm V",
		Short: "Euclidean norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadVector(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := adapter.Norm(adapter.Vec(v))
			if err != nil {
				return err
			}

			return a.out.WriteScalar(cmd.OutOrStdout(), "norm", n)
		},
	}
}

func distanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Euclidean distance between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := loadVectorPair(cmd, args)
			if err != nil {
				return err
			}
			d, err := adapter.EuclideanDistance(gonumarray.NewVector(x), gonumarray.NewVector(y))
			if err != nil {
				return err
			}

			return a.out.WriteScalar(cmd.OutOrStdout(), "distance", d)
		},
	}
}

func normalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize V [V...]",
		Short: "Scale vectors to unit length (zero vectors are left as is)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := make([][]float64, len(args))
			for i, name := range args {
				v, err := loadVector(cmd, name)
				if err != nil {
					return err
				}
				vs[i] = v
			}
			out, err := batch.NormalizeAll(cmd.Context(), vs, a.cfg.BatchOptions()...)
			if err != nil {
				return err
			}
			for _, v := range out {
				if err := a.out.WriteVector(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func eigenCmd(a *app) *cobra.Command {
	var (
		tol     float64
		maxIter int
		vectors bool
	)
	cmd := &cobra.Command{
		Use:   "eigen M",
		Short: "Eigenvalues (largest first) of a symmetric matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			values, q, err := matrix.Eigen(m, tol, maxIter)
			if err != nil {
				return err
			}
			if err := a.out.WriteVector(cmd.OutOrStdout(), values); err != nil {
				return err
			}
			if vectors {
				return a.out.WriteMatrix(cmd.OutOrStdout(), q)
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 1e-12, "off-diagonal convergence threshold")
	cmd.Flags().IntVar(&maxIter, "max-iter", 300, "maximum number of Jacobi rotations")
	cmd.Flags().BoolVar(&vectors, "vectors", false, "also print the eigenvectors, one per column")

	return cmd
}

func inverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse M",
		Short: "Inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(m)
			if err != nil {
				return err
			}

			return a.out.WriteMatrix(cmd.OutOrStdout(), inv)
		},
	}
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect M",
		Short: "Print a matrix with its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), m.Summary()); err != nil {
				return err
			}

			return a.out.WriteMatrix(cmd.OutOrStdout(), m)
		},
	}
}

func loadVectorPair(cmd *cobra.Command, args []string) ([]float64, []float64, error) {
	x, err := loadVector(cmd, args[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := loadVector(cmd, args[1])
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
