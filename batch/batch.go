// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnum/matrix"
)

// run executes fn for every index in [0, n) on a bounded errgroup.
// The first failure cancels the shared context; it is returned wrapped with
// the operation name and the failing index. Cancellation is reported as
// "batch: <op>: " + ctx.Err() wherever it is observed.
func run(ctx context.Context, op string, n int, o Options, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := 0; i < n; i++ {
		// Stop scheduling once something failed or the caller gave up.
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("batch: %s: %w", op, err)
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("batch: %s: item %d: %w", op, i, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Scheduling stopped early with no item failing: the work is incomplete.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("batch: %s: %w", op, err)
	}

	return nil
}

// AddAll computes as[i] + bs[i] for every pair concurrently.
//
// Errors:
//   - *matrix.LengthMismatchError if len(as) != len(bs).
//   - the first per-item error (wrapped with its index), e.g.
//     matrix.ErrDimensionMismatch.
//   - ctx.Err() on cancellation.
//
// Results are in input order; on error the result is nil.
func AddAll(ctx context.Context, as, bs []matrix.Matrix, opts ...Option) ([]*matrix.Dense, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("batch: AddAll: %w", &matrix.LengthMismatchError{Expected: len(as), Actual: len(bs)})
	}
	o := gatherOptions(opts...)
	out := make([]*matrix.Dense, len(as))
	err := run(ctx, "AddAll", len(as), o, func(i int) error {
		sum, err := matrix.Add(as[i], bs[i])
		if err != nil {
			return err
		}
		out[i] = sum

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ScaleAll computes alpha*ms[i] for every matrix concurrently.
func ScaleAll(ctx context.Context, ms []matrix.Matrix, alpha float64, opts ...Option) ([]*matrix.Dense, error) {
	o := gatherOptions(opts...)
	out := make([]*matrix.Dense, len(ms))
	err := run(ctx, "ScaleAll", len(ms), o, func(i int) error {
		s, err := matrix.Scale(ms[i], alpha)
		if err != nil {
			return err
		}
		out[i] = s

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// NormalizeAll scales every vector to unit length concurrently through
// matrix.NormalizeVector, the kernel adapter.Normalize uses. Zero vectors
// come back as an unchanged copy. Inputs are never modified.
func NormalizeAll(ctx context.Context, vs [][]float64, opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)
	out := make([][]float64, len(vs))
	err := run(ctx, "NormalizeAll", len(vs), o, func(i int) error {
		out[i], _ = matrix.NormalizeVector(vs[i])

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
