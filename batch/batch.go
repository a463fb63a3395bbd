package batch

import (
	"fmt"

	"github.com/katalvlaran/interpol/interp"
	"github.com/katalvlaran/interpol/pool"
)

// costPerTablePoint scales the Shard cost hint by the table size M: the
// O(log M) bracket search dominates the per-point arithmetic.
const costPerTablePoint = 5

// Eval interpolates every row of the batch and returns freshly allocated
// outputs shaped like t.  Inputs are read-only for the duration of the
// call and may be shared; Eval retains no state between calls.
//
// Validation runs before any work is dispatched; on error the batch
// aborts with no partial output.  Division by zero inside a degenerate
// bracket (x[i] == x[i-1]) is not caught and propagates IEEE Inf/NaN.
func Eval[T interp.Float](t, p, x, y Tensor[T], opts *Options) (Result[T], error) {
	if err := validate(t, p, x, y); err != nil {
		return Result[T]{}, err
	}

	rows := t.Outer()
	n := t.Inner()
	m := x.Inner()

	res := Result[T]{
		V:    NewTensor[T](t.Shape...),
		A:    NewTensor[T](t.Shape...),
		Inds: NewTensor[int64](t.Shape...),
	}

	var workers *pool.Pool
	if opts != nil {
		workers = opts.Pool
	}
	cost := int64(costPerTablePoint * m)

	for k := 0; k < rows; k++ {
		row, err := interp.NewRow(x.Data[k*m:(k+1)*m], y.Data[k*m:(k+1)*m], p.Data[k])
		if err != nil {
			return Result[T]{}, err
		}

		tk := t.Data[k*n : (k+1)*n]
		vk := res.V.Data[k*n : (k+1)*n]
		ak := res.A.Data[k*n : (k+1)*n]
		indsk := res.Inds.Data[k*n : (k+1)*n]

		work := func(begin, end int) {
			row.EvalRange(tk, vk, ak, indsk, begin, end)
		}

		if workers == nil {
			// Serial path: bit-identical to any worker count.
			work(0, n)
			continue
		}
		if err := workers.Shard(n, cost, work); err != nil {
			return Result[T]{}, err
		}
	}

	return res, nil
}

// validate enforces the fail-fast shape contract: rank, per-axis
// agreement of the leading dimensions, and defensive data-length checks.
func validate[T any](t, p, x, y Tensor[T]) error {
	ndim := t.Rank()
	if ndim < 1 {
		return ErrRankTooLow
	}
	if p.Rank() != ndim-1 {
		return fmt.Errorf("%w: period rank %d, want %d", ErrShapeMismatch, p.Rank(), ndim-1)
	}
	if x.Rank() != ndim {
		return fmt.Errorf("%w: table rank %d, want %d", ErrShapeMismatch, x.Rank(), ndim)
	}
	if !shapeEqual(x.Shape, y.Shape) {
		return fmt.Errorf("%w: x shape %v, y shape %v", ErrShapeMismatch, x.Shape, y.Shape)
	}
	for k := 0; k < ndim-1; k++ {
		if x.Shape[k] != t.Shape[k] || p.Shape[k] != t.Shape[k] {
			return fmt.Errorf("%w: leading axis %d disagrees", ErrShapeMismatch, k)
		}
	}
	for _, in := range []struct {
		name string
		have int
		want int
	}{
		{"t", len(t.Data), t.Size()},
		{"p", len(p.Data), p.Size()},
		{"x", len(x.Data), x.Size()},
		{"y", len(y.Data), y.Size()},
	} {
		if in.have != in.want {
			return fmt.Errorf("%w: %s has %d elements, shape wants %d", ErrDataSize, in.name, in.have, in.want)
		}
	}

	return nil
}

// shapeEqual reports whether two shapes match axis for axis.
func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
