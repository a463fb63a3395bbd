package batch

import (
	"errors"

	"github.com/katalvlaran/interpol/interp"
	"github.com/katalvlaran/interpol/pool"
)

// Sentinel errors for batch validation.  All are detected before any
// interpolation work is dispatched.
var (
	// ErrRankTooLow is returned when the query tensor has rank 0.
	ErrRankTooLow = errors.New("batch: query tensor must be at least 1-D")

	// ErrShapeMismatch is returned when tensor ranks or per-axis sizes
	// disagree.
	ErrShapeMismatch = errors.New("batch: input tensor shapes disagree")

	// ErrDataSize is returned when a tensor's backing slice length does
	// not match the product of its shape.
	ErrDataSize = errors.New("batch: tensor data length does not match its shape")
)

// Tensor couples a flat backing slice with its shape, last axis fastest.
// A rank-0 tensor has an empty Shape and exactly one element.
type Tensor[T any] struct {
	Shape []int
	Data  []T
}

// NewTensor allocates a zeroed tensor of the given shape.
func NewTensor[T any](shape ...int) Tensor[T] {
	size := 1
	for _, dim := range shape {
		size *= dim
	}

	return Tensor[T]{Shape: shape, Data: make([]T, size)}
}

// Rank returns the number of axes.
func (t Tensor[T]) Rank() int { return len(t.Shape) }

// Size returns the product of all axis sizes (1 for rank 0).
func (t Tensor[T]) Size() int {
	size := 1
	for _, dim := range t.Shape {
		size *= dim
	}

	return size
}

// Inner returns the size of the last axis, or 1 for rank 0.
func (t Tensor[T]) Inner() int {
	if len(t.Shape) == 0 {
		return 1
	}

	return t.Shape[len(t.Shape)-1]
}

// Outer returns the product of all leading axes — the row count.
func (t Tensor[T]) Outer() int {
	outer := 1
	for _, dim := range t.Shape[:max(len(t.Shape)-1, 0)] {
		outer *= dim
	}

	return outer
}

// Options configures one Eval call.
//   - Pool: worker pool for sharding query points.  nil runs serially on
//     the calling goroutine, which is bit-identical to any worker count.
type Options struct {
	Pool *pool.Pool
}

// DefaultOptions returns Options with serial execution (no pool).
func DefaultOptions() Options {
	return Options{Pool: nil}
}

// Result holds the three output tensors of one Eval call, each shaped
// like the query tensor t.
//   - V:    interpolated ordinate values
//   - A:    interpolation fractions in [0, 1]; zero at clamped points
//   - Inds: bracket indices — interp.ClampLow (0) for low clamps, M+1
//     for high clamps, otherwise the interior right-hand bracket
type Result[T interp.Float] struct {
	V    Tensor[T]
	A    Tensor[T]
	Inds Tensor[int64]
}
