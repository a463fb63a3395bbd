package interp

import "errors"

// Sentinel errors for Row construction.
var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y must have the same length")

	// ErrEmptyTable is returned when the table has no samples.
	ErrEmptyTable = errors.New("interp: table must contain at least one sample")
)

// Float is the set of element types the engine is generic over.
// Exactly the two floating-point precisions a host runtime dispatches on.
type Float interface {
	~float32 | ~float64
}

// ClampLow is the index reported for queries clamped to the first sample.
// Queries clamped to the last sample report Len()+1; any other index is
// the right-hand bracket of a genuine interior interpolation.
const ClampLow = 0

// Row is one table of sorted (x, y) samples plus an optional period.
// A Row is immutable after construction and safe for concurrent reads.
type Row[T Float] struct {
	x, y   []T
	period T
	wrap   bool
}

// NewRow builds a Row over the given samples.  The abscissas x must be
// sorted ascending (not validated) and parallel to y.  A period > 0
// enables periodic wrapping of query coordinates; period <= 0 disables it.
//
// Returns ErrLengthMismatch or ErrEmptyTable on malformed input.
func NewRow[T Float](x, y []T, period T) (*Row[T], error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, ErrEmptyTable
	}

	return &Row[T]{
		x:      x,
		y:      y,
		period: period,
		// Hoisted once per row so the per-point path pays a single bool test.
		wrap: period > 0,
	}, nil
}

// Len returns the number of table samples M.
func (r *Row[T]) Len() int { return len(r.x) }

// Period returns the row's period; <= 0 means wrapping is disabled.
func (r *Row[T]) Period() T { return r.period }

// ClampHigh returns the sentinel index reported for queries clamped to
// the last sample, M+1.
func (r *Row[T]) ClampHigh() int64 { return int64(len(r.x) + 1) }
