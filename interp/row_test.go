package interp_test

import (
	"testing"

	"github.com/katalvlaran/interpol/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRow is a test helper that builds a Row and fails fast on error.
func newRow(t *testing.T, x, y []float64, period float64) *interp.Row[float64] {
	t.Helper()
	row, err := interp.NewRow(x, y, period)
	require.NoError(t, err)

	return row
}

// TestNewRow_Validation covers the two construction-time errors.
func TestNewRow_Validation(t *testing.T) {
	_, err := interp.NewRow([]float64{0, 1}, []float64{0}, 0)
	assert.ErrorIs(t, err, interp.ErrLengthMismatch, "x/y length mismatch must error")

	_, err = interp.NewRow([]float64{}, []float64{}, 0)
	assert.ErrorIs(t, err, interp.ErrEmptyTable, "empty table must error")
}

// TestRowAt_Interior verifies the canonical no-period scenario:
// x = [0,1,2], y = [0,10,20], queries [0.5, 1.5, -1, 5].
func TestRowAt_Interior(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 0)

	v, frac, ind := row.At(0.5)
	assert.Equal(t, 5.0, v, "midpoint of first interval")
	assert.Equal(t, 0.5, frac)
	assert.Equal(t, int64(1), ind)

	v, frac, ind = row.At(1.5)
	assert.Equal(t, 15.0, v, "midpoint of second interval")
	assert.Equal(t, 0.5, frac)
	assert.Equal(t, int64(2), ind)

	v, frac, ind = row.At(-1)
	assert.Equal(t, 0.0, v, "below range clamps to first sample")
	assert.Equal(t, 0.0, frac, "clamp leaves frac at zero")
	assert.Equal(t, int64(interp.ClampLow), ind)

	v, frac, ind = row.At(5)
	assert.Equal(t, 20.0, v, "above range clamps to last sample")
	assert.Equal(t, 0.0, frac, "clamp leaves frac at zero")
	assert.Equal(t, row.ClampHigh(), ind, "high clamp sentinel is M+1")
}

// TestRowAt_Periodic verifies wrap-then-interpolate: with period 2 a
// query of 2.5 behaves exactly like 0.5.
func TestRowAt_Periodic(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 2)

	v, frac, ind := row.At(2.5)
	assert.Equal(t, 5.0, v, "2.5 wraps to 0.5")
	assert.Equal(t, 0.5, frac)
	assert.Equal(t, int64(1), ind)
}

// TestRowAt_PeriodRoundTrip checks that shifting a query by whole
// periods yields identical (value, frac, index) triples.
func TestRowAt_PeriodRoundTrip(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 2)

	v0, f0, i0 := row.At(0.5)
	for _, k := range []float64{-2, -1, 1, 3} {
		v, f, i := row.At(0.5 + k*2)
		assert.Equalf(t, v0, v, "value at shift k=%g", k)
		assert.Equalf(t, f0, f, "frac at shift k=%g", k)
		assert.Equalf(t, i0, i, "index at shift k=%g", k)
	}
}

// TestRowAt_BoundaryClamp ensures queries exactly on the table edges hit
// the clamp branches, never the interior search.
func TestRowAt_BoundaryClamp(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 0)

	v, frac, ind := row.At(0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0.0, frac)
	assert.Equal(t, int64(interp.ClampLow), ind, "t == x[0] must clamp low")

	v, frac, ind = row.At(2)
	assert.Equal(t, 20.0, v)
	assert.Equal(t, 0.0, frac)
	assert.Equal(t, row.ClampHigh(), ind, "t == x[M-1] must clamp high")
}

// TestRowAt_SingleSample pins down the M == 1 policy: at or below the
// sample clamps low, above it clamps high; the value is y[0] either way.
func TestRowAt_SingleSample(t *testing.T) {
	row := newRow(t, []float64{3}, []float64{7}, 0)

	v, _, ind := row.At(3)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, int64(interp.ClampLow), ind, "t == x[0] clamps low")

	v, _, ind = row.At(2)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, int64(interp.ClampLow), ind, "below clamps low")

	v, _, ind = row.At(4)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, int64(2), ind, "above clamps high with sentinel M+1 == 2")
}

// TestRowAt_IndexDomain sweeps a dense set of queries and asserts the
// three-way index semantics plus the bracket and frac-range properties.
func TestRowAt_IndexDomain(t *testing.T) {
	x := []float64{-2, -1, 0.5, 3, 9}
	y := []float64{4, 8, 15, 16, 23}
	row := newRow(t, x, y, 0)
	m := row.Len()

	for q := -3.0; q <= 10.0; q += 0.25 {
		_, frac, ind := row.At(q)
		switch {
		case ind == interp.ClampLow:
			assert.LessOrEqualf(t, q, x[0], "low clamp only at or below x[0], q=%g", q)
		case ind == int64(m+1):
			assert.GreaterOrEqualf(t, q, x[m-1], "high clamp only at or above x[M-1], q=%g", q)
		default:
			require.GreaterOrEqual(t, ind, int64(1))
			require.LessOrEqual(t, ind, int64(m-1))
			assert.LessOrEqualf(t, x[ind-1], q, "bracket lower bound, q=%g", q)
			assert.LessOrEqualf(t, q, x[ind], "bracket upper bound, q=%g", q)
			assert.GreaterOrEqualf(t, frac, 0.0, "frac lower bound, q=%g", q)
			assert.LessOrEqualf(t, frac, 1.0, "frac upper bound, q=%g", q)
		}
	}
}

// TestRowAt_Idempotent re-evaluates the same query and requires
// bit-identical results — the row holds no hidden mutable state.
func TestRowAt_Idempotent(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 2)

	v1, f1, i1 := row.At(7.25)
	v2, f2, i2 := row.At(7.25)
	assert.Equal(t, v1, v2)
	assert.Equal(t, f1, f2)
	assert.Equal(t, i1, i2)
}

// TestRowEvalRange_SubRange verifies that only [begin, end) is written,
// leaving the rest of the output slices untouched.
func TestRowEvalRange_SubRange(t *testing.T) {
	row := newRow(t, []float64{0, 1, 2}, []float64{0, 10, 20}, 0)
	ts := []float64{0.5, 1.5, 0.25, 1.75}

	sentinel := -99.0
	v := []float64{sentinel, sentinel, sentinel, sentinel}
	a := []float64{sentinel, sentinel, sentinel, sentinel}
	inds := []int64{-1, -1, -1, -1}

	row.EvalRange(ts, v, a, inds, 1, 3)

	assert.Equal(t, sentinel, v[0], "position before begin untouched")
	assert.Equal(t, sentinel, v[3], "position at end untouched")
	assert.Equal(t, int64(-1), inds[0])
	assert.Equal(t, int64(-1), inds[3])

	assert.Equal(t, 15.0, v[1])
	assert.Equal(t, 0.5, a[1])
	assert.Equal(t, int64(2), inds[1])
	assert.Equal(t, 2.5, v[2])
	assert.Equal(t, 0.25, a[2])
	assert.Equal(t, int64(1), inds[2])
}

// TestRowAt_Float32 instantiates the full row path at float32 precision.
func TestRowAt_Float32(t *testing.T) {
	row, err := interp.NewRow([]float32{0, 1, 2}, []float32{0, 10, 20}, float32(2))
	require.NoError(t, err)

	v, frac, ind := row.At(float32(2.5))
	assert.Equal(t, float32(5), v)
	assert.Equal(t, float32(0.5), frac)
	assert.Equal(t, int64(1), ind)
}
