package interp

// At evaluates one query coordinate against the row's table.
//
// The coordinate is wrapped first (when the row has a period), then:
//   - t <= x[0]:   clamp low  — returns (y[0], 0, 0)
//   - t >= x[M-1]: clamp high — returns (y[M-1], 0, M+1)
//   - otherwise:   interior   — ind is the upper-bound bracket index in
//     [1, M-1], frac = (t-x[ind-1])/(x[ind]-x[ind-1]) and
//     v = frac*y[ind] + (1-frac)*y[ind-1]
//
// frac is meaningful only for interior points; both clamp branches
// report zero.  A single-sample table (M == 1) clamps low for t <= x[0]
// and high (ind == 2) for t > x[0]; either way v == y[0].
//
// Duplicate abscissas inside the bracket divide by zero and propagate
// IEEE Inf/NaN rather than failing the call.
func (r *Row[T]) At(t T) (v, frac T, ind int64) {
	if r.wrap {
		t = Wrap(t, r.period)
	}

	m := len(r.x)
	switch {
	case t <= r.x[0]:
		return r.y[0], 0, ClampLow
	case t >= r.x[m-1]:
		return r.y[m-1], 0, int64(m + 1)
	default:
		// Clamping above guarantees i ∈ [1, M-1].
		i := SearchSorted(r.x, t)
		f := (t - r.x[i-1]) / (r.x[i] - r.x[i-1])

		return f*r.y[i] + (1-f)*r.y[i-1], f, int64(i)
	}
}

// EvalRange evaluates the query sub-range [begin, end) of ts, writing
// results into the matching positions of v, a and inds.  Positions
// outside [begin, end) are left untouched, which lets disjoint ranges of
// one query array be processed concurrently without synchronization.
//
// All four slices must extend to at least end; the bounds are the
// caller's contract, exactly as with the built-in copy.
func (r *Row[T]) EvalRange(ts []T, v, a []T, inds []int64, begin, end int) {
	for n := begin; n < end; n++ {
		v[n], a[n], inds[n] = r.At(ts[n])
	}
}
