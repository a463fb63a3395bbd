// Package interp implements the row-level interpolation engine: binary
// bracket search, periodic wrap, edge clamping and the linear blend.
//
// 🚀 What is a Row?
//
//	One independent unit of work — a sorted table of (x, y) samples plus
//	an optional period.  Evaluating a query coordinate t against a Row
//	produces three results at once:
//		• the interpolated ordinate value
//		• the interpolation fraction in [0, 1] (interior points only)
//		• the bracket index, with sentinels for the clamped edges
//
// ✨ Key behaviors:
//
//   - Wrap: when Period > 0, t is first mapped into [0, Period) using a
//     mathematical modulo, so negative coordinates wrap forward
//     (Wrap(-0.5, 1) == 0.5, never -0.5).
//   - Clamp: queries at or below x[0] return y[0] with index 0; queries
//     at or above x[M-1] return y[M-1] with index M+1.  No extrapolation.
//   - Interior: the bracket index i satisfies x[i-1] <= t < x[i], the
//     fraction is (t-x[i-1])/(x[i]-x[i-1]) and the value is the blend
//     frac*y[i] + (1-frac)*y[i-1].
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interpol/interp"
//
//	row, err := interp.NewRow([]float64{0, 1, 2}, []float64{0, 10, 20}, 0)
//	if err != nil {
//	  // handle ErrLengthMismatch or ErrEmptyTable
//	}
//	v, frac, ind := row.At(1.5) // 15, 0.5, 2
//
// Complexity:
//
//   - Time:   O(log M) per query point
//   - Memory: O(1) per query point, no allocation after NewRow
//
// Tables are assumed sorted ascending; unsorted or NaN-bearing abscissas
// are the caller's responsibility and produce unspecified results.
package interp
