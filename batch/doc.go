// Package batch drives batched interpolation: shape validation, output
// allocation, and per-row dispatch of query points across a worker pool.
//
// 🚀 What is a batch?
//
//	Four equal-rank-compatible tensors per call:
//		t — query coordinates, shape (..., N), rank ≥ 1
//		p — per-row periods,   shape (...),    rank = rank(t) − 1
//		x — table abscissas,   shape (..., M), rank = rank(t)
//		y — table ordinates,   same shape as x
//	Every leading ("outer") dimension of t, p and x must agree; their
//	product is the row count.  Each row pairs one (x, y) table with one
//	query array and one period, and rows never share state.
//
// ✨ Key behaviors:
//
//   - Fail-fast validation: ErrRankTooLow and ErrShapeMismatch are
//     detected before any work is dispatched; the call produces either
//     a fully populated Result or nothing.
//   - Deterministic parallelism: each worker owns a disjoint sub-range
//     of one row's output slices, so results are bit-identical for any
//     worker count — including the serial nil-pool path.
//   - Cost-aware sharding: the per-point cost hint scales with M,
//     reflecting the O(log M) bracket search dominating the arithmetic.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/interpol/batch"
//	  "github.com/katalvlaran/interpol/pool"
//	)
//
//	p := pool.New(0)
//	defer p.Close()
//
//	opts := batch.DefaultOptions()
//	opts.Pool = p
//	res, err := batch.Eval(t, periods, x, y, &opts)
//	if err != nil {
//	  // ErrRankTooLow, ErrShapeMismatch, ErrDataSize, interp.ErrEmptyTable
//	}
//	_ = res.V    // interpolated values, shaped like t
//	_ = res.A    // interior fractions, zero at clamps
//	_ = res.Inds // bracket indices with 0 / M+1 clamp sentinels
//
// Complexity:
//
//   - Time:   O(rows · N · log M) spread across the pool
//   - Memory: three output tensors shaped like t, nothing else retained
package batch
