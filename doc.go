// Package interpol is a batched piecewise-linear interpolation engine for
// scalar time-series, with per-row periodic wrap-around and parallel
// evaluation across a bounded worker pool.
//
// 🚀 What is interpol?
//
//	A small, focused library that evaluates many independent query arrays
//	against row-specific lookup tables in a single call:
//		• Upper-bound binary search over sorted abscissas
//		• Optional periodic wrap of query coordinates (per row)
//		• Edge clamping with sentinel indices instead of extrapolation
//		• Cost-aware chunking of query points across worker goroutines
//
// ✨ Why choose interpol?
//
//   - Deterministic — results are bit-identical for 1 or N workers
//   - Allocation-lean — one output allocation per call, none per point
//   - Pure Go — no cgo, generic over float32 and float64
//   - Composable — bring your own pool, or run serially with nil options
//
// Everything is organized under three subpackages:
//
//	interp/ — the row engine: search, wrap, clamp and linear blend
//	pool/   — bounded worker pool with cost-hinted range sharding
//	batch/  — shape validation, output allocation and the batch driver
//
// Quick ASCII example:
//
//	y ▲        ●(2,20)
//	  │    ●(1,10)
//	  │ ●(0,0)      query t=1.5 → bracket [1,2], frac 0.5, value 15
//	  └──────────────▶ x
//
// Dive into the doc.go of each subpackage for the full contract,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/interpol
package interpol
