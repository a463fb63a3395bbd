// Package pool provides a bounded worker pool that shards a contiguous
// index range across long-lived goroutines and joins before returning.
//
// 🚀 What is Shard?
//
//	The single scheduling primitive of this module: split [0, n) into
//	contiguous chunks, hand each chunk to a worker, and block until every
//	chunk has completed.  Chunks never overlap, so a task that writes
//	only inside its [begin, end) range needs no synchronization at all —
//	exclusivity by construction, not by locking.
//
// ✨ Key behaviors:
//
//   - Cost-hinted granularity: the costPerPoint hint (in abstract work
//     units per index) decides how finely the range is split.  Cheap
//     points are batched into large chunks to amortize dispatch;
//     expensive points split finer, up to a few chunks per worker.
//   - Run-to-completion: Shard does not return until the last chunk is
//     done.  Ordering between chunks is unspecified and must not matter.
//   - Inline fast path: when the whole range fits one chunk, the caller
//     runs it directly — no handoff, no goroutine wakeup.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interpol/pool"
//
//	p := pool.New(0) // 0 → runtime.NumCPU() workers
//	defer p.Close()
//
//	err := p.Shard(len(items), 50, func(begin, end int) {
//	  for i := begin; i < end; i++ {
//	    out[i] = process(items[i])
//	  }
//	})
//
// Pending chunks flow through a FIFO ring buffer
// (github.com/eapache/queue) guarded by a mutex and condition variable;
// workers park on the condition variable when the queue drains.
//
// Complexity: O(n/chunk) dispatch operations per Shard call.
package pool
