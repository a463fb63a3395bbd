package pool

import "errors"

// Sentinel errors for pool scheduling.
var (
	// ErrPoolClosed is returned by Shard once Close has been called.
	ErrPoolClosed = errors.New("pool: pool is closed")
)

// Task processes the contiguous index sub-range [begin, end).
// A Task must confine its writes to that range; the pool guarantees no
// two in-flight chunks of one Shard call overlap.
type Task func(begin, end int)

// minChunkCost is the smallest amount of work (in abstract cost units,
// costPerPoint times points) worth paying one dispatch for.  Below it,
// points are batched into the same chunk.
const minChunkCost = 10_000

// chunksPerWorker bounds how finely an expensive range is split: enough
// slack for load balancing without flooding the queue.
const chunksPerWorker = 4
