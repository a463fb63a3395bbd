package pool

import (
	"runtime"
	"sync"

	"github.com/eapache/queue"
)

// chunk is one scheduled sub-range of a Shard call.
type chunk struct {
	begin, end int
	task       Task
	wg         *sync.WaitGroup
}

// Pool is a bounded set of worker goroutines fed from a FIFO of pending
// chunks.  A Pool may be shared across many Shard calls, concurrently;
// each call joins only its own chunks.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue // of chunk
	closed  bool
	workers int
}

// New starts a pool with the given number of workers.
// workers <= 0 defaults to runtime.NumCPU().
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		pending: queue.New(),
		workers: workers,
	}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		go p.run()
	}

	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Shard splits [0, n) into contiguous chunks sized by the cost hint,
// dispatches them to the workers and blocks until all have completed.
//
// costPerPoint is the estimated work per index in abstract units; values
// below 1 are treated as 1.  n <= 0 or a nil task is a no-op.
// Returns ErrPoolClosed if the pool has been closed.
func (p *Pool) Shard(n int, costPerPoint int64, task Task) error {
	if n <= 0 || task == nil {
		p.mu.Lock()
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return ErrPoolClosed
		}

		return nil
	}

	block := p.blockSize(n, costPerPoint)
	if block >= n {
		// Single chunk: run inline on the calling goroutine.
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()

			return ErrPoolClosed
		}
		p.mu.Unlock()
		task(0, n)

		return nil
	}

	var wg sync.WaitGroup
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return ErrPoolClosed
	}
	for begin := 0; begin < n; begin += block {
		end := begin + block
		if end > n {
			end = n
		}
		wg.Add(1)
		p.pending.Add(chunk{begin: begin, end: end, task: task, wg: &wg})
	}
	p.cond.Broadcast()
	p.mu.Unlock()

	wg.Wait()

	return nil
}

// Close shuts the pool down.  Workers drain the chunks already queued,
// then exit; subsequent Shard calls return ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
}

// blockSize derives the chunk length from the cost hint: at least enough
// points to amortize one dispatch (minChunkCost), at most fine enough to
// give every worker a few chunks.
func (p *Pool) blockSize(n int, costPerPoint int64) int {
	if costPerPoint < 1 {
		costPerPoint = 1
	}
	block := int(minChunkCost / costPerPoint)
	if block < 1 {
		block = 1
	}
	// Never split finer than chunksPerWorker chunks per worker.
	if floor := (n + p.workers*chunksPerWorker - 1) / (p.workers * chunksPerWorker); block < floor {
		block = floor
	}

	return block
}

// run is the worker loop: pull a chunk, execute it, signal its join.
func (p *Pool) run() {
	for {
		p.mu.Lock()
		for p.pending.Length() == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.pending.Length() == 0 {
			// Closed and drained.
			p.mu.Unlock()

			return
		}
		c := p.pending.Remove().(chunk)
		p.mu.Unlock()

		c.task(c.begin, c.end)
		c.wg.Done()
	}
}
