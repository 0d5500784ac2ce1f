package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that rasterize tiles.
//
// Each worker owns a queue. Work is dealt round-robin and idle workers
// steal from the other queues, which balances frames where a few tiles
// carry most of the geometry.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it.
//
// Items not yet started when ctx is cancelled are skipped, and ctx.Err()
// is returned. Items already running finish normally. If the pool is
// closed, ExecuteAll returns immediately without running anything.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) error {
	if len(work) == 0 || !p.running.Load() {
		return ctx.Err()
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer completionWG.Done()
			if ctx.Err() != nil {
				return
			}
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			completionWG.Done()
		case <-ctx.Done():
			completionWG.Done()
		}
	}

	completionWG.Wait()
	return ctx.Err()
}

// Close stops accepting new work, waits for queued work to complete and
// stops all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
