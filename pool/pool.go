// Package pool is the shared asynchronous worker-pool envelope. Each
// container embeds one Pool to back its async API variants (InsertAsync,
// SearchAsync, ...): synchronous operations are unaffected by the pool,
// they still run inline under the container's own mutex.
package pool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of enqueued work. Completion, if non-nil, is invoked by
// whichever worker dequeues the task once Run returns — callback delivery
// order among concurrently completing tasks is not defined.
type Task struct {
	Run        func()
	Completion func()
}

// Pool runs N persistent goroutines draining a FIFO task queue. Start is
// idempotent while already running; Stop waits for already-dequeued tasks
// to finish and drops anything still queued.
type Pool struct {
	n int

	mu      sync.Mutex
	running bool
	queue   chan Task
	cancel  context.CancelFunc
	group   *errgroup.Group

	metrics *metrics
}

// New returns a Pool sized for n workers (clamped to at least 1) and
// labeled name for its metrics. The pool is not started until Start is
// called.
func New(n int, name string) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{n: n, metrics: newMetrics(name)}
}

// Start launches n workers if the pool is not already running. Calling
// Start on an already-running pool is a no-op.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startLocked()
}

// startLocked is Start's body, callable while mu is already held.
func (p *Pool) startLocked() {
	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	p.cancel = cancel
	p.group = group
	p.queue = make(chan Task, 64)
	p.running = true

	for i := 0; i < p.n; i++ {
		p.metrics.workersActive.Inc()
		group.Go(func() error {
			defer p.metrics.workersActive.Dec()
			p.worker(gctx)
			return nil
		})
	}
}

func (p *Pool) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			// Shutdown was signalled: drop the task instead of running it.
			if ctx.Err() != nil {
				return
			}
			t.Run()
			p.metrics.tasksCompleted.Inc()
			if t.Completion != nil {
				t.Completion()
			}
		}
	}
}

// Enqueue adds a task to the FIFO queue. The caller may pass a nil
// Completion for fire-and-forget semantics. Enqueue starts the pool if it
// is not already running.
func (p *Pool) Enqueue(t Task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		p.startLocked()
	}
	p.metrics.tasksEnqueued.Inc()
	p.queue <- t
}

// Stop signals shutdown, waits for already-dequeued tasks to finish, and
// drops anything still queued. Calling Stop on an already-stopped pool is
// a no-op.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.cancel()
	close(p.queue)
	group := p.group
	p.mu.Unlock()

	_ = group.Wait()
}
