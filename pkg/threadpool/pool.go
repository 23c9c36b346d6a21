package threadpool

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jbloggz/threadpool/pkg/types"
)

// Config defines configuration for a thread pool
type Config struct {
	// Workers is the fixed number of worker goroutines. Zero is legal:
	// the pool accepts submissions but never executes them.
	Workers int

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Workers: 10,
		Clock:   types.NewRealClock(),
	}
}

// Pool is a fixed-size pool of worker goroutines consuming a shared
// unbounded FIFO queue. The worker count is set at construction and
// never changes. A Pool represents a set of live goroutines bound to
// its internal state, so it must be shared by pointer, never copied.
type Pool struct {
	config *Config
	queue  *taskQueue

	// counters
	active       atomic.Int64
	completed    atomic.Int64
	failed       atomic.Int64
	lastTaskTime atomic.Int64 // Unix nanosecond timestamp

	// lifecycle
	closed    atomic.Bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a thread pool and spawns exactly config.Workers workers
// immediately; the pool is accepting and executing tasks when New
// returns. A nil config uses DefaultConfig.
func New(config *Config) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// parameter validation
	if config.Workers < 0 {
		return nil, fmt.Errorf("worker count must be non-negative, got %d", config.Workers)
	}

	// Ensure clock is set
	if config.Clock == nil {
		config.Clock = types.NewRealClock()
	}

	p := &Pool{
		config: config,
		queue:  newTaskQueue(),
	}

	p.wg.Add(config.Workers)
	for i := 0; i < config.Workers; i++ {
		go p.worker()
	}

	return p, nil
}

// worker is the consume loop run by every worker goroutine: wait for a
// task, run it, repeat. It exits only when the queue reports stopped
// and empty; a failing task body never terminates the loop.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		t, ok := p.queue.pop()
		if !ok {
			return
		}

		p.active.Add(1)
		p.lastTaskTime.Store(p.config.Clock.Now().UnixNano())
		t.run()
		p.active.Add(-1)
	}
}

// Submit enqueues fn for execution and returns a future that completes
// when fn has run. Submit never blocks beyond the queue lock, so it is
// safe to call from inside a task body; ordering between concurrent
// submitters is undefined, but each submitter's own tasks keep their
// submission order.
func (p *Pool) Submit(fn func()) (*Future[Void], error) {
	if fn == nil {
		return nil, fmt.Errorf("task cannot be nil")
	}
	return SubmitResult(p, func() (Void, error) {
		fn()
		return Void{}, nil
	})
}

// SubmitErr enqueues fn for execution and returns a future that
// reports the error fn returned, if any.
func (p *Pool) SubmitErr(fn func() error) (*Future[Void], error) {
	if fn == nil {
		return nil, fmt.Errorf("task cannot be nil")
	}
	return SubmitResult(p, func() (Void, error) {
		return Void{}, fn()
	})
}

// SubmitResult enqueues fn for execution on p and returns a future for
// its value. It is a package function rather than a method because Go
// methods cannot introduce type parameters.
func SubmitResult[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	if fn == nil {
		return nil, fmt.Errorf("task cannot be nil")
	}
	if p.closed.Load() {
		return nil, types.ErrPoolClosed
	}

	f := newFuture[R]()
	t := task{
		run: func() {
			value, err := runRecovered(fn)
			if err != nil {
				p.failed.Add(1)
			} else {
				p.completed.Add(1)
			}
			f.resolve(value, err)
		},
		discard: func() {
			var zero R
			f.resolve(zero, types.ErrTaskDiscarded)
		},
	}

	if !p.queue.push(t) {
		return nil, types.ErrPoolClosed
	}
	return f, nil
}

// ThreadCount returns the fixed number of workers set at construction.
func (p *Pool) ThreadCount() int {
	return p.config.Workers
}

// ActiveCount returns the number of workers currently running a task.
func (p *Pool) ActiveCount() int {
	return int(p.active.Load())
}

// QueuedCount returns the number of tasks waiting in the queue.
func (p *Pool) QueuedCount() int {
	return p.queue.len()
}

// IsClosed checks if the pool has been closed
func (p *Pool) IsClosed() bool {
	return p.closed.Load()
}

// ClearQueue discards every task that has not yet been picked up by a
// worker; their futures are fulfilled with types.ErrTaskDiscarded.
// Tasks already executing on a worker are unaffected and still fulfil
// their futures normally.
func (p *Pool) ClearQueue() {
	for _, t := range p.queue.drain() {
		t.discard()
	}
}

// Stats gets a snapshot of the pool counters
func (p *Pool) Stats() types.PoolStats {
	return types.PoolStats{
		Workers:      p.config.Workers,
		Active:       int(p.active.Load()),
		Queued:       p.queue.len(),
		Completed:    p.completed.Load(),
		Failed:       p.failed.Load(),
		LastTaskTime: time.Unix(0, p.lastTaskTime.Load()),
	}
}

// Close tears the pool down: new submissions are rejected, but every
// task already queued is drained and executed in FIFO order. Close
// blocks until all workers have exited, which is when all such tasks
// have completed. Use ClearQueue first for a bounded shutdown.
//
// With zero workers there is nobody to drain the queue, so any queued
// tasks are discarded and their futures report types.ErrTaskDiscarded.
//
// Close is idempotent; concurrent calls all block until teardown is
// finished.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.queue.stop()
		p.wg.Wait()

		// Only reachable with zero workers, or for a submission that
		// raced with close. Either way nobody will run these.
		for _, t := range p.queue.terminate() {
			t.discard()
		}
	})
	return nil
}
