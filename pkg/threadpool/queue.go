package threadpool

import (
	"sync"
)

const (
	defaultQueueCap     = 16
	compactMinCap       = 64 // Don't compact if capacity is less than this
	compactShrinkFactor = 4  // Trigger compaction when len < cap/4
)

// taskQueue is an unbounded FIFO of pending tasks shared by all
// submitters and all workers. It is a monitor: every mutation and the
// worker wait both happen under mu, so the wait predicate (non-empty or
// stopped) is always evaluated consistently.
type taskQueue struct {
	mu         sync.Mutex
	cond       *sync.Cond
	tasks      []task
	stopped    bool
	terminated bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{
		tasks: make([]task, 0, defaultQueueCap),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends t to the back of the queue and wakes a single waiting
// worker. It reports false if the queue has already been terminated, in
// which case t was not enqueued and no worker will ever run it.
func (q *taskQueue) push(t task) bool {
	q.mu.Lock()
	if q.terminated {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	q.cond.Signal()
	return true
}

// pop blocks until a task is available or the queue is stopped and
// empty. Tasks still queued when stop is requested are handed out
// normally so workers drain the queue in FIFO order before exiting.
func (q *taskQueue) pop() (task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 && !q.stopped {
		q.cond.Wait()
	}

	if len(q.tasks) == 0 {
		return task{}, false
	}

	t := q.tasks[0]
	// Zero out the element in the underlying array to release the task
	q.tasks[0] = task{}
	q.tasks = q.tasks[1:]
	q.maybeCompactLocked()

	return t, true
}

// len returns the current queue depth. The value may be stale as soon
// as it is returned since the queue is live.
func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// drain atomically removes all pending tasks and returns them so the
// caller can abandon their futures outside the lock. Tasks already
// popped by a worker are unaffected.
func (q *taskQueue) drain() []task {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := q.tasks
	q.tasks = make([]task, 0, defaultQueueCap)
	return pending
}

// stop makes pop report termination once the queue is empty and wakes
// every waiting worker so they can observe the flag.
func (q *taskQueue) stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// terminate marks the queue as dead and returns any tasks that no
// worker will ever run. Called once all workers have exited; after this
// push rejects new tasks instead of stranding them.
func (q *taskQueue) terminate() []task {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.terminated = true
	pending := q.tasks
	q.tasks = nil
	return pending
}

// maybeCompactLocked reallocates the backing array when the queue has
// shrunk well below its capacity, so a burst of submissions does not
// pin memory forever. Caller must hold mu.
func (q *taskQueue) maybeCompactLocked() {
	n := len(q.tasks)
	c := cap(q.tasks)

	if c < compactMinCap {
		return
	}
	if n == 0 {
		q.tasks = make([]task, 0, defaultQueueCap)
		return
	}
	if n*compactShrinkFactor >= c {
		return
	}

	newCap := max(max(c/2, defaultQueueCap), n)

	newSlice := make([]task, n, newCap)
	copy(newSlice, q.tasks)
	q.tasks = newSlice
}
