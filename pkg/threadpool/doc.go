/*
Package threadpool provides a fixed-size worker pool with an unbounded FIFO task queue and future-based result delivery.

# Overview

This package implements a bounded-lifetime thread pool supporting:
- Fixed number of worker goroutines, set at construction
- Unbounded FIFO task queue shared across all submitters
- One-shot futures for values, void completion, and failures
- Panic recovery that never terminates a worker
- Drain-on-close shutdown that runs every queued task
- Coarse-grained queue clearing for bounded shutdown

# Core Components

## Pool

The pool owns the task queue, the active counter, and the workers. Its
worker count is fixed for its whole life; a pool with zero workers is
legal and simply accumulates submissions. Construction spawns all
workers immediately, so there is no separate start step.

## Task Queue

An unbounded monitor-based FIFO. Workers block on the queue's condition
until a task is available or shutdown is requested; a shutdown request
with tasks still queued hands those tasks out in order before any
worker exits.

## Future

Every submission returns a one-shot future. The worker that executes
the task fulfils it exactly once: with the task's value, with a void
completion signal, or with the captured failure. Futures remain valid
after the pool is closed, and each may be observed at most once.

# Shutdown Semantics

Close and ClearQueue are deliberately distinct:

  - Close stops the intake of new tasks but drains the queue: it blocks
    until every task queued at (or racing with) the moment of close has
    run to completion.
  - ClearQueue discards the not-yet-started tasks, fulfilling their
    futures with types.ErrTaskDiscarded. Tasks already executing still
    finish normally.

A bounded shutdown is therefore ClearQueue followed by Close.

# Concurrency Safety

All components have undergone rigorous concurrency safety testing:
- Passes Go race detector
- Submission is safe from any number of goroutines, including from
  inside a running task (re-entrant submission cannot deadlock, since
  Submit never waits for a worker slot)
- FIFO order is preserved across all submitters combined
- Introspection counters are atomic and never block submission

# Usage Examples

Basic usage:

	pool, err := threadpool.New(&threadpool.Config{Workers: 4})
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	future, err := threadpool.SubmitResult(pool, func() (int, error) {
		return compute(), nil
	})
	if err != nil {
		log.Fatal(err)
	}

	value, err := future.Wait()

Fire-and-forget with completion signal:

	future, _ := pool.Submit(func() {
		doWork()
	})
	<-future.Done()

Bounded shutdown:

	pool.ClearQueue()
	pool.Close()

# Configuration Options

Config supports the following configurations:
- Workers: Number of worker goroutines (zero is legal and inert)
- Clock: Time source for statistics (defaults to the real clock)
*/
package threadpool
