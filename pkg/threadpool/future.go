package threadpool

import (
	"sync/atomic"

	"github.com/jbloggz/threadpool/pkg/types"
)

// Void is the result type of futures for tasks that produce no value.
type Void = struct{}

// Future is a one-shot handle to the eventual result of a submitted
// task. It is fulfilled exactly once, by the worker that executes the
// task or by the pool when the task is discarded, and is valid to hold
// after the pool itself has been closed.
type Future[R any] struct {
	done  chan struct{}
	value R
	err   error

	resolved atomic.Bool
	observed atomic.Bool
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{
		done: make(chan struct{}),
	}
}

// resolve fulfils the future with a value or an error. Only the first
// call takes effect.
func (f *Future[R]) resolve(value R, err error) {
	if !f.resolved.CompareAndSwap(false, true) {
		return
	}
	f.value = value
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed when the task has completed,
// failed, or been discarded.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future is fulfilled and returns the task's
// value and error. A task that panicked reports a *types.TaskPanicError;
// a task discarded before execution reports types.ErrTaskDiscarded.
//
// A future may be observed at most once. A second call to Wait returns
// types.ErrHandleObserved.
func (f *Future[R]) Wait() (R, error) {
	<-f.done

	if !f.observed.CompareAndSwap(false, true) {
		var zero R
		return zero, types.ErrHandleObserved
	}
	return f.value, f.err
}
