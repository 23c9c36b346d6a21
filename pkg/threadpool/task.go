package threadpool

import (
	"runtime"

	"github.com/jbloggz/threadpool/pkg/types"
)

// task is a fully bound, zero-argument unit of work. The queue owns it
// until a worker pops it; exactly one of run or discard is ever
// invoked, and exactly once.
type task struct {
	run     func()
	discard func()
}

// runRecovered invokes fn with panic recovery. A panic is converted to
// a *types.TaskPanicError carrying the stack trace, so a failing task
// body can never terminate the worker that runs it.
func runRecovered[R any](fn func() (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			err = &types.TaskPanicError{
				Value: r,
				Stack: string(buf[:n]),
			}
		}
	}()

	return fn()
}
