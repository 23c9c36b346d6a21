// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrPoolClosed indicates the pool has been closed and no longer
	// accepts submissions
	ErrPoolClosed = errors.New("pool is closed")

	// ErrTaskDiscarded indicates the task was discarded from the queue
	// before a worker picked it up
	ErrTaskDiscarded = errors.New("task discarded before execution")

	// ErrHandleObserved indicates the future was already observed once
	ErrHandleObserved = errors.New("future already observed")
)

// TaskPanicError wraps a panic raised by a task body. The worker loop
// recovers the panic and delivers it through the task's future instead
// of letting it take down the worker.
type TaskPanicError struct {
	// Value is the value the task panicked with
	Value interface{}

	// Stack is the stack trace captured at recovery time
	Stack string
}

// Error implements the error interface
func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap returns the panic value if it was itself an error
func (e *TaskPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsTaskPanic checks whether an error originated from a recovered task panic
func IsTaskPanic(err error) bool {
	var panicErr *TaskPanicError
	return errors.As(err, &panicErr)
}
