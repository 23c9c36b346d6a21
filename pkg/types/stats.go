package types

import "time"

// PoolStats defines a point-in-time snapshot of a thread pool
type PoolStats struct {
	// Workers is the fixed number of workers in the pool
	Workers int

	// Active is the number of workers currently executing a task
	Active int

	// Queued is the number of tasks waiting in the queue
	Queued int

	// Completed is the total number of tasks that ran to completion
	Completed int64

	// Failed is the total number of tasks that returned an error or panicked
	Failed int64

	// LastTaskTime is when the most recent task started executing
	LastTaskTime time.Time
}

// Idle checks whether no worker is executing a task
func (ps PoolStats) Idle() bool {
	return ps.Active == 0
}

// SuccessRate gets the success rate of finished tasks
func (ps PoolStats) SuccessRate() float64 {
	total := ps.Completed + ps.Failed
	if total == 0 {
		return 0
	}
	return float64(ps.Completed) / float64(total)
}

// ErrorRate gets the error rate of finished tasks
func (ps PoolStats) ErrorRate() float64 {
	total := ps.Completed + ps.Failed
	if total == 0 {
		return 0
	}
	return float64(ps.Failed) / float64(total)
}
