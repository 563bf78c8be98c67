// SPDX-License-Identifier: MIT

package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkerCount is returned by NewExecutor for a pool size < 1.
	ErrInvalidWorkerCount = errors.New("scheduling: worker count must be positive")

	// ErrInvalidEfficiency flags an efficiency list of the wrong length or
	// with a non-positive factor.
	ErrInvalidEfficiency = errors.New("scheduling: invalid efficiency factors")

	// ErrExecutorStopped is delivered for tasks submitted after Shutdown.
	ErrExecutorStopped = errors.New("scheduling: executor stopped")

	// ErrTaskPanicked wraps a recovered task panic.
	ErrTaskPanicked = errors.New("scheduling: task panicked")

	// ErrNilTask is delivered when Submit receives a nil task.
	ErrNilTask = errors.New("scheduling: nil task")
)

// TaskError ties a failure to the position of its task in a SubmitAll batch.
type TaskError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d: %v", e.Index, e.Err)
}

// Unwrap exposes the task's own error to errors.Is / errors.As.
func (e *TaskError) Unwrap() error { return e.Err }
