// SPDX-License-Identifier: MIT

// Package scheduling implements a fixed-size, fatigue-weighted worker pool.
//
// Every worker carries an efficiency factor drawn once at construction and a
// fatigue value that only grows: each finished task adds efficiency × runtime
// (nanoseconds). Submit always hands work to the least-fatigued idle worker,
// blocking while none is idle, so cheap workers absorb more of the load and
// the fatigue spread stays narrow.
//
// Usage:
//
//	exec, err := scheduling.NewExecutor(4)
//	if err != nil { ... }
//	defer exec.Shutdown()
//	err = exec.SubmitAll(tasks) // barrier: returns once in-flight reaches zero
//	fmt.Print(exec.Report())
//
// Errors surfaced by SubmitAll are a join of *TaskError values, one per failed
// task, in submission order. Panicking tasks are reported as ErrTaskPanicked.
//
// There is no cancellation: a handed task always runs to completion.
package scheduling
