// SPDX-License-Identifier: MIT

package scheduling

import (
	"container/heap"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of work run by one worker.
type Task func() error

// Executor is a fixed pool of workers dispatched least-fatigued first.
//
// All dispatch state (idle heap, in-flight count, stopped flag) lives under
// one mutex; cond is broadcast whenever a worker becomes idle or the pool stops.
type Executor struct {
	mu       sync.Mutex
	cond     *sync.Cond
	idle     idleHeap
	workers  []*worker
	inFlight int
	stopped  bool

	wg      sync.WaitGroup
	once    sync.Once
	logger  *slog.Logger
	metrics *Metrics
}

// NewExecutor starts n idle workers.
// MAIN DESCRIPTION:
//   - Efficiency factors come from WithEfficiencies or a seeded draw in [0.5, 1.5).
//
// Implementation:
//   - Stage 1: validate n and options.
//   - Stage 2: build workers and seed the idle heap (all fatigue 0, so id order).
//   - Stage 3: start one goroutine per worker.
//
// Errors:
//   - ErrInvalidWorkerCount (n < 1), ErrInvalidEfficiency.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewExecutor(n int, opts ...Option) (*Executor, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewExecutor(%d): %w", n, ErrInvalidWorkerCount)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	factors := o.Efficiencies
	if factors == nil {
		factors = drawEfficiencies(rngFromSeed(o.Seed), n)
	} else if len(factors) != n {
		return nil, fmt.Errorf("NewExecutor: %d factors for %d workers: %w", len(factors), n, ErrInvalidEfficiency)
	}
	for i, f := range factors {
		if !(f > 0) {
			return nil, fmt.Errorf("NewExecutor: factor %d is %v: %w", i, f, ErrInvalidEfficiency)
		}
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{
		workers: make([]*worker, n),
		idle:    make(idleHeap, 0, n),
		logger:  logger.With(slog.String("component", "scheduler")),
		metrics: o.Metrics,
	}
	e.cond = sync.NewCond(&e.mu)

	now := time.Now()
	for i := 0; i < n; i++ {
		w := newWorker(i, factors[i], now)
		e.workers[i] = w
		heap.Push(&e.idle, w)
	}
	e.wg.Add(n)
	for _, w := range e.workers {
		go w.run(&e.wg)
	}
	e.logger.Debug("executor started", slog.Int("workers", n))

	return e, nil
}

// Size returns the number of workers.
func (e *Executor) Size() int { return len(e.workers) }

// InFlight returns the number of tasks handed out and not yet finished.
func (e *Executor) InFlight() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.inFlight
}

// Submit hands task to the least-fatigued idle worker, blocking while every
// worker is busy. The returned channel (buffer 1) yields the task's outcome
// exactly once: nil, the task's error, ErrTaskPanicked, ErrNilTask, or
// ErrExecutorStopped if the pool was shut down before dispatch.
func (e *Executor) Submit(task Task) <-chan error {
	done := make(chan error, 1)
	if task == nil {
		done <- ErrNilTask
		return done
	}

	e.mu.Lock()
	for !e.stopped && e.idle.Len() == 0 {
		e.cond.Wait()
	}
	if e.stopped {
		e.mu.Unlock()
		done <- ErrExecutorStopped
		return done
	}
	w := heap.Pop(&e.idle).(*worker)
	e.inFlight++
	e.metrics.setInFlight(e.inFlight)
	// An idle worker's inbox is empty, so this send never blocks.
	w.inbox <- func() { e.execute(w, task, done) }
	e.mu.Unlock()

	return done
}

// execute runs on the worker's goroutine.
func (e *Executor) execute(w *worker, task Task, done chan<- error) {
	start := time.Now()
	w.begin(start)
	err := runSafely(task)
	d := time.Since(start)
	fatigue := w.finish(d, start.Add(d))
	e.metrics.observe(w.id, d, fatigue, err)

	e.mu.Lock()
	e.inFlight--
	e.metrics.setInFlight(e.inFlight)
	w.key = fatigue
	heap.Push(&e.idle, w)
	e.cond.Broadcast()
	e.mu.Unlock()

	done <- err
}

// runSafely converts a task panic into ErrTaskPanicked.
func runSafely(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return task()
}

// SubmitAll dispatches every task, then waits until no task is in flight.
// MAIN DESCRIPTION:
//   - Barrier over a batch. Dispatch may block repeatedly while workers are busy.
//
// Errors:
//   - nil when every task succeeded; otherwise errors.Join of *TaskError in
//     index order.
//
// Complexity:
//   - O(k log n) dispatch for k tasks on n workers, plus the tasks themselves.
func (e *Executor) SubmitAll(tasks []Task) error {
	outcomes := make([]<-chan error, len(tasks))
	for i, t := range tasks {
		outcomes[i] = e.Submit(t)
	}
	e.waitIdle()

	var errs []error
	for i, ch := range outcomes {
		if err := <-ch; err != nil {
			errs = append(errs, &TaskError{Index: i, Err: err})
		}
	}
	if len(errs) > 0 {
		e.logger.Debug("batch finished with failures",
			slog.Int("tasks", len(tasks)),
			slog.Int("failed", len(errs)))
	}

	return errors.Join(errs...)
}

// waitIdle blocks until the in-flight count is zero.
func (e *Executor) waitIdle() {
	e.mu.Lock()
	for e.inFlight > 0 {
		e.cond.Wait()
	}
	e.mu.Unlock()
}

// Report snapshots every worker in id order.
// Complexity: O(n).
func (e *Executor) Report() Report {
	now := time.Now()
	ws := make([]WorkerStats, len(e.workers))
	for i, w := range e.workers {
		ws[i] = w.stats(now)
	}

	return newReport(ws)
}

// Shutdown stops accepting work, lets each worker finish a handed task and
// waits for every worker goroutine. Safe to call more than once.
func (e *Executor) Shutdown() {
	e.once.Do(func() {
		e.mu.Lock()
		e.stopped = true
		e.cond.Broadcast()
		e.mu.Unlock()

		for _, w := range e.workers {
			close(w.quit)
		}
		e.wg.Wait()
		e.logger.Debug("executor stopped", slog.Int("workers", len(e.workers)))
	})
}
