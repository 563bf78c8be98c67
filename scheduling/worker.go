// SPDX-License-Identifier: MIT

package scheduling

import (
	"sync"
	"time"
)

// worker is one long-lived goroutine with a single-slot inbox.
//
// Lifecycle: idle (in the heap) → busy (job in inbox or running) → idle;
// after quit is closed the worker drains a handed job and stops.
type worker struct {
	id         int
	efficiency float64
	inbox      chan func() // capacity 1; only an idle worker is handed a job
	quit       chan struct{}

	// heap bookkeeping, guarded by Executor.mu
	key   float64
	index int

	mu        sync.Mutex // guards the fields below
	fatigue   float64
	busy      time.Duration
	idle      time.Duration
	idleSince time.Time
	running   bool
}

func newWorker(id int, efficiency float64, now time.Time) *worker {
	return &worker{
		id:         id,
		efficiency: efficiency,
		inbox:      make(chan func(), 1),
		quit:       make(chan struct{}),
		index:      -1,
		idleSince:  now,
	}
}

// run executes handed jobs until quit is closed.
func (w *worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case job := <-w.inbox:
			job()
		case <-w.quit:
			select {
			case job := <-w.inbox:
				job()
			default:
			}
			return
		}
	}
}

// begin closes the current idle stretch.
func (w *worker) begin(now time.Time) {
	w.mu.Lock()
	w.idle += now.Sub(w.idleSince)
	w.running = true
	w.mu.Unlock()
}

// finish accrues busy time and fatigue and returns the new fatigue.
func (w *worker) finish(d time.Duration, now time.Time) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.busy += d
	w.fatigue += w.efficiency * float64(d.Nanoseconds())
	w.idleSince = now
	w.running = false

	return w.fatigue
}

// stats snapshots the worker. An ongoing idle stretch counts up to now.
func (w *worker) stats(now time.Time) WorkerStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	idle := w.idle
	if !w.running {
		idle += now.Sub(w.idleSince)
	}

	return WorkerStats{
		ID:         w.id,
		Efficiency: w.efficiency,
		Fatigue:    w.fatigue,
		Busy:       w.busy,
		Idle:       idle,
	}
}
