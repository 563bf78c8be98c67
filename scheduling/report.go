// SPDX-License-Identifier: MIT

package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// WorkerStats is a point-in-time view of one worker.
type WorkerStats struct {
	ID         int
	Efficiency float64
	Fatigue    float64
	Busy       time.Duration
	Idle       time.Duration
}

// Report summarizes worker activity.
//
// Fairness is the population variance of fatigue across workers:
// 0 for a single worker or a perfectly even load, larger when load is skewed.
type Report struct {
	Workers     []WorkerStats
	MeanFatigue float64
	Fairness    float64
}

// newReport derives the mean and variance from per-worker stats.
// Complexity: O(n).
func newReport(ws []WorkerStats) Report {
	r := Report{Workers: ws}
	if len(ws) == 0 {
		return r
	}
	var sum float64
	for _, w := range ws {
		sum += w.Fatigue
	}
	r.MeanFatigue = sum / float64(len(ws))

	var sq, d float64
	for _, w := range ws {
		d = w.Fatigue - r.MeanFatigue
		sq += d * d
	}
	r.Fairness = sq / float64(len(ws))

	return r
}

// String renders one line per worker followed by the summary line.
func (r Report) String() string {
	var b strings.Builder
	for _, w := range r.Workers {
		fmt.Fprintf(&b, "Worker %d: Fatigue=%.2f, TimeUsed=%d ns, TimeIdle=%d ns\n",
			w.ID, w.Fatigue, w.Busy.Nanoseconds(), w.Idle.Nanoseconds())
	}
	fmt.Fprintf(&b, "Average Fatigue: %.2f, Fairness Score (Lower is better): %.4f\n",
		r.MeanFatigue, r.Fairness)

	return b.String()
}
