// SPDX-License-Identifier: MIT
package scheduling

import (
	"container/heap"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewReport_PopulationVariance(t *testing.T) {
	r := newReport([]WorkerStats{{ID: 0, Fatigue: 1}, {ID: 1, Fatigue: 3}})
	require.InDelta(t, 2.0, r.MeanFatigue, 1e-12)
	require.InDelta(t, 1.0, r.Fairness, 1e-12)

	even := newReport([]WorkerStats{{Fatigue: 5}, {Fatigue: 5}, {Fatigue: 5}})
	require.Zero(t, even.Fairness)

	require.Zero(t, newReport(nil).Fairness)
}

func TestReport_StringFormat(t *testing.T) {
	r := newReport([]WorkerStats{
		{ID: 0, Fatigue: 1.234, Busy: 10 * time.Nanosecond, Idle: 20 * time.Nanosecond},
		{ID: 1, Fatigue: 2.766, Busy: 30 * time.Nanosecond, Idle: 5 * time.Nanosecond},
	})
	want := "Worker 0: Fatigue=1.23, TimeUsed=10 ns, TimeIdle=20 ns\n" +
		"Worker 1: Fatigue=2.77, TimeUsed=30 ns, TimeIdle=5 ns\n" +
		"Average Fatigue: 2.00, Fairness Score (Lower is better): 0.2934\n"
	require.Equal(t, want, r.String())
}

func TestIdleHeap_Order(t *testing.T) {
	h := idleHeap{}
	for _, w := range []*worker{
		{id: 0, key: 5},
		{id: 2, key: 1},
		{id: 1, key: 1},
		{id: 3, key: 0},
	} {
		heap.Push(&h, w)
	}

	var got []int
	for h.Len() > 0 {
		w := heap.Pop(&h).(*worker)
		require.Equal(t, -1, w.index)
		got = append(got, w.id)
	}
	require.Equal(t, []int{3, 1, 2, 0}, got, "fatigue first, then id")
}
