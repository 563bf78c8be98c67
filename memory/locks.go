// SPDX-License-Identifier: MIT

package memory

import "sort"

// lockReq asks for one vector lock; write selects the exclusive side.
type lockReq struct {
	v     *Vector
	write bool
}

// acquire takes every requested lock in ascending vector identity and returns
// the release function (reverse order).
//
// Implementation:
//   - Stage 1: sort requests by Vector.id.
//   - Stage 2: merge duplicates; an exclusive request wins over a shared one,
//     so a vector appearing twice is locked once.
//   - Stage 3: lock in order.
//
// A global total order on identities rules out lock-order inversion between
// any two multi-lock operations.
//
// Complexity: O(k log k) for k requests.
func acquire(reqs []lockReq) (release func()) {
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].v.id < reqs[j].v.id })

	merged := reqs[:0]
	for _, r := range reqs {
		if n := len(merged); n > 0 && merged[n-1].v == r.v {
			merged[n-1].write = merged[n-1].write || r.write
			continue
		}
		merged = append(merged, r)
	}

	for _, r := range merged {
		if r.write {
			r.v.mu.Lock()
		} else {
			r.v.mu.RLock()
		}
	}

	return func() {
		var i int
		for i = len(merged) - 1; i >= 0; i-- {
			if merged[i].write {
				merged[i].v.mu.Unlock()
			} else {
				merged[i].v.mu.RUnlock()
			}
		}
	}
}

// lockAll locks every vector of vecs on the same side.
func lockAll(vecs []*Vector, write bool) (release func()) {
	reqs := make([]lockReq, len(vecs))
	for i, v := range vecs {
		reqs[i] = lockReq{v: v, write: write}
	}

	return acquire(reqs)
}
