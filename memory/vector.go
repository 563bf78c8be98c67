// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// vectorIDs hands out process-unique identities used to order lock acquisition.
var vectorIDs atomic.Uint64

// Vector is a mutable float64 sequence with an orientation tag, guarded by a
// reader/writer lock: any number of concurrent readers or one writer.
//
// Length and orientation change only under the exclusive lock.
type Vector struct {
	id     uint64       // stable identity, ascending lock order
	mu     sync.RWMutex // guards data and orient
	data   []float64
	orient Orientation
}

// NewVector creates a vector holding a copy of values.
// Complexity: O(n).
func NewVector(values []float64, o Orientation) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{
		id:     vectorIDs.Add(1),
		data:   data,
		orient: o,
	}
}

// Get returns element i under a shared lock.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Get(i int) (float64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if i < 0 || i >= len(v.data) {
		return 0, opErrorf(fmt.Sprintf("Vector.Get(%d)", i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Len returns the current length under a shared lock.
func (v *Vector) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.data)
}

// Orientation returns the current orientation tag under a shared lock.
func (v *Vector) Orientation() Orientation {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.orient
}

// Values returns a copy of the current contents under a shared lock.
func (v *Vector) Values() []float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Negate flips the sign of every element in place.
// Complexity: O(n).
func (v *Vector) Negate() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.data {
		v.data[i] = -v.data[i]
	}
}

// Transpose flips the orientation tag. Data is not moved.
// Complexity: O(1).
func (v *Vector) Transpose() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.orient = v.orient.Flip()
}

// Add performs v[i] += other[i] in place.
// MAIN DESCRIPTION:
//   - Elementwise sum into the receiver; the peer is only read.
//
// Implementation:
//   - Stage 1: lock receiver (exclusive) and peer (shared) in identity order.
//   - Stage 2: require equal length and orientation; nothing is written on failure.
//   - Stage 3: accumulate.
//
// Behavior highlights:
//   - v.Add(v) doubles v under a single exclusive lock.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector) Add(other *Vector) error {
	if other == nil {
		return opErrorf("Vector.Add", ErrNilVector)
	}
	release := acquire([]lockReq{{v: v, write: true}, {v: other}})
	defer release()

	if len(v.data) != len(other.data) || v.orient != other.orient {
		return opErrorf(fmt.Sprintf("Vector.Add(%d %s, %d %s)",
			len(v.data), v.orient, len(other.data), other.orient), ErrDimensionMismatch)
	}
	for i := range v.data {
		v.data[i] += other.data[i]
	}

	return nil
}

// Dot returns the inner product of v and other under shared locks on both.
// Errors: ErrNilVector, ErrDimensionMismatch (length or orientation differ).
// Complexity: O(n).
func (v *Vector) Dot(other *Vector) (float64, error) {
	if other == nil {
		return 0, opErrorf("Vector.Dot", ErrNilVector)
	}
	release := acquire([]lockReq{{v: v}, {v: other}})
	defer release()

	if len(v.data) != len(other.data) || v.orient != other.orient {
		return 0, opErrorf(fmt.Sprintf("Vector.Dot(%d %s, %d %s)",
			len(v.data), v.orient, len(other.data), other.orient), ErrDimensionMismatch)
	}

	return dot(v.data, other.data), nil
}

// MulMatrix replaces the row vector v with v·m.
// MAIN DESCRIPTION:
//   - One output value per logical column of m: the inner product of v with
//     that column. The length of v may change; the orientation stays Row.
//
// Implementation:
//   - Stage 1: capture m's current generation; lock v (exclusive) and every
//     member of m (shared) in identity order.
//   - Stage 2: require v to be Row and len(v) == logical rows of m. For a
//     Row-stored m the rows are its vectors; for a Column-stored m the rows
//     are the length of its member vectors and the columns are its vectors.
//   - Stage 3: compute into a fresh slice, then swap it in.
//
// Errors:
//   - ErrNilMatrix, ErrOrientationMismatch, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(rows*cols), Space O(cols).
func (v *Vector) MulMatrix(m *Matrix) error {
	if m == nil {
		return opErrorf("Vector.MulMatrix", ErrNilMatrix)
	}
	vecs := m.generation()

	reqs := make([]lockReq, 0, len(vecs)+1)
	reqs = append(reqs, lockReq{v: v, write: true})
	for _, mv := range vecs {
		reqs = append(reqs, lockReq{v: mv})
	}
	release := acquire(reqs)
	defer release()

	if v.orient != Row {
		return opErrorf("Vector.MulMatrix", ErrOrientationMismatch)
	}

	rows, cols, colMajor := shapeLocked(vecs)
	if len(v.data) != rows {
		return opErrorf(fmt.Sprintf("Vector.MulMatrix(len %d, %dx%d)", len(v.data), rows, cols), ErrDimensionMismatch)
	}
	// Member vectors must agree on length; a ragged generation cannot be multiplied.
	for _, mv := range vecs {
		if (colMajor && len(mv.data) != rows) || (!colMajor && len(mv.data) != cols) {
			return opErrorf("Vector.MulMatrix: ragged matrix", ErrDimensionMismatch)
		}
	}

	out := make([]float64, cols)
	if colMajor {
		for j, col := range vecs {
			out[j] = dot(v.data, col.data)
		}
	} else {
		var i, j int
		var sum float64
		for j = 0; j < cols; j++ {
			sum = 0
			for i = 0; i < rows; i++ {
				sum += v.data[i] * vecs[i].data[j]
			}
			out[j] = sum
		}
	}
	v.data = out

	return nil
}

// dot is the unchecked inner-product kernel; callers hold the locks.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
