// Package embedding holds the lockable embedding rows and the six
// matrices of the neural model.
package embedding

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Row is one D-dimensional embedding vector guarded by its own mutex.
// Reads are taken under the lock too, so that a reader never observes a
// torn partial update from a concurrent writer.
type Row struct {
	mu     sync.Mutex
	values *mat.VecDense
}

func newRow(dim int) *Row {
	return &Row{values: mat.NewVecDense(dim, nil)}
}

// Lock acquires the row's mutex. Pair with Unlock.
func (r *Row) Lock()   { r.mu.Lock() }
func (r *Row) Unlock() { r.mu.Unlock() }

// Snapshot copies the row's current values into dst, growing dst if
// necessary, under the row's lock.
func (r *Row) Snapshot(dst *mat.VecDense) {
	r.mu.Lock()
	dst.CloneFromVec(r.values)
	r.mu.Unlock()
}

// Dim returns the row's dimensionality.
func (r *Row) Dim() int { return r.values.Len() }

// Vector exposes the row's underlying vector directly, without locking.
// Only valid while the caller already holds the row's lock (via Lock) —
// it exists so a caller that must hold one row's lock across several
// operations (e.g. the document row across a whole CBOW pass) isn't
// forced to re-lock for every read/write.
func (r *Row) Vector() *mat.VecDense { return r.values }

// raw exposes the underlying vector without locking; it is only used by
// Model.Normalize and Matrix.Values, which run after all workers have
// joined.
func (r *Row) raw() *mat.VecDense { return r.values }

func (r *Row) set(i int, v float64) { r.values.SetVec(i, v) }
