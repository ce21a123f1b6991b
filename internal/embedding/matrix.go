package embedding

import (
	"fmt"
	"math/rand"
)

// Matrix is a fixed-size ordered collection of Rows. Its row count and
// dimension are set once at construction and never change.
type Matrix struct {
	rows []*Row
	dim  int
}

// NewZero returns a matrix of n rows, each zero-initialized.
func NewZero(n, dim int) *Matrix {
	m := &Matrix{rows: make([]*Row, n), dim: dim}
	for i := range m.rows {
		m.rows[i] = newRow(dim)
	}
	return m
}

// NewUniformRandom returns a matrix of n rows, each entry independently
// drawn from U[-0.5, +0.5).
func NewUniformRandom(n, dim int, rng *rand.Rand) *Matrix {
	m := &Matrix{rows: make([]*Row, n), dim: dim}
	for i := range m.rows {
		r := newRow(dim)
		for j := 0; j < dim; j++ {
			r.set(j, rng.Float64()-0.5)
		}
		m.rows[i] = r
	}
	return m
}

// NewFromValues rebuilds a matrix from already-trained row values, the
// shape persistence.Load reads off disk for each of the six layers.
func NewFromValues(values [][]float64, dim int) *Matrix {
	m := &Matrix{rows: make([]*Row, len(values)), dim: dim}
	for i, vals := range values {
		r := newRow(dim)
		for j, v := range vals {
			r.set(j, v)
		}
		m.rows[i] = r
	}
	return m
}

// Values returns a fresh copy of every row's values, in row order, for
// the persistence layer to serialize. Takes no lock: callers must only
// use this once training has finished and no worker still holds rows.
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		vals := make([]float64, r.Dim())
		for j := 0; j < r.Dim(); j++ {
			vals[j] = r.raw().AtVec(j)
		}
		out[i] = vals
	}
	return out
}

// Rows returns the matrix's row count.
func (m *Matrix) Rows() int { return len(m.rows) }

// Dim returns the matrix's row dimensionality.
func (m *Matrix) Dim() int { return m.dim }

// Row returns the row at index i, for locked read/write access.
func (m *Matrix) Row(i uint32) *Row {
	return m.rows[i]
}

// RowSafe is Row with bounds checking, for callers at the query/CLI
// boundary where an out-of-range index is user error, not a bug.
func (m *Matrix) RowSafe(i uint32) (*Row, error) {
	if int(i) >= len(m.rows) {
		return nil, fmt.Errorf("embedding: row index %d out of range [0,%d)", i, len(m.rows))
	}
	return m.rows[i], nil
}
