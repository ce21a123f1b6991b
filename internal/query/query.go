package query

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Draif/doc2vec/internal/embedding"
)

// SimilarToRow returns the K most similar rows of matrix m to the row at
// excludeIndex, excluding that row itself. Rows are assumed already
// L2-normalized (WNorm/DNorm), so cosine similarity reduces to a dot
// product.
func SimilarToRow(m *embedding.Matrix, excludeIndex uint32, k int) ([]Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("query: k must be positive, got %d", k)
	}
	target, err := m.RowSafe(excludeIndex)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	targetVec := mat.NewVecDense(target.Dim(), nil)
	target.Snapshot(targetVec)

	best := newTopK(k)
	for i := 0; i < m.Rows(); i++ {
		if uint32(i) == excludeIndex {
			continue
		}
		row := m.Row(uint32(i))
		rowVec := mat.NewVecDense(row.Dim(), nil)
		row.Snapshot(rowVec)
		sim := mat.Dot(targetVec, rowVec)
		best.offer(Result{Index: uint32(i), Similarity: sim})
	}
	return best.sortedDescending(), nil
}

// SimilarToVector is SimilarToRow for a caller-supplied query vector
// rather than an existing row (e.g. a vector read back from a saved
// model for an external similarity probe).
func SimilarToVector(m *embedding.Matrix, query *mat.VecDense, k int) ([]Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("query: k must be positive, got %d", k)
	}
	best := newTopK(k)
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(uint32(i))
		rowVec := mat.NewVecDense(row.Dim(), nil)
		row.Snapshot(rowVec)
		sim := mat.Dot(query, rowVec)
		best.offer(Result{Index: uint32(i), Similarity: sim})
	}
	return best.sortedDescending(), nil
}
