package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Draif/doc2vec/internal/embedding"
)

func matrixFromRows(rows [][]float64) *embedding.Matrix {
	dim := len(rows[0])
	return embedding.NewFromValues(rows, dim)
}

func TestSimilarToRowExcludesSelfAndRanksByCosine(t *testing.T) {
	m := matrixFromRows([][]float64{
		{1, 0}, // 0
		{1, 0}, // 1: identical to 0
		{0, 1}, // 2: orthogonal to 0
		{-1, 0}, // 3: opposite of 0
	})

	results, err := SimilarToRow(m, 0, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.NotEqual(t, uint32(0), r.Index, "query row must never match itself")
	}
	assert.Equal(t, uint32(1), results[0].Index) // the unique best match
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
	assert.Equal(t, uint32(3), results[len(results)-1].Index) // the worst match
}

func TestSimilarToRowRespectsK(t *testing.T) {
	m := matrixFromRows([][]float64{{1, 0}, {0.9, 0.1}, {0.5, 0.5}, {0, 1}})
	results, err := SimilarToRow(m, 0, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, uint32(1), results[0].Index)
}

func TestSimilarToRowRejectsOutOfRangeIndex(t *testing.T) {
	m := matrixFromRows([][]float64{{1, 0}})
	_, err := SimilarToRow(m, 5, 1)
	assert.Error(t, err)
}

func TestSimilarToVectorRanksByDotProduct(t *testing.T) {
	m := matrixFromRows([][]float64{{1, 0}, {0, 1}})
	query := mat.NewVecDense(2, []float64{1, 0})
	results, err := SimilarToVector(m, query, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint32(0), results[0].Index)
}

func TestSimilarToRowRejectsNonPositiveK(t *testing.T) {
	m := matrixFromRows([][]float64{{1, 0}, {0, 1}})
	_, err := SimilarToRow(m, 0, 0)
	assert.Error(t, err)
	_, err = SimilarToRow(m, 0, -1)
	assert.Error(t, err)
}

func TestSimilarToVectorRejectsNonPositiveK(t *testing.T) {
	m := matrixFromRows([][]float64{{1, 0}, {0, 1}})
	query := mat.NewVecDense(2, []float64{1, 0})
	_, err := SimilarToVector(m, query, 0)
	assert.Error(t, err)
}
