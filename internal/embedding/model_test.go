package embedding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNormalizeProducesUnitLengthRows(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewModel(5, 3, 8, rng)
	m.Normalize()

	for i := 0; i < m.WNorm.Rows(); i++ {
		row, err := m.WNorm.RowSafe(uint32(i))
		require.NoError(t, err)
		norm := mat.Norm(row.raw(), 2)
		assert.InDelta(t, 1.0, norm, 1e-9)
	}
}

func TestNormalizeLeavesZeroRowZero(t *testing.T) {
	wIn := NewZero(1, 4) // every row starts at zero, never touched by a worker
	m := ModelFromLayers(4, wIn, NewZero(1, 4), NewZero(1, 4), NewZero(1, 4), nil, nil)
	m.Normalize()

	row, err := m.WNorm.RowSafe(0)
	require.NoError(t, err)
	for j := 0; j < 4; j++ {
		assert.Zero(t, row.raw().AtVec(j))
	}
}

func TestCosineSimilaritySelfIsOne(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestNewUniformRandomStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dim := 10
	m := NewUniformRandom(4, dim, rng)
	bound := 0.5
	for i := 0; i < m.Rows(); i++ {
		row, err := m.RowSafe(uint32(i))
		require.NoError(t, err)
		for j := 0; j < dim; j++ {
			v := row.raw().AtVec(j)
			assert.GreaterOrEqual(t, v, -bound)
			assert.Less(t, v, bound)
		}
	}
}

func TestRowSafeRejectsOutOfRangeIndex(t *testing.T) {
	m := NewZero(2, 3)
	_, err := m.RowSafe(5)
	assert.Error(t, err)
}
