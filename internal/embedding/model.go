package embedding

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Model holds the six matrices of the neural model: two input embeddings
// (word and document), two output matrices used during training
// (hierarchical-softmax and negative-sampling), and two L2-normalized
// copies used for similarity queries once training has finished.
type Model struct {
	Dim int

	WIn  *Matrix // V x D, word input embeddings, uniform-random init
	DIn  *Matrix // C x D, document input embeddings, uniform-random init
	WHS  *Matrix // V x D, hierarchical-softmax output weights, zero init
	WNeg *Matrix // V x D, negative-sampling output weights, zero init

	WNorm *Matrix // V x D, L2-normalized copy of WIn, populated by Normalize
	DNorm *Matrix // C x D, L2-normalized copy of DIn, populated by Normalize
}

// NewModel allocates all six matrices for a vocabulary of size V, a
// document count of C, and embedding dimension dim.
func NewModel(vocabSize, docCount, dim int, rng *rand.Rand) *Model {
	return &Model{
		Dim:  dim,
		WIn:  NewUniformRandom(vocabSize, dim, rng),
		DIn:  NewUniformRandom(docCount, dim, rng),
		WHS:  NewZero(vocabSize, dim),
		WNeg: NewZero(vocabSize, dim),
	}
}

// ModelFromLayers rebuilds a Model from six already-materialized
// matrices, the shape persistence.Load produces after parsing a saved
// model's TNeuralNetwork block.
func ModelFromLayers(dim int, wIn, dIn, wHS, wNeg, wNorm, dNorm *Matrix) *Model {
	return &Model{Dim: dim, WIn: wIn, DIn: dIn, WHS: wHS, WNeg: wNeg, WNorm: wNorm, DNorm: dNorm}
}

// Normalize populates WNorm and DNorm with unit-length copies of every
// row of WIn and DIn. It runs once, after every worker has joined, so it
// takes no row locks. A zero row is left as-is (its norm is zero, so the
// division is skipped rather than producing NaN/Inf).
func (m *Model) Normalize() {
	m.WNorm = normalizedCopy(m.WIn)
	m.DNorm = normalizedCopy(m.DIn)
}

func normalizedCopy(src *Matrix) *Matrix {
	dst := &Matrix{rows: make([]*Row, len(src.rows)), dim: src.dim}
	for i, row := range src.rows {
		out := newRow(src.dim)
		norm := mat.Norm(row.raw(), 2)
		if norm > 0 {
			for j := 0; j < src.dim; j++ {
				out.set(j, row.raw().AtVec(j)/norm)
			}
		}
		dst.rows[i] = out
	}
	return dst
}

// CosineSimilarity computes the cosine similarity of two vectors, dividing
// their dot product by both Euclidean norms, so the inputs need not be
// normalized. It takes no row locks; the query package ranks rows with a
// plain dot product over the already-normalized WNorm/DNorm matrices.
func CosineSimilarity(a, b *mat.VecDense) float64 {
	return mat.Dot(a, b) / (math.Sqrt(mat.Dot(a, a)) * math.Sqrt(mat.Dot(b, b)))
}
