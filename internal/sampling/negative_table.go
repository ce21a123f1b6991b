package sampling

import (
	"math"
)

// NegativeTableSize is the resolution of the cumulative-distribution
// table used to draw negative samples in O(1) per draw.
const NegativeTableSize = 1e8

// powerSmoothing is the classic word2vec unigram^0.75 exponent that
// flattens the frequency distribution before sampling.
const powerSmoothing = 0.75

// NegativeTable maps a uniform draw in [0, NegativeTableSize) to a
// vocabulary index, proportionally to freq(w)^0.75.
type NegativeTable struct {
	table []uint32
}

// NewNegativeTable builds the table by walking the vocabulary in
// insertion order and filling in table slots until the cumulative
// smoothed-frequency mass crosses each slot's share.
func NewNegativeTable(frequencies []uint32) *NegativeTable {
	n := len(frequencies)
	t := &NegativeTable{table: make([]uint32, NegativeTableSize)}
	if n == 0 {
		return t
	}

	var trainWordsPow float64
	for _, f := range frequencies {
		trainWordsPow += math.Pow(float64(f), powerSmoothing)
	}

	i := 0
	d1 := math.Pow(float64(frequencies[i]), powerSmoothing) / trainWordsPow
	for a := 0; a < NegativeTableSize; a++ {
		t.table[a] = uint32(i)
		if float64(a)/NegativeTableSize > d1 {
			i++
			if i >= n {
				i = n - 1
			}
			d1 += math.Pow(float64(frequencies[i]), powerSmoothing) / trainWordsPow
		}
	}
	return t
}

// Int63nSource is satisfied by any RNG (or RNG wrapper) that can draw a
// uniform int64 in [0, n) — kept minimal so this package does not care
// whether the caller's generator is process-global or per-worker.
type Int63nSource interface {
	Int63n(n int64) int64
}

// Sample draws one vocabulary index from src according to the
// precomputed distribution.
func (t *NegativeTable) Sample(src Int63nSource) uint32 {
	return t.table[src.Int63n(NegativeTableSize)]
}

// Len reports the table's slot count.
func (t *NegativeTable) Len() int { return len(t.table) }
