package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNegativeTableLengthAndValidity(t *testing.T) {
	tab := NewNegativeTable([]uint32{1, 3})
	require.Equal(t, int(NegativeTableSize), tab.Len())
	for _, idx := range tab.table {
		assert.True(t, idx == 0 || idx == 1)
	}
}

func TestNewNegativeTableProportionalToSmoothedFrequency(t *testing.T) {
	// V=2, freq {a:1, b:3}: a's smoothed share is 1^0.75/(1^0.75+3^0.75) ≈ 30.5%.
	tab := NewNegativeTable([]uint32{1, 3})

	var countA int
	for _, idx := range tab.table {
		if idx == 0 {
			countA++
		}
	}
	share := float64(countA) / float64(tab.Len())
	assert.InDelta(t, 0.305, share, 0.005)
}

type fixedSource struct{ n int64 }

func (f fixedSource) Int63n(int64) int64 { return f.n }

func TestSampleDrawsFromUnderlyingTable(t *testing.T) {
	tab := NewNegativeTable([]uint32{5, 1, 1})
	got := tab.Sample(fixedSource{n: 0})
	assert.Equal(t, tab.table[0], got)
}

func TestNewNegativeTableEmptyFrequencies(t *testing.T) {
	tab := NewNegativeTable(nil)
	assert.Equal(t, int(NegativeTableSize), tab.Len())
}
