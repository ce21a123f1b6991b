package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccumulatesFrequencyAndTrainWordCount(t *testing.T) {
	v := New()
	normalize := strings.ToLower
	for _, tok := range []string{"The", "cat", "sat", "on", "the", "mat"} {
		v.Add(tok, normalize)
	}

	assert.Equal(t, 5, v.Size()) // the, cat, sat, on, mat
	assert.EqualValues(t, 6, v.TrainWordsCount())
	assert.EqualValues(t, v.TrainWordsCount(), v.SumFrequencies())

	the, ok := v.Get("the")
	require.True(t, ok)
	assert.EqualValues(t, 2, the.Frequency)
}

func TestGetByIndexRoundTripsInsertionOrder(t *testing.T) {
	v := New()
	normalize := strings.ToLower
	for _, tok := range []string{"alpha", "beta", "gamma"} {
		v.Add(tok, normalize)
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		w, ok := v.GetByIndex(uint32(i))
		require.True(t, ok)
		assert.Equal(t, want, w.Surface)
	}
	_, ok := v.GetByIndex(99)
	assert.False(t, ok)
}

func TestFromEntriesRebuildsLookup(t *testing.T) {
	entries := []*Word{
		{Surface: "a", Index: 0, Frequency: 3},
		{Surface: "b", Index: 1, Frequency: 1},
	}
	v := FromEntries(2, 4, entries)
	assert.Equal(t, 2, v.Size())
	assert.EqualValues(t, 4, v.TrainWordsCount())
	w, ok := v.Get("a")
	require.True(t, ok)
	assert.EqualValues(t, 3, w.Frequency)
}
