package alpha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStartsAtInitial(t *testing.T) {
	c := New(0.05, 1000, 1, nil)
	assert.Equal(t, 0.05, c.Current())
}

func TestAddWordsProcessedDecaysAfterThreshold(t *testing.T) {
	c := New(0.05, 1000, 1, nil)
	c.AddWordsProcessed(updateWordNumber)
	assert.Less(t, c.Current(), 0.05)
	assert.EqualValues(t, updateWordNumber, c.WordsProcessed())
}

func TestAddWordsProcessedBelowThresholdDoesNotDecay(t *testing.T) {
	c := New(0.05, 1000, 1, nil)
	c.AddWordsProcessed(10)
	assert.Equal(t, 0.05, c.Current())
}

func TestAlphaNeverFloorsBelowMinReduceCoefficient(t *testing.T) {
	c := New(0.05, 1000, 1, nil)
	for i := 0; i < 1000; i++ {
		c.AddWordsProcessed(updateWordNumber)
	}
	assert.GreaterOrEqual(t, c.Current(), 0.05*minReduceCoefficient)
}

type recordingReporter struct {
	calls int
	last  float64
}

func (r *recordingReporter) Report(progress, wordsPerSec, current float64) {
	r.calls++
	r.last = current
}

func TestAddWordsProcessedReportsOnDecay(t *testing.T) {
	rep := &recordingReporter{}
	c := New(0.05, 1000, 1, rep)
	c.AddWordsProcessed(updateWordNumber)
	assert.Equal(t, 1, rep.calls)
	assert.Equal(t, c.Current(), rep.last)
}
