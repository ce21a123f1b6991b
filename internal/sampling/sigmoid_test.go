package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoidTableBoundaryValuesStayInUnitInterval(t *testing.T) {
	tab := NewSigmoidTable()

	for _, x := range []float64{-MaxExp + 1e-6, -1, 0, 1, MaxExp - 1e-6} {
		s := tab.Sigmoid(x)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
	}
}

func TestSigmoidTableClampsOutOfRangeInputs(t *testing.T) {
	tab := NewSigmoidTable()
	assert.Equal(t, tab.Sigmoid(-MaxExp), tab.Sigmoid(-100))
	assert.Equal(t, tab.Sigmoid(MaxExp), tab.Sigmoid(100))
}

func TestSigmoidTableHandlesNaNWithoutPanicking(t *testing.T) {
	tab := NewSigmoidTable()
	assert.NotPanics(t, func() {
		s := tab.Sigmoid(math.NaN())
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	})
}

func TestSigmoidTableMonotonicAroundZero(t *testing.T) {
	tab := NewSigmoidTable()
	assert.Less(t, tab.Sigmoid(-2), tab.Sigmoid(0))
	assert.Less(t, tab.Sigmoid(0), tab.Sigmoid(2))
}
