package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentRounds(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 5))
	assert.Equal(t, 40, Percent(2, 5))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 100, Percent(5, 5))
	assert.Equal(t, 0, Percent(3, 0))
}

func TestPercentDisplayZeroDenominator(t *testing.T) {
	assert.Equal(t, "0%", PercentDisplay(0, 0))
	assert.Equal(t, "—", PercentDisplay(3, 0))
	assert.Equal(t, "50%", PercentDisplay(1, 2))
}
