package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	require.NoError(t, err)
	assert.InDelta(t, 23.15, bmi, 0.01)
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	for _, tc := range []struct{ h, w float64 }{
		{0, 75},
		{180, -5},
		{300, 75},
		{180, 500},
	} {
		_, err := CalculateBMI(tc.h, tc.w)
		assert.ErrorIs(t, err, ErrImplausibleBody)
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "underweight", BMICategory(17))
	assert.Equal(t, "normal", BMICategory(22))
	assert.Equal(t, "overweight", BMICategory(27))
	assert.Equal(t, "obese", BMICategory(32))
}
