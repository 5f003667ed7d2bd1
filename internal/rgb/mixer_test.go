// internal/rgb/mixer_test.go
package rgb

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleColors spans the channel range, including both bounds.
var sampleColors = []Color{
	{},
	{R: 255, G: 255, B: 255},
	{R: 255},
	{G: 255},
	{B: 255},
	{R: 255, G: 128},
	{G: 128, B: 255},
	{R: 1, G: 2, B: 3},
	{R: 17, G: 99, B: 201},
	{R: 254, G: 127, B: 33},
}

var sampleRatios = []float64{0, 0.001, 0.1, 0.25, 1.0 / 3, 0.5, 0.7, 0.9, 0.999, 1}

func TestMix_Extremes(t *testing.T) {
	for _, c1 := range sampleColors {
		for _, c2 := range sampleColors {
			assert.Equal(t, c1, Mix(c1, c2, 1.0), "ratio 1.0 must return the first color")
			assert.Equal(t, c2, Mix(c1, c2, 0.0), "ratio 0.0 must return the second color")
		}
	}
}

func TestMix_SelfIsIdentity(t *testing.T) {
	for _, c := range sampleColors {
		for _, r := range sampleRatios {
			assert.Equal(t, c, Mix(c, c, r), "mixing %v with itself at %v", c, r)
		}
	}
}

func TestMix_Truncates(t *testing.T) {
	testCases := []struct {
		name     string
		c1, c2   Color
		ratio    float64
		expected Color
	}{
		{
			name:     "red and green halfway",
			c1:       Color{R: 255},
			c2:       Color{G: 255},
			ratio:    0.5,
			expected: Color{R: 127, G: 127},
		},
		{
			name:     "orange and azure at seventy percent",
			c1:       Color{R: 255, G: 128},
			c2:       Color{G: 128, B: 255},
			ratio:    0.7,
			expected: Color{R: 178, G: 128, B: 76},
		},
		{
			name:     "one and zero never rounds up",
			c1:       Color{R: 1, G: 1, B: 1},
			c2:       Color{},
			ratio:    0.99,
			expected: Color{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Mix(tc.c1, tc.c2, tc.ratio))
		})
	}
}

func TestMix_StaysBetweenInputs(t *testing.T) {
	for _, c1 := range sampleColors {
		for _, c2 := range sampleColors {
			for _, r := range sampleRatios {
				a, b, m := c1.Channels(), c2.Channels(), Mix(c1, c2, r).Channels()
				for i := range m {
					lo, hi := min(a[i], b[i]), max(a[i], b[i])
					assert.GreaterOrEqual(t, m[i], lo)
					assert.LessOrEqual(t, m[i], hi)
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-3, 0, 255))
	assert.Equal(t, 255, clamp(300, 0, 255))
	assert.Equal(t, 42, clamp(42, 0, 255))
}

func TestValidateRatio(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1} {
		require.NoError(t, ValidateRatio(r))
	}

	for _, r := range []float64{-0.1, 1.5, math.Inf(1), math.NaN()} {
		err := ValidateRatio(r)

		var ratioErr *RatioRangeError
		require.True(t, errors.As(err, &ratioErr), "ratio %v should be rejected", r)
	}

	require.EqualError(t, ValidateRatio(1.5), "Ratio must be between 0.0 and 1.0, got 1.5")
}

func TestRatioRangeError_Message(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{value: 1.5, expected: "got 1.5"},
		{value: 2, expected: "got 2.0"},
		{value: -3, expected: "got -3.0"},
		{value: 1e21, expected: "got 1e+21"},
		{value: math.NaN(), expected: "got nan"},
		{value: math.Inf(1), expected: "got inf"},
		{value: math.Inf(-1), expected: "got -inf"},
	}

	for _, tc := range testCases {
		err := &RatioRangeError{Value: tc.value}

		assert.Equal(t, "Ratio must be between 0.0 and 1.0, "+tc.expected, err.Error())
	}
}

func TestPercentages(t *testing.T) {
	testCases := []struct {
		ratio         float64
		first, second int
	}{
		{ratio: 0.5, first: 50, second: 50},
		{ratio: 0.7, first: 70, second: 30},
		{ratio: 0.29, first: 29, second: 71},
		{ratio: 0.333, first: 33, second: 67},
		{ratio: 0.666, first: 67, second: 33},
		{ratio: 0.125, first: 12, second: 88},
		{ratio: 0.375, first: 38, second: 62},
		{ratio: 0, first: 0, second: 100},
		{ratio: 1, first: 100, second: 0},
	}

	for _, tc := range testCases {
		first, second := Percentages(tc.ratio)

		assert.Equal(t, tc.first, first, "ratio %v", tc.ratio)
		assert.Equal(t, tc.second, second, "ratio %v", tc.ratio)
		assert.Equal(t, 100, first+second)
	}
}
