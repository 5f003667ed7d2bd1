// internal/rgb/mixer.go
package rgb

import "math"

// ValidateRatio checks that r is a usable mix ratio.
func ValidateRatio(r float64) error {
	if math.IsNaN(r) || r < 0.0 || r > 1.0 {
		return &RatioRangeError{Value: r}
	}
	return nil
}

// Mix blends c1 and c2 linearly. ratio is the weight of c1: 1.0 yields c1,
// 0.0 yields c2. Fractional results are truncated toward zero, then clamped.
// The caller is expected to have passed ratio through ValidateRatio.
func Mix(c1, c2 Color, ratio float64) Color {
	a, b := c1.Channels(), c2.Channels()

	var mixed [3]int
	for i := range mixed {
		mixed[i] = clamp(mixChannel(a[i], b[i], ratio), ChannelMin, ChannelMax)
	}
	return fromChannels(mixed)
}

func mixChannel(a, b uint8, ratio float64) int {
	if a == b {
		return int(a)
	}
	return int(float64(a)*ratio + float64(b)*(1-ratio))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Percentages splits ratio into whole-percent contributions that always sum
// to 100. The split is for display only and is rounded half to even, not
// truncated.
func Percentages(ratio float64) (first, second int) {
	first = int(math.RoundToEven(ratio * 100))
	return first, 100 - first
}
