// internal/rgb/errors.go
package rgb

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatError reports a color string with the wrong shape: a bad token
// count or a token that is not a base-10 integer.
type FormatError struct {
	Token  string // offending token; empty when the token count is wrong
	Reason string
}

func (e *FormatError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Token)
}

// RangeError reports a channel value outside 0-255.
type RangeError struct {
	Channel string // "R", "G" or "B"
	Value   int    // saturated to the int bounds when Raw is set
	Raw     string // the token as typed, set only when it overflows int
}

func (e *RangeError) Error() string {
	value := strconv.Itoa(e.Value)
	if e.Raw != "" {
		value = e.Raw
	}
	return fmt.Sprintf("%s value %s out of range (%d-%d)", e.Channel, value, ChannelMin, ChannelMax)
}

// RatioRangeError reports a mix ratio outside [0.0, 1.0].
type RatioRangeError struct {
	Value float64
}

func (e *RatioRangeError) Error() string {
	return "Ratio must be between 0.0 and 1.0, got " + formatRatio(e.Value)
}

// formatRatio prints a float the way users type it: whole numbers keep a
// trailing ".0", non-finite values are lowercase.
func formatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// InputError ties a parse failure to the full string that failed.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Invalid RGB format '%s': %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
