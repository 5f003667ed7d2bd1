// internal/rgb/parser.go
package rgb

import (
	"errors"
	"strconv"
	"strings"
)

// Parse reads a color from three integers separated by commas, whitespace,
// or any mix of the two, e.g. `255,0,0`, `255 0 0` or `255, 0 0`.
//
// Failures are *InputError values wrapping a *FormatError or *RangeError.
func Parse(s string) (Color, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != len(channelNames) {
		return Color{}, &InputError{Input: s, Err: &FormatError{
			Reason: "RGB color must have exactly 3 components",
		}}
	}

	var values [3]int
	var overflow [3]bool
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		switch {
		case errors.Is(err, strconv.ErrRange):
			// Atoi saturates to the int bounds, which are out of range anyway.
			overflow[i] = true
		case err != nil:
			return Color{}, &InputError{Input: s, Err: &FormatError{
				Token:  part,
				Reason: "invalid integer",
			}}
		}
		values[i] = v
	}

	// Range is checked only after every token parsed, so a non-numeric
	// token wins over an out-of-range one.
	for i, v := range values {
		if v < ChannelMin || v > ChannelMax {
			rangeErr := &RangeError{Channel: channelNames[i], Value: v}
			if overflow[i] {
				rangeErr.Raw = parts[i]
			}
			return Color{}, &InputError{Input: s, Err: rangeErr}
		}
	}

	return fromChannels(values), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
