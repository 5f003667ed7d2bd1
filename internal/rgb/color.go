// internal/rgb/color.go
package rgb

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel bounds, inclusive.
const (
	ChannelMin = 0
	ChannelMax = 255
)

// channelNames labels the channels in positional order.
var channelNames = [3]string{"R", "G", "B"}

// Color is an immutable 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

// New builds a Color from three channel values.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Equal reports whether both colors carry the same channels.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Channels returns the channels in R, G, B order.
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Tuple renders the color as `RGB(r, g, b)`.
func (c Color) Tuple() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as `#RRGGBB` with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the combined representation.
func (c Color) String() string {
	return Format(c, ModeBoth)
}

// Colorful converts the color into go-colorful's float representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / ChannelMax,
		G: float64(c.G) / ChannelMax,
		B: float64(c.B) / ChannelMax,
	}
}

// IsLight reports whether the color's CIE L* lightness is above the midpoint.
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.5
}

// fromChannels narrows three already range-checked values into a Color.
func fromChannels(v [3]int) Color {
	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}
}
