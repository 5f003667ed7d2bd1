package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/vk/rgbmix/internal/rgb"
)

// Report writes the three result lines to w in a single write:
//
//	Color 1: <color1>
//	Color 2: <color2>
//	Mixed (p1/p2): <mixed>
func Report(w io.Writer, res *Result, format rgb.Mode, preview bool) error {
	line := func(label string, c rgb.Color) string {
		s := label + ": " + rgb.Format(c, format)
		if preview {
			s += " " + swatch(c)
		}
		return s + "\n"
	}

	var b strings.Builder
	b.WriteString(line("Color 1", res.Color1))
	b.WriteString(line("Color 2", res.Color2))
	b.WriteString(line(fmt.Sprintf("Mixed (%d/%d)", res.FirstPercent, res.SecondPercent), res.Mixed))

	_, err := io.WriteString(w, b.String())
	return err
}

// swatch renders the hex code on a background of the color itself, in black
// or white depending on its lightness. Without terminal color support gookit
// strips the escape codes and only the label remains.
func swatch(c rgb.Color) string {
	fg := color.RGB(255, 255, 255)
	if c.IsLight() {
		fg = color.RGB(0, 0, 0)
	}
	bg := color.RGB(c.R, c.G, c.B, true)

	return color.NewRGBStyle(fg, bg).Sprint(" " + c.Hex() + " ")
}
