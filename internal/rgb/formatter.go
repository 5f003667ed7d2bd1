// internal/rgb/formatter.go
package rgb

import (
	"fmt"
	"strings"
)

// Mode selects how a Color is rendered.
type Mode string

const (
	ModeRGB  Mode = "rgb"
	ModeHex  Mode = "hex"
	ModeBoth Mode = "both"
)

// Modes lists every supported Mode in help-text order.
var Modes = []Mode{ModeRGB, ModeHex, ModeBoth}

// ParseMode validates a user-supplied format name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeRGB, ModeHex, ModeBoth:
		return m, nil
	}
	return "", fmt.Errorf("invalid format %q: must be 'rgb', 'hex', or 'both'", s)
}

// Format renders c in the requested mode. Unknown modes fall back to ModeBoth.
func Format(c Color, m Mode) string {
	switch m {
	case ModeRGB:
		return c.Tuple()
	case ModeHex:
		return c.Hex()
	default:
		return c.Tuple() + " - " + c.Hex()
	}
}
