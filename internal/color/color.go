package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	swerr "github.com/swatchfile/swatch/internal/errors"
)

var hexDigits = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// RGB represents a color as integer channels. Channels are kept in [0,255]
// by construction everywhere in the store; Clamped is the normalization
// step applied to anything arriving from the outside.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a derived representation: hue in degrees, saturation and
// lightness as rounded percentages.
type HSL struct {
	H int
	S int
	L int
}

// CMYK is a derived representation with all components as rounded
// percentages.
type CMYK struct {
	C int
	M int
	Y int
	K int
}

// ClampChannel clamps a channel value into [0,255] and rounds it to the
// nearest integer.
func ClampChannel(v float64) int {
	return int(math.Round(math.Min(255, math.Max(0, v))))
}

// Clamped returns a copy of the color with every channel clamped into
// [0,255].
func (c RGB) Clamped() RGB {
	return RGB{
		R: ClampChannel(float64(c.R)),
		G: ClampChannel(float64(c.G)),
		B: ClampChannel(float64(c.B)),
	}
}

// Hex returns the color as a lowercase hex string with leading #,
// e.g. "#ff5a5a".
func (c RGB) Hex() string {
	n := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// String returns the color in rgb() function format, e.g. "rgb(255, 90, 90)".
func (c RGB) String() string {
	n := c.Clamped()
	return fmt.Sprintf("rgb(%d, %d, %d)", n.R, n.G, n.B)
}

// HSL converts the color to hue/saturation/lightness.
func (c RGB) HSL() HSL {
	n := c.Clamped()
	r, g, b := float64(n.R)/255.0, float64(n.G)/255.0, float64(n.B)/255.0

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l := (max + min) / 2.0

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6.0
			}
		case g:
			h = (b-r)/d + 2.0
		case b:
			h = (r-g)/d + 4.0
		}
		h /= 6.0
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// String returns the hsl() function format, e.g. "hsl(0, 100%, 68%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// CMYK converts the color to cyan/magenta/yellow/key.
func (c RGB) CMYK() CMYK {
	n := c.Clamped()
	r, g, b := float64(n.R)/255.0, float64(n.G)/255.0, float64(n.B)/255.0

	k := 1.0 - math.Max(math.Max(r, g), b)

	// Pure black: the c/m/y denominator would be zero.
	if k == 1.0 {
		return CMYK{K: 100}
	}

	cy := (1.0 - r - k) / (1.0 - k)
	m := (1.0 - g - k) / (1.0 - k)
	y := (1.0 - b - k) / (1.0 - k)

	return CMYK{
		C: int(math.Round(cy * 100)),
		M: int(math.Round(m * 100)),
		Y: int(math.Round(y * 100)),
		K: int(math.Round(k * 100)),
	}
}

// String returns the cmyk() function format, e.g. "cmyk(0%, 65%, 65%, 0%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// ParseHex parses a hex color string like "#ff5a5a" or the shorthand "#f5a"
// into an RGB. The leading # is optional. Shorthand digits are duplicated
// (F -> FF) before parsing.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if !hexDigits.MatchString(raw) {
		return RGB{}, swerr.InvalidField("hex", fmt.Sprintf("%q contains non-hex digits", s))
	}

	switch len(raw) {
	case 3:
		var b strings.Builder
		for _, r := range raw {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		raw = b.String()
	case 6:
		// Parsed as-is.
	default:
		return RGB{}, swerr.InvalidField("hex", fmt.Sprintf("%q must be 3 or 6 hex digits", s))
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(raw), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, swerr.InvalidField("hex", fmt.Sprintf("invalid hex color %q: %v", s, err))
	}

	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}
