package cli

import (
	"github.com/swatchfile/swatch/internal/color"
	swerr "github.com/swatchfile/swatch/internal/errors"
)

// resolveRGB turns the color flags into an RGB: either --hex, or all
// three of --r/--g/--b.
func resolveRGB(hex, r, g, b string) (color.RGB, error) {
	if hex != "" {
		if r != "" || g != "" || b != "" {
			return color.RGB{}, swerr.InvalidField("color", "use either --hex or --r/--g/--b, not both")
		}
		return color.ParseHex(hex)
	}

	if r == "" && g == "" && b == "" {
		return color.RGB{}, swerr.InvalidField("color", "a color is required (--hex or --r/--g/--b)")
	}

	rv, err := color.ParseChannel("r", r)
	if err != nil {
		return color.RGB{}, err
	}
	gv, err := color.ParseChannel("g", g)
	if err != nil {
		return color.RGB{}, err
	}
	bv, err := color.ParseChannel("b", b)
	if err != nil {
		return color.RGB{}, err
	}

	return color.RGB{R: rv, G: gv, B: bv}, nil
}
