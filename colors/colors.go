package colors

// package colors contains a renderer-independent Color type, functions to quickly generate Colors by name (i.e. "White()",
// "SkyBlue()", etc), and Parse to read colors written in configuration files.

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Color is an RGBA color with each component ranging from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// New creates a new Color.
func New(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transparent generates a Color instance of the provided name.
func Transparent() Color {
	return New(0, 0, 0, 0)
}

// White generates a Color instance of the provided name.
func White() Color {
	return New(1, 1, 1, 1)
}

// Black generates a Color instance of the provided name.
func Black() Color {
	return New(0, 0, 0, 1)
}

// Gray generates a Color instance of the provided name.
func Gray() Color {
	return New(0.5, 0.5, 0.5, 1)
}

// LightGray generates a Color instance of the provided name.
func LightGray() Color {
	return New(0.8, 0.8, 0.8, 1)
}

// Red generates a Color instance of the provided name.
func Red() Color {
	return New(1, 0, 0, 1)
}

// SkyBlue generates a Color instance of the provided name.
func SkyBlue() Color {
	return New(0, 0.5, 1, 1)
}

// Parse reads a color from a string. It accepts CSS / SVG color names ("white", "skyblue") and hex notation
// ("#aaaaff" or the short "#aaf").
func Parse(s string) (Color, error) {

	s = strings.ToLower(strings.TrimSpace(s))

	if s == "" {
		return Color{}, errors.New("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, errors.Wrapf(err, "parsing color %q", s)
		}
		return fromColorful(c, 1), nil
	}

	if s == "transparent" {
		return Transparent(), nil
	}

	named, ok := colornames.Map[s]
	if !ok {
		return Color{}, errors.Errorf("unknown color name %q", s)
	}

	c, _ := colorful.MakeColor(named)
	return fromColorful(c, float32(named.A)/255), nil

}

// MustParse is like Parse, but panics if the string isn't a valid color.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color, alpha float32) Color {
	return New(float32(c.R), float32(c.G), float32(c.B), alpha)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Mix blends the color toward other by t (0 is all c, 1 is all other).
func (c Color) Mix(other Color, t float64) Color {
	mixed := c.colorful().BlendRgb(other.colorful(), t)
	alpha := c.A + (other.A-c.A)*float32(t)
	return fromColorful(mixed, alpha)
}

// Scale multiplies the color's RGB components by factor, leaving alpha untouched.
func (c Color) Scale(factor float32) Color {
	return New(c.R*factor, c.G*factor, c.B*factor, c.A)
}

// NRGBA converts the color to a standard library color, clamping each component to its range.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Hex returns the color's RGB components in "#rrggbb" notation.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}
