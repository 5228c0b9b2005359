package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidStyle is returned for unrecognized line or marker options.
var ErrInvalidStyle = errors.New("invalid style")

// LineStyle configures the faint line connecting consecutive points.
type LineStyle struct {
	// Dash is "-" (solid), "--" (dashed) or ":" (dotted).
	Dash string `yaml:"dash"`
	// Color is a palette token ("C0".."C9"), a "#rrggbb" value or a
	// basic color name.
	Color string `yaml:"color"`
	// Alpha is the opacity against the background, in [0, 1].
	Alpha float64 `yaml:"alpha"`
}

// MarkerStyle configures the scatter markers.
type MarkerStyle struct {
	// Shape is one of "o", ".", "x", "+", "s".
	Shape string `yaml:"shape"`
	// Fill is "none" for hollow markers or any color token for solid ones.
	Fill string `yaml:"fill"`
}

// DefaultLineStyle is a solid gray line at 30% opacity.
func DefaultLineStyle() LineStyle {
	return LineStyle{Dash: "-", Color: "gray", Alpha: 0.3}
}

// DefaultMarkerStyle is a hollow circle.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{Shape: "o", Fill: "none"}
}

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"grey":   "#808080",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"orange": "#ffa500",
	"purple": "#800080",
	"cyan":   "#00ffff",
}

type markerGlyphs struct{ hollow, solid rune }

var markerShapes = map[string]markerGlyphs{
	"o": {'○', '●'},
	".": {'·', '·'},
	"x": {'×', '×'},
	"+": {'+', '+'},
	"s": {'□', '■'},
}

// Validate checks that every option is recognized.
func (s LineStyle) Validate(p labels.Palette) error {
	switch s.Dash {
	case "-", "--", ":":
	default:
		return fmt.Errorf("%w: line dash %q", ErrInvalidStyle, s.Dash)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return fmt.Errorf("%w: line alpha %v outside [0, 1]", ErrInvalidStyle, s.Alpha)
	}
	if _, err := resolveColor(s.Color, p); err != nil {
		return fmt.Errorf("%w: line color: %v", ErrInvalidStyle, err)
	}
	return nil
}

// Validate checks that every option is recognized.
func (s MarkerStyle) Validate(p labels.Palette) error {
	if _, ok := markerShapes[s.Shape]; !ok {
		return fmt.Errorf("%w: marker shape %q", ErrInvalidStyle, s.Shape)
	}
	if s.Fill == "none" {
		return nil
	}
	if _, err := resolveColor(s.Fill, p); err != nil {
		return fmt.Errorf("%w: marker fill: %v", ErrInvalidStyle, err)
	}
	return nil
}

// glyph returns the marker rune.
func (s MarkerStyle) glyph() rune {
	g := markerShapes[s.Shape]
	if s.Fill == "none" {
		return g.hollow
	}
	return g.solid
}

// resolveColor turns a color token into a "#rrggbb" string.
func resolveColor(token string, p labels.Palette) (string, error) {
	t := strings.TrimSpace(strings.ToLower(token))
	if len(t) == 2 && t[0] == 'c' && t[1] >= '0' && t[1] <= '9' {
		return string(p[t[1]-'0']), nil
	}
	if hex, ok := namedColors[t]; ok {
		return hex, nil
	}
	if _, err := colorful.Hex(t); err != nil {
		return "", fmt.Errorf("unknown color %q", token)
	}
	return t, nil
}

// blend mixes fg over bg with the given opacity.
func blend(fg, bg string, alpha float64) string {
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return f.BlendRgb(b, 1-alpha).Clamped().Hex()
}
