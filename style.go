package verbal

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultLineWidth = 1.0
	defaultFontSize  = 16.0
)

// Style holds the paint properties of a widget. Colors are CSS-style hex
// strings ("#3c40c6" or "#fff"); an empty string disables that paint.
type Style struct {
	Fill      string
	Stroke    string
	LineWidth float64 // 0 means 1
	FontSize  float64 // 0 means 16; text widgets only
	Opacity   float64 // 0 means 1
}

// HasFill reports whether a fill color is set.
func (s Style) HasFill() bool { return s.Fill != "" }

// HasStroke reports whether a stroke color is set.
func (s Style) HasStroke() bool { return s.Stroke != "" }

// lineWidth returns LineWidth with its default applied.
func (s Style) lineWidth() float64 {
	if s.LineWidth <= 0 {
		return defaultLineWidth
	}
	return s.LineWidth
}

// fontSize returns FontSize with its default applied.
func (s Style) fontSize() float64 {
	if s.FontSize <= 0 {
		return defaultFontSize
	}
	return s.FontSize
}

func (s Style) opacity() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// FillColor parses Fill with Opacity applied.
func (s Style) FillColor() (color.NRGBA, error) {
	return parseStyleColor(s.Fill, s.opacity())
}

// StrokeColor parses Stroke with Opacity applied.
func (s Style) StrokeColor() (color.NRGBA, error) {
	return parseStyleColor(s.Stroke, s.opacity())
}

// ParseColor parses a hex color string into an opaque NRGBA.
func ParseColor(hex string) (color.NRGBA, error) {
	return parseStyleColor(hex, 1)
}

func parseStyleColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("verbal: parse color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}
