// Package style holds the pure value types that decorate geometry nodes:
// RGBA colors with named presets, and line/corner shape descriptors.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a classic four-channel 8-bit RGBA value.
type Color struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
	Alpha uint8 `json:"alpha"`
}

// RGBA builds a color from explicit channel values.
func RGBA(red, green, blue, alpha uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, Alpha: alpha}
}

func Transparent() Color { return Color{} }
func White() Color       { return Color{Red: 255, Green: 255, Blue: 255, Alpha: 255} }
func Black() Color       { return Color{Alpha: 255} }
func Red() Color         { return Color{Red: 255, Alpha: 255} }
func Green() Color       { return Color{Green: 255, Alpha: 255} }
func Blue() Color        { return Color{Blue: 255, Alpha: 255} }
func Yellow() Color      { return Color{Red: 255, Green: 255, Alpha: 255} }
func Cyan() Color        { return Color{Green: 255, Blue: 255, Alpha: 255} }
func Magenta() Color     { return Color{Red: 255, Blue: 255, Alpha: 255} }

// FloatArray returns the normalized 0..1 channel view in RGBA order, the
// layout rendering back-ends typically feed to a GPU.
func (c Color) FloatArray() [4]float32 {
	return [4]float32{
		float32(c.Red) / 255,
		float32(c.Green) / 255,
		float32(c.Blue) / 255,
		float32(c.Alpha) / 255,
	}
}

// Hex returns the color as a "#rrggbb" string. Alpha is dropped.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// ParseHex parses a "#rrggbb" string into a fully opaque color.
func ParseHex(hex string) (Color, error) {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := parsed.RGB255()
	return Color{Red: r, Green: g, Blue: b, Alpha: 255}, nil
}

// FromHSV builds a fully opaque color from hue (degrees, 0..360),
// saturation and value (both 0..1).
func FromHSV(hue, saturation, value float64) Color {
	r, g, b := colorful.Hsv(hue, saturation, value).RGB255()
	return Color{Red: r, Green: g, Blue: b, Alpha: 255}
}

// Blend interpolates towards other in RGB space. The alpha channel is
// interpolated linearly on its own.
func (c Color) Blend(other Color, t float64) Color {
	blended := c.colorful().BlendRgb(other.colorful(), t)
	r, g, b := blended.RGB255()
	alpha := float64(c.Alpha) + (float64(other.Alpha)-float64(c.Alpha))*t
	return Color{Red: r, Green: g, Blue: b, Alpha: uint8(alpha + 0.5)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}
}
