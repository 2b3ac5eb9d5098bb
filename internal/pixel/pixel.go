// Package pixel carries the raw pixel-buffer values exchanged with
// visualisers that render pixel arrays instead of vector geometry, plus
// the opaque texture references embedded in image geometry nodes.
package pixel

import "fmt"

// Pixel is a single three-channel 8-bit RGB value.
type Pixel struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

func RGB(red, green, blue uint8) Pixel {
	return Pixel{Red: red, Green: green, Blue: blue}
}

func White() Pixel   { return Pixel{Red: 255, Green: 255, Blue: 255} }
func Black() Pixel   { return Pixel{} }
func Red() Pixel     { return Pixel{Red: 255} }
func Green() Pixel   { return Pixel{Green: 255} }
func Blue() Pixel    { return Pixel{Blue: 255} }
func Yellow() Pixel  { return Pixel{Red: 255, Green: 255} }
func Cyan() Pixel    { return Pixel{Green: 255, Blue: 255} }
func Magenta() Pixel { return Pixel{Red: 255, Blue: 255} }

// Array is a row-major pixel buffer of Width x Height pixels.
type Array struct {
	Data   []Pixel `json:"data"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// NewArray allocates a zeroed (black) buffer of the given dimensions.
func NewArray(width, height int) Array {
	return Array{
		Data:   make([]Pixel, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the pixel at (x, y).
func (a Array) At(x, y int) (Pixel, error) {
	if x < 0 || x >= a.Width || y < 0 || y >= a.Height {
		return Pixel{}, fmt.Errorf("pixel index (%d, %d) out of bounds %dx%d", x, y, a.Width, a.Height)
	}
	return a.Data[y*a.Width+x], nil
}

// Set writes the pixel at (x, y).
func (a Array) Set(x, y int, p Pixel) error {
	if x < 0 || x >= a.Width || y < 0 || y >= a.Height {
		return fmt.Errorf("pixel index (%d, %d) out of bounds %dx%d", x, y, a.Width, a.Height)
	}
	a.Data[y*a.Width+x] = p
	return nil
}
