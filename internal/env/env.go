// Package env defines the contracts between environments that can be
// drawn, the visualisers that draw them, and the agents that act in them.
package env

import (
	"github.com/gymnarium/visualisers-base/internal/geometry"
	"github.com/gymnarium/visualisers-base/internal/pixel"
	"github.com/gymnarium/visualisers-base/internal/style"
)

// DrawableEnvironment is implemented by any environment that wants to be
// visualised.
type DrawableEnvironment interface {
	// SuggestedRenderedStepsPerSecond hints how often the environment
	// should be rendered. ok is false when the environment has no
	// preference.
	SuggestedRenderedStepsPerSecond() (stepsPerSecond float64, ok bool)
}

// TwoDimensionalDrawableEnvironment provides its state as a list of two
// dimensional geometries.
type TwoDimensionalDrawableEnvironment interface {
	DrawableEnvironment

	DrawTwoDimensional() ([]geometry.Geometry, error)
	// PreferredView names the region of the plane the environment wants
	// shown and how the visualiser may adapt it to the window. ok is
	// false when the visualiser should choose.
	PreferredView() (geometry.Viewport2D, geometry.Viewport2DModification, bool)
	PreferredBackgroundColor() (style.Color, bool)
}

// PixelArrayDrawableEnvironment provides its state as a pixel array.
type PixelArrayDrawableEnvironment interface {
	DrawableEnvironment

	DrawPixelArray() (pixel.Array, error)
}

// TextDrawableEnvironment provides its state as plain text.
type TextDrawableEnvironment interface {
	DrawableEnvironment

	DrawText() (string, error)
}

// Visualiser is the base contract for anything that visualises
// environments.
type Visualiser interface {
	IsOpen() bool
	Close() error
}

// TwoDimensionalVisualiser renders two dimensional geometries.
type TwoDimensionalVisualiser interface {
	Visualiser

	RenderTwoDimensional(environment TwoDimensionalDrawableEnvironment) error
}

// PixelArrayVisualiser renders pixel arrays.
type PixelArrayVisualiser interface {
	Visualiser

	RenderPixelArray(environment PixelArrayDrawableEnvironment) error
}

// TextVisualiser renders text.
type TextVisualiser interface {
	Visualiser

	RenderText(environment TextDrawableEnvironment) error
}
