package geometry

import "github.com/gymnarium/visualisers-base/internal/geom"

// Viewport2D is a visible rectangle plus its axis orientation
// convention. The flip flags exist because rendering back-ends disagree
// on whether the Y origin sits top-left or bottom-left (and, rarely, on
// the X direction).
type Viewport2D struct {
	Center       geom.Position2D `json:"center"`
	Size         geom.Size2D     `json:"size"`
	FlippedXAxis bool            `json:"flippedXAxis"`
	FlippedYAxis bool            `json:"flippedYAxis"`
}

// NewViewport2D creates a viewport with both axes unflipped.
func NewViewport2D(center geom.Position2D, size geom.Size2D) Viewport2D {
	return Viewport2D{Center: center, Size: size}
}

// WithFlippedXAxis returns a copy with the X flip flag changed.
func (v Viewport2D) WithFlippedXAxis(flipped bool) Viewport2D {
	v.FlippedXAxis = flipped
	return v
}

// WithFlippedYAxis returns a copy with the Y flip flag changed.
func (v Viewport2D) WithFlippedYAxis(flipped bool) Viewport2D {
	v.FlippedYAxis = flipped
	return v
}

// Viewport2DModification selects how a consumer fits a geometry into its
// target viewport. The fitting itself is the consumer's job; the enum is
// only part of the negotiated contract.
type Viewport2DModification string

const (
	LooseAspectRatio                 Viewport2DModification = "looseAspectRatio"
	KeepAspectRatio                  Viewport2DModification = "keepAspectRatio"
	KeepAspectRatioAndScissorRemains Viewport2DModification = "keepAspectRatioAndScissorRemains"
)
