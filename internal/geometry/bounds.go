package geometry

import (
	"math"

	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

// MinCorner returns the element-wise minimum over every transformed
// defining vertex of the geometry. A geometry that produces no extent
// (an empty group, polyline or polygon) yields the sentinel
// (+MaxFloat64, +MaxFloat64), which callers must treat as "empty", not
// as a real coordinate.
func MinCorner(g Geometry) geom.Position2D {
	corners := g.transformedCorners()
	if len(corners) == 0 {
		return geom.Pos(math.MaxFloat64, math.MaxFloat64)
	}
	result := corners[0]
	for _, c := range corners[1:] {
		result = geom.Pos(math.Min(result.X, c.X), math.Min(result.Y, c.Y))
	}
	return result
}

// MaxCorner is the element-wise maximum counterpart of MinCorner, with
// sentinel (-MaxFloat64, -MaxFloat64) for empty geometries.
func MaxCorner(g Geometry) geom.Position2D {
	corners := g.transformedCorners()
	if len(corners) == 0 {
		return geom.Pos(-math.MaxFloat64, -math.MaxFloat64)
	}
	result := corners[0]
	for _, c := range corners[1:] {
		result = geom.Pos(math.Max(result.X, c.X), math.Max(result.Y, c.Y))
	}
	return result
}

// CenterOfBoundingBox returns the midpoint of the two extreme corners.
// Recomputed on every call; nothing is cached.
func CenterOfBoundingBox(g Geometry) geom.Position2D {
	maxCorner := MaxCorner(g)
	minCorner := MinCorner(g)
	return geom.Pos(maxCorner.X/2+minCorner.X/2, maxCorner.Y/2+minCorner.Y/2)
}

// SizeOfBoundingBox returns the per-axis extent between the two extreme
// corners.
func SizeOfBoundingBox(g Geometry) geom.Size2D {
	maxCorner := MaxCorner(g)
	minCorner := MinCorner(g)
	return geom.Size(maxCorner.X-minCorner.X, maxCorner.Y-minCorner.Y)
}

func (p Point) transformedCorners() []geom.Position2D {
	return []geom.Position2D{p.Pipeline.Apply(p.Position)}
}

func (l Line) transformedCorners() []geom.Position2D {
	return applyPipeline(l.Pipeline, l.Points[:])
}

func (p Polyline) transformedCorners() []geom.Position2D {
	return applyPipeline(p.Pipeline, p.Points)
}

func (t Triangle) transformedCorners() []geom.Position2D {
	return applyPipeline(t.Pipeline, t.Points[:])
}

func (s Square) transformedCorners() []geom.Position2D {
	return applyPipeline(s.Pipeline, boxCorners(s.Center, geom.Size(s.EdgeLength, s.EdgeLength)))
}

func (r Rectangle) transformedCorners() []geom.Position2D {
	return applyPipeline(r.Pipeline, boxCorners(r.Center, r.Size))
}

func (p Polygon) transformedCorners() []geom.Position2D {
	return applyPipeline(p.Pipeline, p.Points)
}

func (c Circle) transformedCorners() []geom.Position2D {
	return applyPipeline(c.Pipeline, boxCorners(c.Center, geom.Size(2*c.Radius, 2*c.Radius)))
}

func (e Ellipse) transformedCorners() []geom.Position2D {
	return applyPipeline(e.Pipeline, boxCorners(e.Center, e.Size))
}

func (i Image) transformedCorners() []geom.Position2D {
	return applyPipeline(i.Pipeline, boxCorners(i.Center, i.Size))
}

func (g Group) transformedCorners() []geom.Position2D {
	var corners []geom.Position2D
	for _, child := range g.Geometries {
		corners = append(corners, child.transformedCorners()...)
	}
	return corners
}

// boxCorners enumerates the four corners of the axis-aligned box around
// center, before any pipeline is applied.
func boxCorners(center geom.Position2D, size geom.Size2D) []geom.Position2D {
	halfWidth := size.Width / 2
	halfHeight := size.Height / 2
	return []geom.Position2D{
		center.Sub(geom.Vec(halfWidth, halfHeight)),
		center.Sub(geom.Vec(-halfWidth, halfHeight)),
		center.Sub(geom.Vec(-halfWidth, -halfHeight)),
		center.Sub(geom.Vec(halfWidth, -halfHeight)),
	}
}

// applyPipeline folds the pipeline matrix once and pushes every vertex
// through it.
func applyPipeline(p transform.Pipeline, points []geom.Position2D) []geom.Position2D {
	matrix := p.Matrix()
	transformed := make([]geom.Position2D, len(points))
	for i, point := range points {
		transformed[i] = matrix.ApplyPosition(point)
	}
	return transformed
}
