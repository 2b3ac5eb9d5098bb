package geometry

import (
	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

// Compound operations built from AppendTransformation and the bounding
// box queries. They accept and return the Geometry union, so they chain
// across every variant including groups.

// MoveBy translates the geometry by the given displacement.
func MoveBy(g Geometry, distance geom.Vector2D) Geometry {
	return g.AppendTransformation(transform.Translation{Direction: distance})
}

// MoveTo translates the geometry so its bounding-box center lands on the
// given position.
func MoveTo(g Geometry, center geom.Position2D) Geometry {
	return MoveBy(g, CenterOfBoundingBox(g).VectorTo(center))
}

// RotateAround rotates the geometry around an arbitrary pivot by an
// angle in radians.
func RotateAround(g Geometry, pivot geom.Position2D, angle float64) Geometry {
	return g.AppendTransformation(transform.RotationAroundPosition(pivot, angle))
}

// RotateAroundOrigin rotates the geometry around (0, 0).
func RotateAroundOrigin(g Geometry, angle float64) Geometry {
	return RotateAround(g, geom.ZeroPosition(), angle)
}

// RotateAroundSelf rotates the geometry around its own bounding-box
// center.
func RotateAroundSelf(g Geometry, angle float64) Geometry {
	return RotateAround(g, CenterOfBoundingBox(g), angle)
}

// ScalePosition moves the geometry so that the vector from the origin to
// its bounding-box center is scaled by the given factor. The geometry's
// own extent is unchanged.
func ScalePosition(g Geometry, factor float64) Geometry {
	center := CenterOfBoundingBox(g)
	return MoveTo(g, geom.ZeroPosition().Add(geom.ZeroPosition().VectorTo(center).Mul(factor)))
}

// Transform remaps the geometry from one viewport into another by
// appending a single named composition: translate the source center to
// the origin, reflect Y and/or X where the two viewports disagree on
// axis orientation, scale by the per-axis size ratio, translate the
// origin to the target center. The step order is fixed; changing it
// changes visual output.
func Transform(g Geometry, source, target Viewport2D) Geometry {
	ops := []transform.Op{
		transform.Translation{Direction: source.Center.VectorTo(geom.ZeroPosition())},
	}
	if source.FlippedYAxis != target.FlippedYAxis {
		ops = append(ops, transform.ReflectionY{})
	}
	if source.FlippedXAxis != target.FlippedXAxis {
		ops = append(ops, transform.ReflectionX{})
	}
	ops = append(ops,
		transform.Scale{
			XFactor: target.Size.Width / source.Size.Width,
			YFactor: target.Size.Height / source.Size.Height,
		},
		transform.Translation{Direction: geom.ZeroPosition().VectorTo(target.Center)},
	)
	return g.AppendTransformation(transform.Composition{
		Name: "ViewportTransformation",
		Ops:  ops,
	})
}
