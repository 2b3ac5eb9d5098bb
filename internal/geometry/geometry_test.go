package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/pixel"
	"github.com/gymnarium/visualisers-base/internal/style"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

func pixelTexture() pixel.Texture {
	return pixel.PathTexture("sprite.png")
}

func TestDefaults(t *testing.T) {
	line := NewLine(geom.Pos(0, 0), geom.Pos(1, 1))
	assert.Equal(t, style.Black(), line.Color)
	assert.Equal(t, 1.0, line.Width)
	assert.Equal(t, style.LineShapeSquare, line.Shape)

	circle := NewCircle(geom.Pos(0, 0), 1)
	assert.Equal(t, style.Black(), circle.Fill)
	assert.Equal(t, style.Transparent(), circle.Border)
	assert.Equal(t, 0.0, circle.BorderWidth)
}

func TestSetterChangesExactlyOneField(t *testing.T) {
	circle := NewCircle(geom.Pos(3, 4), 5)
	recolored := circle.FillColor(style.Red()).(Circle)

	assert.Equal(t, style.Red(), recolored.Fill)
	recolored.Fill = circle.Fill
	assert.Equal(t, circle, recolored)
}

func TestSetterNoOpOnForeignAttribute(t *testing.T) {
	line := NewLine(geom.Pos(0, 0), geom.Pos(10, 0))

	// Lines carry no fill; the request leaves the value untouched.
	assert.Equal(t, Geometry(line), line.FillColor(style.Red()))
	assert.Equal(t, Geometry(line), line.CornerShape(style.RoundCorners(1, 8)))

	point := NewPoint(geom.Pos(1, 1))
	assert.Equal(t, Geometry(point), point.LineOrBorderColor(style.Blue()))
	assert.Equal(t, Geometry(point), point.LineOrBorderWidth(3))
	assert.Equal(t, Geometry(point), point.LineShape(style.LineShapeRound))
}

func TestImageFillColorSetsTint(t *testing.T) {
	img := NewImage(geom.Pos(0, 0), geom.Size(2, 2), pixelTexture())
	tinted := img.FillColor(style.Cyan()).(Image)

	require.NotNil(t, tinted.Tint)
	assert.Equal(t, style.Cyan(), *tinted.Tint)
	assert.Nil(t, img.Tint)
}

func TestGroupSettersRecurse(t *testing.T) {
	group := NewGroup(
		NewCircle(geom.Pos(0, 0), 1),
		NewGroup(NewSquare(geom.Pos(5, 5), 2)),
		NewLine(geom.Pos(0, 0), geom.Pos(1, 0)),
	)

	recolored := group.FillColor(style.Yellow()).(Group)

	assert.Equal(t, style.Yellow(), recolored.Geometries[0].(Circle).Fill)
	inner := recolored.Geometries[1].(Group)
	assert.Equal(t, style.Yellow(), inner.Geometries[0].(Square).Fill)
	// The line is a no-op leaf inside the recursion.
	assert.Equal(t, style.Black(), recolored.Geometries[2].(Line).Color)
}

func TestGroupAppendTransformationReachesChildren(t *testing.T) {
	group := NewGroup(
		NewPoint(geom.Pos(1, 0)),
		NewGroup(NewPoint(geom.Pos(0, 1))),
	)

	moved := group.AppendTransformation(transform.Translation{Direction: geom.Vec(10, 10)}).(Group)

	requirePositionInDelta(t, geom.Pos(11, 10), MinCorner(moved.Geometries[0]))
	inner := moved.Geometries[1].(Group)
	requirePositionInDelta(t, geom.Pos(10, 11), MinCorner(inner))

	// The original tree is untouched.
	requirePositionInDelta(t, geom.Pos(1, 0), MinCorner(group.Geometries[0]))
}

func TestCloneIsolation(t *testing.T) {
	polygon := NewPolygon([]geom.Position2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	cloned := polygon.Clone().(Polygon)

	cloned.Points[0] = geom.Pos(99, 99)
	assert.Equal(t, geom.Pos(0, 0), polygon.Points[0])
}

func TestClonePipelineIsolation(t *testing.T) {
	circle := NewCircle(geom.Pos(0, 0), 1).
		AppendTransformation(transform.Translation{Direction: geom.Vec(1, 0)}).(Circle)
	cloned := circle.Clone().(Circle)

	cloned.Pipeline.Ops[0] = transform.Translation{Direction: geom.Vec(-1, 0)}
	requirePositionInDelta(t, geom.Pos(1, 0), CenterOfBoundingBox(circle))
}

func TestMoveByAndMoveTo(t *testing.T) {
	circle := NewCircle(geom.Pos(0, 0), 1)

	moved := MoveBy(circle, geom.Vec(3, -2))
	requirePositionInDelta(t, geom.Pos(3, -2), CenterOfBoundingBox(moved))

	centered := MoveTo(moved, geom.Pos(-1, -1))
	requirePositionInDelta(t, geom.Pos(-1, -1), CenterOfBoundingBox(centered))
}

func TestRotateAroundSelfKeepsCenter(t *testing.T) {
	rect := NewRectangle(geom.Pos(7, 3), geom.Size(4, 2))
	rotated := RotateAroundSelf(rect, math.Pi/2)

	requirePositionInDelta(t, geom.Pos(7, 3), CenterOfBoundingBox(rotated))
	size := SizeOfBoundingBox(rotated)
	require.InDelta(t, 2.0, size.Width, tolerance)
	require.InDelta(t, 4.0, size.Height, tolerance)
}

func TestScalePosition(t *testing.T) {
	circle := NewCircle(geom.Pos(4, 2), 1)
	scaled := ScalePosition(circle, 2)

	requirePositionInDelta(t, geom.Pos(8, 4), CenterOfBoundingBox(scaled))
	// Extent is unchanged, only the position scales.
	size := SizeOfBoundingBox(scaled)
	require.InDelta(t, 2.0, size.Width, tolerance)
}

func TestViewportTransform(t *testing.T) {
	source := NewViewport2D(geom.Pos(0, 0), geom.Size(10, 10))
	target := NewViewport2D(geom.Pos(100, 100), geom.Size(20, 20))

	point := NewPoint(geom.Pos(5, 5))
	mapped := Transform(point, source, target)

	// The source corner lands on the target corner.
	requirePositionInDelta(t, geom.Pos(110, 110), CenterOfBoundingBox(mapped))
}

func TestViewportTransformFlipsAxes(t *testing.T) {
	source := NewViewport2D(geom.Pos(0, 0), geom.Size(10, 10))
	target := NewViewport2D(geom.Pos(0, 0), geom.Size(10, 10)).WithFlippedYAxis(true)

	point := NewPoint(geom.Pos(3, 4))
	mapped := Transform(point, source, target)

	requirePositionInDelta(t, geom.Pos(3, -4), CenterOfBoundingBox(mapped))
}

func TestViewportTransformRoundTrip(t *testing.T) {
	source := NewViewport2D(geom.Pos(2, -1), geom.Size(8, 6)).WithFlippedYAxis(true)
	target := NewViewport2D(geom.Pos(50, 40), geom.Size(16, 24))

	point := NewPoint(geom.Pos(3, 2))
	back := Transform(Transform(point, source, target), target, source)

	requirePositionInDelta(t, geom.Pos(3, 2), CenterOfBoundingBox(back))
}
