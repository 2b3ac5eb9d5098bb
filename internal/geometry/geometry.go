// Package geometry models the drawable scene description exchanged
// between environment producers and visualiser consumers: a tagged,
// recursive set of shape variants, each carrying its own style attributes
// and transform pipeline.
//
// All values are immutable by convention. Builder-style setters consume
// the receiver and return a new value with exactly one field changed;
// setters that do not apply to a variant return the input unchanged
// rather than signaling an error. Groups own their children by value, so
// a geometry tree is always acyclic with a single owner per node.
package geometry

import (
	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/pixel"
	"github.com/gymnarium/visualisers-base/internal/style"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

// Geometry is the sealed union of drawable primitives. The concrete
// variants are Point, Line, Polyline, Triangle, Square, Rectangle,
// Polygon, Circle, Ellipse, Image and Group.
type Geometry interface {
	// FillColor returns a copy with the fill (or point) color changed.
	// No-op on line variants.
	FillColor(c style.Color) Geometry
	// LineOrBorderColor returns a copy with the line or border color
	// changed. No-op on points.
	LineOrBorderColor(c style.Color) Geometry
	// LineOrBorderWidth returns a copy with the line or border width
	// changed. No-op on points.
	LineOrBorderWidth(w float64) Geometry
	// LineShape returns a copy with the line end shape changed. Only
	// lines and polylines carry one; a no-op everywhere else.
	LineShape(s style.LineShape) Geometry
	// CornerShape returns a copy with the corner shape changed. Only
	// squares and rectangles carry one; a no-op everywhere else.
	CornerShape(s style.CornerShape) Geometry
	// AppendTransformation returns a copy whose pipeline applies op after
	// all existing ops. On a Group the op is pushed into every child's
	// own pipeline; there is no group-level pipeline.
	AppendTransformation(op transform.Op) Geometry
	// Clone returns a deep copy sharing no mutable storage with the
	// receiver.
	Clone() Geometry

	// transformedCorners enumerates the defining vertices of the
	// geometry after its own pipeline, recursively for groups.
	transformedCorners() []geom.Position2D

	geometryType() string
}

// Point is a single colored position.
type Point struct {
	Position geom.Position2D
	Color    style.Color
	Pipeline transform.Pipeline
}

// Line is a straight segment between two positions.
type Line struct {
	Points   [2]geom.Position2D
	Color    style.Color
	Width    float64
	Shape    style.LineShape
	Pipeline transform.Pipeline
}

// Polyline is an open run of connected segments.
type Polyline struct {
	Points   []geom.Position2D
	Color    style.Color
	Width    float64
	Shape    style.LineShape
	Pipeline transform.Pipeline
}

// Triangle is a filled three-corner polygon.
type Triangle struct {
	Points      [3]geom.Position2D
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Pipeline    transform.Pipeline
}

// Square is an axis-aligned square given by center and edge length.
type Square struct {
	Center      geom.Position2D
	EdgeLength  float64
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Corners     style.CornerShape
	Pipeline    transform.Pipeline
}

// Rectangle is an axis-aligned rectangle given by center and size.
type Rectangle struct {
	Center      geom.Position2D
	Size        geom.Size2D
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Corners     style.CornerShape
	Pipeline    transform.Pipeline
}

// Polygon is a closed filled shape over an ordered point list.
type Polygon struct {
	Points      []geom.Position2D
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Pipeline    transform.Pipeline
}

// Circle is given by center and radius.
type Circle struct {
	Center      geom.Position2D
	Radius      float64
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Pipeline    transform.Pipeline
}

// Ellipse is an axis-aligned ellipse given by center and size.
type Ellipse struct {
	Center      geom.Position2D
	Size        geom.Size2D
	Fill        style.Color
	Border      style.Color
	BorderWidth float64
	Pipeline    transform.Pipeline
}

// TextureRegion selects a sub-rectangle of a texture, in texture
// coordinates.
type TextureRegion struct {
	Min  geom.Position2D `json:"min"`
	Size geom.Size2D     `json:"size"`
}

// Image places a texture reference on an axis-aligned rectangle. The
// texture bytes are opaque here; SourceRegion and Tint are optional
// hints for the consumer.
type Image struct {
	Center       geom.Position2D
	Size         geom.Size2D
	Texture      pixel.Texture
	SourceRegion *TextureRegion
	Tint         *style.Color
	Pipeline     transform.Pipeline
}

// Group is an ordered collection of child geometries, each independently
// transformable. Groups nest arbitrarily.
type Group struct {
	Geometries []Geometry
}

// NewPoint creates a point at the given position.
//
// Defaults: color black.
func NewPoint(position geom.Position2D) Point {
	return Point{Position: position, Color: style.Black()}
}

// NewLine creates a line between the given positions.
//
// Defaults: color black, width 1, square ends.
func NewLine(start, end geom.Position2D) Line {
	return Line{
		Points: [2]geom.Position2D{start, end},
		Color:  style.Black(),
		Width:  1,
		Shape:  style.LineShapeSquare,
	}
}

// NewPolyline creates a polyline over the given positions.
//
// Defaults: color black, width 1, square ends.
func NewPolyline(points []geom.Position2D) Polyline {
	return Polyline{
		Points: points,
		Color:  style.Black(),
		Width:  1,
		Shape:  style.LineShapeSquare,
	}
}

// NewTriangle creates a triangle over the given three positions.
//
// Defaults: black fill, transparent zero-width border.
func NewTriangle(a, b, c geom.Position2D) Triangle {
	return Triangle{
		Points: [3]geom.Position2D{a, b, c},
		Fill:   style.Black(),
		Border: style.Transparent(),
	}
}

// NewSquare creates a square from center position and edge length.
//
// Defaults: black fill, transparent zero-width border, square corners.
func NewSquare(center geom.Position2D, edgeLength float64) Square {
	return Square{
		Center:     center,
		EdgeLength: edgeLength,
		Fill:       style.Black(),
		Border:     style.Transparent(),
		Corners:    style.SquareCorners(),
	}
}

// NewRectangle creates a rectangle from center position and size.
//
// Defaults: black fill, transparent zero-width border, square corners.
func NewRectangle(center geom.Position2D, size geom.Size2D) Rectangle {
	return Rectangle{
		Center:  center,
		Size:    size,
		Fill:    style.Black(),
		Border:  style.Transparent(),
		Corners: style.SquareCorners(),
	}
}

// NewPolygon creates a polygon over the given positions.
//
// Defaults: black fill, transparent zero-width border.
func NewPolygon(points []geom.Position2D) Polygon {
	return Polygon{
		Points: points,
		Fill:   style.Black(),
		Border: style.Transparent(),
	}
}

// NewCircle creates a circle from center position and radius.
//
// Defaults: black fill, transparent zero-width border.
func NewCircle(center geom.Position2D, radius float64) Circle {
	return Circle{
		Center: center,
		Radius: radius,
		Fill:   style.Black(),
		Border: style.Transparent(),
	}
}

// NewEllipse creates an ellipse from center position and size.
//
// Defaults: black fill, transparent zero-width border.
func NewEllipse(center geom.Position2D, size geom.Size2D) Ellipse {
	return Ellipse{
		Center: center,
		Size:   size,
		Fill:   style.Black(),
		Border: style.Transparent(),
	}
}

// NewImage creates an image node from center position, size and texture
// reference.
func NewImage(center geom.Position2D, size geom.Size2D, texture pixel.Texture) Image {
	return Image{Center: center, Size: size, Texture: texture}
}

// NewGroup creates a group over the given geometries.
func NewGroup(geometries ...Geometry) Group {
	return Group{Geometries: geometries}
}

func (Point) geometryType() string     { return "point" }
func (Line) geometryType() string      { return "line" }
func (Polyline) geometryType() string  { return "polyline" }
func (Triangle) geometryType() string  { return "triangle" }
func (Square) geometryType() string    { return "square" }
func (Rectangle) geometryType() string { return "rectangle" }
func (Polygon) geometryType() string   { return "polygon" }
func (Circle) geometryType() string    { return "circle" }
func (Ellipse) geometryType() string   { return "ellipse" }
func (Image) geometryType() string     { return "image" }
func (Group) geometryType() string     { return "group" }
