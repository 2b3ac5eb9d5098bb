package geometry

import (
	"github.com/gymnarium/visualisers-base/internal/style"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

// Setters follow a silent no-op policy: requesting an attribute a variant
// does not carry returns the value unchanged. Group setters recurse into
// every child.

func (p Point) FillColor(c style.Color) Geometry {
	p.Color = c
	return p
}

func (l Line) FillColor(style.Color) Geometry { return l }

func (p Polyline) FillColor(style.Color) Geometry { return p }

func (t Triangle) FillColor(c style.Color) Geometry {
	t.Fill = c
	return t
}

func (s Square) FillColor(c style.Color) Geometry {
	s.Fill = c
	return s
}

func (r Rectangle) FillColor(c style.Color) Geometry {
	r.Fill = c
	return r
}

func (p Polygon) FillColor(c style.Color) Geometry {
	p.Fill = c
	return p
}

func (c Circle) FillColor(col style.Color) Geometry {
	c.Fill = col
	return c
}

func (e Ellipse) FillColor(c style.Color) Geometry {
	e.Fill = c
	return e
}

// FillColor tints the image; the texture itself is untouched.
func (i Image) FillColor(c style.Color) Geometry {
	i.Tint = &c
	return i
}

func (g Group) FillColor(c style.Color) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.FillColor(c) })
}

func (p Point) LineOrBorderColor(style.Color) Geometry { return p }

func (l Line) LineOrBorderColor(c style.Color) Geometry {
	l.Color = c
	return l
}

func (p Polyline) LineOrBorderColor(c style.Color) Geometry {
	p.Color = c
	return p
}

func (t Triangle) LineOrBorderColor(c style.Color) Geometry {
	t.Border = c
	return t
}

func (s Square) LineOrBorderColor(c style.Color) Geometry {
	s.Border = c
	return s
}

func (r Rectangle) LineOrBorderColor(c style.Color) Geometry {
	r.Border = c
	return r
}

func (p Polygon) LineOrBorderColor(c style.Color) Geometry {
	p.Border = c
	return p
}

func (c Circle) LineOrBorderColor(col style.Color) Geometry {
	c.Border = col
	return c
}

func (e Ellipse) LineOrBorderColor(c style.Color) Geometry {
	e.Border = c
	return e
}

func (i Image) LineOrBorderColor(style.Color) Geometry { return i }

func (g Group) LineOrBorderColor(c style.Color) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.LineOrBorderColor(c) })
}

func (p Point) LineOrBorderWidth(float64) Geometry { return p }

func (l Line) LineOrBorderWidth(w float64) Geometry {
	l.Width = w
	return l
}

func (p Polyline) LineOrBorderWidth(w float64) Geometry {
	p.Width = w
	return p
}

func (t Triangle) LineOrBorderWidth(w float64) Geometry {
	t.BorderWidth = w
	return t
}

func (s Square) LineOrBorderWidth(w float64) Geometry {
	s.BorderWidth = w
	return s
}

func (r Rectangle) LineOrBorderWidth(w float64) Geometry {
	r.BorderWidth = w
	return r
}

func (p Polygon) LineOrBorderWidth(w float64) Geometry {
	p.BorderWidth = w
	return p
}

func (c Circle) LineOrBorderWidth(w float64) Geometry {
	c.BorderWidth = w
	return c
}

func (e Ellipse) LineOrBorderWidth(w float64) Geometry {
	e.BorderWidth = w
	return e
}

func (i Image) LineOrBorderWidth(float64) Geometry { return i }

func (g Group) LineOrBorderWidth(w float64) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.LineOrBorderWidth(w) })
}

func (p Point) LineShape(style.LineShape) Geometry { return p }

func (l Line) LineShape(s style.LineShape) Geometry {
	l.Shape = s
	return l
}

func (p Polyline) LineShape(s style.LineShape) Geometry {
	p.Shape = s
	return p
}

func (t Triangle) LineShape(style.LineShape) Geometry  { return t }
func (s Square) LineShape(style.LineShape) Geometry    { return s }
func (r Rectangle) LineShape(style.LineShape) Geometry { return r }
func (p Polygon) LineShape(style.LineShape) Geometry   { return p }
func (c Circle) LineShape(style.LineShape) Geometry    { return c }
func (e Ellipse) LineShape(style.LineShape) Geometry   { return e }
func (i Image) LineShape(style.LineShape) Geometry     { return i }

func (g Group) LineShape(s style.LineShape) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.LineShape(s) })
}

func (p Point) CornerShape(style.CornerShape) Geometry    { return p }
func (l Line) CornerShape(style.CornerShape) Geometry     { return l }
func (p Polyline) CornerShape(style.CornerShape) Geometry { return p }
func (t Triangle) CornerShape(style.CornerShape) Geometry { return t }

func (s Square) CornerShape(c style.CornerShape) Geometry {
	s.Corners = c
	return s
}

func (r Rectangle) CornerShape(c style.CornerShape) Geometry {
	r.Corners = c
	return r
}

func (p Polygon) CornerShape(style.CornerShape) Geometry { return p }
func (c Circle) CornerShape(style.CornerShape) Geometry  { return c }
func (e Ellipse) CornerShape(style.CornerShape) Geometry { return e }
func (i Image) CornerShape(style.CornerShape) Geometry   { return i }

func (g Group) CornerShape(c style.CornerShape) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.CornerShape(c) })
}

func (p Point) AppendTransformation(op transform.Op) Geometry {
	p.Pipeline = p.Pipeline.Append(op)
	return p
}

func (l Line) AppendTransformation(op transform.Op) Geometry {
	l.Pipeline = l.Pipeline.Append(op)
	return l
}

func (p Polyline) AppendTransformation(op transform.Op) Geometry {
	p.Pipeline = p.Pipeline.Append(op)
	return p
}

func (t Triangle) AppendTransformation(op transform.Op) Geometry {
	t.Pipeline = t.Pipeline.Append(op)
	return t
}

func (s Square) AppendTransformation(op transform.Op) Geometry {
	s.Pipeline = s.Pipeline.Append(op)
	return s
}

func (r Rectangle) AppendTransformation(op transform.Op) Geometry {
	r.Pipeline = r.Pipeline.Append(op)
	return r
}

func (p Polygon) AppendTransformation(op transform.Op) Geometry {
	p.Pipeline = p.Pipeline.Append(op)
	return p
}

func (c Circle) AppendTransformation(op transform.Op) Geometry {
	c.Pipeline = c.Pipeline.Append(op)
	return c
}

func (e Ellipse) AppendTransformation(op transform.Op) Geometry {
	e.Pipeline = e.Pipeline.Append(op)
	return e
}

func (i Image) AppendTransformation(op transform.Op) Geometry {
	i.Pipeline = i.Pipeline.Append(op)
	return i
}

// AppendTransformation pushes the op into each child's own pipeline.
func (g Group) AppendTransformation(op transform.Op) Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.AppendTransformation(op) })
}

func (g Group) mapChildren(f func(Geometry) Geometry) Group {
	children := make([]Geometry, len(g.Geometries))
	for i, child := range g.Geometries {
		children[i] = f(child)
	}
	return Group{Geometries: children}
}
