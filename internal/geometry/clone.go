package geometry

import "github.com/gymnarium/visualisers-base/internal/geom"

// Clone implementations deep-copy every slice-backed field so that no
// mutable storage is shared between the copy and the original.

func (p Point) Clone() Geometry {
	p.Pipeline = p.Pipeline.Clone()
	return p
}

func (l Line) Clone() Geometry {
	l.Pipeline = l.Pipeline.Clone()
	return l
}

func (p Polyline) Clone() Geometry {
	p.Points = clonePoints(p.Points)
	p.Pipeline = p.Pipeline.Clone()
	return p
}

func (t Triangle) Clone() Geometry {
	t.Pipeline = t.Pipeline.Clone()
	return t
}

func (s Square) Clone() Geometry {
	s.Pipeline = s.Pipeline.Clone()
	return s
}

func (r Rectangle) Clone() Geometry {
	r.Pipeline = r.Pipeline.Clone()
	return r
}

func (p Polygon) Clone() Geometry {
	p.Points = clonePoints(p.Points)
	p.Pipeline = p.Pipeline.Clone()
	return p
}

func (c Circle) Clone() Geometry {
	c.Pipeline = c.Pipeline.Clone()
	return c
}

func (e Ellipse) Clone() Geometry {
	e.Pipeline = e.Pipeline.Clone()
	return e
}

func (i Image) Clone() Geometry {
	if i.Texture.Data != nil {
		data := make([]byte, len(i.Texture.Data))
		copy(data, i.Texture.Data)
		i.Texture.Data = data
	}
	if i.SourceRegion != nil {
		region := *i.SourceRegion
		i.SourceRegion = &region
	}
	if i.Tint != nil {
		tint := *i.Tint
		i.Tint = &tint
	}
	i.Pipeline = i.Pipeline.Clone()
	return i
}

func (g Group) Clone() Geometry {
	return g.mapChildren(func(child Geometry) Geometry { return child.Clone() })
}

func clonePoints(points []geom.Position2D) []geom.Position2D {
	if points == nil {
		return nil
	}
	cloned := make([]geom.Position2D, len(points))
	copy(cloned, points)
	return cloned
}
