package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/pixel"
	"github.com/gymnarium/visualisers-base/internal/style"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

// geometryEnvelope is the wire form of a Geometry: a type discriminator
// plus the union of the variant payload fields.
type geometryEnvelope struct {
	Type string `json:"type"`

	Position   *geom.Position2D  `json:"position,omitempty"`
	Points     []geom.Position2D `json:"points,omitempty"`
	Center     *geom.Position2D  `json:"center,omitempty"`
	EdgeLength *float64          `json:"edgeLength,omitempty"`
	Size       *geom.Size2D      `json:"size,omitempty"`
	Radius     *float64          `json:"radius,omitempty"`

	Color       *style.Color       `json:"color,omitempty"`
	LineWidth   *float64           `json:"lineWidth,omitempty"`
	LineShape   style.LineShape    `json:"lineShape,omitempty"`
	FillColor   *style.Color       `json:"fillColor,omitempty"`
	BorderColor *style.Color       `json:"borderColor,omitempty"`
	BorderWidth *float64           `json:"borderWidth,omitempty"`
	CornerShape *style.CornerShape `json:"cornerShape,omitempty"`

	Texture      *pixel.Texture `json:"texture,omitempty"`
	SourceRegion *TextureRegion `json:"sourceRegion,omitempty"`
	Tint         *style.Color   `json:"tint,omitempty"`

	Pipeline *transform.Pipeline `json:"pipeline,omitempty"`

	Geometries []geometryEnvelope `json:"geometries,omitempty"`
}

// Marshal encodes a geometry tree as tagged JSON envelopes.
func Marshal(g Geometry) ([]byte, error) {
	return json.Marshal(encodeGeometry(g))
}

// Unmarshal decodes a geometry tree from its tagged JSON envelopes.
func Unmarshal(data []byte) (Geometry, error) {
	var env geometryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return decodeGeometry(env)
}

// List is a slice of geometries that marshals each element through the
// tagged envelope codec. Protocol payloads embed it directly.
type List []Geometry

func (l List) MarshalJSON() ([]byte, error) {
	envs := make([]geometryEnvelope, len(l))
	for i, g := range l {
		envs[i] = encodeGeometry(g)
	}
	return json.Marshal(envs)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var envs []geometryEnvelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return err
	}
	geometries := make([]Geometry, len(envs))
	for i, env := range envs {
		g, err := decodeGeometry(env)
		if err != nil {
			return fmt.Errorf("geometry %d: %w", i, err)
		}
		geometries[i] = g
	}
	*l = geometries
	return nil
}

func encodeGeometry(g Geometry) geometryEnvelope {
	env := geometryEnvelope{Type: g.geometryType()}
	switch v := g.(type) {
	case Point:
		position := v.Position
		color := v.Color
		env.Position = &position
		env.Color = &color
		env.Pipeline = encodePipeline(v.Pipeline)
	case Line:
		color := v.Color
		width := v.Width
		env.Points = v.Points[:]
		env.Color = &color
		env.LineWidth = &width
		env.LineShape = v.Shape
		env.Pipeline = encodePipeline(v.Pipeline)
	case Polyline:
		color := v.Color
		width := v.Width
		env.Points = v.Points
		env.Color = &color
		env.LineWidth = &width
		env.LineShape = v.Shape
		env.Pipeline = encodePipeline(v.Pipeline)
	case Triangle:
		env.Points = v.Points[:]
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Square:
		center := v.Center
		edge := v.EdgeLength
		corners := v.Corners
		env.Center = &center
		env.EdgeLength = &edge
		env.CornerShape = &corners
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Rectangle:
		center := v.Center
		size := v.Size
		corners := v.Corners
		env.Center = &center
		env.Size = &size
		env.CornerShape = &corners
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Polygon:
		env.Points = v.Points
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Circle:
		center := v.Center
		radius := v.Radius
		env.Center = &center
		env.Radius = &radius
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Ellipse:
		center := v.Center
		size := v.Size
		env.Center = &center
		env.Size = &size
		env.FillColor, env.BorderColor, env.BorderWidth = encodeFill(v.Fill, v.Border, v.BorderWidth)
		env.Pipeline = encodePipeline(v.Pipeline)
	case Image:
		center := v.Center
		size := v.Size
		texture := v.Texture
		env.Center = &center
		env.Size = &size
		env.Texture = &texture
		env.SourceRegion = v.SourceRegion
		env.Tint = v.Tint
		env.Pipeline = encodePipeline(v.Pipeline)
	case Group:
		env.Geometries = make([]geometryEnvelope, len(v.Geometries))
		for i, child := range v.Geometries {
			env.Geometries[i] = encodeGeometry(child)
		}
	}
	return env
}

func encodeFill(fill, border style.Color, borderWidth float64) (*style.Color, *style.Color, *float64) {
	return &fill, &border, &borderWidth
}

func encodePipeline(p transform.Pipeline) *transform.Pipeline {
	if len(p.Ops) == 0 {
		return nil
	}
	return &p
}

func decodeGeometry(env geometryEnvelope) (Geometry, error) {
	pipeline := transform.Pipeline{}
	if env.Pipeline != nil {
		pipeline = *env.Pipeline
	}

	switch env.Type {
	case "point":
		if env.Position == nil {
			return nil, fmt.Errorf("point missing position")
		}
		g := NewPoint(*env.Position)
		if env.Color != nil {
			g.Color = *env.Color
		}
		g.Pipeline = pipeline
		return g, nil
	case "line":
		if len(env.Points) != 2 {
			return nil, fmt.Errorf("line needs 2 points, got %d", len(env.Points))
		}
		g := NewLine(env.Points[0], env.Points[1])
		applyLineStyle(&g.Color, &g.Width, &g.Shape, env)
		g.Pipeline = pipeline
		return g, nil
	case "polyline":
		g := NewPolyline(env.Points)
		applyLineStyle(&g.Color, &g.Width, &g.Shape, env)
		g.Pipeline = pipeline
		return g, nil
	case "triangle":
		if len(env.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(env.Points))
		}
		g := NewTriangle(env.Points[0], env.Points[1], env.Points[2])
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		g.Pipeline = pipeline
		return g, nil
	case "square":
		if env.Center == nil || env.EdgeLength == nil {
			return nil, fmt.Errorf("square missing center or edgeLength")
		}
		g := NewSquare(*env.Center, *env.EdgeLength)
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		if env.CornerShape != nil {
			g.Corners = *env.CornerShape
		}
		g.Pipeline = pipeline
		return g, nil
	case "rectangle":
		if env.Center == nil || env.Size == nil {
			return nil, fmt.Errorf("rectangle missing center or size")
		}
		g := NewRectangle(*env.Center, *env.Size)
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		if env.CornerShape != nil {
			g.Corners = *env.CornerShape
		}
		g.Pipeline = pipeline
		return g, nil
	case "polygon":
		g := NewPolygon(env.Points)
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		g.Pipeline = pipeline
		return g, nil
	case "circle":
		if env.Center == nil || env.Radius == nil {
			return nil, fmt.Errorf("circle missing center or radius")
		}
		g := NewCircle(*env.Center, *env.Radius)
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		g.Pipeline = pipeline
		return g, nil
	case "ellipse":
		if env.Center == nil || env.Size == nil {
			return nil, fmt.Errorf("ellipse missing center or size")
		}
		g := NewEllipse(*env.Center, *env.Size)
		applyFillStyle(&g.Fill, &g.Border, &g.BorderWidth, env)
		g.Pipeline = pipeline
		return g, nil
	case "image":
		if env.Center == nil || env.Size == nil || env.Texture == nil {
			return nil, fmt.Errorf("image missing center, size or texture")
		}
		g := NewImage(*env.Center, *env.Size, *env.Texture)
		g.SourceRegion = env.SourceRegion
		g.Tint = env.Tint
		g.Pipeline = pipeline
		return g, nil
	case "group":
		children := make([]Geometry, len(env.Geometries))
		for i, childEnv := range env.Geometries {
			child, err := decodeGeometry(childEnv)
			if err != nil {
				return nil, fmt.Errorf("group child %d: %w", i, err)
			}
			children[i] = child
		}
		return Group{Geometries: children}, nil
	default:
		return nil, fmt.Errorf("unknown geometry type %q", env.Type)
	}
}

func applyLineStyle(color *style.Color, width *float64, shape *style.LineShape, env geometryEnvelope) {
	if env.Color != nil {
		*color = *env.Color
	}
	if env.LineWidth != nil {
		*width = *env.LineWidth
	}
	if env.LineShape != "" {
		*shape = env.LineShape
	}
}

func applyFillStyle(fill, border *style.Color, borderWidth *float64, env geometryEnvelope) {
	if env.FillColor != nil {
		*fill = *env.FillColor
	}
	if env.BorderColor != nil {
		*border = *env.BorderColor
	}
	if env.BorderWidth != nil {
		*borderWidth = *env.BorderWidth
	}
}
