package geometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymnarium/visualisers-base/internal/geom"
	"github.com/gymnarium/visualisers-base/internal/style"
	"github.com/gymnarium/visualisers-base/internal/transform"
)

func TestGeometryJSONRoundTrip(t *testing.T) {
	tint := style.Cyan()
	geometries := []Geometry{
		NewPoint(geom.Pos(1, 2)),
		NewLine(geom.Pos(0, 0), geom.Pos(10, 0)).LineOrBorderColor(style.Red()),
		NewPolyline([]geom.Position2D{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}),
		NewTriangle(geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(0, 1)).FillColor(style.Green()),
		NewSquare(geom.Pos(5, 5), 2).CornerShape(style.RoundCorners(0.5, 8)),
		NewRectangle(geom.Pos(0, 0), geom.Size(4, 2)),
		NewPolygon([]geom.Position2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}),
		NewCircle(geom.Pos(0, 0), 5).AppendTransformation(transform.Rotation{Angle: 1}),
		NewEllipse(geom.Pos(1, 1), geom.Size(3, 2)),
		Image{
			Center:       geom.Pos(0, 0),
			Size:         geom.Size(2, 2),
			Texture:      pixelTexture(),
			SourceRegion: &TextureRegion{Min: geom.Pos(0, 0), Size: geom.Size(16, 16)},
			Tint:         &tint,
		},
		NewGroup(
			NewCircle(geom.Pos(0, 0), 1),
			NewGroup(NewPoint(geom.Pos(1, 1))),
		),
	}

	for _, g := range geometries {
		t.Run(g.geometryType(), func(t *testing.T) {
			data, err := Marshal(g)
			require.NoError(t, err)

			decoded, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, g, decoded)
		})
	}
}

func TestGeometryJSONTypeTag(t *testing.T) {
	data, err := Marshal(NewPoint(geom.Pos(1, 2)))
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.JSONEq(t, `"point"`, string(envelope["type"]))
	assert.NotContains(t, envelope, "pipeline", "empty pipelines are omitted on the wire")
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"tesseract"}`))
	require.Error(t, err)
}

func TestUnmarshalRejectsMalformedVariant(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"line","points":[{"x":0,"y":0}]}`))
	require.Error(t, err)

	_, err = Unmarshal([]byte(`{"type":"circle","center":{"x":0,"y":0}}`))
	require.Error(t, err)
}

func TestListJSONRoundTrip(t *testing.T) {
	list := List{
		NewLine(geom.Pos(0, 0), geom.Pos(1, 0)),
		NewCircle(geom.Pos(5, 5), 2),
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var decoded List
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Geometry(list), []Geometry(decoded))
}
