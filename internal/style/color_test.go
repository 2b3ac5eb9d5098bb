package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, Color{}, Transparent())
	assert.Equal(t, Color{Red: 255, Green: 255, Blue: 255, Alpha: 255}, White())
	assert.Equal(t, Color{Alpha: 255}, Black())
	assert.Equal(t, Color{Red: 255, Green: 255, Alpha: 255}, Yellow())
	assert.Equal(t, Color{Green: 255, Blue: 255, Alpha: 255}, Cyan())
	assert.Equal(t, Color{Red: 255, Blue: 255, Alpha: 255}, Magenta())
}

func TestFloatArray(t *testing.T) {
	fa := RGBA(255, 0, 51, 255).FloatArray()
	require.InDelta(t, 1.0, float64(fa[0]), 1e-6)
	require.InDelta(t, 0.0, float64(fa[1]), 1e-6)
	require.InDelta(t, 0.2, float64(fa[2]), 1e-6)
	require.InDelta(t, 1.0, float64(fa[3]), 1e-6)
}

func TestHexRoundTrip(t *testing.T) {
	c := RGBA(18, 52, 86, 255)
	assert.Equal(t, "#123456", c.Hex())

	parsed, err := ParseHex("#123456")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestParseHexInvalid(t *testing.T) {
	_, err := ParseHex("not-a-color")
	require.Error(t, err)
}

func TestFromHSV(t *testing.T) {
	assert.Equal(t, Red(), FromHSV(0, 1, 1))
	assert.Equal(t, Green(), FromHSV(120, 1, 1))
	assert.Equal(t, Blue(), FromHSV(240, 1, 1))
}

func TestBlendEndpoints(t *testing.T) {
	assert.Equal(t, Black(), Black().Blend(White(), 0))
	assert.Equal(t, White(), Black().Blend(White(), 1))

	mid := Transparent().Blend(White(), 0.5)
	assert.InDelta(t, 128, float64(mid.Alpha), 1)
}
