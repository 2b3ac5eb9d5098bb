package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrayIsBlack(t *testing.T) {
	a := NewArray(3, 2)
	require.Len(t, a.Data, 6)

	p, err := a.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Black(), p)
}

func TestSetAndAt(t *testing.T) {
	a := NewArray(4, 4)
	require.NoError(t, a.Set(1, 2, Magenta()))

	p, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Magenta(), p)

	// Neighbours stay untouched.
	p, err = a.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Black(), p)
}

func TestOutOfBounds(t *testing.T) {
	a := NewArray(2, 2)

	_, err := a.At(2, 0)
	require.Error(t, err)
	_, err = a.At(0, -1)
	require.Error(t, err)
	require.Error(t, a.Set(-1, 0, Red()))
	require.Error(t, a.Set(0, 2, Red()))
}

func TestTextureKinds(t *testing.T) {
	path := PathTexture("floor.png")
	assert.False(t, path.IsRaw())

	raw := RawTexture(1, 1, []byte{0xff, 0x00, 0xff})
	assert.True(t, raw.IsRaw())

	// A zero-value texture carries neither a path nor bytes.
	assert.False(t, Texture{}.IsRaw())
}
