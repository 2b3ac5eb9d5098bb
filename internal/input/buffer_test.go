package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferFIFO(t *testing.T) {
	var b Buffer
	b.Push(NewTextEvent("a"))
	b.Push(NewTextEvent("b"))
	b.Push(NewTextEvent("c"))

	require.Equal(t, 3, b.Len())

	peeked, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", peeked.Text)
	require.Equal(t, 3, b.Len(), "peek must not consume")

	for _, want := range []string{"a", "b", "c"} {
		event, ok := b.Pop()
		require.True(t, ok)
		assert.Equal(t, want, event.Text)
	}

	_, ok = b.Pop()
	assert.False(t, ok)
	_, ok = b.Peek()
	assert.False(t, ok)
}

func TestBufferPopAll(t *testing.T) {
	var b Buffer
	b.Push(NewCloseEvent())
	b.Push(NewFocusEvent(true))

	events := b.PopAll()
	require.Len(t, events, 2)
	assert.Equal(t, KindClose, events[0].Kind)
	assert.Equal(t, KindFocus, events[1].Kind)
	assert.Equal(t, 0, b.Len())

	assert.Empty(t, b.PopAll())
}

func TestBufferClear(t *testing.T) {
	var b Buffer
	b.Push(NewTextEvent("x"))
	b.Clear()
	assert.Equal(t, 0, b.Len())
}

func TestKeyCodeRoundTrip(t *testing.T) {
	assert.Equal(t, KeyEscape, KeyFromCode(KeyEscape.Code()))
	assert.Equal(t, KeyF12, KeyFromCode(KeyF12.Code()))
	assert.Equal(t, KeyUnknown, KeyFromCode(0x7FFFFFFF))
}

func TestTouchArgs(t *testing.T) {
	touch := NewTouchArgs(1, 42, 0.25, 0.75, 0.5, TouchStart)

	x, y := touch.Position()
	require.InDelta(t, 0.25, x, 1e-9)
	require.InDelta(t, 0.75, y, 1e-9)
	require.InDelta(t, 0.5, touch.Pressure(), 1e-9)
	assert.False(t, touch.Is3D)

	touch3d := NewTouchArgs3D(1, 43, [3]float64{0, 0, 1}, [3]float64{0.6, 0.8, 0}, TouchMove)
	require.InDelta(t, 1.0, touch3d.Pressure(), 1e-9)
	assert.True(t, touch3d.Is3D)
}
