package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCursorNextAdvancesPastMultiByteRune(t *testing.T) {
	c := NewByteCursor([]byte("a\xc3\xa9b")) // "a", U+00E9, "b"

	r, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, c.Position())

	r, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 3, c.Position())

	r, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, 4, c.Position())

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestByteCursorPreviousRetreatsPastMultiByteRune(t *testing.T) {
	text := []byte("a\xc3\xa9b")
	c := NewByteCursor(text)
	require.NoError(t, c.SetPosition(len(text)))

	r, ok := c.Previous()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, 3, c.Position())

	r, ok = c.Previous()
	require.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 1, c.Position())

	r, ok = c.Previous()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, c.Position())

	_, ok = c.Previous()
	assert.False(t, ok)
}

func TestByteCursorSetPositionRejectsOutOfRange(t *testing.T) {
	c := NewByteCursor([]byte("ab"))

	assert.Error(t, c.SetPosition(-1))
	assert.Error(t, c.SetPosition(3))
	assert.NoError(t, c.SetPosition(2))
	assert.Equal(t, 2, c.Position())
}
