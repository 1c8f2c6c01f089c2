package segcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thedjinn/segtext/internal/utf8x"
)

func classifyByte(cp rune) byte {
	return byte(cp)
}

func TestGetBreakAtNegativeIndex(t *testing.T) {
	c := New[byte]([]byte("abc"), 8)
	_, index := c.GetBreakAt(-1, 0, classifyByte)
	assert.Equal(t, InvalidIndex, index)
}

func TestGetBreakAtWithinText(t *testing.T) {
	text := []byte("abc")
	c := New[byte](text, 8)

	value, index := c.GetBreakAt(0, 0, classifyByte)
	assert.Equal(t, byte('a'), value)
	assert.Equal(t, 0, index)

	value, index = c.GetBreakAt(2, 2, classifyByte)
	assert.Equal(t, byte('c'), value)
	assert.Equal(t, 2, index)
}

func TestGetBreakAtRepeatsUseCache(t *testing.T) {
	calls := 0
	classify := func(cp rune) byte {
		calls++
		return byte(cp)
	}

	text := []byte("abc")
	c := New[byte](text, 8)

	_, _ = c.GetBreakAt(1, 0, classify)
	_, _ = c.GetBreakAt(1, 0, classify)
	assert.Equal(t, 1, calls)
}

func TestGetBreakAtAtTextEndIsSentinel(t *testing.T) {
	text := []byte("ab")
	c := New[byte](text, 8)

	value, index := c.GetBreakAt(len(text), 0, classifyByte)
	assert.Equal(t, byte(0), value)
	assert.Equal(t, len(text), index)
}

func TestGetBreakAtRingEvictsOnOverflow(t *testing.T) {
	text := make([]byte, 16)
	for i := range text {
		text[i] = byte('a' + i)
	}

	c := New[byte](text, 4)

	for i, j := 0, 0; i < len(text); i, j = i+1, j+1 {
		value, index := c.GetBreakAt(i, j, classifyByte)
		assert.Equal(t, text[i], value)
		assert.Equal(t, i, index)
	}
}

func TestPriorBoundarySentinelMatchesUtf8x(t *testing.T) {
	text := []byte("ab")
	c := New[byte](text, 8)
	assert.Equal(t, len(text), c.priorBoundary(len(text)))
	assert.Equal(t, 1, c.priorBoundary(1))
	assert.Equal(t, utf8x.PriorBoundary(text, 1), c.priorBoundary(1))
}
