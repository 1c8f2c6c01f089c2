package utf8x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeASCII(t *testing.T) {
	cp, n := Decode([]byte("a"), 0)
	assert.Equal(t, rune('a'), cp)
	assert.Equal(t, 1, n)
}

func TestDecodeMultiByte(t *testing.T) {
	text := []byte("héllo") // é is two bytes
	cp, n := Decode(text, 1)
	assert.Equal(t, rune('é'), cp)
	assert.Equal(t, 2, n)
}

func TestDecodeFourByte(t *testing.T) {
	text := []byte("😀")
	cp, n := Decode(text, 0)
	assert.Equal(t, rune(0x1f600), cp)
	assert.Equal(t, 4, n)
}

func TestNextBoundary(t *testing.T) {
	text := []byte("a😀b")
	assert.Equal(t, 0, NextBoundary(text, len(text), 0))
	assert.Equal(t, 1, NextBoundary(text, len(text), 1))
	assert.Equal(t, 5, NextBoundary(text, len(text), 2))
	assert.Equal(t, 5, NextBoundary(text, len(text), 5))
	assert.Equal(t, len(text), NextBoundary(text, len(text), len(text)))
	assert.Equal(t, InvalidIndex, NextBoundary(text, len(text), len(text)+1))
}

func TestPriorBoundary(t *testing.T) {
	text := []byte("a😀b")
	assert.Equal(t, 1, PriorBoundary(text, 1))
	assert.Equal(t, 1, PriorBoundary(text, 4))
	assert.Equal(t, 5, PriorBoundary(text, 5))
	assert.Equal(t, 0, PriorBoundary(text, 0))
}

func TestPriorBoundaryAtTextEnd(t *testing.T) {
	text := []byte("ab")
	assert.Equal(t, 1, PriorBoundary(text, len(text)))
}

func TestPriorBoundaryPastTextEnd(t *testing.T) {
	text := []byte("ab")
	assert.Equal(t, 1, PriorBoundary(text, len(text)+5))
}

func TestPriorBoundaryEmptyText(t *testing.T) {
	text := []byte{}
	assert.Equal(t, InvalidIndex, PriorBoundary(text, 0))
}

func TestDecodePrior(t *testing.T) {
	text := []byte("a😀b")
	cp, start := DecodePrior(text, 4)
	assert.Equal(t, rune(0x1f600), cp)
	assert.Equal(t, 1, start)
}

func TestDecodePriorAtTextEnd(t *testing.T) {
	text := []byte("ab")
	cp, start := DecodePrior(text, len(text))
	assert.Equal(t, rune('b'), cp)
	assert.Equal(t, 1, start)
}

func TestDecodePriorNegative(t *testing.T) {
	text := []byte("ab")
	_, start := DecodePrior(text, -1)
	assert.Equal(t, InvalidIndex, start)
}
