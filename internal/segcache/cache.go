// Package segcache implements the bounded property cache shared by the
// grapheme cluster, word, and line break scanners: a fixed-capacity ring
// buffer keyed by byte offset into the scanned text, so that a rule cascade
// probing backward and forward around a boundary candidate can revisit
// nearby codepoints without re-decoding or re-classifying them.
//
// The three scanners in the original implementation each carried an
// identical copy of this structure (GraphemeClusterBreakContext,
// WordBreakContext, LineBreakContext) differing only in the element type
// stored. Cache[T] unifies them behind a type parameter.
package segcache

import "github.com/thedjinn/segtext/internal/utf8x"

// InvalidIndex mirrors utf8x.InvalidIndex, returned by GetBreakAt when no
// codepoint exists at the requested position.
const InvalidIndex = utf8x.InvalidIndex

// Cache holds the ring buffer of classified codepoints seen so far while
// scanning Text, along with the contiguous byte-offset range [LowestInText,
// HighestInText] that the ring buffer currently covers.
type Cache[T any] struct {
	Text     []byte
	TextSize int

	breaks []T
	cap    int

	lowestInText  int
	highestInText int
	head          int
	tail          int
}

// New creates a Cache over text with the given ring buffer capacity, which
// must be a power of two (the original uses 64 for all three scanners).
func New[T any](text []byte, capacity int) *Cache[T] {
	return &Cache[T]{
		Text:     text,
		TextSize: len(text),
		breaks:   make([]T, capacity),
		cap:      capacity,
	}
}

func (c *Cache[T]) isEmpty() bool {
	return c.head == c.tail
}

// priorBoundary is utf8x.PriorBoundary, extended with a synthetic boundary
// at i == TextSize: one past the last byte of Text is a valid position to
// query (every scanner probes "just past the end" while deciding whether a
// boundary exists there), but it has no backing byte to inspect.
func (c *Cache[T]) priorBoundary(i int) int {
	if i >= c.TextSize {
		return i
	}
	return utf8x.PriorBoundary(c.Text, i)
}

// decodePrior is utf8x.DecodePrior with the same end-of-text extension:
// probing at i == TextSize yields codepoint 0 positioned at i, rather than
// reading past the end of Text.
func (c *Cache[T]) decodePrior(i int) (rune, int) {
	if i >= c.TextSize {
		return 0, i
	}
	return utf8x.DecodePrior(c.Text, i)
}

// GetBreakAt returns the classification of the codepoint at or containing
// byte offset startIndex, using breakIndex as its slot in the logical
// (unbounded) sequence of classifications seen so far: callers step
// breakIndex by exactly 1 per codepoint in either direction, mirroring the
// byte-offset steps they take through Text. classify is invoked at most once
// per distinct codepoint; repeated probes of the same position within the
// ring buffer's current window are served from the cache.
//
// It returns the start index of the codepoint at startIndex, or InvalidIndex
// if startIndex is negative or precedes the start of Text.
func (c *Cache[T]) GetBreakAt(startIndex, breakIndex int, classify func(rune) T) (T, int) {
	var zero T

	if startIndex < 0 {
		return zero, InvalidIndex
	}

	firstFetch := c.isEmpty()

	wrapMask := c.cap - 1
	if !firstFetch && startIndex >= c.lowestInText && startIndex <= c.highestInText {
		index := breakIndex & wrapMask
		found := c.breaks[index]

		backDown := c.priorBoundary(startIndex)
		return found, backDown
	}

	codepoint, index := c.decodePrior(startIndex)
	if index == InvalidIndex {
		return zero, InvalidIndex
	}
	value := classify(codepoint)

	switch {
	case index < c.lowestInText || firstFetch:
		c.lowestInText = index
		if firstFetch {
			c.highestInText = index
			// Align the empty ring so that this first entry lands in
			// slot breakIndex.
			c.head = (breakIndex + 1) & wrapMask
			c.tail = c.head
		}

		next := (c.tail - 1) & wrapMask
		if next == c.head {
			// Ring buffer full: evict the head to make room, advancing the
			// tracked upper bound back to the next codepoint boundary.
			backDown := utf8x.PriorBoundary(c.Text, c.highestInText-1)
			c.highestInText = backDown
			c.head = (c.head - 1) & wrapMask
		}

		c.tail = next
		c.breaks[c.tail] = value

	case index > c.highestInText:
		c.highestInText = index

		next := (c.head + 1) & wrapMask
		if next == c.tail {
			// Ring buffer full: evict the tail to make room, advancing the
			// tracked lower bound forward to the next codepoint boundary.
			stepUp := utf8x.NextBoundary(c.Text, c.TextSize, c.lowestInText+1)
			c.lowestInText = stepUp
			c.tail = (c.tail + 1) & wrapMask
		}

		c.breaks[c.head] = value
		c.head = next
	}

	return value, index
}
