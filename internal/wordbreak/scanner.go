package wordbreak

import (
	"github.com/thedjinn/segtext/internal/segcache"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/utf8x"
)

const breaksCap = 64

// Scanner answers word boundary questions for a single piece of text. A
// Scanner is not safe for concurrent use. Each query starts from an empty
// cache, since the cache's slot numbering restarts with every query.
type Scanner struct {
	table *segtable.Table
	cache *segcache.Cache[Class]
	text  []byte
}

// NewScanner creates a Scanner over text using table for classification, or
// DefaultTable if table is nil.
func NewScanner(text []byte, table *segtable.Table) *Scanner {
	if table == nil {
		table = DefaultTable
	}
	return &Scanner{
		table: table,
		cache: segcache.New[Class](text, breaksCap),
		text:  text,
	}
}

func (s *Scanner) classify(cp rune) Class {
	return Class(s.table.Lookup(cp))
}

func (s *Scanner) getBreakAt(startIndex, breakIndex int) (Class, int) {
	return s.cache.GetBreakAt(startIndex, breakIndex, s.classify)
}

func isIgnorable(c Class) bool {
	return c == Extend || c == Format || c == ZeroWidthJoiner
}

// resolveIgnoreSequenceBefore implements resolve_ignore_sequence_before: it
// walks backward over a run of Extend/Format/ZWJ codepoints to find the
// nearest preceding "real" class, used by rules that must see through
// combining marks stacked onto a letter or digit.
func (s *Scanner) resolveIgnoreSequenceBefore(wordBreak Class, textIndex, breakIndex int) (Class, int, int) {
	if !isIgnorable(wordBreak) {
		return wordBreak, textIndex, breakIndex
	}

	for i, j := textIndex-1, breakIndex-1; i >= 0; j-- {
		value, index := s.getBreakAt(i, j)
		if index == utf8x.InvalidIndex {
			break
		}
		if !isIgnorable(value) {
			return value, index, j
		}
		i = index - 1
	}

	return wordBreak, textIndex, breakIndex
}

// resolveIgnoreSequenceAfter implements resolve_ignore_sequence_after,
// looking forward instead of backward.
func (s *Scanner) resolveIgnoreSequenceAfter(wordBreak Class, textIndex, breakIndex int) Class {
	if !isIgnorable(wordBreak) {
		return wordBreak
	}

	start := utf8x.NextBoundary(s.text, len(s.text), textIndex+1)
	if start == utf8x.InvalidIndex {
		return wordBreak
	}

	for i, j := start, breakIndex+1; i != utf8x.InvalidIndex; j++ {
		value, index := s.getBreakAt(i, j)
		if index == utf8x.InvalidIndex {
			break
		}
		if !isIgnorable(value) {
			return value
		}
		i = utf8x.NextBoundary(s.text, len(s.text), index+1)
	}

	return wordBreak
}

// allowBreak implements allow_word_break.
func (s *Scanner) allowBreak(textIndex, breakIndex int) bool {
	textSize := len(s.text)

	if textIndex == 0 || textIndex >= textSize {
		return true
	}

	a, aIndex := s.getBreakAt(textIndex-1, breakIndex-1)
	b, bIndex := s.getBreakAt(textIndex, breakIndex)
	if aIndex == utf8x.InvalidIndex || bIndex == utf8x.InvalidIndex {
		return true
	}

	// Do not break between a carriage return and line feed.
	if a == CarriageReturn && b == LineFeed {
		return false
	}

	// Break before and after newlines that don't violate the prior rule.
	if a == CarriageReturn || a == LineFeed || a == Newline ||
		b == CarriageReturn || b == LineFeed || b == Newline {
		return true
	}

	// Do not break within emoji zero-width joiner sequences.
	if a == ZeroWidthJoiner && (b == GlueAfterZWJ || b == EmojiBaseGAZ) {
		return false
	}

	// Ignore Format and Extend characters.
	if b == Format || b == Extend || b == ZeroWidthJoiner {
		return false
	}

	var aBreakIndex int
	a, aIndex, aBreakIndex = s.resolveIgnoreSequenceBefore(a, aIndex, breakIndex-1)

	// Do not break between most letters.
	aLetterLike := a == ALetter || a == HebrewLetter
	bLetterLike := b == ALetter || b == HebrewLetter
	if aLetterLike && bLetterLike {
		return false
	}

	// Do not break letters across certain punctuation.
	if aLetterLike && (b == MidLetter || b == MidNumberLetter || b == SingleQuote) {
		if cIndex := utf8x.NextBoundary(s.text, textSize, bIndex+1); cIndex != utf8x.InvalidIndex {
			if c, ci := s.getBreakAt(cIndex, breakIndex+1); ci != utf8x.InvalidIndex {
				c = s.resolveIgnoreSequenceAfter(c, ci, breakIndex+1)
				if c == ALetter || c == HebrewLetter {
					return false
				}
			}
		}
	}

	if (a == MidLetter || a == MidNumberLetter || a == SingleQuote) && bLetterLike {
		if c, ci := s.getBreakAt(aIndex-1, aBreakIndex-1); ci != utf8x.InvalidIndex {
			c, _, _ = s.resolveIgnoreSequenceBefore(c, ci, aBreakIndex-1)
			if c == ALetter || c == HebrewLetter {
				return false
			}
		}
	}

	if a == HebrewLetter {
		if b == SingleQuote {
			return false
		}
		if b == DoubleQuote {
			if cIndex := utf8x.NextBoundary(s.text, textSize, bIndex+1); cIndex != utf8x.InvalidIndex {
				if c, ci := s.getBreakAt(cIndex, breakIndex+1); ci != utf8x.InvalidIndex {
					c = s.resolveIgnoreSequenceAfter(c, ci, breakIndex+1)
					if c == HebrewLetter {
						return false
					}
				}
			}
		}
	}

	if a == DoubleQuote && b == HebrewLetter {
		if c, ci := s.getBreakAt(aIndex-1, aBreakIndex-1); ci != utf8x.InvalidIndex {
			c, _, _ = s.resolveIgnoreSequenceBefore(c, ci, aBreakIndex-1)
			if c == HebrewLetter {
				return false
			}
		}
	}

	// Do not break within sequences of digits, or digits adjacent to letters.
	if a == Numeric && b == Numeric {
		return false
	}
	if a == Numeric && bLetterLike {
		return false
	}
	if aLetterLike && b == Numeric {
		return false
	}

	// Do not break within number sequences that contain punctuation such as
	// decimals and thousands separators.
	if (a == MidNumber || a == MidNumberLetter || a == SingleQuote) && b == Numeric {
		if c, ci := s.getBreakAt(aIndex-1, aBreakIndex-1); ci != utf8x.InvalidIndex {
			c, _, _ = s.resolveIgnoreSequenceBefore(c, ci, aBreakIndex-1)
			if c == Numeric {
				return false
			}
		}
	}

	if a == Numeric && (b == MidNumber || b == MidNumberLetter || b == SingleQuote) {
		if cIndex := utf8x.NextBoundary(s.text, textSize, bIndex+1); cIndex != utf8x.InvalidIndex {
			if c, ci := s.getBreakAt(cIndex, breakIndex+1); ci != utf8x.InvalidIndex {
				c = s.resolveIgnoreSequenceAfter(c, ci, breakIndex+1)
				if c == Numeric {
					return false
				}
			}
		}
	}

	// Do not break between katakana.
	if a == Katakana && b == Katakana {
		return false
	}

	// Do not break from extenders.
	aExtenderNeighbor := aLetterLike || a == Numeric || a == Katakana || a == ExtendNumberLetter
	if aExtenderNeighbor && b == ExtendNumberLetter {
		return false
	}
	bExtenderNeighbor := bLetterLike || b == Numeric || b == Katakana || b == ExtendNumberLetter
	if a == ExtendNumberLetter && bExtenderNeighbor {
		return false
	}

	// Do not break within emoji modifier sequences.
	if (a == EmojiBase || a == EmojiBaseGAZ) && b == EmojiModifier {
		return false
	}

	// Do not break between regional indicator (RI) symbols if there is an
	// odd number of RI characters before the break point.
	if a == RegionalIndicator && b == RegionalIndicator {
		count := 1
		for i, j := aIndex-1, aBreakIndex-1; i >= 0; j-- {
			value, index := s.getBreakAt(i, j)
			if index == utf8x.InvalidIndex {
				break
			}
			value, index, j = s.resolveIgnoreSequenceBefore(value, index, j)
			if value != RegionalIndicator {
				break
			}
			i = index - 1
			count++
		}
		if count&1 != 0 {
			return false
		}
	}

	return true
}

// isConsideredSpacing is an arbitrary choice of word break classes used to
// determine whether a codepoint is part of a word or spacing between words.
func isConsideredSpacing(c Class) bool {
	return c == Other || c == CarriageReturn || c == LineFeed || c == Newline
}

// TestBreak reports whether a word boundary exists at byte offset textIndex
// within the scanner's text.
func (s *Scanner) TestBreak(textIndex int) bool {
	s.cache = segcache.New[Class](s.text, breaksCap)
	return s.allowBreak(textIndex, 0)
}

// FindPriorWordStart returns the byte offset of the start of the word
// containing or preceding startIndex: the nearest boundary strictly before
// startIndex where a non-spacing class follows a spacing class. It returns 0
// if no such boundary is found.
func (s *Scanner) FindPriorWordStart(startIndex int) int {
	s.cache = segcache.New[Class](s.text, breaksCap)
	text := s.text
	adjusted := utf8x.PriorBoundary(text, startIndex-1)

	found := utf8x.InvalidIndex
	for i, j := adjusted, 0; i != utf8x.InvalidIndex; j-- {
		if s.allowBreak(i, j) {
			left, leftIndex := s.getBreakAt(i-1, j-1)
			right, rightIndex := s.getBreakAt(i, j)
			if leftIndex != utf8x.InvalidIndex && isConsideredSpacing(left) &&
				rightIndex != utf8x.InvalidIndex && !isConsideredSpacing(right) {
				found = i
				break
			}
		}
		i = utf8x.PriorBoundary(text, i-1)
	}

	if found == utf8x.InvalidIndex {
		return 0
	}
	return found
}

// FindNextWordEnd returns the byte offset just past the end of the word
// containing or following startIndex: the nearest boundary where a spacing
// class follows a non-spacing class. It returns len(text) if no such
// boundary is found.
func (s *Scanner) FindNextWordEnd(startIndex int) int {
	s.cache = segcache.New[Class](s.text, breaksCap)
	text := s.text
	adjusted := utf8x.NextBoundary(text, len(text), startIndex+1)

	found := utf8x.InvalidIndex
	for i, j := adjusted, 0; i != utf8x.InvalidIndex; j++ {
		if s.allowBreak(i, j) {
			left, leftIndex := s.getBreakAt(i-1, j-1)
			right, rightIndex := s.getBreakAt(i, j)
			if leftIndex != utf8x.InvalidIndex && !isConsideredSpacing(left) &&
				rightIndex != utf8x.InvalidIndex && isConsideredSpacing(right) {
				found = i
				break
			}
		}
		i = utf8x.NextBoundary(text, len(text), i+1)
	}

	if found == utf8x.InvalidIndex {
		return len(text)
	}
	return found
}

// TestBreak reports whether a word boundary exists at byte offset textIndex
// within text.
func TestBreak(text []byte, textIndex int, table *segtable.Table) bool {
	return NewScanner(text, table).TestBreak(textIndex)
}

// FindPriorWordStart returns the byte offset of the start of the word
// containing or preceding startIndex within text.
func FindPriorWordStart(text []byte, startIndex int) int {
	return NewScanner(text, nil).FindPriorWordStart(startIndex)
}

// FindNextWordEnd returns the byte offset just past the end of the word
// containing or following startIndex within text.
func FindNextWordEnd(text []byte, startIndex int) int {
	return NewScanner(text, nil).FindNextWordEnd(startIndex)
}
