package graphemebreak

import (
	"github.com/thedjinn/segtext/internal/segcache"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/utf8x"
)

const breaksCap = 64

// pairType is the outcome of a direct lookup in the grapheme cluster pair
// table: most adjacent-class pairs are resolved this way, without needing to
// walk further context.
type pairType byte

const (
	nonPair pairType = iota
	optional
	prohibited
)

// graphemeClusterPairs mirrors grapheme_cluster_pairs verbatim: rows and
// columns are indexed by Class, nonPair means "fall through to the sequence
// rules below".
var graphemeClusterPairs = [classCount][classCount]pairType{
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{optional, optional, prohibited, optional, prohibited, prohibited, optional, optional, prohibited, optional, optional, optional, optional, optional, optional, optional, optional, optional},
	{optional, optional, optional, optional, prohibited, prohibited, optional, optional, prohibited, optional, optional, optional, optional, optional, optional, optional, optional, optional},
	{optional, optional, optional, optional, prohibited, prohibited, optional, optional, prohibited, optional, optional, optional, optional, optional, optional, optional, optional, optional},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited, prohibited},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, prohibited, prohibited, nonPair, prohibited, prohibited, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, prohibited, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, prohibited, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
	{nonPair, optional, optional, optional, prohibited, prohibited, nonPair, nonPair, prohibited, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair, nonPair},
}

// Scanner answers grapheme cluster boundary questions for a single piece of
// text. A Scanner is not safe for concurrent use, but is cheap to create:
// callers make a fresh one per string. Each query starts from an empty
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

// allowBreak implements allow_grapheme_cluster_break.
func (s *Scanner) allowBreak(textIndex, breakIndex int) bool {
	textSize := len(s.text)

	if textIndex == 0 || textIndex >= textSize {
		return true
	}

	aBreak, aIndex := s.getBreakAt(textIndex-1, breakIndex-1)
	bBreak, bIndex := s.getBreakAt(textIndex, breakIndex)
	if aIndex == utf8x.InvalidIndex || bIndex == utf8x.InvalidIndex {
		return true
	}

	switch graphemeClusterPairs[aBreak][bBreak] {
	case optional:
		return true
	case prohibited:
		return false
	}

	// Do not break within emoji modifier sequences.
	if bBreak == EmojiModifier {
		for i, j := aIndex, breakIndex-1; i >= 0; j-- {
			value, index := s.getBreakAt(i, j)
			if index == utf8x.InvalidIndex {
				break
			}
			i = index - 1
			if value == EmojiBase || value == EmojiBaseGAZ {
				return false
			} else if value != Extend {
				break
			}
		}
	}

	// Do not break within emoji zero-width joiner sequences.
	if aBreak == ZeroWidthJoiner && (bBreak == GlueAfterZWJ || bBreak == EmojiBaseGAZ) {
		return false
	}

	// Do not break between regional indicator (RI) symbols if there is an
	// odd number of RI characters before the break point.
	if aBreak == RegionalIndicator && bBreak == RegionalIndicator {
		count := 0
		for i, j := aIndex, breakIndex-1; i >= 0; j-- {
			value, index := s.getBreakAt(i, j)
			if index == utf8x.InvalidIndex || value != RegionalIndicator {
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

// TestBreak reports whether a grapheme cluster boundary exists at byte
// offset textIndex within the scanner's text.
func (s *Scanner) TestBreak(textIndex int) bool {
	s.cache = segcache.New[Class](s.text, breaksCap)
	return s.allowBreak(textIndex, 0)
}

// FindPrior returns the nearest grapheme cluster boundary at or before
// startIndex, or 0 if none is found closer than the start of text. A
// startIndex at or past the end of text is treated as the start of the last
// codepoint, so the end-of-text boundary itself is never returned.
func (s *Scanner) FindPrior(startIndex int) int {
	s.cache = segcache.New[Class](s.text, breaksCap)
	adjusted := utf8x.PriorBoundary(s.text, startIndex)
	if adjusted == utf8x.InvalidIndex {
		return 0
	}

	for i, j := adjusted, 0; i >= 0; j-- {
		if s.allowBreak(i, j) {
			return i
		}
		i = utf8x.PriorBoundary(s.text, i-1)
		if i == utf8x.InvalidIndex {
			break
		}
	}
	return 0
}

// FindNext returns the nearest grapheme cluster boundary strictly after
// startIndex, or len(text) if none is found before the end of text.
func (s *Scanner) FindNext(startIndex int) int {
	s.cache = segcache.New[Class](s.text, breaksCap)
	text := s.text
	adjusted := utf8x.NextBoundary(text, len(text), startIndex+1)

	for i, j := adjusted, 0; i != utf8x.InvalidIndex && i <= len(text); j++ {
		if s.allowBreak(i, j) {
			return i
		}
		if i >= len(text) {
			break
		}
		i = utf8x.NextBoundary(text, len(text), i+1)
	}
	return len(text)
}

// TestBreak reports whether a grapheme cluster boundary exists at byte
// offset textIndex within text.
func TestBreak(text []byte, textIndex int, table *segtable.Table) bool {
	return NewScanner(text, table).TestBreak(textIndex)
}

// FindPrior returns the nearest grapheme cluster boundary at or before
// startIndex, or 0 if none is found closer than the start of text. As with
// Scanner.FindPrior, the end-of-text boundary itself is never returned.
func FindPrior(text []byte, startIndex int, table *segtable.Table) int {
	return NewScanner(text, table).FindPrior(startIndex)
}

// FindNext returns the nearest grapheme cluster boundary strictly after
// startIndex, or len(text) if none is found before the end of text.
func FindNext(text []byte, startIndex int, table *segtable.Table) int {
	return NewScanner(text, table).FindNext(startIndex)
}
