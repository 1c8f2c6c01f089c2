// Package graphemebreak scans text for user-perceived character (grapheme
// cluster) boundaries per Unicode Standard Annex #29, in the style of the
// original allow_grapheme_cluster_break rule cascade.
package graphemebreak

import "unicode"

// Class is a Grapheme_Cluster_Break property value. The numbering matches
// the original GraphemeClusterBreak enum so that a packed trie value (see
// internal/atrie.BreakFlags) can be unpacked directly into a Class.
type Class byte

const (
	Other Class = iota
	CarriageReturn
	LineFeed
	Control
	Extend
	ZeroWidthJoiner
	RegionalIndicator
	Prepend
	SpacingMark
	HangulSyllableL
	HangulSyllableV
	HangulSyllableT
	HangulSyllableLV
	HangulSyllableLVT
	EmojiBase
	EmojiModifier
	GlueAfterZWJ
	EmojiBaseGAZ
	classCount
)

// MaxClass is the highest valid Class ordinal, for use with segtable.Load.
const MaxClass = byte(classCount - 1)

// hangulSyllableType classifies a codepoint into one of the five Hangul
// syllable roles used by the hangul-specific hard-pair rules below, following
// the block arithmetic from Unicode's Hangul Syllable Type derivation.
func hangulSyllableType(cp rune) (Class, bool) {
	const (
		lBase  = 0x1100
		lCount = 19
		vBase  = 0x1161
		vCount = 21
		tBase  = 0x11a7
		tCount = 28
		sBase  = 0xac00
		sCount = lCount * vCount * tCount
	)

	switch {
	case cp >= lBase && cp < lBase+lCount:
		return HangulSyllableL, true
	case cp >= vBase && cp < vBase+vCount:
		return HangulSyllableV, true
	case cp >= tBase+1 && cp < tBase+tCount:
		return HangulSyllableT, true
	case cp >= sBase && cp < sBase+sCount:
		if (cp-sBase)%tCount == 0 {
			return HangulSyllableLV, true
		}
		return HangulSyllableLVT, true
	}
	return Other, false
}

// Classify derives the Grapheme_Cluster_Break class of a codepoint from Go's
// standard library Unicode range tables plus the handful of codepoints and
// blocks the original rule set singles out by name (CR, LF, regional
// indicators, the Hangul jamo/syllable blocks, emoji modifiers, and the
// zero-width joiner). It is not a verbatim reproduction of the UCD's
// GraphemeBreakProperty.txt, which assigns Extend/Prepend/SpacingMark on a
// per-codepoint basis that general categories only approximate; see
// DESIGN.md for the scope of this approximation.
func Classify(cp rune) Class {
	switch cp {
	case '\r':
		return CarriageReturn
	case '\n':
		return LineFeed
	case 0x200d:
		return ZeroWidthJoiner
	}

	if cp >= 0x1f1e6 && cp <= 0x1f1ff {
		return RegionalIndicator
	}

	if class, ok := hangulSyllableType(cp); ok {
		return class
	}

	if unicode.Is(unicode.Cc, cp) || unicode.Is(unicode.Cf, cp) && cp != 0x200d {
		return Control
	}

	if unicode.Is(unicode.Mn, cp) || unicode.Is(unicode.Me, cp) {
		return Extend
	}
	if unicode.Is(unicode.Mc, cp) {
		return SpacingMark
	}

	if unicode.Is(unicode.Sk, cp) && cp >= 0x1f3fb && cp <= 0x1f3ff {
		return EmojiModifier
	}

	return Other
}
