// Package linebreak scans text for legal line-wrap points per Unicode
// Standard Annex #14, in the style of the original categorise_line_break
// rule cascade.
package linebreak

import "unicode"

// Class is a Line_Break property value, numbered to match the original
// LineBreak enum.
type Class byte

const (
	Ambiguous Class = iota // AI
	OrdinaryAlphabeticOrSymbol
	BreakOpportunityBeforeAndAfter // B2
	BreakAfter                     // BA
	BreakBefore                    // BB
	MandatoryBreak                 // BK
	ContingentBreakOpportunity     // CB
	ConditionalJapaneseStarter     // CJ
	ClosePunctuation                // CL
	CombiningMark                   // CM
	ClosingParenthesis               // CP
	CarriageReturn                   // CR
	EmojiBase                        // EB
	EmojiModifier                    // EM
	ExclamationInterrogation         // EX
	NonBreaking                      // GL
	HangulLVSyllable                 // H2
	HangulLVTSyllable                // H3
	HebrewLetter                     // HL
	Hyphen                           // HY
	Ideographic                      // ID
	InseparableCharacters            // IN
	InfixNumericSeparator            // IS
	HangulLJamo                      // JL
	HangulTJamo                      // JT
	HangulVJamo                      // JV
	LineFeed                         // LF
	NextLine                         // NL
	Nonstarters                      // NS
	Numeric                          // NU
	OpenPunctuation                  // OP
	PostfixNumeric                   // PO
	PrefixNumeric                    // PR
	Quotation                        // QU
	RegionalIndicator                // RI
	ComplexContextDependent          // SA
	Surrogate                        // SG
	Space                            // SP
	Symbols                          // SY
	WordJoiner                       // WJ
	Unknown                          // XX
	ZeroWidthSpace                   // ZW
	ZeroWidthJoiner                  // ZWJ
	classCount
)

// MaxClass is the highest valid Class ordinal, for use with segtable.Load.
const MaxClass = byte(classCount - 1)

// Category is the outcome of a line break opportunity test, per
// categorise_line_break: a boundary is either forced, allowed, or forbidden.
type Category byte

const (
	Mandatory Category = iota
	Optional
	Prohibited
)

// Classify derives the Line_Break class of a codepoint from Go's standard
// library Unicode range tables plus the handful of codepoints and blocks the
// original rule set names directly. As with the other two break packages,
// this approximates LineBreak.txt via general categories and well-known
// blocks rather than reproducing it codepoint for codepoint; see DESIGN.md.
func Classify(cp rune) Class {
	switch cp {
	case '\r':
		return CarriageReturn
	case '\n':
		return LineFeed
	case 0x0b, 0x0c:
		return MandatoryBreak
	case 0x85:
		return NextLine
	case 0x200b:
		return ZeroWidthSpace
	case 0x200d:
		return ZeroWidthJoiner
	case 0x2060, 0xfeff:
		return WordJoiner
	case 0x00a0, 0x202f, 0x2007:
		return NonBreaking
	case '-':
		return Hyphen
	case '!':
		return ExclamationInterrogation
	case ',', ';', ':':
		return InfixNumericSeparator
	case '"', '\'', 0x2018, 0x2019, 0x201c, 0x201d:
		return Quotation
	case '/':
		return Symbols
	}

	if cp >= 0x1f1e6 && cp <= 0x1f1ff {
		return RegionalIndicator
	}

	if class, ok := hangulSyllableClass(cp); ok {
		return class
	}

	if unicode.Is(unicode.Ps, cp) {
		return OpenPunctuation
	}
	if unicode.Is(unicode.Pe, cp) {
		return ClosePunctuation
	}
	if unicode.Is(unicode.Mn, cp) || unicode.Is(unicode.Me, cp) {
		return CombiningMark
	}
	if unicode.Is(unicode.Nd, cp) {
		return Numeric
	}
	if unicode.Is(unicode.Sc, cp) {
		return PrefixNumeric
	}
	if unicode.In(cp, unicode.Han, unicode.Hiragana, unicode.Katakana) {
		return Ideographic
	}
	if unicode.Is(unicode.Cs, cp) {
		return Surrogate
	}
	if unicode.Is(unicode.Zs, cp) {
		return Space
	}
	if unicode.IsLetter(cp) {
		return OrdinaryAlphabeticOrSymbol
	}

	return Unknown
}

func hangulSyllableClass(cp rune) (Class, bool) {
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
		return HangulLJamo, true
	case cp >= vBase && cp < vBase+vCount:
		return HangulVJamo, true
	case cp >= tBase+1 && cp < tBase+tCount:
		return HangulTJamo, true
	case cp >= sBase && cp < sBase+sCount:
		if (cp-sBase)%tCount == 0 {
			return HangulLVSyllable, true
		}
		return HangulLVTSyllable, true
	}
	return Unknown, false
}
