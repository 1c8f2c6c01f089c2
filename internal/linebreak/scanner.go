package linebreak

import (
	"github.com/thedjinn/segtext/internal/segcache"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/utf8x"
)

const breaksCap = 64

// substitute implements substitute_line_break: a handful of classes stand in
// for others that this scanner doesn't treat specially, either because they
// are themselves fallback-only values (Ambiguous, Surrogate, Unknown) or
// because resolving them properly needs general-category data this scanner
// doesn't carry (Complex_Context_Dependent).
func substitute(class Class) Class {
	switch class {
	case Ambiguous, Surrogate, Unknown, ComplexContextDependent:
		return OrdinaryAlphabeticOrSymbol
	case ConditionalJapaneseStarter:
		return Nonstarters
	default:
		return class
	}
}

// Scanner answers line break opportunity questions for a single piece of
// text. A Scanner is not safe for concurrent use. Each query starts from an
// empty cache, since the cache's slot numbering restarts with every query.
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
	return substitute(Class(s.table.Lookup(cp)))
}

func (s *Scanner) getBreakAt(startIndex, breakIndex int) (Class, int) {
	return s.cache.GetBreakAt(startIndex, breakIndex, s.classify)
}

// resolveCombiningMark implements resolve_combining_mark: a combining mark or
// zero-width joiner takes on the class of the nearest preceding codepoint
// that is neither, falling back to Ordinary_Alphabetic_Or_Symbol when that
// codepoint is itself a hard break or space, or when no such codepoint
// precedes it at all.
func (s *Scanner) resolveCombiningMark(class Class, index, breakIndex int) Class {
	if class != CombiningMark && class != ZeroWidthJoiner {
		return class
	}

	for i, j := index-1, breakIndex-1; i >= 0; j-- {
		c, cIndex := s.getBreakAt(i, j)
		if cIndex == utf8x.InvalidIndex {
			return OrdinaryAlphabeticOrSymbol
		}
		i = cIndex - 1
		if c != CombiningMark && c != ZeroWidthJoiner {
			if isHardBreakOrSpace(c) {
				return OrdinaryAlphabeticOrSymbol
			}
			return c
		}
	}

	return OrdinaryAlphabeticOrSymbol
}

func isHardBreakOrSpace(c Class) bool {
	return c == MandatoryBreak || c == CarriageReturn || c == LineFeed ||
		c == NextLine || c == Space || c == ZeroWidthSpace
}

// categorise implements categorise_line_break's full rule cascade, in the
// order given by UAX #14: non-tailorable rules first, then the tailorable
// rules that make up the bulk of everyday line wrapping.
func (s *Scanner) categorise(index, breakIndex int) Category {
	if index == 0 {
		return Prohibited
	}
	if index >= len(s.text) {
		return Mandatory
	}

	a, aIndex := s.getBreakAt(index-1, breakIndex-1)
	b, bIndex := s.getBreakAt(index, breakIndex)
	if aIndex == utf8x.InvalidIndex {
		return Prohibited
	}
	if bIndex == utf8x.InvalidIndex {
		return Mandatory
	}

	if a == CarriageReturn {
		if b == LineFeed {
			return Prohibited
		}
		return Mandatory
	}

	if a == LineFeed || a == NextLine || a == MandatoryBreak {
		return Mandatory
	}

	if b == MandatoryBreak || b == CarriageReturn || b == LineFeed || b == NextLine {
		return Prohibited
	}

	if b == Space || b == ZeroWidthSpace {
		return Prohibited
	}

	if a == ZeroWidthSpace {
		return Optional
	}
	if a == Space {
		for i, j := aIndex-1, breakIndex-2; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			i = cIndex - 1
			if c == ZeroWidthSpace {
				return Optional
			}
			if c != Space {
				break
			}
		}
	}

	if a == ZeroWidthJoiner && (b == Ideographic || b == EmojiBase || b == EmojiModifier) {
		return Prohibited
	}

	if a == CombiningMark || a == ZeroWidthJoiner {
		unresolved := a
		for i, j := aIndex-1, breakIndex-2; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			i = cIndex - 1
			if c != CombiningMark && c != ZeroWidthJoiner {
				if isHardBreakOrSpace(c) {
					a = OrdinaryAlphabeticOrSymbol
				} else {
					a = c
				}
				break
			}
		}
		if a == unresolved {
			a = OrdinaryAlphabeticOrSymbol
		}
	}
	if b == CombiningMark || b == ZeroWidthJoiner {
		if isHardBreakOrSpace(a) {
			b = OrdinaryAlphabeticOrSymbol
		} else {
			return Prohibited
		}
	}

	if a == WordJoiner || b == WordJoiner {
		return Prohibited
	}

	if a == NonBreaking {
		return Prohibited
	}

	if a != Space && a != BreakAfter && a != Hyphen && b == NonBreaking {
		return Prohibited
	}

	if b == ClosePunctuation || b == ClosingParenthesis || b == ExclamationInterrogation ||
		b == InfixNumericSeparator || b == Symbols {
		return Prohibited
	}

	if a == OpenPunctuation {
		return Prohibited
	} else if a == Space {
		for i, j := aIndex-1, breakIndex-2; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			c = s.resolveCombiningMark(c, cIndex, j)
			if c == OpenPunctuation {
				return Prohibited
			}
			if c != Space {
				break
			}
			i = cIndex - 1
		}
	}

	if b == OpenPunctuation {
		for i, j := aIndex, breakIndex-1; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			c = s.resolveCombiningMark(c, cIndex, j)
			if c == Quotation {
				return Prohibited
			}
			if c != Space {
				break
			}
			i = cIndex - 1
		}
	}

	if b == Nonstarters {
		for i, j := aIndex, breakIndex-1; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			c = s.resolveCombiningMark(c, cIndex, j)
			if c == ClosePunctuation || c == ClosingParenthesis {
				return Prohibited
			}
			if c != Space {
				break
			}
			i = cIndex - 1
		}
	}

	if b == BreakOpportunityBeforeAndAfter {
		if a == BreakOpportunityBeforeAndAfter {
			return Prohibited
		}
		for i, j := aIndex-1, breakIndex-2; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			c = s.resolveCombiningMark(c, cIndex, j)
			if c == BreakOpportunityBeforeAndAfter {
				return Prohibited
			}
			if c != Space {
				break
			}
			i = cIndex - 1
		}
	}

	if a == Space {
		return Optional
	}

	if a == Quotation || b == Quotation {
		return Prohibited
	}

	if a == ContingentBreakOpportunity || b == ContingentBreakOpportunity {
		return Optional
	}

	if a == BreakBefore || b == BreakAfter || b == Hyphen || b == Nonstarters {
		return Prohibited
	}

	if c, cIndex := s.getBreakAt(aIndex-1, breakIndex-2); cIndex != utf8x.InvalidIndex {
		c = s.resolveCombiningMark(c, cIndex, breakIndex-2)
		if (a == Hyphen || a == BreakAfter) && c == HebrewLetter {
			return Prohibited
		}
	}

	if a == Symbols && b == HebrewLetter {
		return Prohibited
	}

	alphaNumericLike := func(c Class) bool {
		return c == OrdinaryAlphabeticOrSymbol || c == EmojiBase || c == EmojiModifier ||
			c == ExclamationInterrogation || c == HebrewLetter || c == Ideographic ||
			c == InseparableCharacters || c == Numeric
	}
	if alphaNumericLike(a) && b == InseparableCharacters {
		return Prohibited
	}

	alphaLike := func(c Class) bool { return c == OrdinaryAlphabeticOrSymbol || c == HebrewLetter }
	if alphaLike(a) && b == Numeric {
		return Prohibited
	}
	if a == Numeric && alphaLike(b) {
		return Prohibited
	}

	if a == PrefixNumeric && (b == Ideographic || b == EmojiBase || b == EmojiModifier) {
		return Prohibited
	}
	if (a == Ideographic || a == EmojiBase || a == EmojiModifier) && b == PostfixNumeric {
		return Prohibited
	}

	if (a == PrefixNumeric || a == PostfixNumeric) && alphaLike(b) {
		return Prohibited
	}
	if alphaLike(a) && (b == PrefixNumeric || b == PostfixNumeric) {
		return Prohibited
	}

	switch {
	case a == ClosePunctuation && b == PostfixNumeric,
		a == ClosingParenthesis && b == PostfixNumeric,
		a == ClosePunctuation && b == PrefixNumeric,
		a == ClosingParenthesis && b == PrefixNumeric,
		a == Numeric && b == PostfixNumeric,
		a == Numeric && b == PrefixNumeric,
		a == PostfixNumeric && b == OpenPunctuation,
		a == PostfixNumeric && b == Numeric,
		a == PrefixNumeric && b == OpenPunctuation,
		a == PrefixNumeric && b == Numeric,
		a == Hyphen && b == Numeric,
		a == InfixNumericSeparator && b == Numeric,
		a == Numeric && b == Numeric,
		a == Symbols && b == Numeric:
		return Prohibited
	}

	if a == HangulLJamo && (b == HangulLJamo || b == HangulVJamo || b == HangulLVSyllable || b == HangulLVTSyllable) {
		return Prohibited
	}
	if (a == HangulVJamo || a == HangulLVSyllable) && (b == HangulVJamo || b == HangulTJamo) {
		return Prohibited
	}
	if (a == HangulTJamo || a == HangulLVTSyllable) && b == HangulTJamo {
		return Prohibited
	}

	hangulLike := func(c Class) bool {
		return c == HangulLJamo || c == HangulTJamo || c == HangulVJamo ||
			c == HangulLVSyllable || c == HangulLVTSyllable
	}
	if hangulLike(a) && (b == InseparableCharacters || b == PostfixNumeric) {
		return Prohibited
	}
	if a == PrefixNumeric && hangulLike(b) {
		return Prohibited
	}

	if alphaLike(a) && alphaLike(b) {
		return Prohibited
	}

	if a == InfixNumericSeparator && alphaLike(b) {
		return Prohibited
	}

	if (alphaLike(a) || a == Numeric) && b == OpenPunctuation {
		return Prohibited
	}
	if a == ClosingParenthesis && (alphaLike(b) || b == Numeric) {
		return Prohibited
	}

	if a == RegionalIndicator && b == RegionalIndicator {
		count := 0
		for i, j := aIndex, breakIndex-1; i >= 0; j-- {
			c, cIndex := s.getBreakAt(i, j)
			if cIndex == utf8x.InvalidIndex {
				break
			}
			resolved := s.resolveCombiningMark(c, cIndex, j)
			if resolved != RegionalIndicator {
				break
			}
			if c == CombiningMark || c == ZeroWidthJoiner {
				i = cIndex - 1
				continue
			}
			i = cIndex - 1
			count++
		}
		if count&1 != 0 {
			return Prohibited
		}
	}

	if a == EmojiBase && b == EmojiModifier {
		return Prohibited
	}

	return Optional
}

// TestBreak reports whether textIndex is a legal line break opportunity
// (mandatory or optional, but not prohibited) within the scanner's text.
func (s *Scanner) TestBreak(textIndex int) bool {
	s.cache = segcache.New[Class](s.text, breaksCap)
	return s.categorise(textIndex, 0) != Prohibited
}

// FindNextBreak returns the next legal line break opportunity strictly after
// startIndex, and whether that break is mandatory (forced by a hard line
// terminator) as opposed to merely optional. It returns len(text) with
// mandatory set to true if no earlier opportunity exists.
func (s *Scanner) FindNextBreak(startIndex int) (index int, mandatory bool) {
	s.cache = segcache.New[Class](s.text, breaksCap)
	adjusted := utf8x.NextBoundary(s.text, len(s.text), startIndex+1)

	found := utf8x.InvalidIndex
	for i, j := adjusted, 0; i != utf8x.InvalidIndex; j++ {
		category := s.categorise(i, j)
		if category != Prohibited {
			found = i
			mandatory = category == Mandatory
			break
		}
		i = utf8x.NextBoundary(s.text, len(s.text), i+1)
	}

	if found == utf8x.InvalidIndex {
		return len(s.text), true
	}
	return found, mandatory
}

// FindNextMandatoryBreak returns the next mandatory line break strictly after
// startIndex, stepping through every intervening optional opportunity. It
// returns len(text) if the text ends before a mandatory break is found.
func (s *Scanner) FindNextMandatoryBreak(startIndex int) int {
	end := len(s.text)
	for i := startIndex; i < end; {
		next, mandatory := s.FindNextBreak(i)
		if mandatory {
			return next
		}
		i = next
	}
	return end
}

// TestBreak reports whether textIndex is a legal line break opportunity
// within text.
func TestBreak(text []byte, textIndex int, table *segtable.Table) bool {
	return NewScanner(text, table).TestBreak(textIndex)
}

// FindNextBreak returns the next legal line break opportunity strictly after
// startIndex within text, and whether it is mandatory.
func FindNextBreak(text []byte, startIndex int, table *segtable.Table) (int, bool) {
	return NewScanner(text, table).FindNextBreak(startIndex)
}

// FindNextMandatoryBreak returns the next mandatory line break strictly after
// startIndex within text.
func FindNextMandatoryBreak(text []byte, startIndex int, table *segtable.Table) int {
	return NewScanner(text, table).FindNextMandatoryBreak(startIndex)
}
