// Package conform implements a harness for the Unicode break-test files
// (GraphemeBreakTest.txt, WordBreakTest.txt, LineBreakTest.txt): it parses
// each test line's alternating break-marker/codepoint sequence, encodes the
// codepoints as UTF-8, and checks every scanner's boundary decision against
// the expected markers. Grounded on original_source/Test/Unicode/main.c's
// run_test/test_line, generalized from a one-off main() into a reusable,
// table-driven package.
package conform

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/thedjinn/segtext/internal/graphemebreak"
	"github.com/thedjinn/segtext/internal/linebreak"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/wordbreak"
)

// Kind selects which scanner a Run call exercises.
type Kind int

const (
	GraphemeCluster Kind = iota
	Word
	Line
)

const (
	optionalMarker   = "÷"
	prohibitedMarker = "×"
)

// KnownBadLineBreakLines are LineBreakTest.txt line numbers (1-indexed) that
// are erroneous in the published Unicode 10.0.0 data, because that file
// wasn't actually regenerated from the 9.0.0 rules it was derived from. Run
// skips these lines for Kind Line; they do not apply to the other two test
// files.
var KnownBadLineBreakLines = buildKnownBadLineBreakLines()

func buildKnownBadLineBreakLines() map[int]bool {
	lines := map[int]bool{
		1141: true, 1143: true, 1145: true, 1147: true,
		1309: true, 1311: true, 1313: true, 1315: true,
		2981: true, 2983: true,
		4497: true, 4499: true,
		4665: true, 4667: true,
		5165: true, 5167: true,
		7137: true, 7146: true, 7151: true,
		7206: true, 7207: true,
	}
	for i := 7170; i <= 7187; i++ {
		lines[i] = true
	}
	for i := 7236; i <= 7247; i++ {
		lines[i] = true
	}
	return lines
}

// testCase is one parsed line of a break-test file: the decoded text and,
// for each codepoint boundary in order, whether a break is expected there.
type testCase struct {
	line   int
	text   []byte
	breaks []bool
}

// Failure describes one test-case boundary whose expected and actual break
// decisions disagree.
type Failure struct {
	Line       int
	ByteOffset int
	Text       string
	Expected   bool
}

// Report summarizes a Run: how many test cases passed, and, for each failed
// test case, the first boundary that disagreed with the expected outcome.
type Report struct {
	Total    int
	Passed   int
	Skipped  int
	Failures []Failure
}

func parseLine(lineNo int, raw string) (testCase, bool, error) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return testCase{}, false, nil
	}

	fields := strings.Fields(raw)
	tc := testCase{line: lineNo}

	for i, token := range fields {
		if i%2 == 0 {
			switch token {
			case optionalMarker:
				tc.breaks = append(tc.breaks, true)
			case prohibitedMarker:
				tc.breaks = append(tc.breaks, false)
			default:
				return testCase{}, false, errors.Errorf("conform: line %d: unexpected marker %q", lineNo, token)
			}
		} else {
			value, err := strconv.ParseUint(token, 16, 32)
			if err != nil {
				return testCase{}, false, errors.Wrapf(err, "conform: line %d: bad codepoint token %q", lineNo, token)
			}
			tc.text = append(tc.text, encodeUTF8(rune(value))...)
		}
	}

	return tc, true, nil
}

func encodeUTF8(cp rune) []byte {
	switch {
	case cp <= 0x7f:
		return []byte{byte(cp)}
	case cp <= 0x7ff:
		return []byte{
			0xc0 | byte(cp>>6),
			0x80 | byte(cp&0x3f),
		}
	case cp <= 0xffff:
		return []byte{
			0xe0 | byte(cp>>12),
			0x80 | byte((cp>>6)&0x3f),
			0x80 | byte(cp&0x3f),
		}
	default:
		return []byte{
			0xf0 | byte(cp>>18),
			0x80 | byte((cp>>12)&0x3f),
			0x80 | byte((cp>>6)&0x3f),
			0x80 | byte(cp&0x3f),
		}
	}
}

// testBreakAt dispatches to the scanner named by kind.
func testBreakAt(kind Kind, text []byte, index int, graphemeTable, wordTable, lineTable *segtable.Table) bool {
	switch kind {
	case GraphemeCluster:
		return graphemebreak.TestBreak(text, index, graphemeTable)
	case Word:
		return wordbreak.TestBreak(text, index, wordTable)
	case Line:
		return linebreak.TestBreak(text, index, lineTable)
	default:
		panic(fmt.Sprintf("conform: unknown kind %d", kind))
	}
}

// Tables names the (optional) tables Run should use in place of each
// package's built-in default, for checking a loaded .atr-adjacent asset set
// instead of the in-source approximated tables.
type Tables struct {
	Grapheme *segtable.Table
	Word     *segtable.Table
	Line     *segtable.Table
}

// Run reads a Unicode break-test file from r and checks every test line's
// expected boundaries against the scanner selected by kind, using tables'
// fields in place of the relevant package's DefaultTable wherever non-nil.
func Run(kind Kind, r io.Reader, tables Tables) (Report, error) {
	var report Report

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tc, ok, err := parseLine(lineNo, scanner.Text())
		if err != nil {
			return report, err
		}
		if !ok {
			continue
		}

		if kind == Line && KnownBadLineBreakLines[lineNo] {
			report.Skipped++
			continue
		}

		report.Total++

		index := 0
		passed := true
		for i, expected := range tc.breaks {
			actual := testBreakAt(kind, tc.text, index, tables.Grapheme, tables.Word, tables.Line)
			if actual != expected {
				report.Failures = append(report.Failures, Failure{
					Line:       tc.line,
					ByteOffset: index,
					Text:       string(tc.text),
					Expected:   expected,
				})
				passed = false
				break
			}

			if i == len(tc.breaks)-1 {
				break
			}
			index = nextCodepointBoundary(tc.text, index+1)
		}

		if passed {
			report.Passed++
		}
	}

	if err := scanner.Err(); err != nil {
		return report, errors.Wrap(err, "conform: reading test file")
	}

	return report, nil
}

func nextCodepointBoundary(text []byte, i int) int {
	if i >= len(text) {
		return len(text)
	}
	for ; i < len(text); i++ {
		if text[i]&0xc0 != 0x80 {
			return i
		}
	}
	return len(text)
}
