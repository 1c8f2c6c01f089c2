package conform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphemeFixture = `÷ 0061 ÷ 0062 ÷	# ÷ [0.2] LATIN SMALL LETTER A [999.0] LATIN SMALL LETTER B [0.3] ÷
÷ 000D × 000A ÷	# ÷ [0.2] CARRIAGE RETURN (CR) × [3.0] LINE FEED (LF) [0.3] ÷
`

func TestRunGraphemeClusterFixture(t *testing.T) {
	report, err := Run(GraphemeCluster, strings.NewReader(graphemeFixture), Tables{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Passed)
	assert.Empty(t, report.Failures)
}

func TestRunReportsFailureWithContext(t *testing.T) {
	// Expect a break where none exists: CR×LF must stay joined.
	fixture := "÷ 000D ÷ 000A ÷\t# deliberately wrong\n"

	report, err := Run(GraphemeCluster, strings.NewReader(fixture), Tables{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 0, report.Passed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Line)
}

func TestRunSkipsKnownBadLineBreakLines(t *testing.T) {
	var sb strings.Builder
	for i := 1; i < 1141; i++ {
		sb.WriteString("# filler\n")
	}
	sb.WriteString("÷ 0061 ÷ 0062 ÷\t# line 1141, known-bad\n")

	report, err := Run(Line, strings.NewReader(sb.String()), Tables{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Total)
}

func TestParseLineRejectsUnknownMarker(t *testing.T) {
	_, _, err := parseLine(1, "? 0061 ÷")
	assert.Error(t, err)
}

func TestParseLineSkipsCommentOnlyLines(t *testing.T) {
	tc, ok, err := parseLine(1, "# just a comment")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tc.text)
}
