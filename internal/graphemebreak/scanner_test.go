package graphemebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func breaksAt(text string) []int {
	var result []int
	for i := 0; i <= len(text); i++ {
		if TestBreak([]byte(text), i, nil) {
			result = append(result, i)
		}
	}
	return result
}

func TestBreakBetweenOrdinaryLetters(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, breaksAt("ab"))
}

func TestNoBreakBetweenCRLF(t *testing.T) {
	assert.False(t, TestBreak([]byte("\r\n"), 1, nil))
	assert.True(t, TestBreak([]byte("\r\n"), 0, nil))
	assert.True(t, TestBreak([]byte("\r\n"), 2, nil))
}

func TestNoBreakWithinExtendedGraphemeCluster(t *testing.T) {
	// 'e' followed by a combining acute accent (U+0301): one cluster.
	text := []byte("éx")
	assert.True(t, TestBreak(text, 0, nil))
	assert.False(t, TestBreak(text, 1, nil))
	assert.True(t, TestBreak(text, 3, nil))
}

func TestNoBreakBetweenRegionalIndicatorPair(t *testing.T) {
	// Two regional indicators (a flag) form a single cluster; a third one
	// starts a new cluster.
	text := []byte("\U0001F1FA\U0001F1F8\U0001F1FA")
	assert.True(t, TestBreak(text, 0, nil))
	assert.False(t, TestBreak(text, 4, nil))
	assert.True(t, TestBreak(text, 8, nil))
}

func TestFindPriorAndNext(t *testing.T) {
	text := []byte("éx")

	assert.Equal(t, 0, FindPrior(text, 1, nil))
	assert.Equal(t, 3, FindNext(text, 1, nil))
	assert.Equal(t, len(text), FindNext(text, 3, nil))
	assert.Equal(t, 0, FindPrior(text, 0, nil))
}

func TestFindPriorAtTextEnd(t *testing.T) {
	text := []byte("ab")
	assert.Equal(t, 1, FindPrior(text, len(text), nil))
}
