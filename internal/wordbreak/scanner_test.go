package wordbreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoBreakWithinWord(t *testing.T) {
	text := []byte("hello")
	assert.True(t, TestBreak(text, 0, nil))
	for i := 1; i < len(text); i++ {
		assert.Falsef(t, TestBreak(text, i, nil), "unexpected break at %d", i)
	}
	assert.True(t, TestBreak(text, len(text), nil))
}

func TestBreakBetweenWordAndSpace(t *testing.T) {
	text := []byte("hi there")
	assert.True(t, TestBreak(text, 2, nil))
	assert.True(t, TestBreak(text, 3, nil))
}

func TestNoBreakWithinNumber(t *testing.T) {
	text := []byte("12,345.6")
	for i := 1; i < len(text); i++ {
		assert.Falsef(t, TestBreak(text, i, nil), "unexpected break at %d", i)
	}
}

func TestNoBreakWithinContraction(t *testing.T) {
	text := []byte("don't")
	for i := 1; i < len(text); i++ {
		assert.Falsef(t, TestBreak(text, i, nil), "unexpected break at %d", i)
	}
}

func TestFindPriorWordStartAndNextWordEnd(t *testing.T) {
	text := []byte("hi there")

	assert.Equal(t, 0, FindPriorWordStart(text, 1))
	assert.Equal(t, 3, FindPriorWordStart(text, 5))
	assert.Equal(t, 2, FindNextWordEnd(text, 0))
	assert.Equal(t, 8, FindNextWordEnd(text, 3))
}

func TestFindNextWordEndAtTextEnd(t *testing.T) {
	text := []byte("hi")
	assert.Equal(t, len(text), FindNextWordEnd(text, 0))
}
