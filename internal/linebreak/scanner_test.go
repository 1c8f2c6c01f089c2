package linebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindNextBreakAfterSpace(t *testing.T) {
	text := []byte("hello world")
	index, mandatory := FindNextBreak(text, 0, nil)
	assert.Equal(t, 6, index)
	assert.False(t, mandatory)
}

func TestFindNextBreakAtTextEndIsMandatory(t *testing.T) {
	text := []byte("hello")
	index, mandatory := FindNextBreak(text, 0, nil)
	assert.Equal(t, len(text), index)
	assert.True(t, mandatory)
}

func TestFindNextBreakAfterLineFeedIsMandatory(t *testing.T) {
	text := []byte("hi\nthere")
	index, mandatory := FindNextBreak(text, 0, nil)
	assert.Equal(t, 3, index)
	assert.True(t, mandatory)
}

func TestNoBreakBetweenCRAndLF(t *testing.T) {
	text := []byte("hi\r\nthere")
	index, mandatory := FindNextBreak(text, 0, nil)
	assert.Equal(t, 4, index)
	assert.True(t, mandatory)
}

func TestFindNextMandatoryBreakSkipsOptional(t *testing.T) {
	text := []byte("hello world\nbye")
	index := FindNextMandatoryBreak(text, 0, nil)
	assert.Equal(t, 12, index)
}

func TestNoBreakBeforeClosePunctuation(t *testing.T) {
	text := []byte("(hi)")
	index, mandatory := FindNextBreak(text, 0, nil)
	// No break opportunity exists before the end of text: "(" opens,
	// letters hold together, and ")" never gets a break before it.
	assert.Equal(t, len(text), index)
	assert.True(t, mandatory)
}
