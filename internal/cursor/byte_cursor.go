package cursor

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ByteCursor is a Cursor over a []byte backing store, the form scanners in
// this module operate on directly. Position values are byte offsets into
// the slice.
type ByteCursor struct {
	text     []byte
	position int
}

// NewByteCursor returns a ByteCursor over text, positioned at its start.
func NewByteCursor(text []byte) *ByteCursor {
	return &ByteCursor{text: text}
}

// Position returns the cursor's current byte offset.
func (c *ByteCursor) Position() int {
	return c.position
}

// SetPosition moves the cursor to position. A value equal to len(text) is
// legal and represents the end of the text; a position inside a multi-byte
// sequence is rejected.
func (c *ByteCursor) SetPosition(position int) error {
	if position < 0 {
		return errors.New("cursor: position can not be negative")
	}
	if position > len(c.text) {
		return errors.New("cursor: position can not be beyond the end of the text")
	}
	if position < len(c.text) && !utf8.RuneStart(c.text[position]) {
		return errors.New("cursor: position can not split a rune")
	}

	c.position = position
	return nil
}

// Next returns the rune at the current position and advances past it.
func (c *ByteCursor) Next() (r rune, ok bool) {
	if c.position >= len(c.text) {
		return -1, false
	}

	r, size := utf8.DecodeRune(c.text[c.position:])
	c.position += size

	return r, true
}

// Previous retreats the cursor to the rune before the current position and
// returns it.
func (c *ByteCursor) Previous() (r rune, ok bool) {
	if c.position <= 0 {
		return -1, false
	}

	r, size := utf8.DecodeLastRune(c.text[:c.position])
	c.position -= size

	return r, true
}
