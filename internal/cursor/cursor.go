// Package cursor adapts a UTF-8 byte backing store into the stepwise
// codepoint view that a layout algorithm walks a scanner's break decisions
// with: advance to the next rune, retreat to the previous one, save and
// restore a byte position.
package cursor

// Cursor is an iterator over a Unicode text backing store. Implementations
// need only provide a position getter/setter and forward/backward stepping.
//
// A Cursor is stateful: it holds a current byte position. Callers should
// treat a position value as opaque, using it only to save and later restore
// a previously visited location.
type Cursor interface {
	// Position returns the cursor's current byte offset.
	Position() int

	// SetPosition moves the cursor to position, a byte offset previously
	// returned by Position or equal to len(text). It returns an error if
	// position falls outside the backing store or splits a rune.
	SetPosition(position int) error

	// Next returns the rune at the current position and advances past it.
	// ok is false once the cursor has reached the end of the text.
	Next() (r rune, ok bool)

	// Previous retreats the cursor to the rune before the current position
	// and returns it. ok is false once the cursor has reached the start of
	// the text.
	Previous() (r rune, ok bool)
}
