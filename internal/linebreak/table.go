package linebreak

import "github.com/thedjinn/segtext/internal/segtable"

// blockSize is the stage2 block width for line break tables. Line_Break
// classifications vary over shorter runs than grapheme or word classes, so
// the original uses a narrower 128-entry block to keep the deduplicated
// stage2 array small.
const blockSize = 128

// DefaultTable is built once from Classify and shared by every Scanner that
// doesn't supply its own table.
var DefaultTable = segtable.Build(blockSize, MaxClass, func(cp rune) byte {
	return byte(Classify(cp))
})
