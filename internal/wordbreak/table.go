package wordbreak

import "github.com/thedjinn/segtext/internal/segtable"

// blockSize is the stage2 block width for word break tables, matching the
// original's 256-entry blocks.
const blockSize = 256

// DefaultTable is built once from Classify and shared by every Scanner that
// doesn't supply its own table.
var DefaultTable = segtable.Build(blockSize, MaxClass, func(cp rune) byte {
	return byte(Classify(cp))
})
