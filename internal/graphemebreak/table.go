package graphemebreak

import "github.com/thedjinn/segtext/internal/segtable"

// blockSize is the stage2 block width for grapheme break tables, matching
// the original's 256-entry blocks.
const blockSize = 256

// DefaultTable is built once from Classify and shared by every Scanner that
// doesn't supply its own table (e.g. one loaded from host-provided
// stage1/stage2 blobs via internal/tables).
var DefaultTable = segtable.Build(blockSize, MaxClass, func(cp rune) byte {
	return byte(Classify(cp))
})
