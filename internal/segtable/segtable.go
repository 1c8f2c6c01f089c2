// Package segtable implements the two-stage codepoint property table: a
// memory-compact constant-time map from any of the 0x110000 codepoints to a
// small integer property class, via a single indirection through a
// block-index array.
package segtable

import "fmt"

// Table is a loaded two-stage property table. Lookup is branchless after one
// range check: stage2[stage1[cp/blockSize]*blockSize + cp%blockSize].
type Table struct {
	stage1    []byte
	stage2    []byte
	blockSize int
	maxClass  byte
}

// Load validates and wraps two byte blobs as a Table. blockSize must be a
// positive divisor of 0x110000 (256 for grapheme/word tables, 128 for line
// tables, per the data model). maxClass is the highest valid class ordinal
// for this table; Load does not walk stage2 to verify every entry (that
// would defeat the point of a compact table) but does verify internal
// consistency of the stage1 indices against stage2's length.
func Load(stage1, stage2 []byte, blockSize int, maxClass byte) (*Table, error) {
	if blockSize <= 0 || 0x110000%blockSize != 0 {
		return nil, fmt.Errorf("segtable: invalid block size %d", blockSize)
	}

	wantBlocks := 0x110000 / blockSize
	if len(stage1) != wantBlocks {
		return nil, fmt.Errorf("segtable: stage1 has %d entries, want %d", len(stage1), wantBlocks)
	}

	if len(stage2)%blockSize != 0 {
		return nil, fmt.Errorf("segtable: stage2 length %d is not a multiple of block size %d", len(stage2), blockSize)
	}

	blockCount := len(stage2) / blockSize
	for _, blockIndex := range stage1 {
		if int(blockIndex) >= blockCount {
			return nil, fmt.Errorf("segtable: stage1 block index %d out of range (have %d blocks)", blockIndex, blockCount)
		}
	}

	return &Table{
		stage1:    stage1,
		stage2:    stage2,
		blockSize: blockSize,
		maxClass:  maxClass,
	}, nil
}

// Lookup returns the property class for cp. Negative codepoints, codepoints
// at or beyond 0x110000, and the whole surrogate range (U+D800..U+DFFF) are
// out of the table's domain; Lookup
// clamps rather than indexing out of bounds and returns class 0 ("Other"/
// "Unknown" by convention of every enumeration this table is used for).
func (t *Table) Lookup(cp rune) byte {
	if cp < 0 || cp >= 0x110000 || (cp >= 0xd800 && cp <= 0xdfff) {
		return 0
	}

	block := int(t.stage1[int(cp)/t.blockSize])
	return t.stage2[block*t.blockSize+int(cp)%t.blockSize]
}

// MaxClass returns the highest valid class ordinal for values produced by
// this table, as supplied to Load.
func (t *Table) MaxClass() byte {
	return t.maxClass
}

// Build constructs a two-stage table from a classifier function, deduplicating
// identical 128/256-entry blocks so that codepoint ranges sharing a property
// profile share a single stage2 block. This is how the in-source default
// tables (internal/graphemebreak, internal/wordbreak, internal/linebreak) are
// assembled from a range-table classifier instead of a pre-baked binary blob,
// and it is also how a host would regenerate stage1/stage2 blobs to write out
// as an .atr-adjacent asset pair.
func Build(blockSize int, maxClass byte, classify func(cp rune) byte) *Table {
	blockCount := 0x110000 / blockSize

	stage1 := make([]byte, blockCount)
	var stage2 []byte

	seen := make(map[string]byte)

	block := make([]byte, blockSize)
	for b := 0; b < blockCount; b++ {
		base := rune(b * blockSize)
		for i := 0; i < blockSize; i++ {
			block[i] = classify(base + rune(i))
		}

		key := string(block)
		index, ok := seen[key]
		if !ok {
			index = byte(len(stage2) / blockSize)
			seen[key] = index
			stage2 = append(stage2, block...)
			block = make([]byte, blockSize)
		}
		stage1[b] = index
	}

	return &Table{stage1: stage1, stage2: stage2, blockSize: blockSize, maxClass: maxClass}
}

// Stage1 returns the table's stage-1 block-index array, e.g. for persisting
// as a named byte blob.
func (t *Table) Stage1() []byte { return t.stage1 }

// Stage2 returns the table's stage-2 class-byte array, e.g. for persisting
// as a named byte blob.
func (t *Table) Stage2() []byte { return t.stage2 }
