// Package atrie implements the four-stage codepoint trie and its .atr
// on-disk chunk format: a compact, chunked, checksummed binary encoding for
// a richer per-codepoint property map than the two-stage segtable.Table can
// hold economically.
//
// The physical layout and lookup algorithm are grounded on the original
// implementation's unicode_trie.c: a direct array for ASCII, a single
// indirection through indices for the rest of the BMP up to U+0FFF, and a
// three-level walk through indices for everything up to high_end, with an
// optional 18-bit-index compression on the third-level block.
package atrie

// Trie is an in-memory four-stage codepoint-to-value map, as loaded from (or
// destined to be encoded as) a .atr stream.
type Trie struct {
	Data         []uint32
	Indices      []uint16
	HighEnd      rune
	DefaultValue uint32
}

// lowTableLength is the number of indices entries consumed by the stage used
// for the [0x80, 0xfff] range, i.e. 0xfff>>6.
const lowTableLength = 0xfff >> 6

// Get returns the trie value for cp, per the three-tier physical layout
// described in the package doc. Codepoints beyond HighEnd yield
// DefaultValue.
func (t *Trie) Get(cp rune) uint32 {
	switch {
	case cp < 0 || cp > t.HighEnd:
		return t.DefaultValue

	case cp <= 0x7f:
		return t.Data[cp]

	case cp <= 0xfff:
		stage1Index := cp >> 6
		dataOffset := cp & 0x3f
		blockIndex := t.Indices[stage1Index]
		return t.Data[uint32(blockIndex)+uint32(dataOffset)]

	default:
		stage1Offset := (cp >> 14) & 0x3f
		stage2Offset := (cp >> 9) & 0x1f
		stage3Offset := (cp >> 4) & 0x1f
		dataOffset := cp & 0xf

		stage1Index := rune(lowTableLength) + stage1Offset
		stage2Block := t.Indices[stage1Index]
		stage2Index := uint32(stage2Block) + uint32(stage2Offset)
		stage3Block := t.Indices[stage2Index]

		var dataBlock int32
		if stage3Block&0x8000 == 0 {
			dataBlock = int32(stage3Block) + int32(stage3Offset)
		} else {
			// 18-bit indices are stored in groups of 9 entries per 8
			// indices: entry zero packs the extra two high bits for
			// each of the following eight entries.
			i3 := int32(stage3Offset)
			block := int32(stage3Block&0x7fff) + (i3 &^ 7) + (i3 >> 3)
			i3 &= 7
			dataBlock = (int32(t.Indices[block]) << uint(2+2*i3)) & 0x30000
			block++
			dataBlock |= int32(t.Indices[block+i3])
		}

		return t.Data[uint32(dataBlock)+uint32(dataOffset)]
	}
}

// BreakFlags unpacks the four bit-fields packed into a single trie value when
// a scanner reads all three segmentation properties (plus the extended
// pictographic flag) for a codepoint in one lookup: grapheme (5 bits), line
// (6 bits), word (5 bits), extended-pictographic (1 bit).
type BreakFlags struct {
	Grapheme             byte
	Line                 byte
	Word                 byte
	ExtendedPictographic bool
}

// UnpackBreakFlags decodes a packed trie value into its four fields.
func UnpackBreakFlags(v uint32) BreakFlags {
	return BreakFlags{
		Grapheme:             byte(v & 0x1f),
		Line:                 byte((v >> 5) & 0x3f),
		Word:                 byte((v >> 11) & 0x1f),
		ExtendedPictographic: (v>>16)&0x1 != 0,
	}
}

// Pack encodes the four fields back into a single trie value, the inverse of
// UnpackBreakFlags.
func (f BreakFlags) Pack() uint32 {
	v := uint32(f.Grapheme & 0x1f)
	v |= uint32(f.Line&0x3f) << 5
	v |= uint32(f.Word&0x1f) << 11
	if f.ExtendedPictographic {
		v |= 1 << 16
	}
	return v
}
