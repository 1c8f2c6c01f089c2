// Package utf8x provides the byte-index-oriented UTF-8 primitives that the
// segmentation scanners are built on: decoding a single codepoint, and
// stepping to the nearest codepoint boundary in either direction.
//
// Unlike the standard library's unicode/utf8 package, every function here
// works in terms of signed byte indices with -1 reserved as the invalid-index
// sentinel, matching the numeric semantics the scanners need: it is routine
// to step one codepoint past the end of a string, or one codepoint before its
// start, while probing for a boundary.
package utf8x

// InvalidIndex is returned by the stepping functions when no further
// boundary exists in the requested direction.
const InvalidIndex = -1

func isHeadingByte(b byte) bool {
	return b&0xc0 != 0x80
}

// Decode reads the UTF-8 sequence starting at byte index i and returns the
// codepoint along with the number of bytes consumed. The leading byte's count
// of high 1-bits determines the sequence length (1-4). No validation is
// performed beyond that; malformed input may decode to an out-of-range
// codepoint rather than failing.
func Decode(b []byte, i int) (codepoint rune, bytesRead int) {
	first := b[i]

	if first&0x80 == 0 {
		return rune(first), 1
	}

	mask := byte(0x40)
	toRead := 1
	cp := rune(first)
	ignoreMask := rune(-0x80) // bit pattern 0xffffff80

	for first&mask != 0 {
		toRead++
		cp = (cp << 6) | rune(b[i+toRead-1]&0x3f)
		ignoreMask |= rune(mask)
		mask >>= 1
	}
	ignoreMask |= rune(mask)
	cp &^= ignoreMask << uint(6*(toRead-1))

	return cp, toRead
}

// NextBoundary returns the smallest j >= i such that j equals size or b[j] is
// a heading byte. It fails (returning InvalidIndex) only when i > size.
func NextBoundary(b []byte, size int, i int) int {
	if i > size {
		return InvalidIndex
	}
	for j := i; j < size; j++ {
		if isHeadingByte(b[j]) {
			return j
		}
	}
	return size
}

// PriorBoundary returns the largest j <= i such that b[j] is a heading byte.
// It fails (returning InvalidIndex) when no such byte exists in [0, i]. i may
// be as large as len(b) (one past the last byte, the position callers probe
// when deciding whether a boundary exists at the very end of the text); the
// search then starts at len(b)-1 since there is no byte at i itself.
func PriorBoundary(b []byte, i int) int {
	if i >= len(b) {
		i = len(b) - 1
	}
	for j := i; j >= 0; j-- {
		if isHeadingByte(b[j]) {
			return j
		}
	}
	return InvalidIndex
}

// DecodePrior walks backward from byte index i (which, like PriorBoundary,
// may equal len(b)) to the nearest heading byte at or before i, then decodes
// the codepoint starting there. It returns the codepoint and the index of its
// first byte, or InvalidIndex if i is negative or no heading byte precedes it.
func DecodePrior(b []byte, i int) (codepoint rune, start int) {
	if i >= len(b) {
		i = len(b) - 1
	}
	for j := i; j >= 0; j-- {
		if isHeadingByte(b[j]) {
			cp, _ := Decode(b, j)
			return cp, j
		}
	}
	return 0, InvalidIndex
}
