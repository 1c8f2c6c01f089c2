package atrie

// crcTable is the reflected CRC-32 table using polynomial 0xedb88320, with
// the final XOR of 0xff000000 baked into each table entry rather than
// applied as a separate XOR-out step at the end of accumulation. The loader
// and writer must agree on this exact variant, grounded on
// crc_table_set_up/crc32 in the original atr.c.
var crcTable = buildCRCTable()

func buildCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		x := uint32(i)
		for iter := 0; iter < 8; iter++ {
			if x&1 != 0 {
				x = 0xedb88320 ^ (x >> 1)
			} else {
				x >>= 1
			}
		}
		table[i] = x ^ 0xff000000
	}
	return table
}

// crcUpdate accumulates data into running, using the reflected polynomial
// table above. The caller seeds running at 0xffffffff and the final value of
// running, with no further transformation, is the stored/expected checksum.
func crcUpdate(running uint32, data []byte) uint32 {
	code := running
	for _, b := range data {
		index := byte(code) ^ b
		code = crcTable[index] ^ (code >> 8)
	}
	return code
}
