package atrie

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// signature is "ARBOTRIE" read as a little-endian uint64, i.e. the ASCII
// bytes in file order.
const signature uint64 = 0x454952544f425241

const formatVersion uint16 = 0

const (
	tagData   = "DATA"
	tagIndex  = "INDX"
	tagFormat = "FORM"
)

// ErrMalformed is the single opaque failure reported for any structurally
// invalid .atr stream: wrong magic, wrong version, a truncated chunk, a
// wrong-size FORM chunk, or a checksum mismatch. The caller may retry with a
// different source but gets no finer-grained diagnosis, matching the
// "trie load failed" error kind in the design's error handling section.
var ErrMalformed = errors.New("atrie: malformed .atr stream")

type fileHeader struct {
	Signature uint64
	Checksum  uint32
	Version   uint16
}

type chunkHeader struct {
	Tag  [4]byte
	Size uint32
}

// Load reads a .atr stream per the format described in the package doc: an
// 8-byte magic, a 4-byte CRC-32 covering everything after it, a 2-byte
// version, then zero or more tagged, length-prefixed chunks. On any
// structural failure the partially-built trie is discarded and ErrMalformed
// is returned; no partial state is ever handed back to the caller.
func Load(r io.Reader) (*Trie, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header.Signature); err != nil {
		return nil, ErrMalformed
	}
	if err := binary.Read(r, binary.LittleEndian, &header.Checksum); err != nil {
		return nil, ErrMalformed
	}
	if err := binary.Read(r, binary.LittleEndian, &header.Version); err != nil {
		return nil, ErrMalformed
	}

	if header.Signature != signature {
		return nil, ErrMalformed
	}
	if header.Version != formatVersion {
		return nil, ErrMalformed
	}

	running := uint32(0xffffffff)

	var versionBytes [2]byte
	binary.LittleEndian.PutUint16(versionBytes[:], header.Version)
	running = crcUpdate(running, versionBytes[:])

	trie := &Trie{}
	haveFormat := false

	for {
		var ch chunkHeader
		if err := binary.Read(r, binary.LittleEndian, &ch.Tag); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, ErrMalformed
		}
		if err := binary.Read(r, binary.LittleEndian, &ch.Size); err != nil {
			return nil, ErrMalformed
		}

		var headerBuf bytes.Buffer
		headerBuf.Write(ch.Tag[:])
		binary.Write(&headerBuf, binary.LittleEndian, ch.Size)
		running = crcUpdate(running, headerBuf.Bytes())

		payload := make([]byte, ch.Size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, ErrMalformed
		}
		running = crcUpdate(running, payload)

		switch string(ch.Tag[:]) {
		case tagFormat:
			if len(payload) != 8 {
				return nil, ErrMalformed
			}
			trie.DefaultValue = binary.LittleEndian.Uint32(payload[0:4])
			trie.HighEnd = rune(binary.LittleEndian.Uint32(payload[4:8]))
			haveFormat = true

		case tagData:
			if len(payload)%4 != 0 {
				return nil, ErrMalformed
			}
			trie.Data = make([]uint32, len(payload)/4)
			for i := range trie.Data {
				trie.Data[i] = binary.LittleEndian.Uint32(payload[i*4:])
			}

		case tagIndex:
			if len(payload)%2 != 0 {
				return nil, ErrMalformed
			}
			trie.Indices = make([]uint16, len(payload)/2)
			for i := range trie.Indices {
				trie.Indices[i] = binary.LittleEndian.Uint16(payload[i*2:])
			}

		default:
			// Unknown tags are skipped; their bytes have already been
			// consumed (and folded into the checksum) above.
		}
	}

	if !haveFormat {
		return nil, ErrMalformed
	}

	if running != header.Checksum {
		return nil, ErrMalformed
	}

	return trie, nil
}

// Encode writes t as a .atr stream: the FORM, DATA, and INDX chunks in that
// order, with a CRC-32 computed identically to Load so that Load(Encode(t))
// round-trips.
func (t *Trie) Encode(w io.Writer) error {
	var body bytes.Buffer

	writeChunk := func(tag string, payload []byte) {
		body.WriteString(tag)
		var size [4]byte
		binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))
		body.Write(size[:])
		body.Write(payload)
	}

	formPayload := make([]byte, 8)
	binary.LittleEndian.PutUint32(formPayload[0:4], t.DefaultValue)
	binary.LittleEndian.PutUint32(formPayload[4:8], uint32(t.HighEnd))
	writeChunk(tagFormat, formPayload)

	dataPayload := make([]byte, len(t.Data)*4)
	for i, v := range t.Data {
		binary.LittleEndian.PutUint32(dataPayload[i*4:], v)
	}
	writeChunk(tagData, dataPayload)

	indexPayload := make([]byte, len(t.Indices)*2)
	for i, v := range t.Indices {
		binary.LittleEndian.PutUint16(indexPayload[i*2:], v)
	}
	writeChunk(tagIndex, indexPayload)

	running := uint32(0xffffffff)
	var versionBytes [2]byte
	binary.LittleEndian.PutUint16(versionBytes[:], formatVersion)
	running = crcUpdate(running, versionBytes[:])
	running = crcUpdate(running, body.Bytes())

	if err := binary.Write(w, binary.LittleEndian, signature); err != nil {
		return fmt.Errorf("atrie: writing signature: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, running); err != nil {
		return fmt.Errorf("atrie: writing checksum: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return fmt.Errorf("atrie: writing version: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("atrie: writing chunks: %w", err)
	}

	return nil
}
