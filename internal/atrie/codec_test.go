package atrie

import (
	"bytes"
	"testing"
)

func sampleTrie() *Trie {
	return &Trie{
		Data:         []uint32{1, 2, 3, 4, 5, 0xdeadbeef},
		Indices:      []uint16{0, 1, 2, 3, 0x8032},
		HighEnd:      0x7f,
		DefaultValue: 0xffffffff,
	}
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	trie := sampleTrie()

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.HighEnd != trie.HighEnd {
		t.Errorf("HighEnd = %#x, want %#x", loaded.HighEnd, trie.HighEnd)
	}
	if loaded.DefaultValue != trie.DefaultValue {
		t.Errorf("DefaultValue = %#x, want %#x", loaded.DefaultValue, trie.DefaultValue)
	}
	if !equalUint32(loaded.Data, trie.Data) {
		t.Errorf("Data = %v, want %v", loaded.Data, trie.Data)
	}
	if !equalUint16(loaded.Indices, trie.Indices) {
		t.Errorf("Indices = %v, want %v", loaded.Indices, trie.Indices)
	}

	for _, cp := range []rune{0, 1, 0x100, 0x10ffff} {
		if loaded.Get(cp) != trie.Get(cp) {
			t.Errorf("Get(%#x) diverged after round trip: %d vs %d", cp, loaded.Get(cp), trie.Get(cp))
		}
	}
}

func TestEncodeLoadEmptyTrie(t *testing.T) {
	trie := &Trie{HighEnd: 0x7f, DefaultValue: 0}

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.HighEnd != 0x7f || loaded.DefaultValue != 0 {
		t.Errorf("unexpected loaded trie: %+v", loaded)
	}
}

func TestLoadRejectsBitFlip(t *testing.T) {
	trie := sampleTrie()

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()
	for i := range raw {
		corrupted := make([]byte, len(raw))
		copy(corrupted, raw)
		corrupted[i] ^= 0x01

		if _, err := Load(bytes.NewReader(corrupted)); err == nil {
			t.Fatalf("Load accepted a stream with byte %d bit-flipped", i)
		}
	}
}

func TestLoadRejectsBadSignature(t *testing.T) {
	trie := sampleTrie()

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()
	raw[0] ^= 0xff

	if _, err := Load(bytes.NewReader(raw)); err != ErrMalformed {
		t.Errorf("Load with bad signature: err = %v, want ErrMalformed", err)
	}
}

func TestLoadRejectsTruncatedStream(t *testing.T) {
	trie := sampleTrie()

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()
	if _, err := Load(bytes.NewReader(raw[:len(raw)-3])); err != ErrMalformed {
		t.Errorf("Load with truncated stream: err = %v, want ErrMalformed", err)
	}
}

func TestLoadRejectsShortHeader(t *testing.T) {
	if _, err := Load(bytes.NewReader(nil)); err != ErrMalformed {
		t.Errorf("Load with empty stream: err = %v, want ErrMalformed", err)
	}
}

func equalUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalUint16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
