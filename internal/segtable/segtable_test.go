package segtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAgreesWithClassifier(t *testing.T) {
	classify := func(cp rune) byte {
		switch {
		case cp == '\n':
			return 1
		case cp >= 'a' && cp <= 'z':
			return 2
		case cp >= 0x1F1E6 && cp <= 0x1F1FF:
			return 3
		default:
			return 0
		}
	}

	table := Build(256, 3, classify)

	for _, cp := range []rune{0, 'x', '\n', 'a', 'z', 0x1F1E6, 0x1F1FF, 0x10FFFF} {
		assert.Equal(t, classify(cp), table.Lookup(cp), "mismatch at U+%04X", cp)
	}
}

func TestLookupOutOfRangeReturnsOther(t *testing.T) {
	table := Build(256, 5, func(rune) byte { return 5 })

	assert.Equal(t, byte(0), table.Lookup(-1))
	assert.Equal(t, byte(0), table.Lookup(0x110000))
	assert.Equal(t, byte(0), table.Lookup(0x200000))
}

func TestLoadRejectsMismatchedLengths(t *testing.T) {
	built := Build(256, 1, func(cp rune) byte {
		if cp == 0 {
			return 1
		}
		return 0
	})

	_, err := Load(built.Stage1(), built.Stage2(), 256, 1)
	require.NoError(t, err)

	_, err = Load(built.Stage1()[:len(built.Stage1())-1], built.Stage2(), 256, 1)
	assert.Error(t, err)

	badStage1 := make([]byte, len(built.Stage1()))
	copy(badStage1, built.Stage1())
	badStage1[0] = 0xff
	_, err = Load(badStage1, built.Stage2(), 256, 1)
	assert.Error(t, err)
}

func TestLoadRejectsBadBlockSize(t *testing.T) {
	_, err := Load(nil, nil, 0, 0)
	assert.Error(t, err)

	_, err = Load(nil, nil, 300, 0)
	assert.Error(t, err)
}
