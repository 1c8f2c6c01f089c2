package tables

import (
	"bytes"
	"io"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedjinn/segtext/internal/graphemebreak"
	"github.com/thedjinn/segtext/internal/linebreak"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/wordbreak"
)

type memSource map[string][]byte

func (m memSource) Open(name string) (io.ReadCloser, error) {
	data, ok := m[name]
	if !ok {
		return nil, errAssetNotFound{name}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type errAssetNotFound struct{ name string }

func (e errAssetNotFound) Error() string { return "tables: no such asset " + e.name }

func buildSource() memSource {
	grapheme := segtable.Build(256, graphemebreak.MaxClass, func(cp rune) byte {
		return byte(graphemebreak.Classify(cp))
	})
	word := segtable.Build(256, wordbreak.MaxClass, func(cp rune) byte {
		return byte(wordbreak.Classify(cp))
	})
	line := segtable.Build(128, linebreak.MaxClass, func(cp rune) byte {
		return byte(linebreak.Classify(cp))
	})

	return memSource{
		GraphemeStage1: grapheme.Stage1(),
		GraphemeStage2: grapheme.Stage2(),
		WordStage1:     word.Stage1(),
		WordStage2:     word.Stage2(),
		LineStage1:     line.Stage1(),
		LineStage2:     line.Stage2(),
	}
}

func TestLoadAllWithoutTrie(t *testing.T) {
	engine, err := LoadAll(buildSource())
	require.NoError(t, err)

	assert.NotNil(t, engine.GraphemeTable)
	assert.NotNil(t, engine.WordTable)
	assert.NotNil(t, engine.LineTable)
	assert.Nil(t, engine.Trie)

	assert.Equal(t, byte(graphemebreak.CarriageReturn), engine.GraphemeTable.Lookup('\r'))
	assert.Equal(t, byte(wordbreak.Numeric), engine.WordTable.Lookup('5'))
}

func TestLoadAllMissingAssetFails(t *testing.T) {
	src := buildSource()
	delete(src, WordStage1)

	_, err := LoadAll(src)
	assert.Error(t, err)
}
