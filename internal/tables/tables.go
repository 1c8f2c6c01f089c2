// Package tables loads the stage1/stage2 byte blobs that back the
// segmentation engine's property tables from an arbitrary byte-blob source,
// decoupling table storage from any one filesystem, mirroring the way the
// teacher's ucptrie.go decoded a binary blob handed to it rather than opening
// files itself.
package tables

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/thedjinn/segtext/internal/atrie"
	"github.com/thedjinn/segtext/internal/graphemebreak"
	"github.com/thedjinn/segtext/internal/linebreak"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/wordbreak"
)

// Named blob keys, matching the six assets an Engine is assembled from plus
// the optional trie.
const (
	GraphemeStage1 = "grapheme_cluster_break_stage1"
	GraphemeStage2 = "grapheme_cluster_break_stage2"
	WordStage1     = "word_break_stage1"
	WordStage2     = "word_break_stage2"
	LineStage1     = "line_break_stage1"
	LineStage2     = "line_break_stage2"
	TrieAsset      = "codepoint.atr"
)

// Source opens a named table asset for reading. A plain directory
// (DirSource) satisfies this trivially; callers needing an externally
// regenerated UCD data set implement it over whatever storage holds the
// freshly-generated blobs.
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// Engine is the top-level value a host constructs once at start-up: the
// three property tables the scanners in internal/graphemebreak,
// internal/wordbreak, and internal/linebreak consult, plus an optional trie
// for callers that need packed break-flag lookups directly. It is read-only
// after LoadAll returns and safe to share by pointer across goroutines.
type Engine struct {
	GraphemeTable *segtable.Table
	WordTable     *segtable.Table
	LineTable     *segtable.Table
	Trie          *atrie.Trie
}

func readAll(src Source, name string) ([]byte, error) {
	r, err := src.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "tables: opening %q", name)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "tables: reading %q", name)
	}
	return data, nil
}

func loadTable(src Source, stage1Name, stage2Name string, blockSize int, maxClass byte) (*segtable.Table, error) {
	stage1, err := readAll(src, stage1Name)
	if err != nil {
		return nil, err
	}
	stage2, err := readAll(src, stage2Name)
	if err != nil {
		return nil, err
	}

	table, err := segtable.Load(stage1, stage2, blockSize, maxClass)
	if err != nil {
		return nil, errors.Wrapf(err, "tables: loading %q/%q", stage1Name, stage2Name)
	}
	return table, nil
}

// LoadAll reads the six named stage1/stage2 blobs from src and assembles
// them into an Engine. The three tables are independent of one another, so
// they are loaded concurrently. The codepoint trie asset is optional: if
// src has no TrieAsset, Engine.Trie is left nil and every other scanner
// remains usable.
func LoadAll(src Source) (*Engine, error) {
	var engine Engine

	g := new(errgroup.Group)
	g.Go(func() error {
		table, err := loadTable(src, GraphemeStage1, GraphemeStage2, 256, graphemebreak.MaxClass)
		if err != nil {
			return err
		}
		engine.GraphemeTable = table
		return nil
	})
	g.Go(func() error {
		table, err := loadTable(src, WordStage1, WordStage2, 256, wordbreak.MaxClass)
		if err != nil {
			return err
		}
		engine.WordTable = table
		return nil
	})
	g.Go(func() error {
		table, err := loadTable(src, LineStage1, LineStage2, 128, linebreak.MaxClass)
		if err != nil {
			return err
		}
		engine.LineTable = table
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	trieReader, err := src.Open(TrieAsset)
	if err != nil {
		return &engine, nil
	}
	defer trieReader.Close()

	trie, err := atrie.Load(trieReader)
	if err != nil {
		return nil, errors.Wrapf(err, "tables: loading %q", TrieAsset)
	}
	engine.Trie = trie

	return &engine, nil
}
