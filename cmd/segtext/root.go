package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/graphemebreak"
	"github.com/thedjinn/segtext/internal/linebreak"
	"github.com/thedjinn/segtext/internal/segtable"
	"github.com/thedjinn/segtext/internal/tables"
	"github.com/thedjinn/segtext/internal/wordbreak"
)

var (
	flagTablesDir string
	flagVerbose   bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segtext",
		Short: "Unicode text segmentation utilities",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if flagVerbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(level).
				With().
				Timestamp().
				Logger()
		},
	}

	cmd.PersistentFlags().StringVar(&flagTablesDir, "tables", "", "directory of regenerated table assets (defaults to the built-in approximated tables)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newGraphemesCmd(),
		newWordsCmd(),
		newLinesCmd(),
		newTrieCmd(),
		newConformCmd(),
	)

	return cmd
}

// engineTables holds the three property tables a scanner command needs,
// sourced either from the built-in approximated defaults or from a
// regenerated asset directory named by --tables.
type engineTables struct {
	grapheme *segtable.Table
	word     *segtable.Table
	line     *segtable.Table
}

func loadEngineTables() (engineTables, error) {
	if flagTablesDir == "" {
		log.Debug().Msg("using built-in approximated tables")
		return engineTables{
			grapheme: graphemebreak.DefaultTable,
			word:     wordbreak.DefaultTable,
			line:     linebreak.DefaultTable,
		}, nil
	}

	log.Debug().Str("dir", flagTablesDir).Msg("loading table assets from disk")
	engine, err := tables.LoadAll(tables.DirSource{Root: flagTablesDir})
	if err != nil {
		return engineTables{}, err
	}

	return engineTables{
		grapheme: engine.GraphemeTable,
		word:     engine.WordTable,
		line:     engine.LineTable,
	}, nil
}
