package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/conform"
)

var conformFiles = []struct {
	name string
	kind conform.Kind
}{
	{"GraphemeBreakTest.txt", conform.GraphemeCluster},
	{"WordBreakTest.txt", conform.Word},
	{"LineBreakTest.txt", conform.Line},
}

func newConformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conform <dir>",
		Short: "Run the Unicode break-test files found in dir against the built-in scanners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			tbl, err := loadEngineTables()
			if err != nil {
				return err
			}
			tables := conform.Tables{
				Grapheme: tbl.grapheme,
				Word:     tbl.word,
				Line:     tbl.line,
			}

			failed := false
			for _, cf := range conformFiles {
				path := filepath.Join(dir, cf.name)
				f, err := os.Open(path)
				if stderrors.Is(err, os.ErrNotExist) {
					log.Warn().Str("file", path).Msg("skipping missing conformance file")
					continue
				}
				if err != nil {
					return errors.Wrapf(err, "segtext: opening %s", path)
				}

				report, err := conform.Run(cf.kind, f, tables)
				f.Close()
				if err != nil {
					return errors.Wrapf(err, "segtext: running %s", path)
				}

				fmt.Printf("%s: %d/%d passed (%d skipped)\n", cf.name, report.Passed, report.Total, report.Skipped)
				for _, failure := range report.Failures {
					fmt.Printf("  line %d: offset %d: expected break=%t in %q\n",
						failure.Line, failure.ByteOffset, failure.Expected, failure.Text)
					failed = true
				}
			}

			if failed {
				return errors.New("segtext: conformance failures detected")
			}
			return nil
		},
	}
}
