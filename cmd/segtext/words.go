package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/wordbreak"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <file>",
		Short: "Print the word boundary units of a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "segtext: reading input file")
			}

			tbl, err := loadEngineTables()
			if err != nil {
				return err
			}

			scanner := wordbreak.NewScanner(text, tbl.word)
			start := 0
			pos := 0
			for pos < len(text) {
				_, size := utf8.DecodeRune(text[pos:])
				pos += size
				if pos < len(text) && !scanner.TestBreak(pos) {
					continue
				}
				fmt.Printf("%q\n", text[start:pos])
				start = pos
			}
			return nil
		},
	}
}
