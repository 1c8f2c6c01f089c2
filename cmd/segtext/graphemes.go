package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/cursor"
	"github.com/thedjinn/segtext/internal/graphemebreak"
)

func newGraphemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphemes <file>",
		Short: "Print the grapheme clusters of a file, one per line",
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

			scanner := graphemebreak.NewScanner(text, tbl.grapheme)
			cur := cursor.NewByteCursor(text)
			for cur.Position() < len(text) {
				start := cur.Position()
				end := scanner.FindNext(start)
				if err := cur.SetPosition(end); err != nil {
					return errors.Wrap(err, "segtext: advancing cursor")
				}
				fmt.Println(string(text[start:end]))
			}
			return nil
		},
	}
}
