package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/linebreak"
)

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Print the line break opportunities of a file, one segment per line",
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

			scanner := linebreak.NewScanner(text, tbl.line)
			start := 0
			for start < len(text) {
				end, mandatory := scanner.FindNextBreak(start)
				kind := "optional"
				if mandatory {
					kind = "mandatory"
				}
				fmt.Printf("%s\t%q\n", kind, text[start:end])
				start = end
			}
			return nil
		},
	}
}
