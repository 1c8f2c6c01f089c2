package main

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/thedjinn/segtext/internal/atrie"
)

func newTrieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trie",
		Short: "Inspect .atr codepoint trie assets",
	}
	cmd.AddCommand(newTrieInspectCmd())
	return cmd
}

func newTrieInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path.atr> [codepoint...]",
		Short: "Print a trie's summary, and the decoded break flags for any given codepoints",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "segtext: opening trie asset")
			}
			defer f.Close()

			trie, err := atrie.Load(f)
			if err != nil {
				return errors.Wrap(err, "segtext: decoding trie asset")
			}

			var buf bytes.Buffer
			if err := trie.Encode(&buf); err != nil {
				return errors.Wrap(err, "segtext: re-encoding trie for self-check")
			}

			roundTripped, err := atrie.Load(&buf)
			if err != nil {
				return errors.Wrap(err, "segtext: decoding re-encoded trie for self-check")
			}

			if !reflect.DeepEqual(trie, roundTripped) {
				return errors.New("segtext: trie self-check failed: re-encoded trie does not match the one loaded from disk")
			}
			fmt.Println("self_check: ok (round-tripped through the writer)")

			fmt.Printf("high_end: U+%04X\n", trie.HighEnd)
			fmt.Printf("default_value: 0x%x\n", trie.DefaultValue)
			fmt.Printf("data_entries: %d\n", len(trie.Data))
			fmt.Printf("index_entries: %d\n", len(trie.Indices))

			for _, arg := range args[1:] {
				cp, err := strconv.ParseUint(arg, 0, 32)
				if err != nil {
					return errors.Wrapf(err, "segtext: parsing codepoint %q", arg)
				}

				value := trie.Get(rune(cp))
				flags := atrie.UnpackBreakFlags(value)
				fmt.Printf("U+%04X: grapheme=%d word=%d line=%d extended_pictographic=%t\n",
					cp, flags.Grapheme, flags.Word, flags.Line, flags.ExtendedPictographic)
			}

			return nil
		},
	}
}
