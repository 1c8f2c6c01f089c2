// Command segtext is a thin front-end over the segmentation engine: it
// exercises the grapheme cluster, word, and line break scanners against
// files on disk, inspects .atr trie assets, and runs the Unicode
// conformance test files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
