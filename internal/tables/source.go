package tables

import (
	"io"
	"os"
	"path/filepath"
)

// DirSource opens table assets as plain files under Root, for loading
// externally-generated Unicode data during development or regeneration.
type DirSource struct {
	Root string
}

func (s DirSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Root, name))
}
