package amfile

import (
	"os"
	"path/filepath"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

// Reader loads Makefile.am documents relative to a project root.
type Reader struct {
	root string
}

func NewReader(root string) *Reader {
	return &Reader{root: root}
}

var _ ports.DocumentReader = (*Reader)(nil)

func (r *Reader) ReadDocument(path string) (string, error) {
	full := filepath.Join(r.root, filepath.FromSlash(path))
	b, err := os.ReadFile(full)
	if err != nil {
		return "", &domain.OpError{
			Op:   "amfile.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}
