package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

// Finder recognizes an OCRopus top-level folder by its marker directories.
type Finder struct {
	Markers []string // defaults to ocr-utils and ocroscript
}

func NewFinder(markers ...string) *Finder {
	if len(markers) == 0 {
		markers = domain.DefaultConfig().Check.Markers
	}
	return &Finder{Markers: markers}
}

var _ ports.WorkspaceVerifier = (*Finder)(nil)

func (f *Finder) Verify(root string) error {
	if root == "" {
		return &domain.OpError{
			Op:   "workspacefinder.verify",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("root is empty"),
		}
	}

	for _, m := range f.Markers {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(m)))
		if err == nil && info.IsDir() {
			continue
		}
		return &domain.OpError{
			Op:   "workspacefinder.verify",
			Kind: domain.KindWrongWorkdir,
			Path: root,
			Err:  fmt.Errorf("%w: marker %q missing", domain.ErrWrongWorkdir, m),
		}
	}
	return nil
}
