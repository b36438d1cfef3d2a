package fsscan

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

// Scanner lists files of a project tree through an fs.FS rooted at the project root.
type Scanner struct {
	fsys fs.FS
}

// NewScanner scans the directory tree rooted at root.
func NewScanner(root string) *Scanner {
	return &Scanner{fsys: os.DirFS(root)}
}

// NewFSScanner is useful for tests (fstest.MapFS).
func NewFSScanner(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys}
}

var _ ports.SourceScanner = (*Scanner)(nil)

// Glob returns the files matching a slash-separated pattern. "*" and "?" stay within a
// path segment, "**" crosses directories. Hidden entries are never matched, like a
// shell glob. Directories deeper than the pattern are not read unless it contains "**".
// Symlinked directories are followed for bounded patterns only; "**" does not enter
// them, so link cycles cannot recurse.
func (s *Scanner) Glob(pattern string) ([]string, error) {
	w := walker{
		fsys:      s.fsys,
		pattern:   pattern,
		depth:     strings.Count(pattern, "/"),
		recursive: strings.Contains(pattern, "**"),
	}
	if err := w.walk("."); err != nil {
		return nil, &domain.OpError{
			Op:   "fsscan.glob",
			Kind: domain.KindInvalidConfig,
			Path: pattern,
			Err:  err,
		}
	}

	sort.Strings(w.out)
	return w.out, nil
}

type walker struct {
	fsys      fs.FS
	pattern   string
	depth     int
	recursive bool
	out       []string
}

func (w *walker) walk(dir string) error {
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		// Unreadable or missing directories contribute nothing.
		return nil
	}

	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p := e.Name()
		if dir != "." {
			p = dir + "/" + p
		}

		isDir, linked := e.IsDir(), false
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(w.fsys, p)
			if err != nil {
				// Dangling link.
				continue
			}
			isDir, linked = info.IsDir(), true
		}

		if isDir {
			if w.recursive && linked {
				continue
			}
			if !w.recursive && strings.Count(p, "/") >= w.depth {
				continue
			}
			if err := w.walk(p); err != nil {
				return err
			}
			continue
		}

		ok, err := doublestar.Match(w.pattern, p)
		if err != nil {
			return err
		}
		if ok {
			w.out = append(w.out, p)
		}
	}
	return nil
}

// ListDir returns the names of the non-directory entries of dir.
func (s *Scanner) ListDir(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "fsscan.listdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(s.fsys, path.Join(dir, e.Name()))
			if err != nil || info.IsDir() {
				continue
			}
		}
		names = append(names, e.Name())
	}
	return names, nil
}
