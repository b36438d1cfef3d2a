package ports

// SourceScanner lists files of a project tree. Paths are slash-separated and relative to
// the tree root; results are sorted. A pattern or directory that matches nothing yields
// an empty result, never an error.
type SourceScanner interface {
	Glob(pattern string) ([]string, error)
	ListDir(dir string) ([]string, error)
}
