package ports

// DocumentReader loads a build-configuration document as raw text.
type DocumentReader interface {
	ReadDocument(path string) (string, error)
}
