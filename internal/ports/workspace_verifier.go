package ports

// WorkspaceVerifier confirms that a directory is the top level of a project tree.
type WorkspaceVerifier interface {
	Verify(root string) error
}
