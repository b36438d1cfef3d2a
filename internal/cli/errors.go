package cli

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/iupr/ocroam/internal/domain"
)

// reportError prints the diagnostic for a failed run.
func reportError(w io.Writer, err error) {
	if domain.IsKind(err, domain.KindWrongWorkdir) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "This script must be run from the OCRopus top-level folder!")
		fmt.Fprintln(w)
		return
	}

	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindNotFound && path.Base(oe.Path) == "Makefile.am" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s not found!\n", documentName(oe.Path))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "error: %v\n", err)
}

// documentName names a nested Makefile.am by its directory, "ocroscript Makefile.am".
func documentName(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return path.Base(p)
	}
	return path.Base(dir) + " " + path.Base(p)
}
