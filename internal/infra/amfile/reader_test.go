package amfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iupr/ocroam/internal/domain"
)

func TestReadDocument(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ocroscript"), 0o755))
	want := "ocroscript_SOURCES = a.cc\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "ocroscript", "Makefile.am"), []byte(want), 0o644))

	got, err := NewReader(root).ReadDocument("ocroscript/Makefile.am")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := NewReader(t.TempDir()).ReadDocument("Makefile.am")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}
