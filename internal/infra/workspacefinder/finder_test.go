package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iupr/ocroam/internal/domain"
)

func TestVerify_AcceptsTopLevelFolder(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"ocr-utils", "ocroscript"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}

	assert.NoError(t, NewFinder().Verify(root))
}

func TestVerify_MissingMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ocr-utils"), 0o755))

	err := NewFinder().Verify(root)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindWrongWorkdir), "got %v", err)
	assert.ErrorIs(t, err, domain.ErrWrongWorkdir)
}

func TestVerify_MarkerMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "marker"), nil, 0o644))

	err := NewFinder("marker").Verify(root)
	assert.True(t, domain.IsKind(err, domain.KindWrongWorkdir), "got %v", err)
}

func TestVerify_EmptyRoot(t *testing.T) {
	err := NewFinder().Verify("")
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}
