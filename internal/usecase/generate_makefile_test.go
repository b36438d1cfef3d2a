package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/infra/automake"
	"github.com/iupr/ocroam/internal/infra/fsscan"
)

func TestGenerateMakefile_Inventory(t *testing.T) {
	cfg := domain.DefaultConfig()
	uc := NewGenerateMakefile(fsscan.NewFSScanner(ocropusTree()), automake.NewRenderer(cfg), cfg)

	inv, err := uc.Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ocr-a/foo.cc", "ocr-utils/util.cc"}, inv.Library)
	assert.Equal(t, []string{"include/x.h", "ocr-utils/util.h"}, inv.Headers)
	assert.Equal(t, []domain.Program{domain.NewProgram("commands/ocropus.cc")}, inv.Commands)
	assert.Equal(t, []domain.Program{domain.NewProgram("ocr-a/main-bar.cc")}, inv.Mains)
	assert.Equal(t, []domain.Program{
		domain.NewProgram("ocr-a/test-baz.cc"),
		domain.NewProgram("ocr-a/tests/test-nested.cc"),
	}, inv.Tests)
}

func TestGenerateMakefile_ExtraDirs(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Generate.ExtraDirs = []string{"ext/voronoi"}
	r := &fakeRenderer{}

	out, err := NewGenerateMakefile(fsscan.NewFSScanner(ocropusTree()), r, cfg).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "rendered", out)
	assert.Contains(t, r.got.Library, "ext/voronoi/voronoi.cc")
}

func TestGenerateMakefile_TestsAndCheckLinesPair(t *testing.T) {
	cfg := domain.DefaultConfig()
	uc := NewGenerateMakefile(fsscan.NewFSScanner(ocropusTree()), automake.NewRenderer(cfg), cfg)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"test-baz", "test-nested"} {
		assert.Equal(t, 1, strings.Count(out, "\n"+domain.CanonicalName(name)+"_SOURCES = "), name)
		assert.Equal(t, 1, strings.Count(out, "\t$(srcdir)/"+name+" $(srcdir)/data/testimages\n"), name)
	}
}

func TestGenerateMakefile_Idempotent(t *testing.T) {
	cfg := domain.DefaultConfig()
	uc := NewGenerateMakefile(fsscan.NewFSScanner(ocropusTree()), automake.NewRenderer(cfg), cfg)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateMakefile_ScanError(t *testing.T) {
	boom := errors.New("boom")
	cfg := domain.DefaultConfig()

	_, err := NewGenerateMakefile(errScanner{err: boom}, &fakeRenderer{}, cfg).Execute(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestGenerateMakefile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := domain.DefaultConfig()

	_, err := NewGenerateMakefile(fsscan.NewFSScanner(ocropusTree()), &fakeRenderer{}, cfg).Execute(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
