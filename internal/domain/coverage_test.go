package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionOf(t *testing.T, r Report, c Category) Section {
	t.Helper()
	for _, s := range r.Sections {
		if s.Category == c {
			return s
		}
	}
	require.FailNowf(t, "missing section", "no section for %s", c)
	return Section{}
}

func TestCheckCoverage_ClassifiesMissing(t *testing.T) {
	scan := CheckScan{
		Sources:       []string{"ocr-a/foo.cc", "ocr-a/main-bar.cc", "ocr-a/test-baz.cc", "ocr-a/known.cc"},
		Headers:       []string{"ocr-a/foo.h"},
		Packages:      []string{"lib.pkg"},
		ScriptSources: []string{"ocroscript.cc"},
	}
	top := "libocropus_a_SOURCES = $(srcdir)/ocr-a/known.cc\n"

	r := CheckCoverage(scan, top, "")

	require.Len(t, r.Sections, len(ReportOrder))
	assert.Equal(t, []string{"ocr-a/foo.cc"}, sectionOf(t, r, CategoryLibrary).Missing)
	assert.Equal(t, []string{"ocr-a/main-bar.cc"}, sectionOf(t, r, CategoryMain).Missing)
	assert.Equal(t, []string{"ocr-a/test-baz.cc"}, sectionOf(t, r, CategoryTest).Missing)
	assert.Equal(t, []string{"ocr-a/foo.h"}, sectionOf(t, r, CategoryHeader).Missing)
	assert.Equal(t, []string{"lib.pkg"}, sectionOf(t, r, CategoryPackage).Missing)
	assert.Equal(t, []string{"ocroscript.cc"}, sectionOf(t, r, CategoryScriptSource).Missing)
	assert.Equal(t, 6, r.MissingCount())
}

func TestCheckCoverage_SubstringSemantics(t *testing.T) {
	// "ocr-a/x.cc" is considered handled because it occurs inside a longer path.
	scan := CheckScan{Sources: []string{"ocr-a/x.cc"}}
	r := CheckCoverage(scan, "$(srcdir)/ocr-a/x.cc.bak", "")

	assert.Zero(t, r.MissingCount())
	assert.True(t, sectionOf(t, r, CategoryLibrary).OK())
}

func TestCheckCoverage_DocumentsAreSeparate(t *testing.T) {
	scan := CheckScan{Sources: []string{"ocr-a/a.cc"}, Packages: []string{"p.pkg"}}

	r := CheckCoverage(scan, "p.pkg", "ocr-a/a.cc")

	assert.Equal(t, 2, r.MissingCount())
}

func TestCheckCoverage_EmptySectionsAreNotNil(t *testing.T) {
	r := CheckCoverage(CheckScan{}, "", "")
	for _, s := range r.Sections {
		assert.NotNil(t, s.Missing, s.Category)
		assert.Equal(t, s.Category.Label(), s.Label)
	}
}
