package domain

import (
	"path"
	"strings"
)

// Category classifies a source tree path purely by its name.
type Category string

const (
	CategoryLibrary      Category = "library"
	CategoryOptional     Category = "optional"
	CategoryTest         Category = "test"
	CategoryMain         Category = "main"
	CategoryHeader       Category = "header"
	CategoryCommand      Category = "command"
	CategoryPackage      Category = "package"
	CategoryScriptSource Category = "script"
)

const (
	mainPrefix = "main-"
	testPrefix = "test-"

	SourceExt  = ".cc"
	HeaderExt  = ".h"
	PackageExt = ".pkg"
)

// Label is the short name used in checker reports.
func (c Category) Label() string {
	switch c {
	case CategoryLibrary:
		return "cc"
	case CategoryHeader:
		return "h"
	case CategoryPackage:
		return "pkg"
	case CategoryScriptSource:
		return "ocroscript cc"
	default:
		return string(c)
	}
}

// ClassifySource sorts a .cc path into main, test or plain library source.
func ClassifySource(p string) Category {
	base := path.Base(p)
	switch {
	case strings.HasPrefix(base, mainPrefix):
		return CategoryMain
	case strings.HasPrefix(base, testPrefix):
		return CategoryTest
	default:
		return CategoryLibrary
	}
}

// TargetName is the program name built from a source: the base name without ".cc".
func TargetName(p string) string {
	return strings.TrimSuffix(path.Base(p), SourceExt)
}

// CanonicalName maps a target name onto the automake variable prefix used for
// NAME_SOURCES, NAME_LDADD and friends.
func CanonicalName(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '@':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
