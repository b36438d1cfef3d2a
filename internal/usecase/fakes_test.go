package usecase

import (
	"errors"
	"testing/fstest"

	"github.com/iupr/ocroam/internal/domain"
)

type fakeVerifier struct{ err error }

func (f fakeVerifier) Verify(string) error { return f.err }

type fakeDocs map[string]string

func (f fakeDocs) ReadDocument(path string) (string, error) {
	doc, ok := f[path]
	if !ok {
		return "", &domain.OpError{Op: "fake.read", Kind: domain.KindNotFound, Path: path, Err: errors.New("missing")}
	}
	return doc, nil
}

type errScanner struct{ err error }

func (s errScanner) Glob(string) ([]string, error)    { return nil, s.err }
func (s errScanner) ListDir(string) ([]string, error) { return nil, s.err }

type fakeRenderer struct{ got domain.Inventory }

func (r *fakeRenderer) Render(inv domain.Inventory) (string, error) {
	r.got = inv
	return "rendered", nil
}

// ocropusTree is a small OCRopus checkout.
func ocropusTree() fstest.MapFS {
	return fstest.MapFS{
		"ocr-a/foo.cc":                          {},
		"ocr-a/main-bar.cc":                     {},
		"ocr-a/test-baz.cc":                     {},
		"ocr-a/tests/test-nested.cc":            {},
		"ocr-utils/util.cc":                     {},
		"ocr-utils/util.h":                      {},
		"ocr-autoclean/ocr-orientation.cc":      {},
		"ocr-autoclean/main-ocr-orientation.cc": {},
		"include/x.h":                           {},
		"commands/ocropus.cc":                   {},
		"ext/voronoi/voronoi.cc":                {},
		"ext/voronoi/voronoi.h":                 {},
		"ocroscript/ocroscript.cc":              {},
		"ocroscript/ocr.pkg":                    {},
		"ocroscript/Makefile.am":                {},
		"data/testimages/a.png":                 {},
	}
}
