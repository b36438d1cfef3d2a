package domain

// Config represents the project layout both tools work against, loaded from ocroam.yaml.
type Config struct {
	Layout   LayoutConfig
	Build    BuildConfig
	Generate GenerateConfig
	Check    CheckConfig
}

// LayoutConfig names the directories of an OCRopus source tree. All paths are
// slash-separated and relative to the project root.
type LayoutConfig struct {
	DirPrefix   string // source directories are named DirPrefix + "*"
	IncludeDir  string
	UtilsDir    string
	CommandsDir string
	ScriptDir   string
	TestDataDir string
}

// BuildConfig holds the values rendered into Makefile.am.
type BuildConfig struct {
	Library        string // e.g. libocropus.a
	HeaderInstall  string // automake prefix of the installed headers, e.g. ocropusinclude
	HeaderDir      string // install location, e.g. $(includedir)/ocropus
	DataDir        string // e.g. ${datadir}/ocropus
	StyleCheck     string // command run by the "all" target
	TestCPPFlags   string // extra preprocessor flags of check programs
	ProjectComment string
}

type GenerateConfig struct {
	ExtraDirs []string
	Exclude   []string
	Features  []Feature
}

type CheckConfig struct {
	Markers   []string
	ExtraDirs []string
}

// Feature is an optional part of the build, enabled by an automake conditional.
type Feature struct {
	Name     string
	Guard    string // automake conditional, e.g. "! notesseract"
	CPPFlags string
	Sources  []string
	Mains    []string
}

// OptionalSources returns every source owned by a feature, in config order.
func (c GenerateConfig) OptionalSources() []string {
	var out []string
	for _, f := range c.Features {
		out = append(out, f.Sources...)
	}
	return out
}

// OptionalMains returns every feature entry point, in config order.
func (c GenerateConfig) OptionalMains() []string {
	var out []string
	for _, f := range c.Features {
		out = append(out, f.Mains...)
	}
	return out
}

// DefaultConfig mirrors the layout of the OCRopus trunk.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			DirPrefix:   "ocr-",
			IncludeDir:  "include",
			UtilsDir:    "ocr-utils",
			CommandsDir: "commands",
			ScriptDir:   "ocroscript",
			TestDataDir: "data/testimages",
		},
		Build: BuildConfig{
			Library:        "libocropus.a",
			HeaderInstall:  "ocropusinclude",
			HeaderDir:      "$(includedir)/ocropus",
			DataDir:        "${datadir}/ocropus",
			StyleCheck:     "$(srcdir)/utilities/check-style -f $(srcdir)",
			TestCPPFlags:   "-I@iulibheaders@ -I@colibheaders@ -I@tessheaders@",
			ProjectComment: "OCRopus - the open source document analysis and OCR system",
		},
		Generate: GenerateConfig{
			Features: []Feature{
				{
					Name:     "gsl",
					Guard:    "use_gsl",
					CPPFlags: "-DHAVE_GSL",
				},
				{
					Name:     "tesseract",
					Guard:    "! notesseract",
					CPPFlags: "-I@tessheaders@ -DHAVE_TESSERACT",
					Sources: []string{
						"ocr-tesseract/tesseract.cc",
						"ocr-autoclean/ocr-orientation.cc",
						"ocr-autoclean/ocr-thresholding.cc",
					},
					Mains: []string{
						"ocr-autoclean/main-ocr-orientation.cc",
						"ocr-autoclean/main-ocr-thresholding.cc",
					},
				},
				{
					Name:     "leptonica",
					Guard:    "use_leptonica",
					CPPFlags: "-I@leptheaders@ -DHAVE_LEPTONICA",
				},
			},
		},
		Check: CheckConfig{
			Markers:   []string{"ocr-utils", "ocroscript"},
			ExtraDirs: []string{"ext/voronoi"},
		},
	}
}
