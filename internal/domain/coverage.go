package domain

import "strings"

// CheckScan holds the files the checker expects to find in the Makefile.am documents.
type CheckScan struct {
	Sources       []string // .cc files below source dirs, relative to the root
	Headers       []string // .h files below source dirs, relative to the root
	Packages      []string // .pkg names inside the script dir
	ScriptSources []string // .cc names inside the script dir
}

// Section lists the unhandled files of one category.
type Section struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Missing  []string `json:"missing"`
}

func (s Section) OK() bool { return len(s.Missing) == 0 }

type Report struct {
	Sections []Section `json:"sections"`
}

// MissingCount is the total number of unhandled files.
func (r Report) MissingCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Missing)
	}
	return n
}

// ReportOrder is the order sections appear in a Report.
var ReportOrder = []Category{
	CategoryLibrary,
	CategoryHeader,
	CategoryPackage,
	CategoryScriptSource,
	CategoryMain,
	CategoryTest,
}

// CheckCoverage reports every scanned file whose path does not occur verbatim in the
// matching document. Membership is plain substring search: a path counts as handled if
// it appears anywhere in the text, even as part of a longer path.
func CheckCoverage(scan CheckScan, topDoc, scriptDoc string) Report {
	missing := map[Category][]string{}

	for _, src := range uniqueSorted(scan.Sources) {
		if !strings.Contains(topDoc, src) {
			c := ClassifySource(src)
			missing[c] = append(missing[c], src)
		}
	}
	for _, h := range uniqueSorted(scan.Headers) {
		if !strings.Contains(topDoc, h) {
			missing[CategoryHeader] = append(missing[CategoryHeader], h)
		}
	}
	for _, p := range uniqueSorted(scan.Packages) {
		if !strings.Contains(scriptDoc, p) {
			missing[CategoryPackage] = append(missing[CategoryPackage], p)
		}
	}
	for _, src := range uniqueSorted(scan.ScriptSources) {
		if !strings.Contains(scriptDoc, src) {
			missing[CategoryScriptSource] = append(missing[CategoryScriptSource], src)
		}
	}

	r := Report{Sections: make([]Section, 0, len(ReportOrder))}
	for _, c := range ReportOrder {
		r.Sections = append(r.Sections, Section{Category: c, Label: c.Label(), Missing: append([]string{}, missing[c]...)})
	}
	return r
}
