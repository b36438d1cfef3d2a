package domain

import "sort"

// Scan holds the raw path lists the generator's globs produced.
type Scan struct {
	Sources  []string // DirPrefix*/*.cc and ExtraDirs/*.cc
	Headers  []string // IncludeDir/*.h and UtilsDir/*.h
	Commands []string // CommandsDir/*.cc
	Mains    []string // */main-*.cc
	Tests    []string // */test-*.cc and */tests/test-*.cc
}

// Program is a single automake program declaration.
type Program struct {
	Name   string // target name, e.g. main-bar
	Var    string // canonical variable prefix, e.g. main_bar
	Source string
}

func NewProgram(source string) Program {
	name := TargetName(source)
	return Program{Name: name, Var: CanonicalName(name), Source: source}
}

// FeatureBlock is a Feature with its entry points resolved into programs.
type FeatureBlock struct {
	Feature
	Programs []Program
}

// Inventory is the categorized content of a generated Makefile.am.
type Inventory struct {
	Library  []string
	Features []FeatureBlock
	Headers  []string
	Commands []Program
	Mains    []Program
	Tests    []Program
}

// BuildInventory partitions scan results into the Makefile.am categories.
//
// Every list is sorted and free of duplicates. Feature sources never reach the default
// library list and feature entry points never become generic programs.
func BuildInventory(scan Scan, cfg GenerateConfig) Inventory {
	excluded := toSet(cfg.Exclude, cfg.OptionalSources())
	optionalMains := toSet(cfg.OptionalMains())

	var inv Inventory

	for _, src := range uniqueSorted(scan.Sources) {
		if excluded[src] || ClassifySource(src) != CategoryLibrary {
			continue
		}
		inv.Library = append(inv.Library, src)
	}

	for _, f := range cfg.Features {
		block := FeatureBlock{Feature: f}
		for _, m := range f.Mains {
			block.Programs = append(block.Programs, NewProgram(m))
		}
		inv.Features = append(inv.Features, block)
	}

	inv.Headers = uniqueSorted(scan.Headers)
	inv.Commands = programs(uniqueSorted(scan.Commands), nil)
	inv.Mains = programs(uniqueSorted(scan.Mains), optionalMains)
	inv.Tests = programs(uniqueSorted(scan.Tests), nil)

	return inv
}

func programs(sources []string, skip map[string]bool) []Program {
	var out []Program
	for _, src := range sources {
		if skip[src] {
			continue
		}
		out = append(out, NewProgram(src))
	}
	return out
}

func toSet(lists ...[]string) map[string]bool {
	set := map[string]bool{}
	for _, l := range lists {
		for _, s := range l {
			set[s] = true
		}
	}
	return set
}

func uniqueSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
