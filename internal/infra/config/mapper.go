package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/iupr/ocroam/internal/domain"
)

// MapConfig applies a parsed ocroam.yaml on top of the defaults.
func MapConfig(file string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	l := yc.Layout
	setString(&cfg.Layout.DirPrefix, l.DirPrefix)
	setString(&cfg.Layout.IncludeDir, l.IncludeDir)
	setString(&cfg.Layout.UtilsDir, l.UtilsDir)
	setString(&cfg.Layout.CommandsDir, l.CommandsDir)
	setString(&cfg.Layout.ScriptDir, l.ScriptDir)
	setString(&cfg.Layout.TestDataDir, l.TestDataDir)

	b := yc.Build
	setString(&cfg.Build.Library, b.Library)
	setString(&cfg.Build.HeaderInstall, b.HeaderInstall)
	setString(&cfg.Build.HeaderDir, b.HeaderDir)
	setString(&cfg.Build.DataDir, b.DataDir)
	setString(&cfg.Build.StyleCheck, b.StyleCheck)
	setString(&cfg.Build.TestCPPFlags, b.TestCPPFlags)
	setString(&cfg.Build.ProjectComment, b.Project)

	g := yc.Generate
	if g.ExtraDirs != nil {
		cfg.Generate.ExtraDirs = cleanPaths(g.ExtraDirs)
	}
	if g.Exclude != nil {
		cfg.Generate.Exclude = cleanPaths(g.Exclude)
	}
	if g.Features != nil {
		features := make([]domain.Feature, 0, len(g.Features))
		for i, f := range g.Features {
			fieldPrefix := fmt.Sprintf("generate.features[%d]", i)
			if strings.TrimSpace(f.Guard) == "" {
				return domain.Config{}, invalidField(file, fieldPrefix+".guard", "guard is required")
			}
			for _, m := range f.Mains {
				if domain.ClassifySource(m) != domain.CategoryMain {
					return domain.Config{}, invalidField(file, fieldPrefix+".mains", fmt.Sprintf("%q is not a main-* source", m))
				}
			}
			features = append(features, domain.Feature{
				Name:     f.Name,
				Guard:    strings.TrimSpace(f.Guard),
				CPPFlags: strings.TrimSpace(f.CPPFlags),
				Sources:  cleanPaths(f.Sources),
				Mains:    cleanPaths(f.Mains),
			})
		}
		cfg.Generate.Features = features
	}

	c := yc.Check
	if c.Markers != nil {
		cfg.Check.Markers = cleanPaths(c.Markers)
	}
	if c.ExtraDirs != nil {
		cfg.Check.ExtraDirs = cleanPaths(c.ExtraDirs)
	}

	if !strings.HasSuffix(cfg.Build.Library, ".a") {
		return domain.Config{}, invalidField(file, "build.library", "library must be a static archive (*.a)")
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// cleanPaths normalizes user paths to the slash form the scanner reports.
func cleanPaths(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, path.Clean(strings.TrimPrefix(p, "./")))
	}
	return out
}

func invalidField(file, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: file,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
