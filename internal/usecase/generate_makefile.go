package usecase

import (
	"context"
	"log/slog"
	"path"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

type GenerateMakefile struct {
	scanner  ports.SourceScanner
	renderer ports.DocumentRenderer
	cfg      domain.Config
	log      *slog.Logger
}

func NewGenerateMakefile(s ports.SourceScanner, r ports.DocumentRenderer, cfg domain.Config, opts ...Option) *GenerateMakefile {
	o := newOptions(opts)
	return &GenerateMakefile{scanner: s, renderer: r, cfg: cfg, log: o.log}
}

// Execute scans the tree and renders the complete Makefile.am.
func (uc *GenerateMakefile) Execute(ctx context.Context) (string, error) {
	inv, err := uc.Inventory(ctx)
	if err != nil {
		return "", err
	}
	return uc.renderer.Render(inv)
}

// Inventory scans the tree and partitions the result without rendering it.
func (uc *GenerateMakefile) Inventory(ctx context.Context) (domain.Inventory, error) {
	scan, err := uc.scan(ctx)
	if err != nil {
		return domain.Inventory{}, err
	}

	inv := domain.BuildInventory(scan, uc.cfg.Generate)
	uc.log.Debug("generate.inventory",
		"library", len(inv.Library),
		"headers", len(inv.Headers),
		"commands", len(inv.Commands),
		"mains", len(inv.Mains),
		"tests", len(inv.Tests),
	)
	return inv, nil
}

func (uc *GenerateMakefile) scan(ctx context.Context) (domain.Scan, error) {
	l := uc.cfg.Layout

	sourcePatterns := []string{l.DirPrefix + "*/*" + domain.SourceExt}
	for _, d := range uc.cfg.Generate.ExtraDirs {
		sourcePatterns = append(sourcePatterns, path.Join(d, "*"+domain.SourceExt))
	}

	var scan domain.Scan
	groups := []struct {
		dst      *[]string
		patterns []string
	}{
		{&scan.Sources, sourcePatterns},
		{&scan.Headers, []string{path.Join(l.IncludeDir, "*"+domain.HeaderExt), path.Join(l.UtilsDir, "*"+domain.HeaderExt)}},
		{&scan.Commands, []string{path.Join(l.CommandsDir, "*"+domain.SourceExt)}},
		{&scan.Mains, []string{"*/main-*" + domain.SourceExt}},
		{&scan.Tests, []string{"*/test-*" + domain.SourceExt, "*/tests/test-*" + domain.SourceExt}},
	}

	for _, g := range groups {
		for _, p := range g.patterns {
			if err := ctx.Err(); err != nil {
				return domain.Scan{}, err
			}
			found, err := uc.scanner.Glob(p)
			if err != nil {
				return domain.Scan{}, err
			}
			uc.log.Debug("generate.glob", "pattern", p, "matches", len(found))
			*g.dst = append(*g.dst, found...)
		}
	}
	return scan, nil
}
