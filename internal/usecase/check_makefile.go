package usecase

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

// TopDocument is the Makefile.am of the project root.
const TopDocument = "Makefile.am"

type CheckMakefile struct {
	workspace ports.WorkspaceVerifier
	scanner   ports.SourceScanner
	docs      ports.DocumentReader
	cfg       domain.Config
	log       *slog.Logger
}

func NewCheckMakefile(w ports.WorkspaceVerifier, s ports.SourceScanner, d ports.DocumentReader, cfg domain.Config, opts ...Option) *CheckMakefile {
	o := newOptions(opts)
	return &CheckMakefile{workspace: w, scanner: s, docs: d, cfg: cfg, log: o.log}
}

// ScriptDocument is the Makefile.am of the scripting directory.
func (uc *CheckMakefile) ScriptDocument() string {
	return path.Join(uc.cfg.Layout.ScriptDir, TopDocument)
}

// Execute reports the source files under root that neither Makefile.am mentions.
// Findings are advisory; only a wrong root or an unreadable document is an error.
func (uc *CheckMakefile) Execute(ctx context.Context, root string) (domain.Report, error) {
	if err := uc.workspace.Verify(root); err != nil {
		return domain.Report{}, err
	}

	top, err := uc.docs.ReadDocument(TopDocument)
	if err != nil {
		return domain.Report{}, err
	}
	script, err := uc.docs.ReadDocument(uc.ScriptDocument())
	if err != nil {
		return domain.Report{}, err
	}

	scan, err := uc.scan(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.CheckCoverage(scan, top, script)
	uc.log.Debug("check.done", "missing", report.MissingCount())
	return report, nil
}

func (uc *CheckMakefile) scan(ctx context.Context) (domain.CheckScan, error) {
	l := uc.cfg.Layout

	dirs := append([]string{l.DirPrefix + "*"}, uc.cfg.Check.ExtraDirs...)

	var scan domain.CheckScan
	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return domain.CheckScan{}, err
		}

		ccs, err := uc.scanner.Glob(path.Join(d, "*"+domain.SourceExt))
		if err != nil {
			return domain.CheckScan{}, err
		}
		hs, err := uc.scanner.Glob(path.Join(d, "*"+domain.HeaderExt))
		if err != nil {
			return domain.CheckScan{}, err
		}
		uc.log.Debug("check.glob", "dir", d, "cc", len(ccs), "h", len(hs))

		scan.Sources = append(scan.Sources, ccs...)
		scan.Headers = append(scan.Headers, hs...)
	}

	names, err := uc.scanner.ListDir(l.ScriptDir)
	if err != nil {
		return domain.CheckScan{}, err
	}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, domain.PackageExt):
			scan.Packages = append(scan.Packages, n)
		case strings.HasSuffix(n, domain.SourceExt):
			scan.ScriptSources = append(scan.ScriptSources, n)
		}
	}
	return scan, nil
}
