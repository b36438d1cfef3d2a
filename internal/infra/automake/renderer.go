package automake

import (
	"embed"
	"strings"

	"github.com/iupr/ocroam/internal/app/template"
	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/ports"
)

//go:embed templates/*.am
var templatesFS embed.FS

const (
	srcdir = "$(srcdir)/"
	indent = "    "
)

// Renderer turns an Inventory into the text of a Makefile.am.
type Renderer struct {
	cfg domain.Config
}

func NewRenderer(cfg domain.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

var _ ports.DocumentRenderer = (*Renderer)(nil)

func (r *Renderer) Render(inv domain.Inventory) (string, error) {
	vars := r.vars()
	libVar := domain.CanonicalName(r.cfg.Build.Library)

	var b strings.Builder

	for _, name := range []string{"header.am", "preamble.am"} {
		if err := r.section(&b, name, vars); err != nil {
			return "", err
		}
		b.WriteByte('\n')
	}

	b.WriteString("# the default files to compile into " + vars["LIBRARY_NAME"] + "\n")
	assign(&b, "", libVar+"_SOURCES", "=", sourceRefs(inv.Library))
	b.WriteByte('\n')

	if err := r.section(&b, "data.am", vars); err != nil {
		return "", err
	}
	b.WriteByte('\n')

	assign(&b, "", "noinst_PROGRAMS", "=", nil)
	b.WriteByte('\n')

	for _, f := range inv.Features {
		b.WriteString("if " + f.Guard + "\n")
		if f.CPPFlags != "" {
			assign(&b, indent, "AM_CPPFLAGS", "+=", []string{f.CPPFlags})
		}
		if len(f.Sources) > 0 {
			assign(&b, indent, libVar+"_SOURCES", "+=", sourceRefs(f.Sources))
		}
		if len(f.Programs) > 0 {
			assign(&b, indent, "noinst_PROGRAMS", "+=", programNames(f.Programs))
			for _, p := range f.Programs {
				r.program(&b, indent, p)
			}
		}
		b.WriteString("endif\n\n")
	}

	b.WriteByte('\n')
	assign(&b, "", r.cfg.Build.HeaderInstall+"_HEADERS", "=", sourceRefs(inv.Headers))
	b.WriteByte('\n')

	assign(&b, "", "bin_PROGRAMS", "=", programNames(inv.Commands))
	for _, p := range inv.Commands {
		r.program(&b, "", p)
	}
	b.WriteByte('\n')

	assign(&b, "", "noinst_PROGRAMS", "+=", programNames(inv.Mains))
	for _, p := range inv.Mains {
		r.program(&b, "", p)
	}
	b.WriteByte('\n')

	assign(&b, "", "check_PROGRAMS", "=", programNames(inv.Tests))
	for _, p := range inv.Tests {
		r.program(&b, "", p)
		b.WriteString(p.Var + "_CPPFLAGS = -I$(srcdir)/" + r.cfg.Layout.IncludeDir +
			" -I$(srcdir)/" + r.cfg.Layout.UtilsDir + " \\\n")
		b.WriteString(r.cfg.Build.TestCPPFlags + "\n")
	}
	b.WriteByte('\n')

	b.WriteString("check:\n")
	b.WriteString("\t@echo \"# running tests\"\n")
	for _, p := range inv.Tests {
		b.WriteString("\t" + srcdir + p.Name + " " + srcdir + r.cfg.Layout.TestDataDir + "\n")
	}
	b.WriteByte('\n')

	if err := r.section(&b, "footer.am", vars); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (r *Renderer) vars() map[string]string {
	return map[string]string{
		"PROJECT":        r.cfg.Build.ProjectComment,
		"LIBRARY":        r.cfg.Build.Library,
		"LIBRARY_NAME":   strings.TrimSuffix(r.cfg.Build.Library, ".a"),
		"HEADER_INSTALL": r.cfg.Build.HeaderInstall,
		"HEADER_DIR":     r.cfg.Build.HeaderDir,
		"INCLUDE_DIR":    r.cfg.Layout.IncludeDir,
		"UTILS_DIR":      r.cfg.Layout.UtilsDir,
		"DATA_DIR":       r.cfg.Build.DataDir,
		"STYLE_CHECK":    r.cfg.Build.StyleCheck,
	}
}

func (r *Renderer) section(b *strings.Builder, name string, vars map[string]string) error {
	raw, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return &domain.OpError{
			Op:   "automake.template",
			Kind: domain.KindExecution,
			Path: name,
			Err:  err,
		}
	}

	out, err := template.RenderString(string(raw), vars)
	if err != nil {
		return err
	}
	b.WriteString(out)
	return nil
}

// program declares a program built from a single source and linked to the library.
func (r *Renderer) program(b *strings.Builder, prefix string, p domain.Program) {
	b.WriteString(prefix + p.Var + "_SOURCES = " + srcdir + p.Source + "\n")
	b.WriteString(prefix + p.Var + "_LDADD = " + r.cfg.Build.Library + "\n")
}

func assign(b *strings.Builder, prefix, name, op string, values []string) {
	b.WriteString(prefix + name + " " + op)
	for _, v := range values {
		b.WriteString(" " + v)
	}
	b.WriteByte('\n')
}

func sourceRefs(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = srcdir + p
	}
	return out
}

func programNames(ps []domain.Program) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}
