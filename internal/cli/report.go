package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iupr/ocroam/internal/domain"
)

func printReport(w io.Writer, r domain.Report, format string, theme Theme) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"missing":  r.MissingCount(),
			"sections": r.Sections,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, r, theme)
		return nil
	default:
		return &domain.OpError{
			Op:   "checkam.format",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected pretty|json)", format),
		}
	}
}

func printPrettyReport(w io.Writer, r domain.Report, theme Theme) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.paint(theme.Note, "Please remember: This script only checks if files are handled at all."))
	fmt.Fprintln(w, theme.paint(theme.Note, "It does NOT check whether they are handled correctly!"))

	for _, s := range r.Sections {
		fmt.Fprintln(w)
		if s.OK() {
			fmt.Fprintln(w, theme.paint(theme.OK, fmt.Sprintf("OK, all %s files are handled.", s.Label)))
			continue
		}
		fmt.Fprintln(w, theme.paint(theme.Missing, fmt.Sprintf("These %s files are not handled:", s.Label)))
		for _, f := range s.Missing {
			fmt.Fprintln(w, f)
		}
		fmt.Fprintln(w, "---")
	}
}
