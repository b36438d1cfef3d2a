package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/infra/amfile"
	"github.com/iupr/ocroam/internal/infra/fsscan"
	"github.com/iupr/ocroam/internal/infra/logger"
	"github.com/iupr/ocroam/internal/infra/workspacefinder"
	"github.com/iupr/ocroam/internal/usecase"
)

func newCheckCmd() *cobra.Command {
	var flags commonFlags
	var format string
	var strict bool
	var color bool

	cmd := newToolCmd("checkam", "Report OCRopus sources that Makefile.am does not mention")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s, err := flags.open(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.close()

		uc := usecase.NewCheckMakefile(
			workspacefinder.NewFinder(s.cfg.Check.Markers...),
			fsscan.NewScanner(s.root),
			amfile.NewReader(s.root),
			s.cfg,
			usecase.WithLogger(logger.L()),
		)

		report, err := uc.Execute(cmd.Context(), s.root)
		if err != nil {
			return err
		}

		if err := printReport(cmd.OutOrStdout(), report, format, DefaultTheme(color)); err != nil {
			return err
		}

		n := report.MissingCount()
		logger.L().Info("checkam.done", "missing", n)
		if strict && n > 0 {
			return &domain.OpError{
				Op:   "checkam.strict",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("%d file(s) not handled", n),
			}
		}
		return nil
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when files are not handled")
	cmd.Flags().BoolVar(&color, "color", false, "style report headings for a terminal")
	return cmd
}
