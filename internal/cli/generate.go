package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/infra/automake"
	"github.com/iupr/ocroam/internal/infra/fsscan"
	"github.com/iupr/ocroam/internal/infra/logger"
	"github.com/iupr/ocroam/internal/usecase"
)

func newGenerateCmd() *cobra.Command {
	var flags commonFlags
	var output string

	cmd := newToolCmd("genam", "Print the OCRopus Makefile.am generated from the source tree")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s, err := flags.open(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.close()

		uc := usecase.NewGenerateMakefile(
			fsscan.NewScanner(s.root),
			automake.NewRenderer(s.cfg),
			s.cfg,
			usecase.WithLogger(logger.L()),
		)

		doc, err := uc.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if output == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		}
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			return &domain.OpError{
				Op:   "genam.write",
				Kind: domain.KindExecution,
				Path: output,
				Err:  err,
			}
		}
		logger.L().Info("genam.written", "path", output, "bytes", len(doc))
		return nil
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	return cmd
}
