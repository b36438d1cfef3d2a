package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iupr/ocroam/internal/buildinfo"
	"github.com/iupr/ocroam/internal/domain"
	"github.com/iupr/ocroam/internal/infra/config"
	"github.com/iupr/ocroam/internal/infra/logger"
)

const (
	envConfig = "OCROAM_CONFIG"
	envDebug  = "OCROAM_DEBUG"
)

// ExecuteGenerate runs the genam command line.
func ExecuteGenerate() {
	os.Exit(run(newGenerateCmd(), os.Stderr))
}

// ExecuteCheck runs the checkam command line.
func ExecuteCheck() {
	os.Exit(run(newCheckCmd(), os.Stderr))
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// commonFlags are shared by both tools.
type commonFlags struct {
	root    string
	config  string
	logFile string
	debug   bool
}

func (f *commonFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", ".", "OCRopus top-level folder")
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default <root>/ocroam.yaml, or $"+envConfig+")")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "append JSON logs to this file")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log debug output to stderr (or $"+envDebug+")")
}

// session is the per-invocation state built from commonFlags.
type session struct {
	root    string
	cfg     domain.Config
	cleanup func() error
}

func (f *commonFlags) open(stderr io.Writer) (*session, error) {
	root, err := filepath.Abs(f.root)
	if err != nil {
		return nil, fmt.Errorf("invalid root path: %w", err)
	}
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.OpError{
			Op:   "env.load",
			Kind: domain.KindInvalidConfig,
			Path: filepath.Join(root, ".env"),
			Err:  err,
		}
	}

	cfgPath := strings.TrimSpace(f.config)
	if cfgPath == "" {
		cfgPath = strings.TrimSpace(os.Getenv(envConfig))
	}
	debug := f.debug
	if !debug {
		debug, _ = strconv.ParseBool(os.Getenv(envDebug))
	}

	cleanup, err := logger.Setup(logger.Config{Debug: debug, File: f.logFile, Stderr: stderr})
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	cfg, err := config.Load(root, cfgPath)
	if err != nil {
		_ = cleanup()
		return nil, err
	}

	logger.L().Debug("session.open", "root", root, "config", cfgPath, "log_file", logger.Path())
	return &session{root: root, cfg: cfg, cleanup: cleanup}, nil
}

func (s *session) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

func newToolCmd(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		Version:       buildinfo.String(use),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	return cmd
}
