// Package cli implements the dkt-indices commands using Cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dkt-index-engine/internal/config"
	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/internal/logging"
)

// app holds the global flags and the state built from them before a
// subcommand runs
type app struct {
	cfgFile  string
	verbose  bool
	strict   bool
	format   string
	output   string
	details  bool
	logLevel string

	config *domain.Config
	logger *logrus.Logger
	closer io.Closer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dkt-indices",
		Short: "Structural brain index engine",
		Long: `dkt-indices derives lateralization and ability indices from FreeSurfer
DKT cortical parcellation statistics.

Analyze one subject from its two hemisphere reports:
  dkt-indices analyze --lh lh.aparc.DKTatlas.stats --rh rh.aparc.DKTatlas.stats

Analyze FreeSurfer subject directories:
  dkt-indices analyze --subject-dir subjects/sub-01 --subject-dir subjects/sub-02`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file path (default: ./dkt-indices.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format (text|json|yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&a.details, "details", false, "include per-region contributions in text output")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "reject reports holding non-finite measurements")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newIndicesCmd(a),
		newValidateCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and returns any error.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// setup loads configuration, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	manager, err := config.NewManager(a.cfgFile)
	if err != nil {
		return err
	}
	cfg := manager.GetConfig()

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("details") {
		cfg.Output.ShowDetails = a.details
	}
	if flags.Changed("strict") {
		cfg.Engine.StrictValidation = a.strict
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if a.verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, closer, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = logger
	a.closer = closer

	logger.WithFields(logrus.Fields{
		"config_file": manager.ConfigFileUsed(),
		"workers":     cfg.Engine.Workers,
		"cache_size":  cfg.Engine.CacheSize,
		"strict":      cfg.Engine.StrictValidation,
		"format":      cfg.Output.Format,
	}).Debug("Configuration loaded")

	return nil
}

// openOutput returns the writer for command output and a function that
// closes it
func (a *app) openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.output == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	if err := config.EnsureParentDir(a.output); err != nil {
		return nil, nil, fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(a.output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, file.Close, nil
}
