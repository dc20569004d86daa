package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkt-index-engine/internal/config"
	"github.com/dkt-index-engine/internal/setup"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		status bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Init writes the default configuration to ~/.dkt-indices/dkt-indices.yaml,
or to the path given with --config. Use --status to inspect an existing file.`,
		Args: cobra.NoArgs,
		// init must work while the existing configuration is broken
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if status {
				st, err := setup.GetStatus(a.cfgFile)
				if err != nil {
					return fmt.Errorf("init: %w", err)
				}
				fmt.Fprintf(w, "Config file: %s\n", st.ConfigPath)
				fmt.Fprintf(w, "  exists: %t\n", st.Exists)
				fmt.Fprintf(w, "  valid:  %t\n", st.Valid)
				for _, issue := range st.Issues {
					fmt.Fprintf(w, "  • %s\n", issue)
				}
				return nil
			}

			path, err := setup.WriteConfig(config.DefaultConfig(), setup.Options{Path: a.cfgFile, Force: force})
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			fmt.Fprintf(w, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&status, "status", false, "report on the configuration file instead of writing it")

	return cmd
}
