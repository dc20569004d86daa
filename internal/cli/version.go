package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags:
//
//	go build -ldflags "-X github.com/dkt-index-engine/internal/cli.Version=1.0.0
//	  -X github.com/dkt-index-engine/internal/cli.Commit=$(git rev-parse --short HEAD)
//	  -X github.com/dkt-index-engine/internal/cli.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dkt-indices %s\n", Version)
			fmt.Fprintf(w, "  commit:  %s\n", Commit)
			fmt.Fprintf(w, "  built:   %s\n", BuildDate)
		},
	}
}
