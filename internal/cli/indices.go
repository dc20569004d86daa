package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkt-index-engine/internal/export"
	"github.com/dkt-index-engine/internal/service"
)

func newIndicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "indices",
		Short: "List the index catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := service.NewIndexEngine(a.logger, a.config.Engine.Workers)

			w, closeOutput, err := a.openOutput(cmd)
			if err != nil {
				return fmt.Errorf("indices: %w", err)
			}
			if err := export.WriteCatalog(w, engine.Definitions(), a.config.Output.Format); err != nil {
				_ = closeOutput()
				return fmt.Errorf("indices: %w", err)
			}
			return closeOutput()
		},
	}
}
