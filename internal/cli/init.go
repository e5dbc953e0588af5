package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the goal store",
		Long: `Initialize the goalkeeper data directory.

This command creates the data directory ($GOALKEEPER_HOME, or
~/.local/share/goalkeeper by default) with an empty goal store.
The store backend is chosen by [store] backend in config.toml.

Running init on an initialized store is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{
				DataDir: c.Config.DataDir,
			})
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Already initialized in %s\n", out.DataDir)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized goalkeeper in %s\n", out.DataDir)
			return nil
		},
	}
}
