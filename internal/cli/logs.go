package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs [id]",
		Short: "Show log output",
		Long: `Show the goalkeeper log, or the log of a single goal.

Goal logs record edits, resolutions and the output of the goal's actions.

Examples:
  # Show the global log
  goalkeeper logs

  # Show the last 20 lines of goal #4's log
  goalkeeper logs 4 -n 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ShowLogsInput{Lines: lines}
			if len(args) > 0 {
				goalID, err := parseGoalID(args[0])
				if err != nil {
					return err
				}
				input.GoalID = goalID
			}

			uc := c.ShowLogsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Content != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
