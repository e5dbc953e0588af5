package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newResolveCommand creates the resolve command.
func newResolveCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve expired goals",
		Long: `Resolve every incomplete goal whose end time has passed.

A time-based goal succeeds if the dedicated time reached its target; a
task-based goal succeeds if every item is checked. The matching actions run
first, followed by the finally actions. If a success action fails the goal
fails instead and its failure actions run.

A goal is resolved only after all of its subgoals; goals still waiting on
incomplete subgoals are reported as deferred.

Examples:
  # Resolve expired goals (e.g. from cron)
  goalkeeper resolve

  # Show what would happen without running actions
  goalkeeper resolve --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ResolveExpiredUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ResolveExpiredInput{DryRun: dryRun})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintln(w, "Dry run - goals that would be resolved:")
			}
			for _, res := range out.Resolved {
				status := domain.StatusFailed
				if res.Succeeded {
					status = domain.StatusSucceeded
				}
				_, _ = fmt.Fprintf(w, "%s %s: %s\n", domain.FormatGoalRef(res.Goal.ID), renderStatus(status), res.Goal.Name)
				for _, actionErr := range res.ActionErrors {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderWarning("Warning: "+actionErr.Error()))
				}
			}
			for _, id := range out.Deferred {
				_, _ = fmt.Fprintf(w, "%s deferred: waiting for subgoals\n", domain.FormatGoalRef(id))
			}
			if len(out.Resolved) == 0 && len(out.Deferred) == 0 {
				_, _ = fmt.Fprintln(w, "No expired goals")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report outcomes without running actions or changing goals")

	return cmd
}
