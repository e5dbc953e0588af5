package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the goal store",
		Long: `Display goal counts per status and kind, the number of recurrences,
and how many incomplete goals are waiting for 'goalkeeper resolve'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowStatusInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			for _, s := range domain.AllStatuses() {
				_, _ = fmt.Fprintf(tw, "%s\t%d\n", renderStatus(s), out.ByStatus[s])
			}
			_, _ = fmt.Fprintf(tw, "time-based\t%d\n", out.TimeGoals)
			_, _ = fmt.Fprintf(tw, "task-based\t%d\n", out.TaskGoals)
			_, _ = fmt.Fprintf(tw, "recurrences\t%d\n", out.Recurrences)
			_, _ = fmt.Fprintf(tw, "version\t%d\n", out.Version)
			if err := tw.Flush(); err != nil {
				return err
			}

			if out.Expired > 0 {
				_, _ = fmt.Fprintln(w, renderWarning(fmt.Sprintf(
					"\n%d expired goal(s) as of %s; run 'goalkeeper resolve'",
					out.Expired, domain.FormatTimestamp(out.Now))))
			}
			return nil
		},
	}
}
