package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newApplyCommand creates the apply command.
func newApplyCommand(c *app.Container) *cobra.Command {
	var dryRun, edit bool

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Create goals and recurrences from a plan file",
		Long: `Create goals and recurrences from a YAML plan file.

Every entry is validated before anything is created; if any entry is
rejected nothing is saved. Run 'goalkeeper --help-plan' for the file format.

With --edit, the plan is written in $EDITOR instead of read from a file.

Examples:
  # Preview a plan
  goalkeeper apply plan.yaml --dry-run

  # Apply it
  goalkeeper apply plan.yaml

  # Write a plan in the editor and apply it
  goalkeeper apply --edit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			switch {
			case edit && len(args) > 0:
				return errors.New("cannot use a file and --edit together")
			case edit:
				edited, err := editPlan()
				if err != nil {
					return err
				}
				if edited == nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Plan unchanged, nothing applied")
					return nil
				}
				content = edited
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				content = data
			default:
				return errors.New("plan file is required (or use --edit)")
			}

			uc := c.ApplyPlanUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ApplyPlanInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintln(w, "Dry run - entries that would be created:")
				_, _ = fmt.Fprintln(w, "")
			}

			for _, g := range out.Goals {
				if dryRun {
					_, _ = fmt.Fprintf(w, "Goal %d: %s\n", g.ID, g.Name)
				} else {
					_, _ = fmt.Fprintf(w, "Created goal %s: %s\n", domain.FormatGoalRef(g.ID), g.Name)
				}
				_, _ = fmt.Fprintf(w, "  %s - %s\n", domain.FormatTimestamp(g.Start), domain.FormatTimestamp(g.End))
				if g.ParentID != 0 {
					_, _ = fmt.Fprintf(w, "  Parent: %d\n", g.ParentID)
				}
			}
			for _, r := range out.Recurrences {
				if dryRun {
					_, _ = fmt.Fprintf(w, "Recurrence %d: %s\n", r.ID, r.Name)
				} else {
					_, _ = fmt.Fprintf(w, "Created recurrence %s: %s\n", domain.FormatGoalRef(r.ID), r.Name)
				}
			}

			if !dryRun {
				_, _ = fmt.Fprintf(w, "\nCreated %d goal(s) and %d recurrence(s)\n", len(out.Goals), len(out.Recurrences))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and preview without creating")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Write the plan in $EDITOR")

	return cmd
}
