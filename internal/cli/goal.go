package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newGoalCommand creates the goal command group.
func newGoalCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
		Long:  `Create, edit, list and resolve goals.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newGoalNewCommand(c),
		newGoalEditCommand(c),
		newGoalListCommand(c),
		newGoalShowCommand(c),
		newGoalResolveCommand(c, "succeed", usecase.ResolutionSucceed),
		newGoalResolveCommand(c, "fail", usecase.ResolutionFail),
		newGoalResolveCommand(c, "rm", usecase.ResolutionDelete),
		newGoalFeedCommand(c),
		newGoalCheckCommand(c, "check", true),
		newGoalCheckCommand(c, "uncheck", false),
	)

	return cmd
}

// newGoalNewCommand creates the goal new command.
func newGoalNewCommand(c *app.Container) *cobra.Command {
	var flags goalFlags
	var parentID int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new goal",
		Long: `Create a new goal.

A goal is time-based when --target is given and task-based when --item is given.
A subgoal (--parent) must lie within its parent's start and end.

Examples:
  # Time-based goal: dedicate 10 hours during March
  goalkeeper goal new --name "Learn Go" --start 2026-03-01 --end 2026-03-31 --target 10h

  # Task-based goal with a checklist
  goalkeeper goal new --name "Release" --start 2026-03-01 --end 2026-03-15 \
    --item "Write changelog" --item "Tag release"

  # Subgoal of goal #1 that feeds its time into goal #1
  goalkeeper goal new --name "Week 1" --parent 1 --start 2026-03-01 --end 2026-03-07 \
    --target 3h --link 1 --feed

  # Run a shell action when the goal succeeds
  goalkeeper goal new --name "Run" --start 2026-03-01 --end 2026-03-02 --target 30m \
    --on-success "notify-send 'Nice run'"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseTimeFlag("start", flags.Start)
			if err != nil {
				return err
			}
			end, err := parseTimeFlag("end", flags.End)
			if err != nil {
				return err
			}

			uc := c.NewGoalUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewGoalInput{
				Criteria:       flags.criteria(),
				Name:           flags.Name,
				SuccessActions: flags.OnSuccess,
				FailureActions: flags.OnFailure,
				FinallyActions: flags.Finally,
				Start:          start,
				End:            end,
				ParentID:       parentID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s\n", domain.FormatGoalRef(out.GoalID))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&parentID, "parent", 0, "Parent goal ID (creates a subgoal)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// newGoalEditCommand creates the goal edit command.
func newGoalEditCommand(c *app.Container) *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal",
		Long: `Edit an existing goal.

Only the given flags are changed. The goal kind cannot change: a time-based
goal keeps the time already dedicated, and a task-based goal keeps the
checks of items at the same position. Subgoals must still fit in the
new bounds.

Pass an empty action (--on-success "") to clear an action list.

Examples:
  # Rename goal #3
  goalkeeper goal edit 3 --name "Learn Go properly"

  # Extend the end time and raise the target
  goalkeeper goal edit 3 --end 2026-04-15 --target 15h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditGoalInput{
				GoalID:         goalID,
				Criteria:       flags.changedCriteria(cmd),
				SuccessActions: changedActions(cmd, "on-success", flags.OnSuccess),
				FailureActions: changedActions(cmd, "on-failure", flags.OnFailure),
				FinallyActions: changedActions(cmd, "finally", flags.Finally),
			}
			if cmd.Flags().Changed("name") {
				input.Name = &flags.Name
			}
			if input.Start, err = changedTime(cmd, "start", flags.Start); err != nil {
				return err
			}
			if input.End, err = changedTime(cmd, "end", flags.End); err != nil {
				return err
			}

			uc := c.EditGoalUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s: %s\n", domain.FormatGoalRef(out.Goal.ID), out.Goal.Name)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// newGoalListCommand creates the goal list command.
func newGoalListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		From     string
		To       string
		Kind     string
		Statuses []string
		ParentID int
		All      bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		Long: `Display a list of goals.

By default, deleted goals are hidden. Use --all to include them, or
--status to pick statuses explicitly.

With --from and --to only goals overlapping that interval are shown.

Output columns:
  ID, PARENT, KIND, STATUS, START, END, PROGRESS, NAME

Examples:
  # List goals of March
  goalkeeper goal list --from 2026-03-01 --to 2026-03-31

  # List incomplete task-based goals
  goalkeeper goal list --status incomplete --kind task

  # List subgoals of goal #1
  goalkeeper goal list --parent 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListGoalsInput{
				Kind: domain.GoalKind(opts.Kind),
			}

			if opts.From != "" || opts.To != "" {
				if opts.From == "" || opts.To == "" {
					return errors.New("--from and --to must be used together")
				}
				var err error
				if input.Start, err = parseTimeFlag("from", opts.From); err != nil {
					return err
				}
				if input.End, err = parseTimeFlag("to", opts.To); err != nil {
					return err
				}
			}

			switch {
			case len(opts.Statuses) > 0:
				for _, s := range opts.Statuses {
					input.Statuses = append(input.Statuses, domain.CompletionStatus(s))
				}
			case !opts.All:
				input.Statuses = domain.StatusFilter{
					domain.StatusIncomplete,
					domain.StatusSucceeded,
					domain.StatusFailed,
				}
			}

			if cmd.Flags().Changed("parent") {
				input.ParentID = &opts.ParentID
			}

			uc := c.ListGoalsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printGoalList(cmd.OutOrStdout(), out.Goals)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Interval start")
	cmd.Flags().StringVar(&opts.To, "to", "", "Interval end")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Filter by kind (time or task)")
	cmd.Flags().StringArrayVar(&opts.Statuses, "status", nil, "Filter by status (can specify multiple)")
	cmd.Flags().IntVar(&opts.ParentID, "parent", 0, "Show only immediate subgoals of this goal")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all goals including deleted")

	return cmd
}

// printGoalList prints goals in a table.
func printGoalList(w io.Writer, goals []domain.Goal) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tPARENT\tKIND\tSTATUS\tSTART\tEND\tPROGRESS\tNAME")

	// Rows
	for i := range goals {
		g := &goals[i]
		parentStr := "-"
		if !g.IsRoot() {
			parentStr = strconv.Itoa(g.ParentID)
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID,
			parentStr,
			g.Kind(),
			renderStatus(g.Status),
			domain.FormatTimestamp(g.Start),
			domain.FormatTimestamp(g.End),
			formatProgress(g),
			truncateName(g.Name),
		)
	}
}

// formatProgress formats a goal's progress toward its criteria.
func formatProgress(g *domain.Goal) string {
	if tc, ok := g.TimeCriteria(); ok {
		return fmt.Sprintf("%s/%s", domain.FormatDurationMs(tc.DedicatedMs), domain.FormatDurationMs(tc.TargetMs))
	}
	if tc, ok := g.TaskCriteria(); ok {
		return fmt.Sprintf("%d/%d", tc.NumChecked(), len(tc.Items))
	}
	return "-"
}

// newGoalShowCommand creates the goal show command.
func newGoalShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display goal details",
		Long: `Display detailed information about a goal.

Output includes:
  - Goal ID and name
  - Status, kind, bounds and parent
  - Time progress or the checklist
  - Actions
  - Immediate subgoals (if any)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowGoalUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowGoalInput{GoalID: goalID})
			if err != nil {
				return err
			}

			printGoalDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

// printGoalDetails prints a goal with its subgoals.
func printGoalDetails(w io.Writer, out *usecase.ShowGoalOutput) {
	g := &out.Goal

	// Header
	_, _ = fmt.Fprintf(w, "# Goal %d: %s\n\n", g.ID, g.Name)

	// Fields
	_, _ = fmt.Fprintf(w, "Status: %s\n", renderStatus(g.Status))
	_, _ = fmt.Fprintf(w, "Kind: %s\n", g.Kind())
	_, _ = fmt.Fprintf(w, "Start: %s\n", domain.FormatTimestamp(g.Start))
	_, _ = fmt.Fprintf(w, "End: %s\n", domain.FormatTimestamp(g.End))

	if out.Parent != nil {
		_, _ = fmt.Fprintf(w, "Parent: #%d %s\n", out.Parent.ID, out.Parent.Name)
	} else {
		_, _ = fmt.Fprintln(w, "Parent: none")
	}

	if g.RecurrenceID != 0 {
		_, _ = fmt.Fprintf(w, "Recurrence: #%d\n", g.RecurrenceID)
	}

	if tc, ok := g.TimeCriteria(); ok {
		_, _ = fmt.Fprintf(w, "Progress: %s\n", formatProgress(g))
		if tc.LinkID != 0 {
			feed := ""
			if tc.Feed {
				feed = " (feeds)"
			}
			_, _ = fmt.Fprintf(w, "Linked: #%d%s\n", tc.LinkID, feed)
		} else if tc.Task != "" {
			_, _ = fmt.Fprintf(w, "Task: %s\n", tc.Task)
		}
	}

	if tc, ok := g.TaskCriteria(); ok {
		_, _ = fmt.Fprintf(w, "Progress: %s\n", formatProgress(g))
		_, _ = fmt.Fprintln(w, "\nItems:")
		for i, item := range tc.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			_, _ = fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, mark, item.Description)
		}
	}

	printActions(w, "On success", g.SuccessActions)
	printActions(w, "On failure", g.FailureActions)
	printActions(w, "Finally", g.FinallyActions)

	// Subgoals
	if len(out.Subgoals) > 0 {
		_, _ = fmt.Fprintln(w, "\nSubgoals:")
		for _, sub := range out.Subgoals {
			_, _ = fmt.Fprintf(w, "  #%d [%s] %s\n", sub.ID, renderStatus(sub.Status), sub.Name)
		}
	}
}

func printActions(w io.Writer, label string, actions []string) {
	if len(actions) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s:\n", label)
	for _, a := range actions {
		_, _ = fmt.Fprintf(w, "  $ %s\n", a)
	}
}

// newGoalResolveCommand creates the succeed, fail and rm commands.
func newGoalResolveCommand(c *app.Container, use string, resolution usecase.Resolution) *cobra.Command {
	var skipActions bool

	short := map[usecase.Resolution]string{
		usecase.ResolutionSucceed: "Mark a goal as succeeded",
		usecase.ResolutionFail:    "Mark a goal as failed",
		usecase.ResolutionDelete:  "Delete a goal",
	}[resolution]

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Long: short + `.

Only incomplete goals can be resolved. Succeeding or failing a goal runs
its success or failure actions followed by its finally actions; an action
error is reported but the goal stays resolved. Deleting runs no actions.

The goal is kept in the store with its final status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			uc := c.ResolveGoalUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ResolveGoalInput{
				Resolution:  resolution,
				GoalID:      goalID,
				SkipActions: skipActions,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Goal %s %s\n", domain.FormatGoalRef(out.Goal.ID), out.Goal.Status)
			for _, actionErr := range out.ActionErrors {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderWarning("Warning: "+actionErr.Error()))
			}
			return nil
		},
	}

	if resolution != usecase.ResolutionDelete {
		cmd.Flags().BoolVar(&skipActions, "skip-actions", false, "Do not run the goal's actions")
	}

	return cmd
}

// newGoalFeedCommand creates the goal feed command.
func newGoalFeedCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed <id> <duration>",
		Short: "Add dedicated time to a goal",
		Long: `Add dedicated time to an incomplete time-based goal.

If the goal is linked to another goal with feeding enabled, the time is
added to the linked goal too.

Examples:
  # Log 45 minutes on goal #2
  goalkeeper goal feed 2 45m`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}
			durationMs, err := domain.ParseDurationMs(args[1])
			if err != nil {
				return err
			}

			uc := c.FeedGoalUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FeedGoalInput{
				DurationMs: durationMs,
				GoalID:     goalID,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Goal %s: %s\n", domain.FormatGoalRef(out.Goal.ID), formatProgress(&out.Goal))
			if out.LinkedGoalID != 0 {
				_, _ = fmt.Fprintf(w, "Fed linked goal %s\n", domain.FormatGoalRef(out.LinkedGoalID))
			}
			if out.Met {
				_, _ = fmt.Fprintln(w, "Target reached")
			}
			return nil
		},
	}

	return cmd
}

// newGoalCheckCommand creates the check and uncheck commands.
func newGoalCheckCommand(c *app.Container, use string, check bool) *cobra.Command {
	verb := "Check"
	if !check {
		verb = "Uncheck"
	}

	cmd := &cobra.Command{
		Use:   use + " <id> <item>",
		Short: verb + " a checklist item",
		Long: verb + ` an item of an incomplete task-based goal.

Items are numbered from 1 as shown by 'goalkeeper goal show'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}
			item, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || item <= 0 {
				return fmt.Errorf("invalid item %q: must be a positive integer", args[1])
			}

			uc := c.ToggleCriteriaUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleCriteriaInput{
				GoalID: goalID,
				Index:  item - 1,
				Check:  check,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Changed {
				_, _ = fmt.Fprintf(w, "Item %d of goal %s unchanged\n", item, domain.FormatGoalRef(goalID))
				return nil
			}
			_, _ = fmt.Fprintf(w, "Goal %s: %s\n", domain.FormatGoalRef(goalID), formatProgress(&out.Goal))
			return nil
		},
	}

	return cmd
}
