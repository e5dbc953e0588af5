package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// newRecCommand creates the rec command group.
func newRecCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rec",
		Aliases: []string{"recurrence"},
		Short:   "Manage recurrences",
		Long: `Manage recurrences.

A recurrence spawns a copy of its template goal every interval, starting at
its start time and stopping at its end time (if any). Spawned goals are
regular goals: editing or deleting the recurrence does not touch them.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newRecNewCommand(c),
		newRecEditCommand(c),
		newRecRmCommand(c),
		newRecListCommand(c),
		newRecSpawnCommand(c),
		newRecPreviewCommand(c),
	)

	return cmd
}

// newRecNewCommand creates the rec new command.
func newRecNewCommand(c *app.Container) *cobra.Command {
	var flags goalFlags
	var opts struct {
		Every    string
		Duration string
		ParentID int
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new recurrence",
		Long: `Create a new recurrence.

Goals are spawned every --every, each lasting --duration, from --start until
--end. Without --end the recurrence never ends. The criteria and actions
flags describe the spawned goals.

Examples:
  # Read 30 minutes every day
  goalkeeper rec new --name "Reading" --start 2026-03-01 --every 24h --duration 24h --target 30m

  # Weekly review checklist during March, as subgoals of goal #1
  goalkeeper rec new --name "Weekly review" --parent 1 --start 2026-03-01 --end 2026-03-31 \
    --every 168h --duration 24h --item "Inbox zero" --item "Plan next week"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.NewRecurrenceInput{
				Criteria:       flags.criteria(),
				Name:           flags.Name,
				SuccessActions: flags.OnSuccess,
				FailureActions: flags.OnFailure,
				FinallyActions: flags.Finally,
				ParentID:       opts.ParentID,
			}

			var err error
			if input.Start, err = parseTimeFlag("start", flags.Start); err != nil {
				return err
			}
			if flags.End != "" {
				if input.End, err = parseTimeFlag("end", flags.End); err != nil {
					return err
				}
			}
			if input.SpawnIntervalMs, err = domain.ParseDurationMs(opts.Every); err != nil {
				return err
			}
			if input.GoalDurationMs, err = domain.ParseDurationMs(opts.Duration); err != nil {
				return err
			}

			uc := c.NewRecurrenceUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created recurrence %s\n", domain.FormatGoalRef(out.RecurrenceID))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&opts.Every, "every", "", "Spawn interval, e.g. 24h")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "Length of each spawned goal, e.g. 1h")
	cmd.Flags().IntVar(&opts.ParentID, "parent", 0, "Parent goal of spawned goals")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("every")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

// newRecEditCommand creates the rec edit command.
func newRecEditCommand(c *app.Container) *cobra.Command {
	var flags goalFlags
	var opts struct {
		Every      string
		Duration   string
		Indefinite bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recurrence",
		Long: `Edit an existing recurrence.

Only the given flags are changed. Changes apply to goals spawned from now on;
goals already spawned are not modified. Use --indefinite to remove the end time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}
			if opts.Indefinite && cmd.Flags().Changed("end") {
				return errors.New("cannot use --end and --indefinite together")
			}

			input := usecase.EditRecurrenceInput{
				RecurrenceID:   recID,
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
			if opts.Indefinite {
				var indefinite int64
				input.End = &indefinite
			}
			if cmd.Flags().Changed("every") {
				ms, err := domain.ParseDurationMs(opts.Every)
				if err != nil {
					return err
				}
				input.SpawnIntervalMs = &ms
			}
			if cmd.Flags().Changed("duration") {
				ms, err := domain.ParseDurationMs(opts.Duration)
				if err != nil {
					return err
				}
				input.GoalDurationMs = &ms
			}

			uc := c.EditRecurrenceUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated recurrence %s: %s\n",
				domain.FormatGoalRef(out.Recurrence.ID), out.Recurrence.Template.Name)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&opts.Every, "every", "", "Spawn interval, e.g. 24h")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "Length of each spawned goal, e.g. 1h")
	cmd.Flags().BoolVar(&opts.Indefinite, "indefinite", false, "Remove the end time")

	return cmd
}

// newRecRmCommand creates the rec rm command.
func newRecRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recurrence",
		Long: `Delete a recurrence.

Goals it already spawned are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteRecurrenceUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteRecurrenceInput{RecurrenceID: recID}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted recurrence %s\n", domain.FormatGoalRef(recID))
			return nil
		},
	}
}

// newRecListCommand creates the rec list command.
func newRecListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		From string
		To   string
		Kind string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recurrences",
		Long: `Display a list of recurrences.

With --from and --to only recurrences active during that interval are shown.

Output columns:
  ID, KIND, START, END, EVERY, DURATION, NEXT, NAME`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListRecurrencesInput{
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

			uc := c.ListRecurrencesUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printRecurrenceList(cmd.OutOrStdout(), out.Recurrences)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Interval start")
	cmd.Flags().StringVar(&opts.To, "to", "", "Interval end")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Filter by kind (time or task)")

	return cmd
}

// printRecurrenceList prints recurrences in a table.
func printRecurrenceList(w io.Writer, recs []domain.Recurrence) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tKIND\tSTART\tEND\tEVERY\tDURATION\tNEXT\tNAME")

	// Rows
	for i := range recs {
		r := &recs[i]
		endStr := "never"
		if !r.IsIndefinite() {
			endStr = domain.FormatTimestamp(r.End)
		}
		nextStr := "-"
		if next, ok := r.NextSpawnStart(); ok {
			nextStr = domain.FormatTimestamp(next)
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Kind(),
			domain.FormatTimestamp(r.Start),
			endStr,
			domain.FormatDurationMs(r.SpawnIntervalMs),
			domain.FormatDurationMs(r.GoalDurationMs),
			nextStr,
			truncateName(r.Template.Name),
		)
	}
}

// newRecSpawnCommand creates the rec spawn command.
func newRecSpawnCommand(c *app.Container) *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "spawn [id]",
		Short: "Spawn goals from recurrences",
		Long: `Materialize the goals of one recurrence (or all recurrences) up to a time.

Every pending goal starting before --until is created, plus the first one
after it. Without --until, goals are spawned up to now plus the configured
[spawn] horizon.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input usecase.SpawnGoalsInput
			if len(args) > 0 {
				recID, err := parseGoalID(args[0])
				if err != nil {
					return err
				}
				input.RecurrenceID = recID
			}
			if until != "" {
				ms, err := parseTimeFlag("until", until)
				if err != nil {
					return err
				}
				input.Until = ms
			}

			uc := c.SpawnGoalsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Spawned) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing to spawn")
				return nil
			}
			printGoalList(w, out.Spawned)
			_, _ = fmt.Fprintf(w, "\nSpawned %d goal(s)\n", len(out.Spawned))
			for _, id := range out.Pending {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderWarning(fmt.Sprintf(
					"Warning: recurrence %s has more goals to spawn; run 'goalkeeper rec spawn' again",
					domain.FormatGoalRef(id))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "Spawn goals up to this time")

	return cmd
}

// newRecPreviewCommand creates the rec preview command.
func newRecPreviewCommand(c *app.Container) *cobra.Command {
	var until string
	var limit int

	cmd := &cobra.Command{
		Use:   "preview <id>",
		Short: "Preview goals a recurrence will spawn",
		Long: `Show the goals a recurrence has not spawned yet, without creating them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recID, err := parseGoalID(args[0])
			if err != nil {
				return err
			}
			input := usecase.PreviewRecurrenceInput{
				RecurrenceID: recID,
				Limit:        limit,
			}
			if until != "" {
				if input.Until, err = parseTimeFlag("until", until); err != nil {
					return err
				}
			}

			uc := c.PreviewRecurrenceUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(tw, "START\tEND\tNAME")
			for _, g := range out.Goals {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n",
					domain.FormatTimestamp(g.Start),
					domain.FormatTimestamp(g.End),
					g.Name,
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "Preview goals starting up to this time")
	cmd.Flags().IntVarP(&limit, "limit", "n", usecase.DefaultPreviewLimit, "Maximum number of goals")

	return cmd
}
