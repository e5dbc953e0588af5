// Package cli provides the command-line interface for goalkeeper.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/app"
)

// Command group IDs.
const (
	groupSetup      = "setup"
	groupGoal       = "goal"
	groupRecurrence = "recurrence"
)

// NewRootCommand creates the root command for goalkeeper.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var planHelp bool

	root := &cobra.Command{
		Use:   "goalkeeper",
		Short: "Time-bounded goal tracking CLI",
		Long: `goalkeeper tracks time-bounded goals.

A goal is either time-based (dedicate a target amount of time before it ends)
or task-based (check off every item before it ends). Goals nest: a subgoal
always lies within its parent's time bounds. Recurrences spawn a fresh goal
every interval.

When a goal succeeds or fails its shell actions run. 'goalkeeper resolve'
settles every goal whose end time has passed.

Use --help-plan to see the plan file format accepted by 'goalkeeper apply'.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if planHelp {
				return showPlanHelp(cmd.OutOrStdout())
			}
			return cmd.Help()
		},
	}

	root.Flags().BoolVar(&planHelp, "help-plan", false, "Show the plan file format")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupGoal, Title: "Goal Management:"},
		&cobra.Group{ID: groupRecurrence, Title: "Recurrences:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	// Goal commands
	goalCmd := newGoalCommand(c)
	goalCmd.GroupID = groupGoal

	resolveCmd := newResolveCommand(c)
	resolveCmd.GroupID = groupGoal

	applyCmd := newApplyCommand(c)
	applyCmd.GroupID = groupGoal

	// Recurrence commands
	recCmd := newRecCommand(c)
	recCmd.GroupID = groupRecurrence

	root.AddCommand(
		initCmd,
		configCmd,
		statusCmd,
		logsCmd,
		goalCmd,
		resolveCmd,
		applyCmd,
		recCmd,
	)

	return root
}
