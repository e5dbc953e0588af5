package domain

// ExecCommand represents an external command to be executed.
// Actions are turned into an ExecCommand before they reach the executor,
// so the executor never interprets action text itself.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewShellCommand wraps an action string as "<shell> -c <action>".
func NewShellCommand(shell, dir, action string) *ExecCommand {
	if shell == "" {
		shell = DefaultActionsShell
	}
	return &ExecCommand{
		Program: shell,
		Dir:     dir,
		Args:    []string{"-c", action},
	}
}
