// Package executor runs goal actions as shell commands.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Client implements domain.ActionExecutor by running each action through a shell.
// Fields are ordered to minimize memory padding.
type Client struct {
	shell   string
	dir     string
	timeout time.Duration
}

// Ensure Client implements domain.ActionExecutor interface.
var _ domain.ActionExecutor = (*Client)(nil)

// NewClient creates an executor that runs actions as "<shell> -c <action>" in dir.
// A zero timeout means actions run until ctx is done.
func NewClient(shell, dir string, timeout time.Duration) *Client {
	return &Client{
		shell:   shell,
		dir:     dir,
		timeout: timeout,
	}
}

// Run executes the action and returns its combined output.
func (c *Client) Run(ctx context.Context, action string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := domain.NewShellCommand(c.shell, c.dir, action)
	// #nosec G204 - actions are user-authored goal data, run on the user's behalf
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	out, err := execCmd.CombinedOutput()
	output := strings.TrimRight(string(out), "\n")
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return output, fmt.Errorf("action %q timed out after %s", action, c.timeout)
		}
		return output, fmt.Errorf("action %q: %w", action, err)
	}
	return output, nil
}
