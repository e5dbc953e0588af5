package cli

import (
	"fmt"
	"os"
	"os/exec"
)

// planSkeleton is written to the temp file opened by 'apply --edit'.
const planSkeleton = `# goalkeeper plan. Run 'goalkeeper --help-plan' for every field.
# Save and quit to apply; leave the file unchanged to cancel.
goals:
  - name: ""
    start: ""
    end: ""
    target: ""
recurrences: []
`

// getEditor returns the user's preferred editor from environment variables.
// It checks EDITOR, then VISUAL, and defaults to vi if neither is set.
func getEditor() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// openEditor opens the specified file in the user's editor.
// It returns an error if the editor cannot be started or exits with a non-zero status.
var openEditor = func(filePath string) error {
	editor := getEditor()

	// #nosec G204 - editor comes from the user's own environment
	cmd := exec.Command(editor, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editor, err)
	}

	return nil
}

// editPlan lets the user write a plan in their editor.
// Returns nil content if the skeleton was saved unchanged.
func editPlan() ([]byte, error) {
	f, err := os.CreateTemp("", "goalkeeper-plan-*.yaml")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(planSkeleton); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := openEditor(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	if string(content) == planSkeleton {
		return nil, nil
	}
	return content, nil
}
