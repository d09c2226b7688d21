package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute returns the stdout of name. A non-zero exit carries the tool's
// stderr in the error.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err == nil {
		return string(out), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return "", fmt.Errorf("%s exited with %d: %s", name, exitErr.ExitCode(), msg)
		}
	}
	return "", fmt.Errorf("run %s: %w", name, err)
}
