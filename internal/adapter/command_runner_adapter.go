package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"
)

// CommandRunnerAdapter abstracts running the external toolchain commands used
// by the release workflow (test runner, package build, version control, registry).
type CommandRunnerAdapter interface {
	// Run executes a shell-style command line in workDir.
	// Returns the combined stdout/stderr output and any error.
	Run(ctx context.Context, workDir, commandLine string) (output string, err error)
}

// LocalCommandRunnerAdapter provides a concrete implementation using os/exec.
type LocalCommandRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalCommandRunnerAdapter constructs a LocalCommandRunnerAdapter with the given timeout.
// A zero timeout disables the deadline.
func NewLocalCommandRunnerAdapter(timeout time.Duration) *LocalCommandRunnerAdapter {
	return &LocalCommandRunnerAdapter{
		timeout: timeout,
	}
}

// Run splits commandLine with shell quoting rules and executes it without a shell.
func (a *LocalCommandRunnerAdapter) Run(ctx context.Context, workDir, commandLine string) (string, error) {
	args, err := shellquote.Split(commandLine)
	if err != nil {
		return "", fmt.Errorf("parse command %q: %w", commandLine, err)
	}

	if len(args) == 0 {
		return "", fmt.Errorf("empty command")
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - commands come from the operator's typelint.yaml
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	output := stdout.String() + stderr.String()

	return strings.TrimRight(output, "\n"), err
}
