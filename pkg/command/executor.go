package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Result holds the separated output streams of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

type Executor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error)
	// Capture runs the command and keeps stdout and stderr apart. On a non-zero
	// exit the returned Result is still populated alongside the error.
	Capture(ctx context.Context, name string, args ...string) (*Result, error)
}

type OSExecutor struct{}

func (e *OSExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

func (e *OSExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return e.Execute(ctx, name, args...)
}

func (e *OSExecutor) Capture(ctx context.Context, name string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	}

	return result, err
}
