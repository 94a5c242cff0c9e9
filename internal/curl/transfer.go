package curl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/pkg/command"
)

const DefaultBinary = "curl"

// Client drives the curl executable. It never loops over attempts itself;
// each Transfer is exactly one invocation.
type Client struct {
	executor command.Executor
	binary   string
}

func NewClient(executor command.Executor, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}

	return &Client{
		executor: executor,
		binary:   binary,
	}
}

// Transfer runs curl once for req and returns its captured output.
func (c *Client) Transfer(ctx context.Context, req Request) (*RawResult, error) {
	args := BuildArgs(req)

	klog.V(4).Infof("Command: %s %s", c.binary, strings.Join(redactArgs(args), " "))

	result, err := c.executor.Capture(ctx, c.binary, args...)
	if err != nil {
		transferErr := &TransferError{
			URL: req.URL,
			Err: err,
		}

		if result != nil {
			transferErr.ExitCode = result.ExitCode
			transferErr.Detail = lastLine(string(result.Stderr))
		}

		return nil, transferErr
	}

	return &RawResult{
		Stdout: string(result.Stdout),
		Stderr: string(result.Stderr),
	}, nil
}

// Fetch transfers req and decodes the result.
func (c *Client) Fetch(ctx context.Context, req Request) (*Response, error) {
	raw, err := c.Transfer(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode response of %s", req.URL)
	}

	return resp, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}

	return ""
}
