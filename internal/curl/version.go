package curl

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"

	"github.com/neutree-ai/url-check/internal/semver"
)

// RetryAllErrorsMinVersion is the first curl release with --retry-all-errors.
const RetryAllErrorsMinVersion = "7.71.0"

const versionProbeTimeout = 30 * time.Second

var versionPattern = regexp.MustCompile(`curl (\d+\.\d+\.\d+)`)

// ParseVersion extracts the normalized curl version from a --version banner.
func ParseVersion(banner string) (string, error) {
	match := versionPattern.FindStringSubmatch(banner)
	if match == nil {
		return "", ErrVersionNotFound
	}

	return semver.Normalize(match[1])
}

// Version returns the installed curl version.
func (c *Client) Version(ctx context.Context) (string, error) {
	output, err := c.executor.ExecuteWithTimeout(ctx, versionProbeTimeout, c.binary, "--version")
	if err != nil {
		return "", errors.Wrapf(err, "failed to run %s --version, output: %s", c.binary, string(output))
	}

	version, err := ParseVersion(string(output))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s --version output", c.binary)
	}

	return version, nil
}

// VersionAtLeast reports whether the installed curl is at least minimum. An
// older curl is not an error.
func (c *Client) VersionAtLeast(ctx context.Context, minimum string) (bool, error) {
	installed, err := c.Version(ctx)
	if err != nil {
		return false, err
	}

	return semver.AtLeast(installed, minimum)
}
