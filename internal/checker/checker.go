package checker

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/internal/curl"
	"github.com/neutree-ai/url-check/internal/installer"
	"github.com/neutree-ai/url-check/internal/reporter"
	"github.com/neutree-ai/url-check/internal/validation"
)

const outdatedCurlWarning = "The installed version of curl does not support retry-all-errors. " +
	"It will be upgraded automatically. If you don't want this to happen, you need to either " +
	"upgrade it manually, or turn off retry-all."

// Transport is the part of *curl.Client the checker needs.
type Transport interface {
	Fetch(ctx context.Context, req curl.Request) (*curl.Response, error)
	VersionAtLeast(ctx context.Context, minimum string) (bool, error)
}

// Remediator upgrades curl on a platform.
type Remediator interface {
	Install(ctx context.Context, platform installer.Platform) error
}

// Options configures every URL of a run identically.
type Options struct {
	Method          string
	Policy          curl.RetryPolicy
	FollowRedirects bool
	Cookie          *string
	BasicAuth       *string
	Validation      *validation.Predicate
}

type Checker struct {
	transport  Transport
	remediator Remediator
	reporter   reporter.Reporter
	platform   installer.Platform
	options    Options
}

func New(transport Transport, remediator Remediator, r reporter.Reporter, platform installer.Platform, opts Options) *Checker {
	return &Checker{
		transport:  transport,
		remediator: remediator,
		reporter:   r,
		platform:   platform,
		options:    opts,
	}
}

// Run checks urls in order and stops at the first failure. A nil error means
// every URL was reachable and passed validation.
func (c *Checker) Run(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return ErrNoURLs
	}

	if err := c.ensureCapabilities(ctx); err != nil {
		return err
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "check of %s aborted", url)
		}

		if err := c.check(ctx, url); err != nil {
			return err
		}
	}

	c.reporter.Info("Success")

	return nil
}

// ensureCapabilities upgrades curl once, before any URL, when the policy
// needs a flag the installed curl lacks.
func (c *Checker) ensureCapabilities(ctx context.Context) error {
	if !c.options.Policy.UsesRetryAllErrors() {
		return nil
	}

	upToDate, err := c.transport.VersionAtLeast(ctx, curl.RetryAllErrorsMinVersion)
	if err != nil {
		return errors.Wrap(err, "failed to check curl version")
	}

	if upToDate {
		return nil
	}

	c.reporter.Warning(outdatedCurlWarning)

	return c.remediator.Install(ctx, c.platform)
}

func (c *Checker) check(ctx context.Context, url string) error {
	c.reporter.Info(fmt.Sprintf("Checking %s", url))

	req := curl.Request{
		URL:             url,
		Method:          c.options.Method,
		Policy:          c.options.Policy,
		FollowRedirects: c.options.FollowRedirects,
		Cookie:          c.options.Cookie,
		BasicAuth:       c.options.BasicAuth,
	}

	resp, err := c.transport.Fetch(ctx, req)
	if err != nil {
		return err
	}

	klog.V(4).Infof("%s responded with status %d, %d headers, %d body bytes", url, resp.StatusCode, len(resp.Headers), len(resp.Body))

	if c.options.Validation != nil {
		klog.V(4).Infof("Validating %s with %q", url, c.options.Validation.String())
	}

	valid, err := c.options.Validation.Evaluate(resp)
	if err != nil {
		c.reporter.Error(fmt.Sprintf("Validation error: %s", err.Error()))
	}

	if !valid {
		return &ValidationError{URL: url, Err: err}
	}

	return nil
}
