package options

import (
	"go.openly.dev/pointy"

	"github.com/neutree-ai/url-check/internal/checker"
	"github.com/neutree-ai/url-check/internal/curl"
	"github.com/neutree-ai/url-check/internal/validation"
)

func checkerOptions(o *URLCheckOptions, policy curl.RetryPolicy, predicate *validation.Predicate) checker.Options {
	opts := checker.Options{
		Method:          o.Request.Method,
		Policy:          policy,
		FollowRedirects: o.Request.FollowRedirect,
		Validation:      predicate,
	}

	if o.Request.Cookie != "" {
		opts.Cookie = pointy.String(o.Request.Cookie)
	}

	if o.Request.BasicAuth != "" {
		opts.BasicAuth = pointy.String(o.Request.BasicAuth)
	}

	return opts
}
