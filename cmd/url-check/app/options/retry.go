package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/neutree-ai/url-check/internal/util"
)

type RetryOptions struct {
	MaxAttempts int
	RetryDelay  string
	RetryAll    bool
}

func NewRetryOptions() *RetryOptions {
	return &RetryOptions{
		MaxAttempts: 1,
		RetryDelay:  "3s",
	}
}

func (o *RetryOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxAttempts, "max-attempts", o.MaxAttempts, "total attempts per url, curl retries when greater than 1")
	fs.StringVar(&o.RetryDelay, "retry-delay", o.RetryDelay, "delay between attempts, e.g. 5s")
	fs.BoolVar(&o.RetryAll, "retry-all", o.RetryAll, "retry on all errors, not only refused connections (needs curl >= 7.71.0)")
}

func (o *RetryOptions) Validate() error {
	if o.MaxAttempts < 1 {
		return errors.Errorf("max-attempts must be at least 1, got %d", o.MaxAttempts)
	}

	if _, err := util.ParseDelaySeconds(o.RetryDelay); err != nil {
		return errors.Wrap(err, "invalid retry-delay")
	}

	return nil
}
