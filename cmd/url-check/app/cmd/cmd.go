package cmd

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/neutree-ai/url-check/cmd/url-check/app"
	"github.com/neutree-ai/url-check/cmd/url-check/app/options"
	"github.com/neutree-ai/url-check/internal/reporter"
	"github.com/neutree-ai/url-check/internal/util"
)

// BuilderFunc returns the builder a run is assembled with.
type BuilderFunc func() *app.Builder

func NewURLCheckCommand(r reporter.Reporter, newBuilder BuilderFunc) *cobra.Command {
	opts := options.NewOptions()
	fs := pflag.NewFlagSet("url-check", pflag.ContinueOnError)
	opts.AddFlags(fs)

	urlCheckCmd := &cobra.Command{
		Use:   "url-check [URL...]",
		Short: "Check that URLs are reachable",
		Long: `url-check probes one or more URLs with curl and fails when any of them is
unreachable or rejected by the custom validation.

URLs are checked one after another; the first failure stops the run. Retries are
performed by curl itself (--retry, --retry-delay, --retry-connrefused and, with
--retry-all, --retry-all-errors). When --retry-all is requested and the installed
curl is older than 7.71.0, curl is upgraded before the first URL is checked.

Every flag can also be given as INPUT_<FLAG> (for example INPUT_MAX-ATTEMPTS) or
in a yaml file passed with --config.

Examples:
  # Check two URLs, letting curl retry up to 5 times
  url-check --url "https://example.com|https://example.com/health" --max-attempts 5 --retry-delay 10s

  # Require a JSON field in the response
  url-check --url https://example.com/api/status \
    --custom-validation 'and (eq $response.statusCode 200) (eq (jsonPath $response.body "status") "ok")'`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(fs); err != nil {
				return err
			}

			if len(args) > 0 {
				opts.Request.URL = joinURLs(opts.Request.URL, args)
			}

			if err := opts.Validate(); err != nil {
				return errors.Wrap(err, "invalid options")
			}

			c, err := opts.Config()
			if err != nil {
				return err
			}

			a, err := newBuilder().
				WithConfig(c).
				WithReporter(r).
				Build()
			if err != nil {
				return errors.Wrap(err, "failed to build url check")
			}

			return a.Run(cmd.Context())
		},
	}

	urlCheckCmd.Flags().AddFlagSet(fs)
	urlCheckCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	urlCheckCmd.AddCommand(newVersionCmd())

	return urlCheckCmd
}

// Execute runs the command line and returns the process exit code. Every
// failure, including a panic, is reported exactly once.
func Execute(ctx context.Context) (code int) {
	r := reporter.New()

	defer func() {
		if p := recover(); p != nil {
			r.Debug(fmt.Sprintf("panic: %v\n%s", p, debug.Stack()))
			r.Error(fmt.Sprintf("unexpected error: %v", p))

			code = 1
		}
	}()

	if err := NewURLCheckCommand(r, app.NewBuilder).ExecuteContext(ctx); err != nil {
		fail(r, err)
		return 1
	}

	return 0
}

func fail(r reporter.Reporter, err error) {
	// %+v carries the pkg/errors stack where one was recorded.
	r.Debug(fmt.Sprintf("%+v", err))
	r.Error(err.Error())
}

func joinURLs(flagValue string, args []string) string {
	urls := util.SplitURLList(flagValue)
	urls = append(urls, args...)

	return strings.Join(urls, util.URLListSeparator)
}
