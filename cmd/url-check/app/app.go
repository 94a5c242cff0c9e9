package app

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/cmd/url-check/app/config"
	"github.com/neutree-ai/url-check/internal/checker"
	"github.com/neutree-ai/url-check/internal/reporter"
	"github.com/neutree-ai/url-check/internal/version"
)

// App represents one url-check run
type App struct {
	config   *config.CheckConfig
	checker  *checker.Checker
	reporter reporter.Reporter
}

// NewApp creates a new application instance
func NewApp(c *config.CheckConfig, ch *checker.Checker, r reporter.Reporter) *App {
	return &App{
		config:   c,
		checker:  ch,
		reporter: r,
	}
}

// Reporter returns the reporter failures should be surfaced through
func (a *App) Reporter() reporter.Reporter {
	return a.reporter
}

// Run checks every configured url
func (a *App) Run(ctx context.Context) error {
	klog.V(2).Infof("Starting %s, checking %d url(s)", version.Get().Short(), len(a.config.URLs))

	return a.checker.Run(ctx, a.config.URLs)
}
