package app

import (
	"fmt"

	"github.com/neutree-ai/url-check/cmd/url-check/app/config"
	"github.com/neutree-ai/url-check/internal/checker"
	"github.com/neutree-ai/url-check/internal/curl"
	"github.com/neutree-ai/url-check/internal/installer"
	"github.com/neutree-ai/url-check/internal/reporter"
	"github.com/neutree-ai/url-check/pkg/command"
)

// Builder wires the checker from its collaborators
type Builder struct {
	config     *config.CheckConfig
	executor   command.Executor
	reporter   reporter.Reporter
	downloader installer.Downloader
}

// NewBuilder creates a builder with the OS executor and the environment's reporter
func NewBuilder() *Builder {
	return &Builder{
		executor: &command.OSExecutor{},
		reporter: reporter.New(),
	}
}

// WithConfig sets the configuration for the builder
func (b *Builder) WithConfig(c *config.CheckConfig) *Builder {
	b.config = c
	return b
}

// WithExecutor replaces the executor used for curl and package managers
func (b *Builder) WithExecutor(e command.Executor) *Builder {
	b.executor = e
	return b
}

// WithReporter replaces the CI reporter
func (b *Builder) WithReporter(r reporter.Reporter) *Builder {
	b.reporter = r
	return b
}

// WithDownloader replaces the downloader used by the linux installer
func (b *Builder) WithDownloader(d installer.Downloader) *Builder {
	b.downloader = d
	return b
}

// Build creates and initializes all components
func (b *Builder) Build() (*App, error) {
	if b.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	if b.config.Curl == nil {
		b.config.Curl = &config.CurlConfig{}
	}

	transport := curl.NewClient(b.executor, b.config.Curl.Binary)

	remediator := installer.New(installer.Options{
		Executor:      b.executor,
		Downloader:    b.downloader,
		Path:          b.reporter,
		StaticCurlURL: b.config.Curl.StaticCurlURL,
	})

	c := checker.New(transport, remediator, b.reporter, b.config.Platform, b.config.Checker)

	return NewApp(b.config, c, b.reporter), nil
}
