package config

import (
	"github.com/neutree-ai/url-check/internal/checker"
	"github.com/neutree-ai/url-check/internal/installer"
)

// CurlConfig holds where curl comes from
type CurlConfig struct {
	Binary        string
	StaticCurlURL string
}

// CheckConfig holds the main url-check configuration
type CheckConfig struct {
	URLs     []string
	Checker  checker.Options
	Curl     *CurlConfig
	Platform installer.Platform
}
