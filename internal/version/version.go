package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/neutree-ai/url-check/internal/version.appVersion=..."
var (
	gitCommit  = "unknown"
	appVersion = "dev"
	buildTime  = "unknown"
)

// Info describes the running url-check build
type Info struct {
	GitCommit  string `json:"git_commit"`
	AppVersion string `json:"app_version"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		GitCommit:  gitCommit,
		AppVersion: appVersion,
		BuildTime:  buildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short is the one-line form logged at startup.
func (i Info) Short() string {
	return fmt.Sprintf("url-check %s (%s, %s)", i.AppVersion, i.GitCommit, i.Platform)
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nGit Commit: %s\nBuild Time: %s\nGo Version: %s\nPlatform: %s",
		i.AppVersion, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
