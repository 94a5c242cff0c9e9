package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/pkg/command"
)

// Platform is a host OS identifier as reported by runtime.GOOS.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)

// Current returns the platform this binary runs on.
func Current() Platform {
	return Platform(runtime.GOOS)
}

const (
	staticCurlReleaseURL = "https://github.com/moparisthebest/static-curl/releases/download/v7.78.0/curl-"

	chocolateyBinDir = `C:\ProgramData\chocolatey\bin`
)

// staticCurlAssets maps runtime.GOARCH to the static-curl release asset suffix.
var staticCurlAssets = map[string]string{
	"amd64": "amd64",
	"arm64": "aarch64",
	"arm":   "armv7",
	"386":   "i386",
}

// StaticCurlURL returns the statically linked curl download for a linux arch.
func StaticCurlURL(arch string) (string, error) {
	asset, ok := staticCurlAssets[arch]
	if !ok {
		supported := make([]string, 0, len(staticCurlAssets))
		for a := range staticCurlAssets {
			supported = append(supported, a)
		}

		sort.Strings(supported)

		return "", &UnsupportedArchError{Arch: arch, Supported: supported}
	}

	return staticCurlReleaseURL + asset, nil
}

// PathAdder makes a directory visible on the executable search path.
type PathAdder interface {
	AddPath(dir string) error
}

type UnsupportedPlatformError struct {
	Platform  Platform
	Supported []Platform
}

func (e *UnsupportedPlatformError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, p := range e.Supported {
		names = append(names, string(p))
	}

	return fmt.Sprintf("unsupported platform: %s, supported platforms: %s", e.Platform, strings.Join(names, ", "))
}

type UnsupportedArchError struct {
	Arch      string
	Supported []string
}

func (e *UnsupportedArchError) Error() string {
	return fmt.Sprintf("no static curl build for architecture: %s, supported architectures: %s", e.Arch, strings.Join(e.Supported, ", "))
}

type Options struct {
	Executor   command.Executor
	Downloader Downloader
	Path       PathAdder

	// HomeDir overrides the user's home directory, which hosts the linux install.
	HomeDir string
	// Arch selects the static curl build; runtime.GOARCH when empty.
	Arch string
	// StaticCurlURL replaces the per-arch static curl download when set.
	StaticCurlURL string
}

// Installer installs or upgrades curl with the host's package manager.
type Installer struct {
	executor      command.Executor
	downloader    Downloader
	path          PathAdder
	homeDir       string
	arch          string
	staticCurlURL string

	handlers map[Platform]func(ctx context.Context) error
}

func New(opts Options) *Installer {
	i := &Installer{
		executor:      opts.Executor,
		downloader:    opts.Downloader,
		path:          opts.Path,
		homeDir:       opts.HomeDir,
		arch:          opts.Arch,
		staticCurlURL: opts.StaticCurlURL,
	}

	if i.downloader == nil {
		i.downloader = NewHTTPDownloader()
	}

	if i.arch == "" {
		i.arch = runtime.GOARCH
	}

	i.handlers = map[Platform]func(ctx context.Context) error{
		PlatformLinux:   i.installLinux,
		PlatformDarwin:  i.installDarwin,
		PlatformWindows: i.installWindows,
	}

	return i
}

// Supported lists the platforms with an install routine, sorted.
func (i *Installer) Supported() []Platform {
	platforms := make([]Platform, 0, len(i.handlers))
	for p := range i.handlers {
		platforms = append(platforms, p)
	}

	sort.Slice(platforms, func(a, b int) bool { return platforms[a] < platforms[b] })

	return platforms
}

// Install upgrades curl on platform. Unknown platforms fail without running anything.
func (i *Installer) Install(ctx context.Context, platform Platform) error {
	handler, ok := i.handlers[platform]
	if !ok {
		return &UnsupportedPlatformError{
			Platform:  platform,
			Supported: i.Supported(),
		}
	}

	klog.Infof("Installing curl for platform %s", platform)

	if err := handler(ctx); err != nil {
		return errors.Wrapf(err, "failed to install curl on %s", platform)
	}

	return nil
}

func (i *Installer) installLinux(ctx context.Context) error {
	url := i.staticCurlURL
	if url == "" {
		var err error

		url, err = StaticCurlURL(i.arch)
		if err != nil {
			return err
		}
	}

	home := i.homeDir
	if home == "" {
		var err error

		home, err = os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to resolve home directory")
		}
	}

	binDir := filepath.Join(home, ".bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", binDir)
	}

	curlPath := filepath.Join(binDir, "curl")
	if err := i.downloader.Download(ctx, url, curlPath); err != nil {
		return err
	}

	if err := os.Chmod(curlPath, 0755); err != nil { //nolint:gosec // must be executable
		return errors.Wrapf(err, "failed to make %s executable", curlPath)
	}

	return i.path.AddPath(binDir)
}

func (i *Installer) installWindows(ctx context.Context) error {
	output, err := i.executor.Execute(ctx, "choco", "install", "curl", "-y")
	if err != nil {
		return errors.Wrapf(err, "error when executing choco install, failed msg %s", string(output))
	}

	// A fresh chocolatey install is not on PATH yet.
	return i.path.AddPath(chocolateyBinDir)
}

func (i *Installer) installDarwin(ctx context.Context) error {
	output, err := i.executor.Execute(ctx, "brew", "install", "curl")
	if err != nil {
		return errors.Wrapf(err, "error when executing brew install, failed msg %s", string(output))
	}

	// brew's curl is keg-only, so the system curl would still win on PATH.
	prefix, err := i.executor.Execute(ctx, "brew", "--prefix", "curl")
	if err != nil {
		return errors.Wrapf(err, "error when executing brew --prefix, failed msg %s", string(prefix))
	}

	return i.path.AddPath(filepath.Join(strings.TrimSpace(string(prefix)), "bin"))
}
