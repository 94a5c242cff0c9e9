package reporter

import (
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

// Reporter is the CI-facing surface: log levels the runner renders, plus
// putting a directory on the search path of later steps.
type Reporter interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	AddPath(dir string) error
}

// New picks the reporter for the current environment.
func New() Reporter {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return NewActionsReporter(os.Stdout, os.Getenv("GITHUB_PATH"))
	}

	return &KlogReporter{}
}

// KlogReporter logs through klog and only changes PATH for this process.
type KlogReporter struct{}

func (r *KlogReporter) Debug(msg string) {
	klog.V(4).Info(msg)
}

func (r *KlogReporter) Info(msg string) {
	klog.Info(msg)
}

func (r *KlogReporter) Warning(msg string) {
	klog.Warning(msg)
}

func (r *KlogReporter) Error(msg string) {
	klog.Error(msg)
}

func (r *KlogReporter) AddPath(dir string) error {
	prependPath(dir)
	klog.Infof("Added %s to PATH", dir)

	return nil
}

// prependPath puts dir in front of PATH so executables installed there win
// over older copies for the rest of this process.
func prependPath(dir string) {
	current := os.Getenv("PATH")
	for _, entry := range filepath.SplitList(current) {
		if entry == dir {
			return
		}
	}

	if current == "" {
		os.Setenv("PATH", dir)
		return
	}

	os.Setenv("PATH", strings.Join([]string{dir, current}, string(os.PathListSeparator)))
}
