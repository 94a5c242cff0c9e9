package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ActionsReporter emits GitHub Actions workflow commands.
type ActionsReporter struct {
	out      io.Writer
	pathFile string
}

func NewActionsReporter(out io.Writer, pathFile string) *ActionsReporter {
	return &ActionsReporter{
		out:      out,
		pathFile: pathFile,
	}
}

func (r *ActionsReporter) Debug(msg string) {
	r.command("debug", msg)
}

func (r *ActionsReporter) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *ActionsReporter) Warning(msg string) {
	r.command("warning", msg)
}

func (r *ActionsReporter) Error(msg string) {
	r.command("error", msg)
}

// AddPath makes dir visible to this process and, through $GITHUB_PATH, to
// the following steps of the job.
func (r *ActionsReporter) AddPath(dir string) error {
	prependPath(dir)

	if r.pathFile == "" {
		klog.Warningf("GITHUB_PATH is not set, %s is only added for the current step", dir)
		return nil
	}

	f, err := os.OpenFile(r.pathFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", r.pathFile)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, dir); err != nil {
		return errors.Wrapf(err, "failed to append %s to %s", dir, r.pathFile)
	}

	return nil
}

func (r *ActionsReporter) command(name, msg string) {
	fmt.Fprintf(r.out, "::%s::%s\n", name, escapeData(msg))
}

func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
