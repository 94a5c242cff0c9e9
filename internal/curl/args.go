package curl

import (
	"net/http"
	"strconv"
	"strings"
)

// statusTrailer makes curl print a newline and the status code after the
// body. Decode relies on it being the last stdout line.
const statusTrailer = `\n%{http_code}`

// BuildArgs returns the curl argument list for req. The URL is always last.
func BuildArgs(req Request) []string {
	args := []string{"--fail", "-sv", "-w", statusTrailer}

	if req.Method != "" && !strings.EqualFold(req.Method, http.MethodGet) {
		args = append(args, "-X", strings.ToUpper(req.Method))
	}

	if req.Policy.Retries() {
		args = append(args,
			"--retry", strconv.Itoa(req.Policy.MaxAttempts),
			"--retry-delay", strconv.Itoa(req.Policy.RetryDelaySeconds),
			"--retry-connrefused",
		)

		if req.Policy.RetryAllErrors {
			args = append(args, "--retry-all-errors")
		}
	}

	if req.FollowRedirects {
		args = append(args, "-L")
	}

	if present(req.Cookie) {
		args = append(args, "--cookie", *req.Cookie)
	}

	if present(req.BasicAuth) {
		args = append(args, "-u", *req.BasicAuth)
	}

	return append(args, req.URL)
}

// redactArgs masks the basic-auth password so the command line can be logged.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i < len(out)-1; i++ {
		if out[i] != "-u" {
			continue
		}

		user, _, _ := strings.Cut(out[i+1], ":")
		out[i+1] = user + ":***"
	}

	return out
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func lower(s string) string {
	return strings.ToLower(s)
}
