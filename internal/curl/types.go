package curl

// RetryPolicy is handed to curl as-is; curl owns the retry loop.
type RetryPolicy struct {
	MaxAttempts       int
	RetryDelaySeconds int
	RetryAllErrors    bool
}

// Retries reports whether any retry option is emitted for this policy.
func (p RetryPolicy) Retries() bool {
	return p.MaxAttempts > 1
}

// UsesRetryAllErrors reports whether --retry-all-errors ends up on the
// command line, which is what requires curl >= RetryAllErrorsMinVersion.
func (p RetryPolicy) UsesRetryAllErrors() bool {
	return p.Retries() && p.RetryAllErrors
}

// Request describes a single probe of one URL.
type Request struct {
	URL             string
	Method          string
	Policy          RetryPolicy
	FollowRedirects bool
	Cookie          *string
	BasicAuth       *string
}

// RawResult is the captured output of one curl invocation.
type RawResult struct {
	Stdout string
	Stderr string
}

// Response is the decoded form of a RawResult. Header names are lower-cased.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}
