package checker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"github.com/neutree-ai/url-check/internal/curl"
	"github.com/neutree-ai/url-check/internal/installer"
	"github.com/neutree-ai/url-check/internal/validation"
	"github.com/neutree-ai/url-check/pkg/command"
	"github.com/neutree-ai/url-check/pkg/command/mocks"
)

type event struct {
	kind string
	msg  string
}

type recorder struct {
	events *[]event
}

func newRecorder() *recorder {
	return &recorder{events: &[]event{}}
}

func (r *recorder) add(kind, msg string) { *r.events = append(*r.events, event{kind, msg}) }
func (r *recorder) Debug(msg string)     { r.add("debug", msg) }
func (r *recorder) Info(msg string)      { r.add("info", msg) }
func (r *recorder) Warning(msg string)   { r.add("warning", msg) }
func (r *recorder) Error(msg string)     { r.add("error", msg) }

func (r *recorder) AddPath(dir string) error {
	r.add("path", dir)
	return nil
}

func (r *recorder) kinds(kind string) []string {
	var msgs []string

	for _, e := range *r.events {
		if e.kind == kind {
			msgs = append(msgs, e.msg)
		}
	}

	return msgs
}

type fakeRemediator struct {
	calls     []installer.Platform
	err       error
	installed *bool
}

func (f *fakeRemediator) Install(ctx context.Context, platform installer.Platform) error {
	f.calls = append(f.calls, platform)
	if f.installed != nil {
		*f.installed = true
	}

	return f.err
}

func ok(body string, status string) *command.Result {
	return &command.Result{
		Stdout: []byte(body + "\n" + status),
		Stderr: []byte("< HTTP/1.1 " + status + "\n< Content-Type: text/plain\n"),
	}
}

func retryArgs(url string) []string {
	return []string{
		"--fail", "-sv", "-w", `\n%{http_code}`,
		"--retry", "3", "--retry-delay", "2", "--retry-connrefused",
		url,
	}
}

func TestRun_AllURLsSucceed(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", retryArgs("https://a.example.com")).
		Return(ok("a", "200"), nil).Once()
	// curl retries the 500s itself and reports only the final 200
	mockExecutor.On("Capture", mock.Anything, "curl", retryArgs("https://b.example.com")).
		Return(ok("b", "200"), nil).Once()

	rec := newRecorder()
	remediator := &fakeRemediator{}

	c := New(curl.NewClient(mockExecutor, "curl"), remediator, rec, installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 3, RetryDelaySeconds: 2},
	})

	err := c.Run(context.Background(), []string{"https://a.example.com", "https://b.example.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Checking https://a.example.com", "Checking https://b.example.com", "Success"}, rec.kinds("info"))
	assert.Empty(t, remediator.calls)
	mockExecutor.AssertExpectations(t)
	mockExecutor.AssertNotCalled(t, "ExecuteWithTimeout", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_OutdatedCurlIsUpgradedOnceBeforeProbing(t *testing.T) {
	installed := false

	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "curl", []string{"--version"}).
		Return([]byte("curl 7.70.0 (x86_64-pc-linux-gnu) libcurl/7.70.0\n"), nil).Once()
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).
		Run(func(args mock.Arguments) {
			assert.True(t, installed, "curl must be upgraded before the first probe")
			assert.Contains(t, args.Get(2), "--retry-all-errors")
		}).
		Return(ok("", "200"), nil).Twice()

	rec := newRecorder()
	remediator := &fakeRemediator{installed: &installed}

	c := New(curl.NewClient(mockExecutor, "curl"), remediator, rec, installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 3, RetryDelaySeconds: 1, RetryAllErrors: true},
	})

	require.NoError(t, c.Run(context.Background(), []string{"https://a.example.com", "https://b.example.com"}))

	assert.Equal(t, []installer.Platform{installer.PlatformLinux}, remediator.calls)
	require.Len(t, rec.kinds("warning"), 1)
	assert.Contains(t, rec.kinds("warning")[0], "does not support retry-all-errors")
	mockExecutor.AssertExpectations(t)
}

func TestRun_CurrentCurlIsNotUpgraded(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "curl", []string{"--version"}).
		Return([]byte("curl 8.5.0 (x86_64-pc-linux-gnu)\n"), nil).Once()
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).Return(ok("", "200"), nil).Once()

	rec := newRecorder()
	remediator := &fakeRemediator{}

	c := New(curl.NewClient(mockExecutor, "curl"), remediator, rec, installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 2, RetryAllErrors: true},
	})

	require.NoError(t, c.Run(context.Background(), []string{"https://a.example.com"}))
	assert.Empty(t, remediator.calls)
	assert.Empty(t, rec.kinds("warning"))
}

func TestRun_RetryAllWithoutRetriesSkipsVersionCheck(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).Return(ok("", "200"), nil).Once()

	remediator := &fakeRemediator{}

	c := New(curl.NewClient(mockExecutor, "curl"), remediator, newRecorder(), installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 1, RetryAllErrors: true},
	})

	require.NoError(t, c.Run(context.Background(), []string{"https://a.example.com"}))
	assert.Empty(t, remediator.calls)
	mockExecutor.AssertNotCalled(t, "ExecuteWithTimeout", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_UnsupportedPlatformIsFatal(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "curl", []string{"--version"}).
		Return([]byte("curl 7.29.0 (x86_64-redhat-linux-gnu)\n"), nil).Once()

	remediator := installer.New(installer.Options{Executor: mockExecutor, Path: newRecorder()})

	c := New(curl.NewClient(mockExecutor, "curl"), remediator, newRecorder(), installer.Platform("freebsd"), Options{
		Policy: curl.RetryPolicy{MaxAttempts: 2, RetryAllErrors: true},
	})

	err := c.Run(context.Background(), []string{"https://a.example.com"})

	var unsupported *installer.UnsupportedPlatformError
	require.True(t, errors.As(err, &unsupported))
	assert.Contains(t, err.Error(), "freebsd")
	mockExecutor.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_ValidationFalseStopsRun(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).Return(ok("not found", "404"), nil).Once()

	predicate, err := validation.Compile("eq $response.statusCode 200")
	require.NoError(t, err)

	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, newRecorder(), installer.PlatformLinux, Options{
		Policy:     curl.RetryPolicy{MaxAttempts: 1},
		Validation: predicate,
	})

	err = c.Run(context.Background(), []string{"https://a.example.com", "https://b.example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Custom validation failed for URL: https://a.example.com", err.Error())
	mockExecutor.AssertNumberOfCalls(t, "Capture", 1)
}

func TestRun_ValidationErrorIsReported(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).Return(ok("body", "200"), nil).Once()

	predicate, err := validation.Compile("eq .missing 200")
	require.NoError(t, err)

	rec := newRecorder()
	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, rec, installer.PlatformLinux, Options{
		Policy:     curl.RetryPolicy{MaxAttempts: 1},
		Validation: predicate,
	})

	err = c.Run(context.Background(), []string{"https://a.example.com", "https://b.example.com"})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "https://a.example.com", validationErr.URL)
	assert.Error(t, validationErr.Err)
	require.Len(t, rec.kinds("error"), 1)
	assert.Contains(t, rec.kinds("error")[0], "Validation error")
	mockExecutor.AssertNumberOfCalls(t, "Capture", 1)
}

func TestRun_TransferFailureStopsRun(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).Return(&command.Result{
		Stderr:   []byte("curl: (7) Failed to connect to a.example.com port 443\n"),
		ExitCode: 7,
	}, errors.New("exit status 7")).Once()

	rec := newRecorder()
	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, rec, installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 1},
	})

	err := c.Run(context.Background(), []string{"https://a.example.com", "https://b.example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, curl.ErrTransfer))
	assert.Contains(t, err.Error(), "https://a.example.com")
	assert.NotContains(t, rec.kinds("info"), "Success")
	mockExecutor.AssertNumberOfCalls(t, "Capture", 1)
}

func TestRun_DecodeFailureIsFatal(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", mock.Anything).
		Return(&command.Result{Stdout: []byte("garbage")}, nil).Once()

	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, newRecorder(), installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 1},
	})

	err := c.Run(context.Background(), []string{"https://a.example.com"})
	assert.True(t, errors.Is(err, curl.ErrDecode))
	assert.Contains(t, err.Error(), "https://a.example.com")
}

func TestRun_RequestOptionsArePassedThrough(t *testing.T) {
	mockExecutor := &mocks.MockExecutor{}
	mockExecutor.On("Capture", mock.Anything, "curl", []string{
		"--fail", "-sv", "-w", `\n%{http_code}`,
		"-L",
		"--cookie", "session=1",
		"-u", "ci:token",
		"https://a.example.com",
	}).Return(ok("", "200"), nil).Once()

	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, newRecorder(), installer.PlatformLinux, Options{
		Policy:          curl.RetryPolicy{MaxAttempts: 1, RetryDelaySeconds: 9},
		FollowRedirects: true,
		Cookie:          pointy.String("session=1"),
		BasicAuth:       pointy.String("ci:token"),
	})

	require.NoError(t, c.Run(context.Background(), []string{"https://a.example.com"}))
	mockExecutor.AssertExpectations(t)
}

func TestRun_NoURLs(t *testing.T) {
	c := New(curl.NewClient(&mocks.MockExecutor{}, "curl"), &fakeRemediator{}, newRecorder(), installer.PlatformLinux, Options{})

	assert.ErrorIs(t, c.Run(context.Background(), nil), ErrNoURLs)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockExecutor := &mocks.MockExecutor{}
	c := New(curl.NewClient(mockExecutor, "curl"), &fakeRemediator{}, newRecorder(), installer.PlatformLinux, Options{
		Policy: curl.RetryPolicy{MaxAttempts: 1},
	})

	err := c.Run(ctx, []string{"https://a.example.com"})
	assert.ErrorIs(t, err, context.Canceled)
	mockExecutor.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything)
}
