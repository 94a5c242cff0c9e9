package checker

import "errors"

var (
	// ErrNoURLs is returned when a run is started without any URL
	ErrNoURLs = errors.New("no url to check")

	// ErrValidationFailed is matched by every *ValidationError
	ErrValidationFailed = errors.New("custom validation failed")
)

// ValidationError reports a URL whose response was rejected by the custom
// validation. Err is nil when the predicate returned false and set when it
// could not be evaluated.
type ValidationError struct {
	URL string
	Err error
}

func (e *ValidationError) Error() string {
	msg := "Custom validation failed for URL: " + e.URL
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
