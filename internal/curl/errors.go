package curl

import (
	"errors"
	"fmt"
)

var (
	// ErrTransfer is matched by every *TransferError.
	ErrTransfer = errors.New("transfer failed")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("failed to decode curl output")

	// ErrVersionNotFound is returned when curl --version prints no recognizable version.
	ErrVersionNotFound = errors.New("curl version not found in banner")
)

// TransferError reports a failed curl run. ExitCode is non-zero when curl ran
// and gave up (retries exhausted, or --fail tripped); it is zero when curl
// could not be started at all, in which case Err holds the cause.
type TransferError struct {
	URL      string
	ExitCode int
	Detail   string
	Err      error
}

func (e *TransferError) Error() string {
	if e.ExitCode == 0 && e.Err != nil {
		return fmt.Sprintf("transfer of %s failed: %v", e.URL, e.Err)
	}

	msg := fmt.Sprintf("transfer of %s failed with exit code %d", e.URL, e.ExitCode)

	switch {
	case e.Detail != "":
		msg += ": " + e.Detail
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func (e *TransferError) Is(target error) bool {
	return target == ErrTransfer
}

type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return ErrDecode.Error() + ": " + e.Reason
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
