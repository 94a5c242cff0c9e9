package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseDelaySeconds converts a delay such as "5s", "1m30s" or a bare "5"
// (seconds) into whole seconds, truncating any fraction.
func ParseDelaySeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, errors.Errorf("delay %q is negative", s)
		}

		return n, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid delay %q", s)
	}

	if d < 0 {
		return 0, errors.Errorf("delay %q is negative", s)
	}

	return int(d / time.Second), nil
}
