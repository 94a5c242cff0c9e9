package curl

import (
	"strconv"
	"strings"
)

// curl -v writes every received header to stderr as "< Name: value". This
// is curl's diagnostic format, not a stable API; it is pinned here so a
// format change breaks in one place.
const (
	receivedHeaderPrefix = "< "
	headerSeparator      = ": "
)

// Decode splits the raw output of one transfer into status code, body and
// headers.
func Decode(raw *RawResult) (*Response, error) {
	lines := strings.Split(raw.Stdout, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])

	statusCode, err := strconv.Atoi(last)
	if err != nil {
		return nil, &DecodeError{Reason: "status code trailer " + strconv.Quote(last) + " is not a number"}
	}

	return &Response{
		StatusCode: statusCode,
		Body:       strings.Join(lines[:len(lines)-1], "\n"),
		Headers:    decodeHeaders(raw.Stderr),
	}, nil
}

func decodeHeaders(stderr string) map[string]string {
	headers := map[string]string{}

	for _, line := range strings.Split(stderr, "\n") {
		rest, ok := strings.CutPrefix(line, receivedHeaderPrefix)
		if !ok {
			continue
		}

		name, value, ok := strings.Cut(rest, headerSeparator)
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			continue
		}

		headers[lower(name)] = strings.TrimRight(value, "\r")
	}

	return headers
}
