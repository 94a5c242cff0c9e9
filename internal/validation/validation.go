// Package validation evaluates user-supplied predicates against a decoded
// response.
//
// Predicates are Go text/template expressions, not host code. They see the
// response and a fixed set of pure functions (sprig's hermetic set plus JSON
// lookups); they cannot read the environment, the filesystem or the clock.
// A predicate without "{{" is treated as a single action, so
//
//	eq $response.statusCode 200
//
// and
//
//	{{ and (eq .statusCode 200) (contains "ok" .body) }}
//
// are both valid. The rendered output must be "true" or "false".
package validation

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/neutree-ai/url-check/internal/curl"
)

// ErrNotBoolean is returned when a predicate renders to something other than a boolean.
var ErrNotBoolean = errors.New("validation did not evaluate to a boolean")

// responseVar binds the response to $response in addition to dot.
const responseVar = `{{- $response := . -}}`

type Predicate struct {
	source string
	tmpl   *template.Template
}

// Compile parses src. An empty src yields a nil Predicate, which accepts
// every response.
func Compile(src string) (*Predicate, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	body := strings.TrimSpace(src)
	if !strings.Contains(body, "{{") {
		body = "{{ " + body + " }}"
	}

	tmpl, err := template.New("validation").
		Option("missingkey=error").
		Funcs(sprig.HermeticTxtFuncMap()).
		Funcs(template.FuncMap{
			"jsonPath":  jsonPath,
			"jsonValid": gjson.Valid,
		}).
		Parse(responseVar + body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse validation")
	}

	return &Predicate{source: src, tmpl: tmpl}, nil
}

// Evaluate runs the predicate against resp. A nil Predicate returns true.
func (p *Predicate) Evaluate(resp *curl.Response) (bool, error) {
	if p == nil {
		return true, nil
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data(resp)); err != nil {
		return false, errors.Wrap(err, "failed to execute validation")
	}

	out := strings.TrimSpace(buf.String())

	ok, err := strconv.ParseBool(out)
	if err != nil {
		return false, errors.Wrapf(ErrNotBoolean, "got %q", out)
	}

	return ok, nil
}

func (p *Predicate) String() string {
	if p == nil {
		return ""
	}

	return p.source
}

func data(resp *curl.Response) map[string]any {
	headers := resp.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return map[string]any{
		"statusCode": resp.StatusCode,
		"body":       resp.Body,
		"headers":    headers,
	}
}

// jsonPath returns the value at path (gjson syntax) in body, or nil if absent.
func jsonPath(body, path string) any {
	result := gjson.Get(body, path)
	if !result.Exists() {
		return nil
	}

	return result.Value()
}
