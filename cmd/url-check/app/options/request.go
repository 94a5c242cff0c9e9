package options

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/neutree-ai/url-check/internal/util"
)

// RequestOptions holds what is sent to every URL
type RequestOptions struct {
	URL            string
	Method         string
	FollowRedirect bool
	Cookie         string
	BasicAuth      string
}

// NewRequestOptions creates new request options with default values
func NewRequestOptions() *RequestOptions {
	return &RequestOptions{
		Method: http.MethodGet,
	}
}

// AddFlags adds flags for this options struct to the given FlagSet
func (o *RequestOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.URL, "url", o.URL, "url to check, multiple urls are separated by |")
	fs.StringVar(&o.Method, "method", o.Method, "http method")
	fs.BoolVar(&o.FollowRedirect, "follow-redirect", o.FollowRedirect, "follow http redirects")
	fs.StringVar(&o.Cookie, "cookie", o.Cookie, "cookie header value")
	fs.StringVar(&o.BasicAuth, "basic-auth", o.BasicAuth, "basic auth credential in user:pass form")
}

// Validate validates request options
func (o *RequestOptions) Validate() error {
	urls := util.SplitURLList(o.URL)
	if len(urls) == 0 {
		return errors.New("url is required")
	}

	for _, u := range urls {
		if !util.IsHTTPOrHTTPSURL(u) {
			return errors.Errorf("invalid url %q, only http and https urls are supported", u)
		}
	}

	if !isKnownMethod(o.Method) {
		return errors.Errorf("unsupported http method %q", o.Method)
	}

	if o.BasicAuth != "" && !strings.Contains(o.BasicAuth, ":") {
		return errors.New("basic-auth must be in user:pass form")
	}

	return nil
}

func isKnownMethod(method string) bool {
	switch strings.ToUpper(method) {
	case "", http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}
