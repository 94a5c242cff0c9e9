package options

import (
	"github.com/spf13/pflag"

	"github.com/neutree-ai/url-check/internal/curl"
)

type CurlOptions struct {
	Binary        string
	StaticCurlURL string
}

func NewCurlOptions() *CurlOptions {
	return &CurlOptions{
		Binary: curl.DefaultBinary,
	}
}

func (o *CurlOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Binary, "curl-binary", o.Binary, "curl executable name or path")
	fs.StringVar(&o.StaticCurlURL, "static-curl-url", o.StaticCurlURL, "static curl download used to upgrade curl on linux, defaults to the build for the host architecture")
}

func (o *CurlOptions) Validate() error {
	return nil
}
