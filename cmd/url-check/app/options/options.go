package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/cmd/url-check/app/config"
	"github.com/neutree-ai/url-check/internal/curl"
	"github.com/neutree-ai/url-check/internal/installer"
	"github.com/neutree-ai/url-check/internal/util"
	"github.com/neutree-ai/url-check/internal/validation"
)

// ConfigFileEnv names the config file when --config is not given.
const ConfigFileEnv = "URL_CHECK_CONFIG"

// inputEnvPrefix matches how CI runners expose step inputs: "max-attempts"
// arrives as INPUT_MAX-ATTEMPTS.
const inputEnvPrefix = "INPUT_"

// envOverrides are flags whose env name does not follow the input convention.
var envOverrides = map[string]string{
	"curl-binary":     "URL_CHECK_CURL_BINARY",
	"static-curl-url": "URL_CHECK_STATIC_CURL_URL",
}

type URLCheckOptions struct {
	ConfigFile string

	Request    *RequestOptions
	Retry      *RetryOptions
	Validation *ValidationOptions
	Curl       *CurlOptions
}

func NewOptions() *URLCheckOptions {
	return &URLCheckOptions{
		Request:    NewRequestOptions(),
		Retry:      NewRetryOptions(),
		Validation: NewValidationOptions(),
		Curl:       NewCurlOptions(),
	}
}

func (o *URLCheckOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "yaml file with the same keys as the flags (env: "+ConfigFileEnv+")")

	o.Request.AddFlags(fs)
	o.Retry.AddFlags(fs)
	o.Validation.AddFlags(fs)
	o.Curl.AddFlags(fs)
}

// EnvName returns the environment variable consulted for flag name.
func EnvName(name string) string {
	if env, ok := envOverrides[name]; ok {
		return env
	}

	return inputEnvPrefix + strings.ToUpper(name)
}

// Complete fills flags not given on the command line, first from the config
// file and then from the environment, so the precedence is
// flag > env > file > default.
func (o *URLCheckOptions) Complete(fs *pflag.FlagSet) error {
	explicit := map[string]bool{}
	fs.VisitAll(func(f *pflag.Flag) {
		explicit[f.Name] = f.Changed
	})

	if o.ConfigFile == "" {
		o.ConfigFile = os.Getenv(ConfigFileEnv)
	}

	if o.ConfigFile != "" {
		values, err := readConfigFile(o.ConfigFile)
		if err != nil {
			return err
		}

		for name, value := range values {
			if explicit[name] || name == "config" {
				continue
			}

			if fs.Lookup(name) == nil {
				return errors.Errorf("unknown key %q in config file %s", name, o.ConfigFile)
			}

			if err := fs.Set(name, value); err != nil {
				return errors.Wrapf(err, "invalid value for %q in config file %s", name, o.ConfigFile)
			}
		}
	}

	var setErr error

	fs.VisitAll(func(f *pflag.Flag) {
		if setErr != nil || explicit[f.Name] || f.Name == "config" {
			return
		}

		value, ok := os.LookupEnv(EnvName(f.Name))
		if !ok || value == "" {
			return
		}

		if err := fs.Set(f.Name, value); err != nil {
			setErr = errors.Wrapf(err, "invalid value for %s", EnvName(f.Name))
		}
	})

	return setErr
}

func (o *URLCheckOptions) Validate() error {
	if err := o.Request.Validate(); err != nil {
		return err
	}

	if err := o.Retry.Validate(); err != nil {
		return err
	}

	if err := o.Validation.Validate(); err != nil {
		return err
	}

	return o.Curl.Validate()
}

func (o *URLCheckOptions) Config() (*config.CheckConfig, error) {
	delay, err := util.ParseDelaySeconds(o.Retry.RetryDelay)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse retry-delay")
	}

	predicate, err := validation.Compile(o.Validation.CustomValidation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile custom-validation")
	}

	c := &config.CheckConfig{
		URLs: util.SplitURLList(o.Request.URL),
		Checker: checkerOptions(o, curl.RetryPolicy{
			MaxAttempts:       o.Retry.MaxAttempts,
			RetryDelaySeconds: delay,
			RetryAllErrors:    o.Retry.RetryAll,
		}, predicate),
		Curl: &config.CurlConfig{
			Binary:        o.Curl.Binary,
			StaticCurlURL: o.Curl.StaticCurlURL,
		},
		Platform: installer.Current(),
	}

	klog.V(4).Infof("Checking %d url(s) with policy %+v", len(c.URLs), c.Checker.Policy)

	return c, nil
}

func readConfigFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	values := make(map[string]string, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}

			values[key] = strings.Join(parts, util.URLListSeparator)
		default:
			values[key] = fmt.Sprint(v)
		}
	}

	return values, nil
}
