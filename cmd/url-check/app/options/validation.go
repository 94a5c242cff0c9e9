package options

import (
	"github.com/spf13/pflag"

	"github.com/neutree-ai/url-check/internal/validation"
)

type ValidationOptions struct {
	CustomValidation string
}

func NewValidationOptions() *ValidationOptions {
	return &ValidationOptions{}
}

func (o *ValidationOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.CustomValidation, "custom-validation", o.CustomValidation,
		"template expression evaluated against $response (statusCode, body, headers), must yield true or false")
}

func (o *ValidationOptions) Validate() error {
	_, err := validation.Compile(o.CustomValidation)
	return err
}
