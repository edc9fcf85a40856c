// Package qa provides question answering backend configuration options.
package qa

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultBaseURL is the Hugging Face inference API endpoint.
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultModel is the extractive QA model used for answering.
	DefaultModel = "distilbert-base-uncased-distilled-squad"

	// DefaultContextChars caps the context passed to the QA model.
	DefaultContextChars = 500
)

// Options defines configuration options for the QA backend.
type Options struct {
	// BaseURL is the inference API base address.
	BaseURL string `json:"base-url" mapstructure:"base-url"`

	// Token is the API token (optional for public models).
	Token string `json:"token" mapstructure:"token"`

	// Model is the QA model name.
	Model string `json:"model" mapstructure:"model"`

	// Timeout bounds each inference request.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of retries for transient failures.
	MaxRetries int `json:"max-retries" mapstructure:"max-retries"`

	// ContextChars caps the length of the context assembled from
	// search hits before it is sent to the model.
	ContextChars int `json:"context-chars" mapstructure:"context-chars"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		BaseURL:      DefaultBaseURL,
		Model:        DefaultModel,
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		ContextChars: DefaultContextChars,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.BaseURL == "" {
		return fmt.Errorf("qa.base-url cannot be empty")
	}
	if o.Model == "" {
		return fmt.Errorf("qa.model cannot be empty")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("qa.timeout must be positive")
	}
	if o.ContextChars <= 0 {
		return fmt.Errorf("qa.context-chars must be positive")
	}
	return nil
}

// AddFlags adds flags for QA options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BaseURL, "qa.base-url", o.BaseURL, "QA inference API base URL")
	fs.StringVar(&o.Token, "qa.token", o.Token, "QA inference API token")
	fs.StringVar(&o.Model, "qa.model", o.Model, "QA model name")
	fs.DurationVar(&o.Timeout, "qa.timeout", o.Timeout, "QA request timeout")
	fs.IntVar(&o.MaxRetries, "qa.max-retries", o.MaxRetries, "QA maximum number of retries")
	fs.IntVar(&o.ContextChars, "qa.context-chars", o.ContextChars, "Maximum context characters sent to the QA model")
}
