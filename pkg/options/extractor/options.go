// Package extractor provides text extraction configuration options.
package extractor

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options defines configuration options for text extraction.
type Options struct {
	// OCRLanguages is the tesseract language list for image extraction.
	OCRLanguages []string `json:"ocr-languages" mapstructure:"ocr-languages"`

	// TempDir is where uploads are spooled before extraction.
	// Empty means the OS default temp directory.
	TempDir string `json:"temp-dir" mapstructure:"temp-dir"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		OCRLanguages: []string{"eng"},
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if len(o.OCRLanguages) == 0 {
		return fmt.Errorf("extractor.ocr-languages cannot be empty")
	}
	return nil
}

// AddFlags adds flags for extractor options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.OCRLanguages, "extractor.ocr-languages", o.OCRLanguages, "Tesseract OCR languages")
	fs.StringVar(&o.TempDir, "extractor.temp-dir", o.TempDir, "Directory for spooling uploads before extraction")
}
