// Package search provides full-text index configuration options.
package search

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the document search index.
type Options struct {
	// IndexPath is the on-disk location of the bleve index.
	IndexPath string `json:"index-path" mapstructure:"index-path"`

	// MaxResults caps the number of hits returned per search.
	MaxResults int `json:"max-results" mapstructure:"max-results"`

	// FailFastUpload aborts an upload when indexing the new document
	// fails. Batch reindexing always continues past per-document
	// failures regardless of this setting.
	FailFastUpload bool `json:"fail-fast-upload" mapstructure:"fail-fast-upload"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		IndexPath:      "doc-center.bleve",
		MaxResults:     10,
		FailFastUpload: true,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.IndexPath == "" {
		return fmt.Errorf("search.index-path cannot be empty")
	}
	if o.MaxResults <= 0 {
		return fmt.Errorf("search.max-results must be positive")
	}
	return nil
}

// AddFlags adds flags for search options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.IndexPath, "search.index-path", o.IndexPath, "Path to the full-text index directory")
	fs.IntVar(&o.MaxResults, "search.max-results", o.MaxResults, "Maximum number of search hits per query")
	fs.BoolVar(&o.FailFastUpload, "search.fail-fast-upload", o.FailFastUpload, "Abort uploads when indexing the new document fails")
}
